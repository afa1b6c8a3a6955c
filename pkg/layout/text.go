package layout

import (
	"github.com/matzehuels/cellkit/pkg/cache"
	"github.com/matzehuels/cellkit/pkg/errors"
	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/text"
)

// Text is a leaf that shapes a text run into lines.
//
// Left-aligned text is as wide as its widest line. Centered, right-aligned
// and justified text takes the whole container width, and its lines are
// offset within it. Height is the number of lines, at least one.
type Text struct {
	base

	Run        text.Run
	FadeLength int // Trailing characters marked faded by the fade policy

	memo cache.Slot[textKey, text.Wrapped]
}

type textKey struct {
	container geometry.Size
	run       text.Run
	fade      int
}

// NewText creates a text node with the default fade length.
func NewText(run text.Run) *Text {
	return &Text{Run: run, FadeLength: text.DefaultFadeLength}
}

func (t *Text) Kind() Kind       { return KindText }
func (t *Text) Children() []Node { return nil }

// MemoStats returns the hit and miss counts of the node's shaping memo.
func (t *Text) MemoStats() cache.Stats { return t.memo.Stats() }

func (t *Text) validate() error {
	if err := t.Box.Validate(); err != nil {
		return err
	}
	if t.FadeLength < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "fade length must be >= 0, got %d", t.FadeLength)
	}
	return t.Run.Validate()
}

// shape returns the lines for container, reusing the previous result while
// the container, content and style are unchanged.
func (t *Text) shape(container geometry.Size) (text.Wrapped, error) {
	key := textKey{container: container, run: t.Run, fade: t.FadeLength}
	return t.memo.GetOrCompute(key, func() (text.Wrapped, error) {
		return text.Shape(t.Run, container.Width, container.Height, t.FadeLength)
	})
}

func (t *Text) ContentWidth(container, viewport geometry.Size) (int, error) {
	if err := checkQuery(container, viewport); err != nil {
		return 0, err
	}
	lines, err := t.shape(container)
	if err != nil {
		return 0, err
	}
	if t.Run.Align == text.Left {
		return lines.Width(), nil
	}
	return container.Width, nil
}

func (t *Text) ContentHeight(container, viewport geometry.Size, width int) (int, error) {
	if err := checkQuery(container, viewport); err != nil {
		return 0, err
	}
	lines, err := t.shape(container)
	if err != nil {
		return 0, err
	}
	return max(len(lines), 1), nil
}

func (t *Text) arrange(m measured, viewport geometry.Size) (arrangement, error) {
	lines, err := t.shape(m.container)
	if err != nil {
		return arrangement{}, err
	}

	offsets := make([]int, len(lines))
	if a, ok := lineAlignment(t.Run.Align); ok {
		for i, l := range lines {
			offsets[i] = a.OffsetX(m.content.Width - l.Len())
		}
	}
	style := t.Run.Style
	return arrangement{lines: lines, offsets: offsets, style: &style}, nil
}

// lineAlignment maps a text alignment to the top-row alignment point used to
// offset each line. Justified text has no offset.
func lineAlignment(a text.Align) (geometry.Alignment, bool) {
	switch a {
	case text.Left:
		return geometry.TopLeft, true
	case text.Center:
		return geometry.TopCenter, true
	case text.Right:
		return geometry.TopRight, true
	}
	return geometry.Alignment{}, false
}
