package text

import (
	"github.com/matzehuels/cellkit/pkg/errors"
)

// Overflow is how a line that exceeds its width is handled.
type Overflow uint8

const (
	Clip     Overflow = iota // Cut at the width
	Fade                     // Cut and mark the tail as faded
	Ellipsis                 // Cut and end with an ellipsis glyph
	Visible                  // Leave untruncated
)

var overflowNames = map[Overflow]string{
	Clip:     "clip",
	Fade:     "fade",
	Ellipsis: "ellipsis",
	Visible:  "visible",
}

func (o Overflow) String() string {
	if s, ok := overflowNames[o]; ok {
		return s
	}
	return "unknown"
}

// ParseOverflow parses "clip", "fade", "ellipsis" or "visible".
func ParseOverflow(s string) (Overflow, error) {
	for o, name := range overflowNames {
		if name == s {
			return o, nil
		}
	}
	return Clip, errors.New(errors.ErrCodeInvalidInput,
		"invalid overflow: %q (must be one of: clip, fade, ellipsis, visible)", s)
}

// Align is the horizontal alignment of text lines.
type Align uint8

const (
	Left Align = iota
	Right
	Center
	Justify
)

var alignNames = map[Align]string{
	Left:    "left",
	Right:   "right",
	Center:  "center",
	Justify: "justify",
}

func (a Align) String() string {
	if s, ok := alignNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseAlign parses "left", "right", "center" or "justify".
func ParseAlign(s string) (Align, error) {
	for a, name := range alignNames {
		if name == s {
			return a, nil
		}
	}
	return Left, errors.New(errors.ErrCodeInvalidInput,
		"invalid text align: %q (must be one of: left, right, center, justify)", s)
}

// Run is an immutable piece of text with its shaping options.
type Run struct {
	Content  string
	SoftWrap bool
	Overflow Overflow
	MaxLines int // Zero means no limit
	Align    Align
	Style    Style
}

// Validate checks the run's options.
func (r Run) Validate() error {
	if err := errors.ValidateMaxLines(r.MaxLines); err != nil {
		return err
	}
	if r.Style.LetterSpacing < 0 || r.Style.WordSpacing < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "letter and word spacing must be >= 0")
	}
	return nil
}

// Style holds the visual attributes of a run. Layout passes them through
// untouched, except for letter and word spacing, which change the content
// before it is shaped.
type Style struct {
	Foreground    string `json:"foreground,omitempty" toml:"foreground"`
	Background    string `json:"background,omitempty" toml:"background"`
	Bold          bool   `json:"bold,omitempty" toml:"bold"`
	Italic        bool   `json:"italic,omitempty" toml:"italic"`
	Underline     bool   `json:"underline,omitempty" toml:"underline"`
	Strikethrough bool   `json:"strikethrough,omitempty" toml:"strikethrough"`
	Faint         bool   `json:"faint,omitempty" toml:"faint"`

	// LetterSpacing is the number of spaces inserted between adjacent
	// non-space characters.
	LetterSpacing int `json:"letter_spacing,omitempty" toml:"letter_spacing"`

	// WordSpacing is the number of cells each space occupies. Zero keeps
	// the single space.
	WordSpacing int `json:"word_spacing,omitempty" toml:"word_spacing"`

	// Override marks a style that replaces, rather than refines, the
	// style it is merged onto.
	Override bool `json:"override,omitempty" toml:"override"`
}

// Merge returns s refined by other. Fields set in other win; unset fields
// fall back to s. An Override style is returned unchanged.
func (s Style) Merge(other Style) Style {
	if other.Override {
		return other
	}
	return Style{
		Foreground:    firstString(other.Foreground, s.Foreground),
		Background:    firstString(other.Background, s.Background),
		Bold:          other.Bold || s.Bold,
		Italic:        other.Italic || s.Italic,
		Underline:     other.Underline || s.Underline,
		Strikethrough: other.Strikethrough || s.Strikethrough,
		Faint:         other.Faint || s.Faint,
		LetterSpacing: firstInt(other.LetterSpacing, s.LetterSpacing),
		WordSpacing:   firstInt(other.WordSpacing, s.WordSpacing),
	}
}

// IsZero reports whether s carries no attributes.
func (s Style) IsZero() bool { return s == Style{} }

func firstString(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstInt(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}
