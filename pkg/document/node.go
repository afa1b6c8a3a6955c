package document

import (
	"fmt"

	"github.com/matzehuels/cellkit/pkg/errors"
	"github.com/matzehuels/cellkit/pkg/flex"
	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/layout"
	"github.com/matzehuels/cellkit/pkg/text"
)

// NodeSpec is one node table. Which keys apply depends on Kind.
type NodeSpec struct {
	Kind    string `toml:"kind"`
	ID      string `toml:"id"`
	Margin  []int  `toml:"margin"`  // CSS shorthand: 1, 2 or 4 values
	Padding []int  `toml:"padding"` // CSS shorthand: 1, 2 or 4 values
	Width   *int   `toml:"width"`
	Height  *int   `toml:"height"`

	// text
	Content   string      `toml:"content"`
	SoftWrap  *bool       `toml:"soft_wrap"` // Default true
	Overflow  string      `toml:"overflow"`
	MaxLines  int         `toml:"max_lines"`
	TextAlign string      `toml:"text_align"`
	Style     *text.Style `toml:"style"`

	// align, center
	Alignment    string   `toml:"alignment"`
	WidthFactor  *float64 `toml:"width_factor"`
	HeightFactor *float64 `toml:"height_factor"`

	// row, column, flex
	Direction          string     `toml:"direction"`
	MainAxisAlignment  string     `toml:"main_axis_alignment"`
	CrossAxisAlignment string     `toml:"cross_axis_alignment"`
	MainAxisSize       string     `toml:"main_axis_size"`
	VerticalDirection  string     `toml:"vertical_direction"`
	Spacing            int        `toml:"spacing"`
	Children           []NodeSpec `toml:"children"`

	// flexible, expanded
	Flex int    `toml:"flex"`
	Fit  string `toml:"fit"`

	Child *NodeSpec `toml:"child"`
}

type builder struct {
	fadeLength int
	style      text.Style
}

func (b builder) node(spec NodeSpec, path string) (layout.Node, error) {
	n, err := b.create(spec, path)
	if err != nil {
		return nil, err
	}

	box := layout.BoxOf(n)
	box.ID = spec.ID
	if box.Margin, err = parseEdges(spec.Margin); err != nil {
		return nil, invalid(path, "margin", err)
	}
	if box.Padding, err = parseEdges(spec.Padding); err != nil {
		return nil, invalid(path, "padding", err)
	}
	if spec.Kind != "sized_box" {
		box.Width = dimension(spec.Width)
		box.Height = dimension(spec.Height)
	}
	return n, nil
}

func (b builder) create(spec NodeSpec, path string) (layout.Node, error) {
	switch spec.Kind {
	case "text":
		return b.text(spec, path)
	case "align", "center":
		return b.align(spec, path)
	case "row", "column", "flex":
		return b.flex(spec, path)
	case "flexible", "expanded":
		return b.flexible(spec, path)
	case "sized_box":
		var child layout.Node
		if spec.Child != nil {
			c, err := b.node(*spec.Child, path+"/child")
			if err != nil {
				return nil, err
			}
			child = c
		}
		return layout.NewSizedBox(dimension(spec.Width), dimension(spec.Height), child), nil
	case "":
		return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: missing kind", path)
	}
	return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: unknown kind %q", path, spec.Kind)
}

func (b builder) text(spec NodeSpec, path string) (layout.Node, error) {
	run := text.Run{
		Content:  spec.Content,
		SoftWrap: spec.SoftWrap == nil || *spec.SoftWrap,
		MaxLines: spec.MaxLines,
		Style:    b.style,
	}
	if spec.Style != nil {
		run.Style = b.style.Merge(*spec.Style)
	}
	if spec.Overflow != "" {
		o, err := text.ParseOverflow(spec.Overflow)
		if err != nil {
			return nil, invalid(path, "overflow", err)
		}
		run.Overflow = o
	}
	if spec.TextAlign != "" {
		a, err := text.ParseAlign(spec.TextAlign)
		if err != nil {
			return nil, invalid(path, "text_align", err)
		}
		run.Align = a
	}

	t := layout.NewText(run)
	t.FadeLength = b.fadeLength
	return t, nil
}

func (b builder) align(spec NodeSpec, path string) (layout.Node, error) {
	alignment := geometry.Center
	if spec.Kind == "align" && spec.Alignment != "" {
		a, err := geometry.ParseAlignment(spec.Alignment)
		if err != nil {
			return nil, invalid(path, "alignment", err)
		}
		alignment = a
	}
	child, err := b.single(spec, path)
	if err != nil {
		return nil, err
	}

	a := layout.NewAlign(child, alignment)
	if spec.WidthFactor != nil {
		a.SetWidthFactor(*spec.WidthFactor)
	}
	if spec.HeightFactor != nil {
		a.SetHeightFactor(*spec.HeightFactor)
	}
	return a, nil
}

func (b builder) flex(spec NodeSpec, path string) (layout.Node, error) {
	children := make([]layout.Node, len(spec.Children))
	for i, c := range spec.Children {
		n, err := b.node(c, fmt.Sprintf("%s/%d", path, i))
		if err != nil {
			return nil, err
		}
		children[i] = n
	}

	var f *layout.Flex
	switch spec.Kind {
	case "row":
		f = layout.NewRow(children...)
	case "column":
		f = layout.NewColumn(children...)
	default:
		axis := geometry.Horizontal
		if spec.Direction != "" {
			a, err := geometry.ParseAxis(spec.Direction)
			if err != nil {
				return nil, invalid(path, "direction", err)
			}
			axis = a
		}
		f = layout.NewFlex(axis, children...)
	}
	f.Spacing = spec.Spacing

	var err error
	if spec.MainAxisAlignment != "" {
		if f.MainAxisAlignment, err = flex.ParseMainAxisAlignment(spec.MainAxisAlignment); err != nil {
			return nil, invalid(path, "main_axis_alignment", err)
		}
	}
	if spec.CrossAxisAlignment != "" {
		if f.CrossAxisAlignment, err = flex.ParseCrossAxisAlignment(spec.CrossAxisAlignment); err != nil {
			return nil, invalid(path, "cross_axis_alignment", err)
		}
	}
	if spec.MainAxisSize != "" {
		if f.MainAxisSize, err = flex.ParseMainAxisSize(spec.MainAxisSize); err != nil {
			return nil, invalid(path, "main_axis_size", err)
		}
	}
	if spec.VerticalDirection != "" {
		if f.VerticalDirection, err = flex.ParseVerticalDirection(spec.VerticalDirection); err != nil {
			return nil, invalid(path, "vertical_direction", err)
		}
	}
	return f, nil
}

func (b builder) flexible(spec NodeSpec, path string) (layout.Node, error) {
	child, err := b.single(spec, path)
	if err != nil {
		return nil, err
	}
	factor := spec.Flex
	if factor == 0 {
		factor = 1
	}
	if spec.Kind == "expanded" {
		return layout.NewExpanded(child, factor), nil
	}

	fit := flex.Loose
	if spec.Fit != "" {
		if fit, err = flex.ParseFit(spec.Fit); err != nil {
			return nil, invalid(path, "fit", err)
		}
	}
	return layout.NewFlexible(child, factor, fit), nil
}

func (b builder) single(spec NodeSpec, path string) (layout.Node, error) {
	if spec.Child == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: %s needs a child table", path, spec.Kind)
	}
	return b.node(*spec.Child, path+"/child")
}

// parseEdges reads CSS shorthand: [all], [vertical, horizontal] or
// [top, right, bottom, left].
func parseEdges(v []int) (geometry.Edges, error) {
	switch len(v) {
	case 0:
		return geometry.Edges{}, nil
	case 1:
		return geometry.EdgeTRBL(v[0], v[0], v[0], v[0]), nil
	case 2:
		return geometry.EdgeTRBL(v[0], v[1], v[0], v[1]), nil
	case 4:
		return geometry.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	}
	return geometry.Edges{}, fmt.Errorf("want 1, 2 or 4 values, got %d", len(v))
}

func dimension(v *int) geometry.Dimension {
	if v == nil {
		return geometry.Auto()
	}
	return geometry.Cells(*v)
}

func invalid(path, key string, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: invalid %s", path, key)
}
