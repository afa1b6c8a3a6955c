package geometry

import (
	"fmt"

	"github.com/matzehuels/cellkit/pkg/errors"
)

// Axis is one of the two cardinal directions.
type Axis uint8

const (
	Horizontal Axis = iota // Left to right
	Vertical               // Top to bottom
)

// Flip returns the opposite axis.
func (a Axis) Flip() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis parses "horizontal" or "vertical".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "horizontal", "row":
		return Horizontal, nil
	case "vertical", "column":
		return Vertical, nil
	}
	return Horizontal, errors.New(errors.ErrCodeInvalidInput, "invalid axis: %q (must be horizontal or vertical)", s)
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Validate reports an INVALID_GEOMETRY error for negative extents.
func (s Size) Validate() error {
	if err := errors.ValidateExtent("width", s.Width); err != nil {
		return err
	}
	return errors.ValidateExtent("height", s.Height)
}

// Main returns the extent along axis.
func (s Size) Main(axis Axis) int {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the extent perpendicular to axis.
func (s Size) Cross(axis Axis) int {
	return s.Main(axis.Flip())
}

// WithMain returns a copy of s with the extent along axis replaced.
func (s Size) WithMain(axis Axis, v int) Size {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// WithCross returns a copy of s with the extent perpendicular to axis replaced.
func (s Size) WithCross(axis Axis, v int) Size {
	return s.WithMain(axis.Flip(), v)
}

// SizeOn builds a Size from main and cross extents relative to axis.
func SizeOn(axis Axis, main, cross int) Size {
	if axis == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect is a positioned box in cells. X grows to the right, Y grows down.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewRect creates a Rect from an origin and a size.
func NewRect(x, y int, s Size) Rect {
	return Rect{X: x, Y: y, Width: s.Width, Height: s.Height}
}

// Size returns the extent of r.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Right returns the first column past r.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past r.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Edges is spacing on four sides, used for margins and padding.
type Edges struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// EdgeTRBL creates Edges following CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Leading returns Edges with v on the leading edge of axis (left or top).
func Leading(axis Axis, v int) Edges {
	if axis == Horizontal {
		return Edges{Left: v}
	}
	return Edges{Top: v}
}

// Horizontal returns the sum of left and right.
func (e Edges) Horizontal() int { return e.Left + e.Right }

// Vertical returns the sum of top and bottom.
func (e Edges) Vertical() int { return e.Top + e.Bottom }

// IsZero reports whether all four sides are zero.
func (e Edges) IsZero() bool { return e == Edges{} }

// Add returns the side-wise sum of e and o.
func (e Edges) Add(o Edges) Edges {
	return Edges{
		Top:    e.Top + o.Top,
		Right:  e.Right + o.Right,
		Bottom: e.Bottom + o.Bottom,
		Left:   e.Left + o.Left,
	}
}

func (e Edges) String() string {
	return fmt.Sprintf("%d %d %d %d", e.Top, e.Right, e.Bottom, e.Left)
}

// Dimension is an explicit extent in cells or "auto".
type Dimension struct {
	Cells int
	Fixed bool
}

// Auto returns a Dimension sized by content.
func Auto() Dimension { return Dimension{} }

// Cells returns a fixed Dimension of n cells.
func Cells(n int) Dimension { return Dimension{Cells: n, Fixed: true} }

// Or returns the fixed extent, or fallback when d is auto.
func (d Dimension) Or(fallback int) int {
	if d.Fixed {
		return d.Cells
	}
	return fallback
}

func (d Dimension) String() string {
	if !d.Fixed {
		return "auto"
	}
	return fmt.Sprintf("%d", d.Cells)
}
