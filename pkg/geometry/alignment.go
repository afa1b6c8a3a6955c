package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/cellkit/pkg/errors"
)

// Alignment is a point within a rectangle, expressed as fractions of the
// free space. Both components lie in [-1, 1].
type Alignment struct {
	x, y float64
}

// Named alignment presets.
var (
	TopLeft      = Alignment{-1, -1}
	TopCenter    = Alignment{0, -1}
	TopRight     = Alignment{1, -1}
	CenterLeft   = Alignment{-1, 0}
	Center       = Alignment{0, 0}
	CenterRight  = Alignment{1, 0}
	BottomLeft   = Alignment{-1, 1}
	BottomCenter = Alignment{0, 1}
	BottomRight  = Alignment{1, 1}
)

var presetNames = map[Alignment]string{
	TopLeft:      "top-left",
	TopCenter:    "top-center",
	TopRight:     "top-right",
	CenterLeft:   "center-left",
	Center:       "center",
	CenterRight:  "center-right",
	BottomLeft:   "bottom-left",
	BottomCenter: "bottom-center",
	BottomRight:  "bottom-right",
}

// NewAlignment creates an alignment, rejecting components outside [-1, 1].
func NewAlignment(x, y float64) (Alignment, error) {
	if err := errors.ValidateAlignmentComponent("x", x); err != nil {
		return Alignment{}, err
	}
	if err := errors.ValidateAlignmentComponent("y", y); err != nil {
		return Alignment{}, err
	}
	return Alignment{x: x, y: y}, nil
}

// MustAlignment is like NewAlignment but panics on out-of-range input.
// It is meant for package-level constants.
func MustAlignment(x, y float64) Alignment {
	a, err := NewAlignment(x, y)
	if err != nil {
		panic(err)
	}
	return a
}

// X returns the horizontal component.
func (a Alignment) X() float64 { return a.x }

// Y returns the vertical component.
func (a Alignment) Y() float64 { return a.y }

// Neg mirrors the alignment through the center.
func (a Alignment) Neg() Alignment {
	return Alignment{x: -a.x, y: -a.y}
}

// Offset returns the left and top offsets that place a child inside free
// space. Negative free space is treated as zero.
//
//	left = round(free.Width  * (x + 1) * 0.5)
//	top  = round(free.Height * (y + 1) * 0.5)
func (a Alignment) Offset(free Size) (left, top int) {
	return fraction(free.Width, a.x), fraction(free.Height, a.y)
}

// OffsetX returns only the horizontal offset for free columns.
func (a Alignment) OffsetX(free int) int { return fraction(free, a.x) }

// OffsetY returns only the vertical offset for free rows.
func (a Alignment) OffsetY(free int) int { return fraction(free, a.y) }

func fraction(free int, v float64) int {
	if free <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(free) * (v + 1) * 0.5))
}

func (a Alignment) String() string {
	if name, ok := presetNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alignment(%.1f, %.1f)", a.x, a.y)
}

// ParseAlignment accepts a preset name ("center", "top-left", ...) or an
// "x,y" pair such as "0.5,-1".
func ParseAlignment(s string) (Alignment, error) {
	s = strings.TrimSpace(s)
	for a, name := range presetNames {
		if name == s || strings.ReplaceAll(name, "-", "_") == s {
			return a, nil
		}
	}

	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Alignment{}, errors.New(errors.ErrCodeInvalidInput, "invalid alignment: %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Alignment{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid alignment x: %q", xs)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Alignment{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid alignment y: %q", ys)
	}
	return NewAlignment(x, y)
}
