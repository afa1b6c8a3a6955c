package flex

import (
	"github.com/matzehuels/cellkit/pkg/errors"
)

// MainAxisAlignment controls how children are placed along the main axis.
type MainAxisAlignment uint8

const (
	Start        MainAxisAlignment = iota // Pack at the start
	Center                                // Pack in the middle
	End                                   // Pack at the end
	SpaceBetween                          // Free space between children only
	SpaceAround                           // Half-size space at the edges
	SpaceEvenly                           // Equal space between and at the edges
)

var mainNames = map[MainAxisAlignment]string{
	Start:        "start",
	Center:       "center",
	End:          "end",
	SpaceBetween: "space_between",
	SpaceAround:  "space_around",
	SpaceEvenly:  "space_evenly",
}

func (m MainAxisAlignment) String() string {
	if s, ok := mainNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseMainAxisAlignment parses names such as "start" or "space_between".
func ParseMainAxisAlignment(s string) (MainAxisAlignment, error) {
	for m, name := range mainNames {
		if name == s {
			return m, nil
		}
	}
	return Start, errors.New(errors.ErrCodeInvalidInput,
		"invalid main axis alignment: %q (must be one of: start, center, end, space_between, space_around, space_evenly)", s)
}

// CrossAxisAlignment controls how children are placed along the cross axis.
type CrossAxisAlignment uint8

const (
	CrossStart   CrossAxisAlignment = iota // Align to the start
	CrossCenter                            // Center
	CrossEnd                               // Align to the end
	CrossStretch                           // Fill the cross extent
)

var crossNames = map[CrossAxisAlignment]string{
	CrossStart:   "start",
	CrossCenter:  "center",
	CrossEnd:     "end",
	CrossStretch: "stretch",
}

func (c CrossAxisAlignment) String() string {
	if s, ok := crossNames[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCrossAxisAlignment parses "start", "center", "end" or "stretch".
func ParseCrossAxisAlignment(s string) (CrossAxisAlignment, error) {
	for c, name := range crossNames {
		if name == s {
			return c, nil
		}
	}
	return CrossStart, errors.New(errors.ErrCodeInvalidInput,
		"invalid cross axis alignment: %q (must be one of: start, center, end, stretch)", s)
}

// MainAxisSize controls how much main-axis space a container occupies.
type MainAxisSize uint8

const (
	MaxSize MainAxisSize = iota // Occupy the whole container extent
	MinSize                     // Shrink to the children
)

func (m MainAxisSize) String() string {
	if m == MinSize {
		return "min"
	}
	return "max"
}

// ParseMainAxisSize parses "min" or "max".
func ParseMainAxisSize(s string) (MainAxisSize, error) {
	switch s {
	case "max":
		return MaxSize, nil
	case "min":
		return MinSize, nil
	}
	return MaxSize, errors.New(errors.ErrCodeInvalidInput, "invalid main axis size: %q (must be min or max)", s)
}

// VerticalDirection is the order in which boxes flow vertically.
type VerticalDirection uint8

const (
	Down VerticalDirection = iota // Top to bottom
	Up                            // Bottom to top
)

func (v VerticalDirection) String() string {
	if v == Up {
		return "up"
	}
	return "down"
}

// ParseVerticalDirection parses "down" or "up".
func ParseVerticalDirection(s string) (VerticalDirection, error) {
	switch s {
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	}
	return Down, errors.New(errors.ErrCodeInvalidInput, "invalid vertical direction: %q (must be up or down)", s)
}

// Fit is how a flexible child is inscribed into its share of space.
type Fit uint8

const (
	Loose Fit = iota // The share caps the child's extent
	Tight            // The child occupies exactly its share
)

func (f Fit) String() string {
	if f == Tight {
		return "tight"
	}
	return "loose"
}

// ParseFit parses "loose" or "tight".
func ParseFit(s string) (Fit, error) {
	switch s {
	case "loose":
		return Loose, nil
	case "tight":
		return Tight, nil
	}
	return Loose, errors.New(errors.ErrCodeInvalidInput, "invalid fit: %q (must be loose or tight)", s)
}
