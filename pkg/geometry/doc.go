// Package geometry provides integer-cell geometry for terminal layouts.
//
// # Overview
//
// Every extent in cellkit is a whole number of character cells. This package
// holds the small value types shared by the layout engine and its
// collaborators:
//
//   - [Size]: a width/height pair in cells
//   - [Rect]: a positioned size, used for resolved node boxes
//   - [Edges]: margin or padding on four sides
//   - [Axis]: horizontal or vertical
//   - [Dimension]: an explicit extent or "auto"
//   - [Alignment]: a fractional point in [-1, 1] x [-1, 1]
//
// # Alignment
//
// An [Alignment] places a child inside a larger box. (-1, -1) is the top-left
// corner, (0, 0) the center and (1, 1) the bottom-right corner. Named presets
// such as [Center] and [TopLeft] are plain values, not separate types.
//
// [NewAlignment] rejects components outside [-1, 1] with an
// ALIGNMENT_RANGE error, so every Alignment value in a tree is valid by
// construction:
//
//	a, err := geometry.NewAlignment(0.5, -1)
//	left, top := a.Offset(geometry.Size{Width: 6, Height: 2})
//
// Offsets are rounded half-to-even and realized as margins by the caller;
// nothing in this package clips.
package geometry
