// Package flex distributes free space along the axes of a flex container.
//
// # Overview
//
// A flex container lays its children out in a one-dimensional sequence. Once
// the children's main-axis extents are known, the remaining free space is
// split into a leading space (before the first child) and a between space
// (between adjacent children) according to a [MainAxisAlignment]:
//
//	d, err := flex.DistributeMain(flex.SpaceBetween, 12, 3, false, 1)
//	// d.Leading == 0, d.Between == 12/2 + 1 == 7
//
// Perpendicular placement uses [CrossOffset] with a [CrossAxisAlignment].
// Children carrying a flex factor share the remaining main-axis space through
// [Shares].
//
// All arithmetic is integer floor division: the engine works in whole cells
// and accepts that space cannot always be divided evenly. Negative free space
// means the children overflow the container; it is clamped to zero before
// distribution rather than treated as an error.
//
// Alignment behavior is a lookup table keyed by the enum value, so adding a
// new alignment means adding one table entry.
package flex
