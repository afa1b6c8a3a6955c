// Package layout computes integer-cell geometry for a tree of layout nodes.
//
// # Nodes
//
// The node set is closed: [Text], [Align], [Flex], [Flexible], [SizedBox]
// and the synthetic [Spacer] that a [Flex] creates for itself. Every node
// answers two size queries, always in this order for a given container:
//
//	w, _ := n.ContentWidth(container, viewport)
//	h, _ := n.ContentHeight(container, viewport, w)
//
// Both queries are idempotent. A parent may ask again, with the same or a
// different container, as often as it needs; nodes memoize the last answer
// keyed by everything it depends on.
//
// # Placement
//
// After measuring, a parent pushes a [Placement] down to each child with
// [Node.Place]: alignment offsets and cross-axis offsets become child
// margins, and forced extents (a tight flex share, a stretched cross axis)
// become explicit widths and heights. Nothing is clipped to achieve
// alignment.
//
// # Running a pass
//
// [Engine.Layout] validates the whole tree, measures the root against the
// viewport and walks down, producing a [Block] tree of absolute rectangles.
// Calling it again with an unchanged tree and viewport yields an identical
// result; call it whenever content or the viewport changes.
//
//	engine := &layout.Engine{Logger: logger}
//	root, err := engine.Layout(ctx, layout.NewCenter(layout.NewText(run)), geometry.Size{Width: 80, Height: 24})
package layout
