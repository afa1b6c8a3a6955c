// Package render turns laid-out block trees into output.
//
// # Overview
//
// The layout engine produces a [layout.Block] tree: absolute rectangles,
// effective margins and padding, and the shaped lines of every text node.
// The subpackages consume that tree:
//
//   - [cells]: paints the tree into a terminal grid, the primary output
//   - [nodelink]: draws the tree as a Graphviz node-link diagram (DOT, SVG)
//
// JSON output needs no renderer; [layout.Block] marshals directly.
//
//	root, err := engine.Layout(ctx, node, viewport)
//	grid := cells.Paint(root, viewport, cells.Options{})
//	dot := nodelink.ToDOT(root, nodelink.Options{})
//
// [layout.Block]: github.com/matzehuels/cellkit/pkg/layout#Block
// [cells]: github.com/matzehuels/cellkit/pkg/render/cells
// [nodelink]: github.com/matzehuels/cellkit/pkg/render/nodelink
package render
