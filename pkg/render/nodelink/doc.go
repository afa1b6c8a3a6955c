// Package nodelink renders block trees as node-link diagrams.
//
// # Overview
//
// Each laid-out block becomes a box labeled with its ID, kind and absolute
// rectangle, with an arrow from every parent to its children. It is a
// debugging view of what a layout pass produced, including the spacer
// blocks that flex containers insert between their children.
//
// # Usage
//
// Convert a block tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded box
// nodes. Text blocks are filled light yellow and spacers are dashed and grey.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
