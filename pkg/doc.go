// Package pkg provides the core libraries for cellkit terminal layout.
//
// # Overview
//
// Cellkit positions text and boxes on an integer grid of terminal cells.
// Every size, offset and margin is a whole number of cells; fractional
// alignment is rounded half to even at the point where it becomes a cell
// count. The pkg directory is organized into four main areas:
//
//  1. Primitives: [geometry], [text], [flex], [errors]
//  2. Layout: [layout] (node tree, engine, block tree)
//  3. Input and output: [document], [render/cells], [render/nodelink]
//  4. Orchestration: [pipeline], [observability], [cache]
//
// # Architecture
//
// The typical data flow through cellkit:
//
//	TOML document
//	     ↓
//	[document] package (decode + build node tree)
//	     ↓
//	[layout] package (measure widths, then heights, then place)
//	     ↓
//	[render] packages (cell grid, Graphviz diagram, JSON)
//
// # Quick Start
//
// Build a tree in code and lay it out:
//
//	title := layout.NewText(text.Run{Content: "Hello", SoftWrap: true, Align: text.Center})
//	body := layout.NewExpanded(layout.NewSizedBox(geometry.Auto(), geometry.Cells(1), nil), 1)
//	col := layout.NewColumn(title, body)
//	col.CrossAxisAlignment = flex.CrossStretch
//
//	var engine layout.Engine
//	root, err := engine.Layout(ctx, col, geometry.Size{Width: 40, Height: 10})
//	fmt.Println(cells.Paint(root, geometry.Size{Width: 40, Height: 10}, cells.Options{}))
//
// # Main Packages
//
// [geometry] - Sizes, rectangles, edges, dimensions and the alignment math
// that turns a fraction in [-1, 1] and a free extent into a cell offset.
//
// [text] - The text shaper: character-count wrapping, the clip, ellipsis,
// fade and visible overflow policies, and justification.
//
// [flex] - Main-axis distribution (start, end, center, space between, around
// and evenly), cross-axis offsets and flexible shares.
//
// [layout] - Text, Align, Flex, Flexible and SizedBox nodes and the
// [layout.Engine] that runs full passes over them.
//
// [document] - TOML layout documents, decoded with BurntSushi/toml.
//
// [pipeline] - Complete decode → layout → render pipeline used by the CLI.
//
// [observability] - Hooks for decode, layout, render and memo events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example ./...  # Examples only
//
// [geometry]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/geometry
// [text]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/text
// [flex]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/flex
// [errors]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/errors
// [layout]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/layout
// [layout.Engine]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/layout#Engine
// [document]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/document
// [render]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/render
// [render/cells]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/render/cells
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/observability
// [cache]: https://pkg.go.dev/github.com/matzehuels/cellkit/pkg/cache
package pkg
