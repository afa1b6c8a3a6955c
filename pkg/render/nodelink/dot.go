package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cellkit/pkg/layout"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes margin, padding and text lines in node labels.
	// When false, only the block ID, kind and rectangle are shown.
	Detailed bool
}

// ToDOT converts a block tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Synthetic spacer blocks are drawn with dashed outlines and grey fill to
// distinguish them from caller-built nodes.
func ToDOT(root *layout.Block, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges []string
	root.Walk(func(b *layout.Block, _ int) bool {
		attrs := fmtAttrs(b, fmtLabel(b, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", b.ID, strings.Join(attrs, ", "))
		for _, c := range b.Children {
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", b.ID, c.ID))
		}
		return true
	})

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(b *layout.Block, detailed bool) string {
	r := b.Rect
	head := fmt.Sprintf("%s\n%s %dx%d @ %d,%d", b.ID, b.Kind, r.Width, r.Height, r.X, r.Y)
	if !detailed {
		return head
	}

	parts := []string{
		"margin: " + b.Margin.String(),
		"padding: " + b.Padding.String(),
	}
	for i, l := range b.Lines {
		parts = append(parts, fmt.Sprintf("%d: %q", i, l.String()))
	}
	return head + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(b *layout.Block, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch b.Kind {
	case layout.KindSpacer:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	case layout.KindText:
		attrs = append(attrs, "fillcolor=lightyellow")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
