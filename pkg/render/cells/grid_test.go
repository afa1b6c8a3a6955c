package cells

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/layout"
	"github.com/matzehuels/cellkit/pkg/text"
)

func textBlock(x, y, w, h int, offsets []int, lines ...text.Line) *layout.Block {
	return &layout.Block{
		Kind:    layout.KindText,
		Rect:    geometry.Rect{X: x, Y: y, Width: w, Height: h},
		Lines:   lines,
		Offsets: offsets,
	}
}

func TestPaintText(t *testing.T) {
	root := &layout.Block{
		Kind: layout.KindFlex,
		Rect: geometry.Rect{Width: 10, Height: 3},
		Children: []*layout.Block{
			textBlock(2, 1, 6, 2, []int{0, 3}, text.Line{Text: "ab"}, text.Line{Text: "c", Faded: "d"}),
			{Kind: layout.KindSpacer, Rect: geometry.Rect{X: 0, Y: 0, Width: 2}},
		},
	}

	got := Paint(root, geometry.Size{Width: 10, Height: 3}, Options{}).String()
	want := "\n  ab\n     cd"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPaintPadding(t *testing.T) {
	b := textBlock(0, 0, 6, 3, nil, text.Line{Text: "x"})
	b.Padding = geometry.EdgeTRBL(1, 0, 0, 2)

	g := Paint(b, geometry.Size{Width: 6, Height: 3}, Options{})
	if got := g.At(2, 1); got != "x" {
		t.Errorf("At(2, 1) = %q, want %q", got, "x")
	}
}

func TestPaintClipsToViewport(t *testing.T) {
	g := Paint(textBlock(8, 0, 4, 1, nil, text.Line{Text: "abcd"}), geometry.Size{Width: 10, Height: 1}, Options{})
	if got := g.String(); got != "        ab" {
		t.Errorf("String() = %q, want %q", got, "        ab")
	}

	g = Paint(textBlock(-2, 5, 4, 1, nil, text.Line{Text: "abcd"}), geometry.Size{Width: 10, Height: 2}, Options{})
	if got := g.String(); got != "\n" {
		t.Errorf("String() = %q, want blank grid", got)
	}
}

func TestPaintWideGlyph(t *testing.T) {
	g := Paint(textBlock(0, 0, 3, 1, nil, text.Line{Text: "世a"}), geometry.Size{Width: 4, Height: 1}, Options{})

	tests := []struct {
		x    int
		want string
	}{
		{0, "世"},
		{1, ""},
		{2, "a"},
		{3, " "},
		{4, ""},
	}
	for _, tt := range tests {
		if got := g.At(tt.x, 0); got != tt.want {
			t.Errorf("At(%d, 0) = %q, want %q", tt.x, got, tt.want)
		}
	}
	if got := g.String(); got != "世a" {
		t.Errorf("String() = %q, want %q", got, "世a")
	}

	// A wide glyph that would straddle the right edge is dropped.
	g = Paint(textBlock(0, 0, 3, 1, nil, text.Line{Text: "a世"}), geometry.Size{Width: 2, Height: 1}, Options{})
	if got := g.String(); got != "a" {
		t.Errorf("String() = %q, want %q", got, "a")
	}
}

func TestPaintOutline(t *testing.T) {
	root := &layout.Block{
		Kind: layout.KindFlex,
		Rect: geometry.Rect{Width: 4, Height: 3},
		Children: []*layout.Block{
			{Kind: layout.KindSizedBox, Rect: geometry.Rect{X: 1, Y: 1, Width: 1, Height: 1}},
		},
	}

	got := Paint(root, geometry.Size{Width: 5, Height: 3}, Options{Outline: true}).String()
	want := strings.Join([]string{"┌──┐", "│  │", "└──┘"}, "\n")
	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	if got := Paint(root, geometry.Size{Width: 5, Height: 3}, Options{}).String(); got != "\n\n" {
		t.Errorf("without outline String() = %q, want blank grid", got)
	}
}

func TestRenderPlainPadsRows(t *testing.T) {
	g := Paint(textBlock(1, 0, 2, 1, nil, text.Line{Text: "ok"}), geometry.Size{Width: 4, Height: 2}, Options{})
	if got, want := g.Render(false), " ok \n    "; got != want {
		t.Errorf("Render(false) = %q, want %q", got, want)
	}
}

func TestRenderColorKeepsGlyphs(t *testing.T) {
	b := textBlock(0, 0, 4, 1, nil, text.Line{Text: "ab", Faded: "c"})
	b.Style = &text.Style{Foreground: "#FF0000", Bold: true}

	got := Paint(b, geometry.Size{Width: 4, Height: 1}, Options{}).Render(true)
	for _, s := range []string{"a", "b", "c"} {
		if !strings.Contains(got, s) {
			t.Errorf("Render(true) = %q, missing %q", got, s)
		}
	}
}

func TestPaintLayout(t *testing.T) {
	var e layout.Engine
	size := geometry.Size{Width: 6, Height: 3}
	root, err := e.Layout(context.Background(), layout.NewCenter(layout.NewText(text.Run{Content: "hi", SoftWrap: true})), size)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	if got, want := Paint(root, size, Options{}).String(), "\n  hi\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
