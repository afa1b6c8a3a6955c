package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/layout"
	"github.com/matzehuels/cellkit/pkg/text"
)

func sampleTree() *layout.Block {
	return &layout.Block{
		ID:   "root",
		Kind: layout.KindFlex,
		Rect: geometry.Rect{Width: 10, Height: 1},
		Children: []*layout.Block{
			{ID: "a", Kind: layout.KindText, Rect: geometry.Rect{Width: 3, Height: 1}, Lines: text.Wrapped{{Text: "abc"}}},
			{ID: "root/1", Kind: layout.KindSpacer, Rect: geometry.Rect{X: 3, Width: 2}},
			{ID: "b", Kind: layout.KindSizedBox, Rect: geometry.Rect{X: 5, Width: 5, Height: 1}},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`"root" -> "a";`,
		`"root" -> "root/1";`,
		`"root" -> "b";`,
		`label="root\nflex 10x1 @ 0,0"`,
		`label="b\nsized_box 5x1 @ 5,0"`,
		"fillcolor=lightyellow",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
	if !strings.Contains(dot, `"root/1" [label="root/1\nspacer 2x0 @ 3,0", style="rounded,filled,dashed"`) {
		t.Errorf("spacer not dashed:\n%s", dot)
	}
	if strings.Contains(dot, "margin: ") {
		t.Error("ToDOT() without Detailed should not include box edges")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{Detailed: true})

	for _, want := range []string{`margin: 0 0 0 0`, `padding: 0 0 0 0`, `0: \"abc\"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() without viewBox = %s, want unchanged", got)
	}
}
