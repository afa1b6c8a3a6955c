package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/layout"
	"github.com/matzehuels/cellkit/pkg/pipeline"
	"github.com/matzehuels/cellkit/pkg/text"
)

func TestRootCommand(t *testing.T) {
	root := New(os.Stderr, LogInfo).RootCommand()

	want := []string{"completion", "dot", "layout", "render", "view", "wrap"}
	var got []string
	for _, c := range root.Commands() {
		got = append(got, c.Name())
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("subcommands = %v, want %v", got, want)
	}
}

func TestParseRenderFormats(t *testing.T) {
	tests := []struct {
		in      string
		noColor bool
		want    string
	}{
		{"", false, "ansi"},
		{"", true, "text"},
		{"json,dot", false, "json,dot"},
		{"svg", true, "svg"},
	}

	for _, tt := range tests {
		if got := strings.Join(parseRenderFormats(tt.in, tt.noColor), ","); got != tt.want {
			t.Errorf("parseRenderFormats(%q, %v) = %q, want %q", tt.in, tt.noColor, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		format string
		count  int
		want   string
	}{
		{"stdout", "", "ansi", 1, ""},
		{"explicit", "out.txt", "text", 1, "out.txt"},
		{"svg next to input", "", "svg", 1, "docs/card.svg"},
		{"explicit svg", "x.svg", "svg", 1, "x.svg"},
		{"multi from input", "", "json", 2, "docs/card.json"},
		{"multi from base", "out/base.txt", "dot", 3, "out/base.dot"},
		{"multi text", "", "text", 2, "docs/card.text.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, "docs/card.toml", tt.format, tt.count); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestViewportFlags(t *testing.T) {
	var opts pipeline.Options
	(&viewportFlags{width: 30, height: 4, fadeLength: -1}).apply(&opts)
	if opts.Width != 30 || opts.Height != 4 || opts.FadeLength != nil {
		t.Errorf("apply() = %dx%d fade %v", opts.Width, opts.Height, opts.FadeLength)
	}

	(&viewportFlags{fadeLength: 0}).apply(&opts)
	if opts.FadeLength == nil || *opts.FadeLength != 0 {
		t.Errorf("apply() fade = %v, want 0", opts.FadeLength)
	}
}

func TestGeometryRows(t *testing.T) {
	root := &layout.Block{
		ID:   "root",
		Kind: layout.KindFlex,
		Rect: geometry.Rect{Width: 10, Height: 2},
		Children: []*layout.Block{
			{ID: "msg", Kind: layout.KindText, Rect: geometry.Rect{X: 1, Y: 1, Width: 3, Height: 1}, Lines: text.Wrapped{{Text: "abc"}}},
		},
	}

	rows := geometryRows(root)
	want := [][]string{
		{"root", "flex", "0", "0", "10", "2", "0 0 0 0", "0 0 0 0", ""},
		{"  msg", "text", "1", "1", "3", "1", "0 0 0 0", "0 0 0 0", "1"},
	}
	if len(rows) != len(want) {
		t.Fatalf("geometryRows() = %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if strings.Join(rows[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}

	table := geometryTable(root)
	for _, s := range []string{"ID", "msg", "flex"} {
		if !strings.Contains(table, s) {
			t.Errorf("geometryTable() missing %q", s)
		}
	}
}

func TestWrapOptsRun(t *testing.T) {
	opts := wrapOpts{softWrap: true, overflow: "ellipsis", align: "justify", maxLines: 2, letterSpacing: 1}
	run, err := opts.run("abc")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if run.Overflow != text.Ellipsis || run.Align != text.Justify || run.MaxLines != 2 || run.Style.LetterSpacing != 1 {
		t.Errorf("run() = %+v", run)
	}

	if _, err := (wrapOpts{overflow: "scroll", align: "left"}).run("x"); err == nil {
		t.Error("run() with unknown overflow should fail")
	}
	if _, err := (wrapOpts{overflow: "clip", align: "middle"}).run("x"); err == nil {
		t.Error("run() with unknown align should fail")
	}
}

func TestFormatLines(t *testing.T) {
	lines := text.Wrapped{{Text: "abc"}, {Text: "d", Faded: "e"}}
	mark := func(s ...string) string { return "[" + strings.Join(s, "") + "]" }

	if got, want := formatLines(lines, 4, false, mark), "abc\nd[e]"; got != want {
		t.Errorf("formatLines() = %q, want %q", got, want)
	}
	if got, want := formatLines(lines, 4, true, mark), "│abc │\n│d[e]  │"; got != want {
		t.Errorf("formatLines(frame) = %q, want %q", got, want)
	}
}

func TestPreviewModelRelayoutsOnResize(t *testing.T) {
	root := layout.NewCenter(layout.NewText(text.Run{Content: "hi", SoftWrap: true}))
	m := newPreviewModel(context.Background(), root, nil)

	if v := m.View(); !strings.Contains(v, "waiting") {
		t.Errorf("View() before size = %q", v)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 6, Height: 4})
	m = next.(previewModel)
	if m.passes != 1 || m.size != (geometry.Size{Width: 6, Height: 3}) {
		t.Fatalf("after resize passes=%d size=%v, want 1 and 6x3", m.passes, m.size)
	}
	if got := m.block.Find("root/0").Rect; got != (geometry.Rect{X: 2, Y: 1, Width: 2, Height: 1}) {
		t.Errorf("text rect = %+v, want (2,1) 2x1", got)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 4})
	m = next.(previewModel)
	if got := m.block.Find("root/0").Rect.X; m.passes != 2 || got != 4 {
		t.Errorf("after second resize passes=%d x=%d, want 2 and 4", m.passes, got)
	}
	if !strings.Contains(m.View(), "hi") {
		t.Errorf("View() = %q, want painted text", m.View())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	if !next.(previewModel).outline {
		t.Error("o should toggle outlines")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestPreviewModelShowsErrors(t *testing.T) {
	m := newPreviewModel(context.Background(), layout.NewRow(nil), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 6, Height: 4})
	if v := next.(previewModel).View(); !strings.Contains(v, "INVALID_INPUT") {
		t.Errorf("View() = %q, want the layout error", v)
	}
}

func TestLayoutCommandJSON(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.toml")
	if err := os.WriteFile(doc, []byte("[root]\nkind = \"text\"\nid = \"msg\"\ncontent = \"hello\""), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "layout.json")

	root := New(os.Stderr, LogInfo).RootCommand()
	root.SetArgs([]string{"layout", doc, "--json", "--width", "20", "--height", "2", "-o", out})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("layout command error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"id": "msg"`) {
		t.Errorf("layout JSON = %s, want the text block", data)
	}
}
