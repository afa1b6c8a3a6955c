// Package cells paints a laid-out block tree into a grid of terminal cells.
//
// Painting is the last step after [layout.Engine.Layout]: every text block
// writes its lines at the content origin plus the per-line offset, and
// everything outside the viewport is clipped. Synthetic spacer blocks hold
// no content and are skipped.
//
// Layout counts one cell per character. Glyphs that a terminal draws two
// cells wide (CJK, most emoji) occupy two cells here as well and push the
// rest of their line to the right.
//
//	g := cells.Paint(root, viewport, cells.Options{Outline: true})
//	fmt.Println(g.Render(true))
package cells

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/layout"
	"github.com/matzehuels/cellkit/pkg/text"
)

// Options configures painting.
type Options struct {
	// Outline draws the border box of every container block.
	Outline bool
}

type cell struct {
	glyph string // Empty for the trailing half of a wide glyph
	style text.Style
	faded bool
}

// Grid is a painted viewport.
type Grid struct {
	width, height int
	rows          [][]cell
}

// New returns an empty grid of the given size.
func New(size geometry.Size) *Grid {
	g := &Grid{width: max(size.Width, 0), height: max(size.Height, 0)}
	g.rows = make([][]cell, g.height)
	for y := range g.rows {
		g.rows[y] = make([]cell, g.width)
		for x := range g.rows[y] {
			g.rows[y][x].glyph = " "
		}
	}
	return g
}

// Paint draws the block tree rooted at root into a new grid of size.
func Paint(root *layout.Block, size geometry.Size, opts Options) *Grid {
	g := New(size)
	root.Walk(func(b *layout.Block, _ int) bool {
		switch b.Kind {
		case layout.KindSpacer:
		case layout.KindText:
			g.paintText(b)
		default:
			if opts.Outline {
				g.outline(b.Rect)
			}
		}
		return true
	})
	return g
}

// Size returns the grid extent.
func (g *Grid) Size() geometry.Size {
	return geometry.Size{Width: g.width, Height: g.height}
}

// At returns the glyph at (x, y). Out-of-range cells and the trailing half
// of a wide glyph read as empty.
func (g *Grid) At(x, y int) string {
	if !g.inside(x, y) {
		return ""
	}
	return g.rows[y][x].glyph
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) paintText(b *layout.Block) {
	content := b.Content()
	var style text.Style
	if b.Style != nil {
		style = *b.Style
	}
	for i, line := range b.Lines {
		x := content.X
		if i < len(b.Offsets) {
			x += b.Offsets[i]
		}
		y := content.Y + i
		x = g.write(x, y, line.Text, style, false)
		g.write(x, y, line.Faded, style, true)
	}
}

// write puts s on row y starting at column x and returns the column after
// the last glyph.
func (g *Grid) write(x, y int, s string, style text.Style, faded bool) int {
	for _, c := range text.Chars(s) {
		w := max(runewidth.StringWidth(c), 1)
		if g.inside(x, y) && g.inside(x+w-1, y) {
			g.rows[y][x] = cell{glyph: c, style: style, faded: faded}
			for i := 1; i < w; i++ {
				g.rows[y][x+i] = cell{style: style}
			}
		}
		x += w
	}
	return x
}

func (g *Grid) outline(r geometry.Rect) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	border := lipgloss.NormalBorder()
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		g.put(x, r.Y, border.Top)
		g.put(x, bottom, border.Bottom)
	}
	for y := r.Y + 1; y < bottom; y++ {
		g.put(r.X, y, border.Left)
		g.put(right, y, border.Right)
	}
	g.put(r.X, r.Y, border.TopLeft)
	g.put(right, r.Y, border.TopRight)
	g.put(r.X, bottom, border.BottomLeft)
	g.put(right, bottom, border.BottomRight)
}

func (g *Grid) put(x, y int, glyph string) {
	if g.inside(x, y) {
		g.rows[y][x] = cell{glyph: glyph, faded: true}
	}
}

// String returns the grid as plain text, one line per row, with trailing
// blanks removed.
func (g *Grid) String() string {
	lines := make([]string, g.height)
	for y, row := range g.rows {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(c.glyph)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// Render returns the grid with every row padded to the full width. With
// color set, text styles are applied through lipgloss and faded cells are
// drawn faint.
func (g *Grid) Render(color bool) string {
	if !color {
		lines := make([]string, g.height)
		for y, row := range g.rows {
			var b strings.Builder
			for _, c := range row {
				b.WriteString(c.glyph)
			}
			lines[y] = b.String()
		}
		return strings.Join(lines, "\n")
	}

	lines := make([]string, g.height)
	for y, row := range g.rows {
		var b strings.Builder
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && sameStyle(row[start], row[end]) {
				end++
			}
			var seg strings.Builder
			for _, c := range row[start:end] {
				seg.WriteString(c.glyph)
			}
			b.WriteString(lipglossStyle(row[start]).Render(seg.String()))
			start = end
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b cell) bool {
	return a.style == b.style && a.faded == b.faded
}

func lipglossStyle(c cell) lipgloss.Style {
	s := lipgloss.NewStyle().
		Bold(c.style.Bold).
		Italic(c.style.Italic).
		Underline(c.style.Underline).
		Strikethrough(c.style.Strikethrough).
		Faint(c.style.Faint || c.faded)
	if c.style.Foreground != "" {
		s = s.Foreground(lipgloss.Color(c.style.Foreground))
	}
	if c.style.Background != "" {
		s = s.Background(lipgloss.Color(c.style.Background))
	}
	return s
}
