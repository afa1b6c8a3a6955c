package layout

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cellkit/pkg/errors"
	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/observability"
)

// Engine runs layout passes. The zero value is ready to use.
type Engine struct {
	Logger *log.Logger
}

func (e *Engine) logger() *log.Logger {
	if e.Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return e.Logger
}

// Layout runs one full pass over root inside viewport and returns the
// resulting block tree.
//
// The whole tree is validated before anything is measured, and any error
// aborts the pass; no partial result is returned. Nodes without an ID are
// named after their path from the root ("root", "root/0", ...).
func (e *Engine) Layout(ctx context.Context, root Node, viewport geometry.Size) (*Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := viewport.Validate(); err != nil {
		return nil, err
	}
	if err := Validate(root); err != nil {
		return nil, err
	}

	logger := e.logger()
	nodes := Count(root)
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, nodes, viewport.String())
	logger.Debug("layout pass", "nodes", nodes, "viewport", viewport)
	start := time.Now()

	Walk(root, func(n Node) { n.invalidate() })
	block, err := run(root, viewport)
	hooks.OnLayoutComplete(ctx, nodes, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	reportMemo(ctx, root)
	logger.Debug("layout done", "size", block.Rect.Size(), "blocks", block.Count(), "duration", time.Since(start))
	return block, nil
}

func run(root Node, viewport geometry.Size) (*Block, error) {
	m, err := measure(root, viewport, viewport, forced{})
	if err != nil {
		return nil, err
	}
	root.Place(Placement{})
	return build(root, 0, 0, m, viewport, "root")
}

// build turns n, measured as m with its margin box at (x, y), into a block.
func build(n Node, x, y int, m measured, viewport geometry.Size, path string) (*Block, error) {
	box := n.node().Box
	margin := box.Margin.Add(n.Placement().Margin)
	border := m.border(n)

	a, err := n.arrange(m, viewport)
	if err != nil {
		return nil, err
	}

	id := n.ID()
	if id == "" {
		id = path
	}
	b := &Block{
		ID:      id,
		Kind:    n.Kind(),
		Rect:    geometry.NewRect(x+margin.Left, y+margin.Top, border),
		Margin:  margin,
		Padding: box.Padding.Add(a.padding),
		Lines:   a.lines,
		Offsets: a.offsets,
		Style:   a.style,
	}

	cx, cy := b.Rect.X+box.Padding.Left, b.Rect.Y+box.Padding.Top
	for i, s := range a.children {
		child, err := build(s.node, cx+s.x, cy+s.y, s.m, viewport, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		b.Children = append(b.Children, child)
	}
	return b, nil
}

// Validate checks every node of the tree rooted at root.
func Validate(root Node) error {
	if root == nil {
		return errors.New(errors.ErrCodeInvalidInput, "layout tree is empty")
	}
	if err := root.validate(); err != nil {
		return err
	}
	for i, c := range root.Children() {
		if c == nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s node %q has a nil child at index %d", root.Kind(), root.ID(), i)
		}
		if err := Validate(c); err != nil {
			return err
		}
	}
	return nil
}

// Walk calls fn for root and every descendant, parents first.
func Walk(root Node, fn func(Node)) {
	fn(root)
	for _, c := range root.Children() {
		Walk(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root Node) int {
	n := 0
	Walk(root, func(Node) { n++ })
	return n
}

func reportMemo(ctx context.Context, root Node) {
	var textHits, textMisses, planHits, planMisses int
	Walk(root, func(n Node) {
		switch v := n.(type) {
		case *Text:
			s := v.MemoStats()
			textHits, textMisses = textHits+s.Hits, textMisses+s.Misses
		case *Flex:
			s := v.MemoStats()
			planHits, planMisses = planHits+s.Hits, planMisses+s.Misses
		}
	})
	hooks := observability.Memo()
	hooks.OnMemoStats(ctx, string(KindText), textHits, textMisses)
	hooks.OnMemoStats(ctx, string(KindFlex), planHits, planMisses)
}
