package layout

import (
	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/text"
)

// Block is one laid-out node: its absolute box and what a renderer needs to
// paint it.
//
// Rect is the box inside the margin, padding included. Margin and Padding
// are the effective edges after the pass, so they include offsets resolved
// by the parent and padding the node claimed for itself.
type Block struct {
	ID      string         `json:"id"`
	Kind    Kind           `json:"kind"`
	Rect    geometry.Rect  `json:"rect"`
	Margin  geometry.Edges `json:"margin"`
	Padding geometry.Edges `json:"padding"`

	// Text blocks only. Offsets[i] is the column of Lines[i] relative to
	// the content origin.
	Lines   text.Wrapped `json:"lines,omitempty"`
	Offsets []int        `json:"offsets,omitempty"`
	Style   *text.Style  `json:"style,omitempty"`

	Children []*Block `json:"children,omitempty"`
}

// Content returns the rectangle inside the padding.
func (b *Block) Content() geometry.Rect {
	return geometry.Rect{
		X:      b.Rect.X + b.Padding.Left,
		Y:      b.Rect.Y + b.Padding.Top,
		Width:  max(0, b.Rect.Width-b.Padding.Horizontal()),
		Height: max(0, b.Rect.Height-b.Padding.Vertical()),
	}
}

// Walk calls fn for b and its descendants in depth-first order. Returning
// false from fn skips the block's children.
func (b *Block) Walk(fn func(b *Block, depth int) bool) {
	b.walk(fn, 0)
}

func (b *Block) walk(fn func(*Block, int) bool, depth int) {
	if !fn(b, depth) {
		return
	}
	for _, c := range b.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of blocks in the tree rooted at b.
func (b *Block) Count() int {
	n := 0
	b.Walk(func(*Block, int) bool {
		n++
		return true
	})
	return n
}

// Find returns the first block with the given ID, or nil.
func (b *Block) Find(id string) *Block {
	var found *Block
	b.Walk(func(c *Block, _ int) bool {
		if found == nil && c.ID == id {
			found = c
		}
		return found == nil
	})
	return found
}
