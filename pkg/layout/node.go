package layout

import (
	"github.com/matzehuels/cellkit/pkg/errors"
	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/text"
)

// Kind identifies a node variant.
type Kind string

const (
	KindText     Kind = "text"
	KindAlign    Kind = "align"
	KindFlex     Kind = "flex"
	KindFlexible Kind = "flexible"
	KindSizedBox Kind = "sized_box"
	KindSpacer   Kind = "spacer"
)

// Node is one element of a layout tree. The set of implementations is
// closed; use the constructors in this package.
type Node interface {
	Kind() Kind
	ID() string

	// ContentWidth returns the node's content width inside container.
	ContentWidth(container, viewport geometry.Size) (int, error)

	// ContentHeight returns the node's content height inside container,
	// given the width ContentWidth returned for the same container.
	ContentHeight(container, viewport geometry.Size, width int) (int, error)

	// Place receives the placement resolved by the node's parent.
	Place(p Placement)

	// Placement returns the placement most recently received.
	Placement() Placement

	Children() []Node

	node() *base
	validate() error
	arrange(m measured, viewport geometry.Size) (arrangement, error)
	invalidate()
}

// Box is the caller-set part of a node's geometry.
//
// Width and Height, when fixed, are the extent of the box including padding
// and excluding margin.
type Box struct {
	ID      string
	Margin  geometry.Edges
	Padding geometry.Edges
	Width   geometry.Dimension
	Height  geometry.Dimension
}

// Validate rejects negative edges and extents.
func (b Box) Validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"margin top", b.Margin.Top},
		{"margin right", b.Margin.Right},
		{"margin bottom", b.Margin.Bottom},
		{"margin left", b.Margin.Left},
		{"padding top", b.Padding.Top},
		{"padding right", b.Padding.Right},
		{"padding bottom", b.Padding.Bottom},
		{"padding left", b.Padding.Left},
		{"width", b.Width.Cells},
		{"height", b.Height.Cells},
	}
	for _, c := range checks {
		if err := errors.ValidateExtent(c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// BoxOf returns the caller-set box of n for editing.
func BoxOf(n Node) *Box { return &n.node().Box }

// Placement is what a parent resolves for a child during a pass. Margin is
// added to the child's own margin; a fixed Width or Height is the extent the
// parent gave the child's box.
type Placement struct {
	Margin geometry.Edges
	Width  geometry.Dimension
	Height geometry.Dimension
}

type base struct {
	Box Box

	placement Placement
}

func (b *base) ID() string             { return b.Box.ID }
func (b *base) Place(p Placement)      { b.placement = p }
func (b *base) Placement() Placement   { return b.placement }
func (b *base) node() *base            { return b }
func (b *base) invalidate()            {}
func (b *base) margin() geometry.Edges { return b.Box.Margin }

// slot is a child positioned relative to its parent's content origin. The
// position is the top-left corner of the child's margin box.
type slot struct {
	node Node
	x, y int
	m    measured
}

// arrangement is a node's contribution to its own block.
type arrangement struct {
	padding  geometry.Edges // padding claimed by the node itself
	children []slot
	lines    text.Wrapped
	offsets  []int
	style    *text.Style
}

// checkQuery rejects negative container or viewport extents.
func checkQuery(container, viewport geometry.Size) error {
	if err := container.Validate(); err != nil {
		return err
	}
	return viewport.Validate()
}
