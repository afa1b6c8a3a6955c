package layout

import (
	"github.com/matzehuels/cellkit/pkg/errors"
	"github.com/matzehuels/cellkit/pkg/geometry"
)

// SizedBox is a box of fixed extent with an optional child. An auto axis
// takes the child's extent, or zero without a child.
type SizedBox struct {
	base

	Width  geometry.Dimension
	Height geometry.Dimension

	child Node
}

// NewSizedBox creates a sized box. child may be nil.
func NewSizedBox(width, height geometry.Dimension, child Node) *SizedBox {
	return &SizedBox{Width: width, Height: height, child: child}
}

func (s *SizedBox) Kind() Kind { return KindSizedBox }

func (s *SizedBox) Children() []Node {
	if s.child == nil {
		return nil
	}
	return []Node{s.child}
}

func (s *SizedBox) validate() error {
	if err := s.Box.Validate(); err != nil {
		return err
	}
	return geometry.Size{Width: s.Width.Cells, Height: s.Height.Cells}.Validate()
}

func (s *SizedBox) ContentWidth(container, viewport geometry.Size) (int, error) {
	if err := checkQuery(container, viewport); err != nil {
		return 0, err
	}
	if s.Width.Fixed || s.child == nil {
		return s.Width.Or(0), nil
	}
	m, err := measureWidth(s.child, container, viewport, forced{})
	if err != nil {
		return 0, err
	}
	return m.outer.Width, nil
}

func (s *SizedBox) ContentHeight(container, viewport geometry.Size, width int) (int, error) {
	if err := checkQuery(container, viewport); err != nil {
		return 0, err
	}
	if s.Height.Fixed || s.child == nil {
		return s.Height.Or(0), nil
	}
	container.Width = s.Width.Or(container.Width)
	m, err := measure(s.child, container, viewport, forced{})
	if err != nil {
		return 0, err
	}
	return m.outer.Height, nil
}

func (s *SizedBox) arrange(m measured, viewport geometry.Size) (arrangement, error) {
	if s.child == nil {
		return arrangement{}, nil
	}
	return fill(s.child, m.content, viewport)
}

// Spacer is a zero-content node that occupies space along one axis. A
// [Flex] creates its spacers itself on every pass; they are never painted.
type Spacer struct {
	base

	Axis   geometry.Axis
	Extent int
}

func newSpacer(axis geometry.Axis, extent int) *Spacer {
	return &Spacer{Axis: axis, Extent: extent}
}

func (s *Spacer) Kind() Kind       { return KindSpacer }
func (s *Spacer) Children() []Node { return nil }

func (s *Spacer) validate() error {
	return errors.ValidateExtent("spacer extent", s.Extent)
}

func (s *Spacer) ContentWidth(container, viewport geometry.Size) (int, error) {
	if s.Axis == geometry.Horizontal {
		return s.Extent, nil
	}
	return 0, nil
}

func (s *Spacer) ContentHeight(container, viewport geometry.Size, width int) (int, error) {
	if s.Axis == geometry.Vertical {
		return s.Extent, nil
	}
	return 0, nil
}

func (s *Spacer) arrange(measured, geometry.Size) (arrangement, error) {
	return arrangement{}, nil
}
