package layout

import (
	"math"

	"github.com/matzehuels/cellkit/pkg/errors"
	"github.com/matzehuels/cellkit/pkg/geometry"
)

// Align positions its child inside itself by a fractional alignment point.
//
// Without a factor the box takes the full container extent on that axis.
// With WidthFactor (or HeightFactor) set, it is instead the child's extent
// times the factor, rounded half to even.
type Align struct {
	base

	Alignment    geometry.Alignment
	WidthFactor  *float64
	HeightFactor *float64

	child Node
}

// NewAlign creates an Align around child.
func NewAlign(child Node, alignment geometry.Alignment) *Align {
	return &Align{child: child, Alignment: alignment}
}

// NewCenter creates an Align that centers child.
func NewCenter(child Node) *Align {
	return NewAlign(child, geometry.Center)
}

// SetWidthFactor sizes the box to the child's width times f.
func (a *Align) SetWidthFactor(f float64) *Align {
	a.WidthFactor = &f
	return a
}

// SetHeightFactor sizes the box to the child's height times f.
func (a *Align) SetHeightFactor(f float64) *Align {
	a.HeightFactor = &f
	return a
}

func (a *Align) Kind() Kind       { return KindAlign }
func (a *Align) Children() []Node { return []Node{a.child} }

func (a *Align) validate() error {
	if err := a.Box.Validate(); err != nil {
		return err
	}
	if a.WidthFactor != nil {
		if err := errors.ValidateFactor("width factor", *a.WidthFactor); err != nil {
			return err
		}
	}
	if a.HeightFactor != nil {
		if err := errors.ValidateFactor("height factor", *a.HeightFactor); err != nil {
			return err
		}
	}
	return nil
}

func (a *Align) ContentWidth(container, viewport geometry.Size) (int, error) {
	if err := checkQuery(container, viewport); err != nil {
		return 0, err
	}
	if a.WidthFactor == nil {
		return container.Width, nil
	}
	m, err := measureWidth(a.child, container, viewport, forced{})
	if err != nil {
		return 0, err
	}
	return scale(m.outer.Width, *a.WidthFactor), nil
}

func (a *Align) ContentHeight(container, viewport geometry.Size, width int) (int, error) {
	if err := checkQuery(container, viewport); err != nil {
		return 0, err
	}
	if a.HeightFactor == nil {
		return container.Height, nil
	}
	m, err := measure(a.child, container, viewport, forced{})
	if err != nil {
		return 0, err
	}
	return scale(m.outer.Height, *a.HeightFactor), nil
}

// arrange measures the child against the container the box itself was
// measured in on factor axes, so a factor below one does not squeeze it.
func (a *Align) arrange(m measured, viewport geometry.Size) (arrangement, error) {
	container := m.content
	if a.WidthFactor != nil {
		container.Width = m.container.Width
	}
	if a.HeightFactor != nil {
		container.Height = m.container.Height
	}

	cm, err := measure(a.child, container, viewport, forced{})
	if err != nil {
		return arrangement{}, err
	}
	free := geometry.Size{
		Width:  max(0, m.content.Width-cm.outer.Width),
		Height: max(0, m.content.Height-cm.outer.Height),
	}
	left, top := a.Alignment.Offset(free)
	border := cm.border(a.child)
	a.child.Place(Placement{
		Margin: geometry.EdgeTRBL(top, 0, 0, left),
		Width:  geometry.Cells(border.Width),
		Height: geometry.Cells(border.Height),
	})
	return arrangement{children: []slot{{node: a.child, m: cm}}}, nil
}

func scale(v int, factor float64) int {
	return int(math.RoundToEven(float64(v) * factor))
}
