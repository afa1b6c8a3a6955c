package layout

import (
	"github.com/matzehuels/cellkit/pkg/errors"
	"github.com/matzehuels/cellkit/pkg/flex"
	"github.com/matzehuels/cellkit/pkg/geometry"
)

// Flexible marks a child of a [Flex] as sharing the remaining main-axis
// space in proportion to Flex. Outside a Flex it sizes to its child.
type Flexible struct {
	base

	Flex int
	Fit  flex.Fit

	child Node
}

// NewFlexible creates a flexible child with the given factor and fit.
func NewFlexible(child Node, factor int, fit flex.Fit) *Flexible {
	return &Flexible{child: child, Flex: factor, Fit: fit}
}

// NewExpanded creates a flexible child that fills its whole share.
func NewExpanded(child Node, factor int) *Flexible {
	return NewFlexible(child, factor, flex.Tight)
}

func (f *Flexible) Kind() Kind       { return KindFlexible }
func (f *Flexible) Children() []Node { return []Node{f.child} }

func (f *Flexible) validate() error {
	if err := f.Box.Validate(); err != nil {
		return err
	}
	return errors.ValidateFlexFactor(f.Flex)
}

func (f *Flexible) ContentWidth(container, viewport geometry.Size) (int, error) {
	if err := checkQuery(container, viewport); err != nil {
		return 0, err
	}
	m, err := measureWidth(f.child, container, viewport, forced{})
	if err != nil {
		return 0, err
	}
	return m.outer.Width, nil
}

func (f *Flexible) ContentHeight(container, viewport geometry.Size, width int) (int, error) {
	if err := checkQuery(container, viewport); err != nil {
		return 0, err
	}
	m, err := measure(f.child, container, viewport, forced{})
	if err != nil {
		return 0, err
	}
	return m.outer.Height, nil
}

func (f *Flexible) arrange(m measured, viewport geometry.Size) (arrangement, error) {
	return fill(f.child, m.content, viewport)
}

// fill stretches child over the whole content area of its parent.
func fill(child Node, content, viewport geometry.Size) (arrangement, error) {
	mg := child.node().margin()
	f := forced{
		width:  geometry.Cells(max(0, content.Width-mg.Horizontal())),
		height: geometry.Cells(max(0, content.Height-mg.Vertical())),
	}
	cm, err := measure(child, content, viewport, f)
	if err != nil {
		return arrangement{}, err
	}
	child.Place(Placement{Width: f.width, Height: f.height})
	return arrangement{children: []slot{{node: child, m: cm}}}, nil
}
