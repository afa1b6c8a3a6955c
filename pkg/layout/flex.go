package layout

import (
	"slices"

	"github.com/matzehuels/cellkit/pkg/cache"
	"github.com/matzehuels/cellkit/pkg/errors"
	"github.com/matzehuels/cellkit/pkg/flex"
	"github.com/matzehuels/cellkit/pkg/geometry"
)

// Flex lays its children out in one line along Direction.
//
// Free main-axis space is distributed by MainAxisAlignment: the space before
// the first child becomes padding on the flex itself, and the space between
// children is realized as synthetic [Spacer] nodes. Each child's
// cross-axis offset becomes a margin on its leading cross edge.
//
// [Flexible] children share what is left after the other children and the
// spacing in proportion to their factors.
type Flex struct {
	base

	Direction          geometry.Axis
	MainAxisAlignment  flex.MainAxisAlignment
	CrossAxisAlignment flex.CrossAxisAlignment
	MainAxisSize       flex.MainAxisSize
	VerticalDirection  flex.VerticalDirection
	Spacing            int

	children []Node
	spacers  []*Spacer
	plans    cache.Slot[planKey, flexPlan]
}

type planKey struct {
	container, viewport geometry.Size
}

// flexItem is one child with its resolved measurement.
type flexItem struct {
	node      Node
	container geometry.Size
	force     forced
	m         measured
	offset    int // Leading cross-axis offset
}

// flexPlan is the resolved line for one container.
type flexPlan struct {
	items   []flexItem // In visual order
	leading int
	between int
	main    int // Sum of children's main extents plus spacing
	cross   int // Largest cross extent of a child
}

// NewFlex creates a flex container along direction.
func NewFlex(direction geometry.Axis, children ...Node) *Flex {
	return &Flex{Direction: direction, children: children}
}

// NewRow creates a horizontal flex container.
func NewRow(children ...Node) *Flex {
	return NewFlex(geometry.Horizontal, children...)
}

// NewColumn creates a vertical flex container.
func NewColumn(children ...Node) *Flex {
	return NewFlex(geometry.Vertical, children...)
}

func (f *Flex) Kind() Kind       { return KindFlex }
func (f *Flex) Children() []Node { return f.children }

// Spacers returns the spacer nodes created by the most recent pass.
func (f *Flex) Spacers() []*Spacer { return f.spacers }

// MemoStats returns the hit and miss counts of the node's plan memo.
func (f *Flex) MemoStats() cache.Stats { return f.plans.Stats() }

func (f *Flex) invalidate() { f.plans.Reset() }

func (f *Flex) validate() error {
	if err := f.Box.Validate(); err != nil {
		return err
	}
	return errors.ValidateSpacing(f.Spacing)
}

// mainFlipped reports whether the main axis runs end to start.
func (f *Flex) mainFlipped() bool {
	return f.Direction == geometry.Vertical && f.VerticalDirection == flex.Up
}

// crossFlipped reports whether the cross axis runs end to start.
func (f *Flex) crossFlipped() bool {
	return f.Direction == geometry.Horizontal && f.VerticalDirection == flex.Up
}

func (f *Flex) ContentWidth(container, viewport geometry.Size) (int, error) {
	if err := checkQuery(container, viewport); err != nil {
		return 0, err
	}
	if f.Direction == geometry.Horizontal && f.MainAxisSize == flex.MaxSize {
		return container.Width, nil
	}
	if f.Direction == geometry.Vertical && f.CrossAxisAlignment != flex.CrossStart {
		return container.Width, nil
	}
	p, err := f.plan(container, viewport)
	if err != nil {
		return 0, err
	}
	if f.Direction == geometry.Horizontal {
		return p.main, nil
	}
	return p.cross, nil
}

func (f *Flex) ContentHeight(container, viewport geometry.Size, width int) (int, error) {
	if err := checkQuery(container, viewport); err != nil {
		return 0, err
	}
	if f.Direction == geometry.Vertical && f.MainAxisSize == flex.MaxSize {
		return container.Height, nil
	}
	if f.Direction == geometry.Horizontal && f.CrossAxisAlignment == flex.CrossStretch {
		return container.Height, nil
	}
	p, err := f.plan(container, viewport)
	if err != nil {
		return 0, err
	}
	if f.Direction == geometry.Vertical {
		return p.main, nil
	}
	return p.cross, nil
}

func (f *Flex) plan(container, viewport geometry.Size) (flexPlan, error) {
	return f.plans.GetOrCompute(planKey{container, viewport}, func() (flexPlan, error) {
		return f.resolve(container, viewport)
	})
}

// resolve measures the children and distributes the free space. Children
// without a flex factor are measured first; their extents decide the shares
// of the flexible ones. Within each group every width query precedes every
// height query.
func (f *Flex) resolve(container, viewport geometry.Size) (flexPlan, error) {
	axis, crossAxis := f.Direction, f.Direction.Flip()
	mainExtent, crossExtent := container.Main(axis), container.Cross(axis)

	children := slices.Clone(f.children)
	if f.mainFlipped() {
		slices.Reverse(children)
	}

	items := make([]flexItem, len(children))
	var fixed, flexible []int
	var factors []int
	for i, c := range children {
		items[i] = flexItem{node: c, container: container, force: f.stretch(c, crossExtent)}
		if fl, ok := c.(*Flexible); ok {
			flexible = append(flexible, i)
			factors = append(factors, fl.Flex)
		} else {
			fixed = append(fixed, i)
		}
	}

	if err := measureItems(items, fixed, viewport); err != nil {
		return flexPlan{}, err
	}

	used := max(len(items)-1, 0) * f.Spacing
	for _, i := range fixed {
		used += items[i].m.outer.Main(axis)
	}
	shares, err := flex.Shares(mainExtent-used, factors)
	if err != nil {
		return flexPlan{}, err
	}

	for k, i := range flexible {
		it := &items[i]
		it.container = container.WithMain(axis, shares[k])
		if it.node.(*Flexible).Fit == flex.Tight {
			it.force = it.force.with(axis, geometry.Cells(f.mainBox(it.node, shares[k])))
		}
	}
	if err := measureItems(items, flexible, viewport); err != nil {
		return flexPlan{}, err
	}

	// A loose child may not grow past its share.
	var capped []int
	for k, i := range flexible {
		if items[i].m.outer.Main(axis) > shares[k] {
			items[i].force = items[i].force.with(axis, geometry.Cells(f.mainBox(items[i].node, shares[k])))
			capped = append(capped, i)
		}
	}
	if err := measureItems(items, capped, viewport); err != nil {
		return flexPlan{}, err
	}

	p := flexPlan{items: items, main: max(len(items)-1, 0) * f.Spacing}
	for i := range items {
		p.main += items[i].m.outer.Main(axis)
		p.cross = max(p.cross, items[i].m.outer.Main(crossAxis))
	}

	d, err := flex.DistributeMain(f.MainAxisAlignment, mainExtent-p.main, len(items), f.mainFlipped(), f.Spacing)
	if err != nil {
		return flexPlan{}, err
	}
	p.leading, p.between = d.Leading, d.Between

	for i := range items {
		free := crossExtent - items[i].m.outer.Main(crossAxis)
		items[i].offset = flex.CrossOffset(f.CrossAxisAlignment, free, f.crossFlipped())
	}
	return p, nil
}

// stretch returns the forced cross extent of a child under CrossStretch.
func (f *Flex) stretch(child Node, crossExtent int) forced {
	if f.CrossAxisAlignment != flex.CrossStretch {
		return forced{}
	}
	crossAxis := f.Direction.Flip()
	mg := child.node().margin()
	return forced{}.with(crossAxis, geometry.Cells(max(0, crossExtent-edgesOn(mg, crossAxis))))
}

// mainBox converts a main-axis share into a box extent for child.
func (f *Flex) mainBox(child Node, share int) int {
	return max(0, share-edgesOn(child.node().margin(), f.Direction))
}

func edgesOn(e geometry.Edges, axis geometry.Axis) int {
	if axis == geometry.Horizontal {
		return e.Horizontal()
	}
	return e.Vertical()
}

// measureItems measures the selected items: all widths, then all heights.
func measureItems(items []flexItem, idx []int, viewport geometry.Size) error {
	for _, i := range idx {
		m, err := measureWidth(items[i].node, items[i].container, viewport, items[i].force)
		if err != nil {
			return err
		}
		items[i].m = m
	}
	for _, i := range idx {
		m, err := measureHeight(items[i].node, items[i].m, viewport, items[i].force)
		if err != nil {
			return err
		}
		items[i].m = m
	}
	return nil
}

// arrange places the children in visual order. The leading space is
// claimed as padding on the main axis; a spacer sits between every two
// adjacent children when the between space is positive. Spacers from the
// previous pass are discarded.
func (f *Flex) arrange(m measured, viewport geometry.Size) (arrangement, error) {
	p, err := f.plan(m.content, viewport)
	if err != nil {
		return arrangement{}, err
	}

	axis, crossAxis := f.Direction, f.Direction.Flip()
	f.spacers = nil
	a := arrangement{padding: geometry.Leading(axis, p.leading)}

	pos := p.leading
	for i, it := range p.items {
		if i > 0 && p.between > 0 {
			sp := newSpacer(axis, p.between)
			sm, err := measure(sp, m.content, viewport, forced{})
			if err != nil {
				return arrangement{}, err
			}
			f.spacers = append(f.spacers, sp)
			a.children = append(a.children, f.slotAt(sp, pos, 0, sm))
			pos += p.between
		}

		it.node.Place(Placement{
			Margin: geometry.Leading(crossAxis, it.offset),
			Width:  it.force.width,
			Height: it.force.height,
		})
		a.children = append(a.children, f.slotAt(it.node, pos, 0, it.m))
		pos += it.m.outer.Main(axis)
	}
	return a, nil
}

func (f *Flex) slotAt(n Node, main, cross int, m measured) slot {
	at := geometry.SizeOn(f.Direction, main, cross)
	return slot{node: n, x: at.Width, y: at.Height, m: m}
}
