package layout

import (
	"github.com/matzehuels/cellkit/pkg/geometry"
)

// measured is one node sized inside one container.
type measured struct {
	container geometry.Size // Container handed to the size queries
	content   geometry.Size
	outer     geometry.Size // Content plus padding and margin
}

// border returns the size of the box inside the margin.
func (m measured) border(n Node) geometry.Size {
	mg := n.node().margin()
	return geometry.Size{
		Width:  max(0, m.outer.Width-mg.Horizontal()),
		Height: max(0, m.outer.Height-mg.Vertical()),
	}
}

// forced holds box extents a parent imposes on a child. They win over the
// child's own Box extents.
type forced struct {
	width, height geometry.Dimension
}

func (f forced) with(axis geometry.Axis, d geometry.Dimension) forced {
	if axis == geometry.Horizontal {
		f.width = d
	} else {
		f.height = d
	}
	return f
}

func boxExtent(force, own geometry.Dimension) (int, bool) {
	if force.Fixed {
		return force.Cells, true
	}
	if own.Fixed {
		return own.Cells, true
	}
	return 0, false
}

// measureWidth runs the width query for n inside container.
func measureWidth(n Node, container, viewport geometry.Size, f forced) (measured, error) {
	b := n.node().Box
	edges := b.Margin.Add(b.Padding)
	cc := geometry.Size{
		Width:  max(0, container.Width-edges.Horizontal()),
		Height: max(0, container.Height-edges.Vertical()),
	}
	fw, fixedW := boxExtent(f.width, b.Width)
	if fixedW {
		cc.Width = max(0, fw-b.Padding.Horizontal())
	}
	if fh, fixedH := boxExtent(f.height, b.Height); fixedH {
		cc.Height = max(0, fh-b.Padding.Vertical())
	}

	w, err := n.ContentWidth(cc, viewport)
	if err != nil {
		return measured{}, err
	}
	if fixedW {
		w = cc.Width
	}
	return measured{
		container: cc,
		content:   geometry.Size{Width: w},
		outer:     geometry.Size{Width: w + edges.Horizontal()},
	}, nil
}

// measureHeight completes m with the height query. It must follow the
// measureWidth call that produced m.
func measureHeight(n Node, m measured, viewport geometry.Size, f forced) (measured, error) {
	b := n.node().Box
	h, err := n.ContentHeight(m.container, viewport, m.content.Width)
	if err != nil {
		return measured{}, err
	}
	if _, fixed := boxExtent(f.height, b.Height); fixed {
		h = m.container.Height
	}
	m.content.Height = h
	m.outer.Height = h + b.Margin.Vertical() + b.Padding.Vertical()
	return m, nil
}

func measure(n Node, container, viewport geometry.Size, f forced) (measured, error) {
	m, err := measureWidth(n, container, viewport, f)
	if err != nil {
		return measured{}, err
	}
	return measureHeight(n, m, viewport, f)
}
