package backer

import (
	"github.com/chewxy/math32"

	"github.com/ejjonny/backer-sub000/internal/layout"
)

// layout assigns rectangles to n and its descendants, starting from area.
func (n *Node[S]) layout(p *pass, area Rect, state *S) {
	n.place(p, area, state, AlignUnset)
}

// place assigns area to n. inherited is the default alignment passed down
// from an enclosing Row or Column; it flows through padding, offsets and
// scopes and is consumed by the first Explicit node. A node holds a single
// rectangle, so placing the same node twice in one pass panics.
func (n *Node[S]) place(p *pass, area Rect, state *S, inherited Align) {
	if n.placedGen == p.gen {
		invariant("node placed twice in one pass")
	}
	n.placedGen = p.gen
	n.rect = area
	switch n.kind {
	case KindPadding:
		n.child.place(p, area.Inset(n.insets), state, inherited)
	case KindOffset:
		n.child.place(p, area.Translate(n.dx, n.dy), state, inherited)
	case KindStack:
		for _, c := range n.children {
			c.place(p, area, state, AlignUnset)
		}
	case KindRow:
		n.arrange(p, Horizontal, area, state)
	case KindColumn:
		n.arrange(p, Vertical, area, state)
	case KindExplicit:
		n.placeExplicit(p, area, state, inherited)
	case KindScope:
		n.scope.place(p, area, state, inherited)
	case KindDraw, KindSpace, KindEmpty:
	default:
		invariant("%s node reached layout", n.kind)
	}
}

// arrange distributes area along axis among the children of a Row or Column.
func (n *Node[S]) arrange(p *pass, axis Axis, area Rect, state *S) {
	if len(n.children) == 0 {
		return
	}
	slots := make([]layout.Slot, len(n.children))
	for i, c := range n.children {
		slots[i] = c.slotAlong(axis, area.Extent(axis), state)
	}
	spans := layout.Distribute(axis, n.align, area.Extent(axis), n.spacing, slots)

	inherit := crossAlign(axis, n.align)
	for i, c := range n.children {
		r := area
		if axis == Horizontal {
			r.X = area.X + spans[i].Offset
			r.Width = spans[i].Extent
		} else {
			r.Y = area.Y + spans[i].Offset
			r.Height = spans[i].Extent
		}
		c.place(p, r, state, inherit)
	}
}

// slotAlong reports whether n claims a fixed extent along axis. An Explicit
// node with an absolute size on that axis is fixed, and so is an optional
// scope whose inner state is absent. Other scopes defer to their subtree.
func (n *Node[S]) slotAlong(axis Axis, available float32, state *S) layout.Slot {
	switch n.kind {
	case KindExplicit:
		size := n.sizing.Width
		if axis == Vertical {
			size = n.sizing.Height
		}
		if size.IsFixed() {
			return layout.FixedSlot(size.Amount)
		}
	case KindScope:
		return n.scope.slotAlong(axis, available, state)
	case KindGroup, KindConditional:
		invariant("%s node reached layout", n.kind)
	}
	return layout.FlexibleSlot()
}

// crossAlign keeps only the component of a that applies across axis.
func crossAlign(axis Axis, a Align) Align {
	if axis == Horizontal {
		if y, ok := a.Y(); ok {
			return NewAlign(layout.XUnset, y)
		}
		return AlignUnset
	}
	if x, ok := a.X(); ok {
		return NewAlign(x, layout.YUnset)
	}
	return AlignUnset
}

// placeExplicit sizes and aligns the box of an Explicit node inside area and
// lays out its child in that box.
func (n *Node[S]) placeExplicit(p *pass, area Rect, state *S, inherited Align) {
	s := n.sizing
	c := n.constraints(p, area, state)

	w := s.Width.Resolve(area.Width, area.Width)
	h := s.Height.Resolve(area.Height, area.Height)

	if s.Aspect > 0 {
		switch {
		case !s.Width.IsAuto() && s.Height.IsAuto():
			h = w / s.Aspect
		case s.Width.IsAuto() && !s.Height.IsAuto():
			w = h * s.Aspect
		case s.Width.IsAuto() && s.Height.IsAuto():
			if w > h*s.Aspect {
				w = h * s.Aspect
			} else {
				h = w / s.Aspect
			}
		}
	}
	if s.Height.IsAuto() && c.DynamicHeight != nil {
		h = c.DynamicHeight(w)
	}
	if s.Width.IsAuto() && c.DynamicWidth != nil {
		w = c.DynamicWidth(h)
	}

	w = clampAxis(w, s.Width, s.MinWidth, s.MaxWidth, c.Width, area.Width, s.ExpandX)
	h = clampAxis(h, s.Height, s.MinHeight, s.MaxHeight, c.Height, area.Height, s.ExpandY)

	align := s.Align.Or(inherited)
	box := Rect{
		X:      math32.Max(align.Offset(Horizontal, area.X, area.Width, w), area.X),
		Y:      math32.Max(align.Offset(Vertical, area.Y, area.Height, h), area.Y),
		Width:  w,
		Height: h,
	}
	n.rect = box
	n.child.place(p, box, state, AlignUnset)
}

// clampAxis bounds a candidate extent. A set size is bounded by the node's own
// min and max only; an unset size is also bounded by the natural size of the
// child so the box wraps its content.
func clampAxis(v float32, size, lo, hi Value, natural Range, available float32, expand bool) float32 {
	if !size.IsAuto() {
		natural = ownRange(Auto(), lo, hi, available)
	}
	return clampExtent(v, natural, available, expand)
}

// clampExtent bounds v to r. A missing upper bound falls back to the
// available extent; expanding takes the available extent outright. A missing
// lower bound does not restrict, so negative extents propagate.
func clampExtent(v float32, r Range, available float32, expand bool) float32 {
	upper := r.UpperOr(available)
	if expand {
		v, upper = available, available
	}
	if v > upper {
		v = upper
	}
	if lower, ok := r.Lower(); ok && v < lower {
		v = lower
	}
	return v
}
