package backer

import "github.com/ejjonny/backer-sub000/internal/layout"

// measure computes the natural size of n for area without consulting the
// cache.
func (n *Node[S]) measure(p *pass, area Rect, state *S) Constraints {
	switch n.kind {
	case KindPadding:
		return layout.Padded(n.child.constraints(p, area.Inset(n.insets), state), n.insets)
	case KindRow:
		return n.measureSequence(p, Horizontal, area, state)
	case KindColumn:
		return n.measureSequence(p, Vertical, area, state)
	case KindStack:
		return layout.Overlay(n.childConstraints(p, area, state))
	case KindOffset:
		return n.child.constraints(p, area.Translate(n.dx, n.dy), state)
	case KindExplicit:
		return n.measureExplicit(p, area, state)
	case KindScope:
		return n.scope.constraints(p, area, state)
	case KindDraw, KindSpace, KindEmpty:
		return Constraints{}
	default:
		invariant("%s node reached measurement", n.kind)
		return Constraints{}
	}
}

// measureSequence folds the children of a Row or Column, leaving out the
// spacing around children that arrange to no extent.
func (n *Node[S]) measureSequence(p *pass, axis Axis, area Rect, state *S) Constraints {
	available := area.Extent(axis)
	active := make([]bool, len(n.children))
	for i, c := range n.children {
		active[i] = c.slotAlong(axis, available, state).Active(available)
	}
	return layout.Sequence(axis, n.spacing, n.childConstraints(p, area, state), active)
}

func (n *Node[S]) childConstraints(p *pass, area Rect, state *S) []Constraints {
	out := make([]Constraints, len(n.children))
	for i, c := range n.children {
		out[i] = c.constraints(p, area, state)
	}
	return out
}

func (n *Node[S]) measureExplicit(p *pass, area Rect, state *S) Constraints {
	s := n.sizing
	child := n.child.constraints(p, area, state)

	out := Constraints{
		Width:  layout.EqualPriority(child.Width, ownRange(s.Width, s.MinWidth, s.MaxWidth, area.Width)),
		Height: layout.EqualPriority(child.Height, ownRange(s.Height, s.MinHeight, s.MaxHeight, area.Height)),
		Aspect: child.Aspect,

		DynamicWidth:  child.DynamicWidth,
		DynamicHeight: child.DynamicHeight,
	}
	if s.ExpandX {
		out.Width = out.Width.WithoutUpper()
	}
	if s.ExpandY {
		out.Height = out.Height.WithoutUpper()
	}
	if s.Aspect > 0 {
		out.Aspect = s.Aspect
	}
	if fn := s.DynamicWidth; fn != nil {
		out.DynamicWidth = func(height float32) float32 { return fn(height, state) }
	}
	if fn := s.DynamicHeight; fn != nil {
		out.DynamicHeight = func(width float32) float32 { return fn(width, state) }
	}
	return out
}

// ownRange derives the bounds an Explicit node places on one axis. A set
// size pins both bounds to that size clamped into [min, max].
func ownRange(size, lo, hi Value, available float32) Range {
	var bounds Range
	switch {
	case !lo.IsAuto() && !hi.IsAuto():
		bounds = layout.Between(lo.Resolve(available, 0), hi.Resolve(available, 0))
	case !lo.IsAuto():
		bounds = layout.AtLeast(lo.Resolve(available, 0))
	case !hi.IsAuto():
		bounds = layout.AtMost(hi.Resolve(available, 0))
	}
	if size.IsAuto() {
		return bounds
	}
	return layout.Exactly(bounds.Clamp(size.Resolve(available, available)))
}
