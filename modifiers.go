package backer

// --- Sizing modifiers ---
//
// Sizing modifiers update the options of n when n is already an Explicit node
// and wrap it in one otherwise.

func (n *Node[S]) sized(fn func(s *Sizing[S])) *Node[S] {
	if n.kind == KindExplicit {
		fn(n.sizing)
		return n
	}
	e := &Node[S]{kind: KindExplicit, sizing: &Sizing[S]{}, child: resolve(n)}
	fn(e.sizing)
	return e
}

// Width sets an absolute width.
func (n *Node[S]) Width(w float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.Width = Fixed(w) })
}

// Height sets an absolute height.
func (n *Node[S]) Height(h float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.Height = Fixed(h) })
}

// Size sets an absolute width and height.
func (n *Node[S]) Size(w, h float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) {
		s.Width = Fixed(w)
		s.Height = Fixed(h)
	})
}

// RelWidth sets the width to a fraction of the available width.
func (n *Node[S]) RelWidth(fraction float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.Width = Relative(fraction) })
}

// RelHeight sets the height to a fraction of the available height.
func (n *Node[S]) RelHeight(fraction float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.Height = Relative(fraction) })
}

// MinWidth sets a lower bound on the width.
func (n *Node[S]) MinWidth(w float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.MinWidth = Fixed(w) })
}

// MaxWidth sets an upper bound on the width.
func (n *Node[S]) MaxWidth(w float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.MaxWidth = Fixed(w) })
}

// MinHeight sets a lower bound on the height.
func (n *Node[S]) MinHeight(h float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.MinHeight = Fixed(h) })
}

// MaxHeight sets an upper bound on the height.
func (n *Node[S]) MaxHeight(h float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.MaxHeight = Fixed(h) })
}

// WidthRange bounds the width to [lower, upper].
func (n *Node[S]) WidthRange(lower, upper float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) {
		s.MinWidth = Fixed(lower)
		s.MaxWidth = Fixed(upper)
	})
}

// HeightRange bounds the height to [lower, upper].
func (n *Node[S]) HeightRange(lower, upper float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) {
		s.MinHeight = Fixed(lower)
		s.MaxHeight = Fixed(upper)
	})
}

// Aspect fixes the width / height ratio of the box. The ratio must be
// positive.
func (n *Node[S]) Aspect(ratio float32) *Node[S] {
	if !(ratio > 0) {
		invariant("aspect ratio must be positive, got %v", ratio)
	}
	return n.sized(func(s *Sizing[S]) { s.Aspect = ratio })
}

// Align positions the box inside the space offered to it. On a Row or Column
// it sets the container alignment instead. A single-axis value merges with
// the alignment already set on the other axis.
func (n *Node[S]) Align(a Align) *Node[S] {
	if n.kind == KindRow || n.kind == KindColumn {
		n.align = n.align.Merge(a)
		return n
	}
	return n.sized(func(s *Sizing[S]) { s.Align = s.Align.Merge(a) })
}

// ExpandX makes the box take the full available width.
func (n *Node[S]) ExpandX() *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.ExpandX = true })
}

// ExpandY makes the box take the full available height.
func (n *Node[S]) ExpandY() *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.ExpandY = true })
}

// Expand makes the box take the full available rectangle.
func (n *Node[S]) Expand() *Node[S] {
	return n.sized(func(s *Sizing[S]) {
		s.ExpandX = true
		s.ExpandY = true
	})
}

// DynamicWidth computes the width from the laid out height.
func (n *Node[S]) DynamicWidth(fn func(height float32, state *S) float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.DynamicWidth = fn })
}

// DynamicHeight computes the height from the laid out width.
func (n *Node[S]) DynamicHeight(fn func(width float32, state *S) float32) *Node[S] {
	return n.sized(func(s *Sizing[S]) { s.DynamicHeight = fn })
}

// --- Padding and offset modifiers ---
//
// These always add a new outermost wrapper.

// PadEdges insets n by e.
func (n *Node[S]) PadEdges(e Edges) *Node[S] {
	return &Node[S]{kind: KindPadding, insets: e, child: resolve(n)}
}

// Pad insets n by amount on every side.
func (n *Node[S]) Pad(amount float32) *Node[S] {
	return n.PadEdges(EdgeAll(amount))
}

// PadX insets n by amount on the leading and trailing sides.
func (n *Node[S]) PadX(amount float32) *Node[S] {
	return n.PadEdges(Edges{Leading: amount, Trailing: amount})
}

// PadY insets n by amount on the top and bottom.
func (n *Node[S]) PadY(amount float32) *Node[S] {
	return n.PadEdges(Edges{Top: amount, Bottom: amount})
}

// PadLeading insets n on the leading side.
func (n *Node[S]) PadLeading(amount float32) *Node[S] {
	return n.PadEdges(Edges{Leading: amount})
}

// PadTrailing insets n on the trailing side.
func (n *Node[S]) PadTrailing(amount float32) *Node[S] {
	return n.PadEdges(Edges{Trailing: amount})
}

// PadTop insets n on the top.
func (n *Node[S]) PadTop(amount float32) *Node[S] {
	return n.PadEdges(Edges{Top: amount})
}

// PadBottom insets n on the bottom.
func (n *Node[S]) PadBottom(amount float32) *Node[S] {
	return n.PadEdges(Edges{Bottom: amount})
}

// Offset translates the rectangle of n by (dx, dy) without affecting the
// space n occupies.
func (n *Node[S]) Offset(dx, dy float32) *Node[S] {
	return &Node[S]{kind: KindOffset, dx: dx, dy: dy, child: resolve(n)}
}

// OffsetX translates n horizontally.
func (n *Node[S]) OffsetX(dx float32) *Node[S] {
	return n.Offset(dx, 0)
}

// OffsetY translates n vertically.
func (n *Node[S]) OffsetY(dy float32) *Node[S] {
	return n.Offset(0, dy)
}
