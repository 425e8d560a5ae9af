package layout

// Constraints describes the natural size of a subtree as measured for one
// queried rectangle. It is recomputed on demand and never stored in the tree.
type Constraints struct {
	Width  Range
	Height Range

	// Aspect is the preferred width / height ratio, or 0 when none applies.
	Aspect float32

	// DynamicWidth computes a width from a height, and DynamicHeight a height
	// from a width. They are bound to the state of the query that produced
	// them and are nil when the subtree carries no dynamic sizing.
	DynamicWidth  func(height float32) float32
	DynamicHeight func(width float32) float32
}

// Ranges returns the two ranges with aspect and dynamic sizing dropped.
func (c Constraints) Ranges() Constraints {
	return Constraints{Width: c.Width, Height: c.Height}
}

// Sequence folds the constraints of children laid out along axis: the
// primary axis with [Sum], the cross axis with [AdjacentPriority]. Spacing is
// added between consecutive active children only, matching [Distribute];
// a nil active slice marks every child active. Aspect and dynamic sizing do
// not survive.
func Sequence(axis Axis, spacing float32, children []Constraints, active []bool) Constraints {
	var out Constraints
	var seen bool
	for i, c := range children {
		on := active == nil || active[i]
		if i == 0 {
			out = c.Ranges()
			seen = on
			continue
		}
		var gap float32
		if on && seen {
			gap = spacing
		}
		seen = seen || on
		if axis == Horizontal {
			out.Width = Sum(out.Width, c.Width, gap)
			out.Height = AdjacentPriority(out.Height, c.Height)
		} else {
			out.Height = Sum(out.Height, c.Height, gap)
			out.Width = AdjacentPriority(out.Width, c.Width)
		}
	}
	return out
}

// Overlay folds the constraints of stacked children with [AdjacentPriority]
// on both axes.
func Overlay(children []Constraints) Constraints {
	var out Constraints
	for i, c := range children {
		if i == 0 {
			out = c.Ranges()
			continue
		}
		out.Width = AdjacentPriority(out.Width, c.Width)
		out.Height = AdjacentPriority(out.Height, c.Height)
	}
	return out
}

// Padded adds the insets to each axis of c via [Sum] with zero spacing.
// Aspect and dynamic sizing of the child are carried through.
func Padded(c Constraints, insets Edges) Constraints {
	c.Width = Sum(c.Width, Exactly(insets.Horizontal()), 0)
	c.Height = Sum(c.Height, Exactly(insets.Vertical()), 0)
	return c
}
