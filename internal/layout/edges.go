package layout

// Edges represents insets for the four sides of a box.
// Leading and Trailing are the horizontal start and end edges.
type Edges struct {
	Leading, Trailing, Top, Bottom float32
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return Edges{Leading: n, Trailing: n, Top: n, Bottom: n}
}

// EdgeSymmetric creates Edges with horizontal (leading/trailing) and vertical (top/bottom) values.
func EdgeSymmetric(h, v float32) Edges {
	return Edges{Leading: h, Trailing: h, Top: v, Bottom: v}
}

// Horizontal returns the sum of Leading and Trailing.
func (e Edges) Horizontal() float32 {
	return e.Leading + e.Trailing
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float32 {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e == Edges{}
}
