// layout.go re-exports geometry and measurement types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package backer

import "github.com/ejjonny/backer-sub000/internal/layout"

// Rect represents an axis-aligned rectangle (x, y, width, height).
type Rect = layout.Rect

// Edges represents insets on four sides (leading, trailing, top, bottom).
type Edges = layout.Edges

// Axis selects the horizontal or vertical dimension.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// XAlign positions a box horizontally.
type XAlign = layout.XAlign

const (
	XLeading  = layout.XLeading
	XCenter   = layout.XCenter
	XTrailing = layout.XTrailing
)

// YAlign positions a box vertically.
type YAlign = layout.YAlign

const (
	YTop    = layout.YTop
	YCenter = layout.YCenter
	YBottom = layout.YBottom
)

// Align combines an optional X and an optional Y alignment.
type Align = layout.Align

const (
	AlignUnset     = layout.AlignUnset
	Leading        = layout.Leading
	CenterX        = layout.CenterX
	Trailing       = layout.Trailing
	Top            = layout.Top
	CenterY        = layout.CenterY
	Bottom         = layout.Bottom
	TopLeading     = layout.TopLeading
	TopCenter      = layout.TopCenter
	TopTrailing    = layout.TopTrailing
	CenterLeading  = layout.CenterLeading
	CenterCenter   = layout.CenterCenter
	CenterTrailing = layout.CenterTrailing
	BottomLeading  = layout.BottomLeading
	BottomCenter   = layout.BottomCenter
	BottomTrailing = layout.BottomTrailing
)

// Value represents a length that is fixed, relative to the parent, or unset.
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto     = layout.UnitAuto
	UnitFixed    = layout.UnitFixed
	UnitRelative = layout.UnitRelative
)

// Range is an open interval of acceptable lengths along one axis.
type Range = layout.Range

// Constraints is the measured natural size of a subtree.
type Constraints = layout.Constraints

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewAlign combines an X and a Y alignment.
func NewAlign(x XAlign, y YAlign) Align {
	return layout.NewAlign(x, y)
}

// ParseAlign resolves an alignment name such as "top-leading".
func ParseAlign(name string) (Align, error) {
	return layout.ParseAlign(name)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with horizontal and vertical values.
func EdgeSymmetric(h, v float32) Edges {
	return layout.EdgeSymmetric(h, v)
}

// Fixed creates a Value with an absolute length.
func Fixed(n float32) Value {
	return layout.Fixed(n)
}

// Relative creates a Value that is a fraction of the available extent.
func Relative(fraction float32) Value {
	return layout.Relative(fraction)
}

// Auto creates an unset Value.
func Auto() Value {
	return layout.Auto()
}

// Unbounded returns a Range with neither bound.
func Unbounded() Range { return layout.Unbounded() }

// AtLeast returns a Range with only a lower bound.
func AtLeast(lower float32) Range { return layout.AtLeast(lower) }

// AtMost returns a Range with only an upper bound.
func AtMost(upper float32) Range { return layout.AtMost(upper) }

// Between returns a Range with both bounds.
func Between(lower, upper float32) Range { return layout.Between(lower, upper) }

// Exactly returns a Range whose bounds are both n.
func Exactly(n float32) Range { return layout.Exactly(n) }
