package layout

import "fmt"

// XAlign positions a box horizontally within a wider space.
type XAlign uint8

const (
	XUnset    XAlign = iota // No horizontal preference
	XLeading                // Align to the leading edge
	XCenter                 // Center horizontally
	XTrailing               // Align to the trailing edge
)

// YAlign positions a box vertically within a taller space.
type YAlign uint8

const (
	YUnset  YAlign = iota // No vertical preference
	YTop                  // Align to the top edge
	YCenter               // Center vertically
	YBottom               // Align to the bottom edge
)

// Align packs an optional X alignment and an optional Y alignment.
// The zero value carries neither. Use the named combinations below.
type Align uint8

// Named alignments. Single-axis values leave the other axis unset so they can
// be merged with an alignment for the other axis.
const (
	AlignUnset Align = 0

	Leading  = Align(XLeading)
	CenterX  = Align(XCenter)
	Trailing = Align(XTrailing)

	Top     = Align(YTop) << 2
	CenterY = Align(YCenter) << 2
	Bottom  = Align(YBottom) << 2

	TopLeading     = Top | Leading
	TopCenter      = Top | CenterX
	TopTrailing    = Top | Trailing
	CenterLeading  = CenterY | Leading
	CenterCenter   = CenterY | CenterX
	CenterTrailing = CenterY | Trailing
	BottomLeading  = Bottom | Leading
	BottomCenter   = Bottom | CenterX
	BottomTrailing = Bottom | Trailing
)

// NewAlign combines an X and a Y alignment.
func NewAlign(x XAlign, y YAlign) Align {
	return Align(x&3) | Align(y&3)<<2
}

// X returns the horizontal component and whether it is set.
func (a Align) X() (XAlign, bool) {
	x := XAlign(a & 3)
	return x, x != XUnset
}

// Y returns the vertical component and whether it is set.
func (a Align) Y() (YAlign, bool) {
	y := YAlign(a>>2) & 3
	return y, y != YUnset
}

// Merge returns a with every axis that other sets replaced by other's value.
func (a Align) Merge(other Align) Align {
	if x, ok := other.X(); ok {
		a = a&^3 | Align(x)
	}
	if y, ok := other.Y(); ok {
		a = a&^(3<<2) | Align(y)<<2
	}
	return a
}

// Or fills the axes a leaves unset from fallback.
func (a Align) Or(fallback Align) Align {
	return fallback.Merge(a)
}

// Offset returns the position of a box of the given extent inside the space
// [origin, origin+available) along the given axis.
// Unset components behave as center.
func (a Align) Offset(axis Axis, origin, available, extent float32) float32 {
	var start, end bool
	if axis == Horizontal {
		x, _ := a.X()
		start, end = x == XLeading, x == XTrailing
	} else {
		y, _ := a.Y()
		start, end = y == YTop, y == YBottom
	}
	switch {
	case start:
		return origin
	case end:
		return origin + (available - extent)
	default:
		return origin + available/2 - extent/2
	}
}

var alignNames = map[Align]string{
	AlignUnset:     "unset",
	Leading:        "leading",
	CenterX:        "center-x",
	Trailing:       "trailing",
	Top:            "top",
	CenterY:        "center-y",
	Bottom:         "bottom",
	TopLeading:     "top-leading",
	TopCenter:      "top-center",
	TopTrailing:    "top-trailing",
	CenterLeading:  "center-leading",
	CenterCenter:   "center",
	CenterTrailing: "center-trailing",
	BottomLeading:  "bottom-leading",
	BottomCenter:   "bottom-center",
	BottomTrailing: "bottom-trailing",
}

// String returns the kebab-case name of the alignment.
func (a Align) String() string {
	if name, ok := alignNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Align(%d)", uint8(a))
}

// ParseAlign resolves a name produced by [Align.String].
func ParseAlign(name string) (Align, error) {
	for a, n := range alignNames {
		if n == name {
			return a, nil
		}
	}
	return AlignUnset, fmt.Errorf("unknown alignment %q", name)
}
