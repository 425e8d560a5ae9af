package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto     Unit = iota // Not specified; the layout decides
	UnitFixed                // Absolute length
	UnitRelative             // Fraction of the parent's available extent (0.5 = half)
)

// Value represents a length that can be fixed, relative, or left unspecified.
type Value struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Value that leaves the length unspecified.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute length.
func Fixed(n float32) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Relative returns a Value representing a fraction of the available extent.
func Relative(fraction float32) Value {
	return Value{Amount: fraction, Unit: UnitRelative}
}

// Resolve computes the length given the available extent.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback float32) float32 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitRelative:
		return available * v.Amount
	default:
		return fallback
	}
}

// IsAuto returns true if this value is unspecified.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsFixed returns true if this value is an absolute length.
func (v Value) IsFixed() bool {
	return v.Unit == UnitFixed
}
