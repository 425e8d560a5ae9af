package layout

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Range is an open interval of acceptable lengths along one axis.
// A missing bound means the length is unconstrained in that direction.
// The zero value is fully unconstrained.
type Range struct {
	lower, upper       float32
	hasLower, hasUpper bool
}

// Unbounded returns a Range with neither bound.
func Unbounded() Range {
	return Range{}
}

// AtLeast returns a Range with only a lower bound.
func AtLeast(lower float32) Range {
	return Range{lower: lower, hasLower: true}
}

// AtMost returns a Range with only an upper bound.
func AtMost(upper float32) Range {
	return Range{upper: upper, hasUpper: true}
}

// Between returns a Range with both bounds.
func Between(lower, upper float32) Range {
	return Range{lower: lower, upper: upper, hasLower: true, hasUpper: true}
}

// Exactly returns a Range whose bounds are both n.
func Exactly(n float32) Range {
	return Between(n, n)
}

// Lower returns the lower bound and whether it is present.
func (r Range) Lower() (float32, bool) {
	return r.lower, r.hasLower
}

// Upper returns the upper bound and whether it is present.
func (r Range) Upper() (float32, bool) {
	return r.upper, r.hasUpper
}

// UpperOr returns the upper bound, or fallback when absent.
func (r Range) UpperOr(fallback float32) float32 {
	if r.hasUpper {
		return r.upper
	}
	return fallback
}

// WithoutUpper returns r with its upper bound removed.
func (r Range) WithoutUpper() Range {
	r.upper, r.hasUpper = 0, false
	return r
}

// Clamp restricts v to the range. A missing bound does not restrict.
// If the lower bound exceeds the upper bound, the lower bound wins.
func (r Range) Clamp(v float32) float32 {
	if r.hasUpper && v > r.upper {
		v = r.upper
	}
	if r.hasLower && v < r.lower {
		v = r.lower
	}
	return v
}

// String formats the range as an interval, using "-" for a missing bound.
func (r Range) String() string {
	lo, hi := "-", "-"
	if r.hasLower {
		lo = fmt.Sprintf("%g", r.lower)
	}
	if r.hasUpper {
		hi = fmt.Sprintf("%g", r.upper)
	}
	return "[" + lo + ", " + hi + "]"
}

// Sum combines the ranges of two boxes laid end to end with spacing between
// them. The lower bound is the sum of the present lower bounds plus spacing.
// The upper bound is the sum only when both are present: an unconstrained
// sibling makes the whole run unconstrained.
func Sum(a, b Range, spacing float32) Range {
	var out Range
	switch {
	case a.hasLower && b.hasLower:
		out.lower, out.hasLower = a.lower+b.lower+spacing, true
	case a.hasLower:
		out.lower, out.hasLower = a.lower+spacing, true
	case b.hasLower:
		out.lower, out.hasLower = b.lower+spacing, true
	}
	if a.hasUpper && b.hasUpper {
		out.upper, out.hasUpper = a.upper+b.upper+spacing, true
	}
	return out
}

// AdjacentPriority combines the ranges of two boxes sharing an axis side by
// side, such as the cross axis of a Row. The lower bound is the larger of the
// present lower bounds. The upper bound survives only when both are present,
// since a child that can grow without limit removes any cap.
func AdjacentPriority(a, b Range) Range {
	out := Range{}
	out.lower, out.hasLower = maxPresent(a.lower, a.hasLower, b.lower, b.hasLower)
	if a.hasUpper && b.hasUpper {
		out.upper, out.hasUpper = math32.Max(a.upper, b.upper), true
	}
	return out
}

// EqualPriority combines two sources of constraint on the very same box.
// Both bounds take the larger present value, and a missing bound on one side
// does not erase the other side's bound.
func EqualPriority(a, b Range) Range {
	out := Range{}
	out.lower, out.hasLower = maxPresent(a.lower, a.hasLower, b.lower, b.hasLower)
	out.upper, out.hasUpper = maxPresent(a.upper, a.hasUpper, b.upper, b.hasUpper)
	return out
}

func maxPresent(a float32, hasA bool, b float32, hasB bool) (float32, bool) {
	switch {
	case hasA && hasB:
		return math32.Max(a, b), true
	case hasA:
		return a, true
	case hasB:
		return b, true
	default:
		return 0, false
	}
}
