package layout

import "github.com/chewxy/math32"

// Slot describes one child of a Row or Column along the primary axis.
// A fixed slot has a predetermined extent; every other slot is flexible and
// receives an even share of whatever extent is left over.
type Slot struct {
	Fixed  bool
	Extent float32

	// Collapsed slots claim no extent and no spacing whatever is available.
	Collapsed bool
}

// FixedSlot returns a slot with a predetermined extent.
func FixedSlot(extent float32) Slot {
	return Slot{Fixed: true, Extent: extent}
}

// CollapsedSlot returns a slot that takes no part in the run.
func CollapsedSlot() Slot {
	return Slot{Fixed: true, Collapsed: true}
}

// FlexibleSlot returns a slot that shares the leftover extent.
func FlexibleSlot() Slot {
	return Slot{}
}

// claim returns the extent a fixed slot takes out of available.
func (s Slot) claim(available float32) float32 {
	if s.Collapsed {
		return 0
	}
	return math32.Min(s.Extent, available)
}

// Active reports whether the slot is separated from other active slots by
// spacing when arranged in available.
func (s Slot) Active(available float32) bool {
	return !s.Fixed || s.claim(available) != 0
}

// Span is the resolved position and extent of a slot, relative to the start
// of the container along the primary axis.
type Span struct {
	Offset float32
	Extent float32
}

// Distribute divides available among slots separated by spacing.
//
// Fixed extents are clamped to available; a negative available extent makes
// them negative too. Only active slots (flexible, or
// fixed with a non-zero extent) are separated by spacing. The remainder after
// spacing and fixed extents is divided evenly among flexible slots; with no
// flexible slots nothing is distributed, and a positive remainder instead
// offsets the whole run according to the primary-axis component of align
// (leading when unset). The cursor advances past a slot only when its extent
// is non-zero, so a collapsed slot adds no spacing before the next sibling.
// The remainder may be negative; shares are then negative and are not clamped.
func Distribute(axis Axis, align Align, available, spacing float32, slots []Slot) []Span {
	if len(slots) == 0 {
		return nil
	}

	extents := make([]float32, len(slots))
	active := 0
	flexible := 0
	var fixedTotal float32
	for i, s := range slots {
		if s.Active(available) {
			active++
		}
		if !s.Fixed {
			flexible++
			continue
		}
		e := s.claim(available)
		extents[i] = e
		fixedTotal += e
	}

	totalSpacing := spacing * float32(max(active-1, 0))
	remaining := available - totalSpacing - fixedTotal

	var cursor float32
	if flexible > 0 {
		share := remaining / float32(flexible)
		for i, s := range slots {
			if !s.Fixed {
				extents[i] = share
			}
		}
	} else if remaining > 0 {
		cursor = runOffset(axis, align, remaining)
	}

	spans := make([]Span, len(slots))
	for i, e := range extents {
		spans[i] = Span{Offset: cursor, Extent: e}
		if e != 0 {
			cursor += e + spacing
		}
	}
	return spans
}

// runOffset positions a packed run within free space. Containers default to
// the leading edge rather than the center.
func runOffset(axis Axis, align Align, free float32) float32 {
	var start, end bool
	if axis == Horizontal {
		x, ok := align.X()
		if !ok {
			return 0
		}
		start, end = x == XLeading, x == XTrailing
	} else {
		y, ok := align.Y()
		if !ok {
			return 0
		}
		start, end = y == YTop, y == YBottom
	}
	switch {
	case start:
		return 0
	case end:
		return free
	default:
		return free / 2
	}
}
