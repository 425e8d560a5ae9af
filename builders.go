package backer

// Row lays out children left to right.
func Row[S any](children ...*Node[S]) *Node[S] {
	return RowSpaced(0, children...)
}

// RowSpaced lays out children left to right with spacing between visible
// neighbours.
func RowSpaced[S any](spacing float32, children ...*Node[S]) *Node[S] {
	return &Node[S]{kind: KindRow, spacing: spacing, children: flatten(nil, children)}
}

// Column lays out children top to bottom.
func Column[S any](children ...*Node[S]) *Node[S] {
	return ColumnSpaced(0, children...)
}

// ColumnSpaced lays out children top to bottom with spacing between visible
// neighbours.
func ColumnSpaced[S any](spacing float32, children ...*Node[S]) *Node[S] {
	return &Node[S]{kind: KindColumn, spacing: spacing, children: flatten(nil, children)}
}

// Stack overlays children, giving each the full rectangle. Later children
// draw on top.
func Stack[S any](children ...*Node[S]) *Node[S] {
	return &Node[S]{kind: KindStack, children: flatten(nil, children)}
}

// Group splices children into the enclosing container. A Group is only valid
// as a container child.
func Group[S any](children ...*Node[S]) *Node[S] {
	return &Node[S]{kind: KindGroup, children: flatten(nil, children)}
}

// Draw creates a leaf that calls fn with its assigned rectangle.
func Draw[S any](fn DrawFunc[S]) *Node[S] {
	if fn == nil {
		invariant("draw callback is nil")
	}
	return &Node[S]{kind: KindDraw, draw: fn}
}

// Space creates a flexible filler that takes a share of the leftover extent
// and draws nothing.
func Space[S any]() *Node[S] {
	return &Node[S]{kind: KindSpace}
}

// Empty creates a node that occupies no fixed space and draws nothing.
func Empty[S any]() *Node[S] {
	return &Node[S]{kind: KindEmpty}
}

// If includes n only when cond holds. Containers drop a false conditional
// entirely; in a single-child position it becomes Empty.
func If[S any](cond bool, n *Node[S]) *Node[S] {
	return &Node[S]{kind: KindConditional, cond: cond, child: n}
}

// Explicit wraps child with sizing options.
func Explicit[S any](sizing Sizing[S], child *Node[S]) *Node[S] {
	return &Node[S]{kind: KindExplicit, sizing: &sizing, child: resolve(child)}
}
