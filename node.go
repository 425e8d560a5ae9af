package backer

import "fmt"

// Kind identifies the variant of a Node.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindPadding
	KindColumn
	KindRow
	KindStack
	KindGroup
	KindOffset
	KindDraw
	KindExplicit
	KindConditional
	KindSpace
	KindScope
)

var kindNames = [...]string{
	KindEmpty:       "empty",
	KindPadding:     "padding",
	KindColumn:      "column",
	KindRow:         "row",
	KindStack:       "stack",
	KindGroup:       "group",
	KindOffset:      "offset",
	KindDraw:        "draw",
	KindExplicit:    "explicit",
	KindConditional: "conditional",
	KindSpace:       "space",
	KindScope:       "scope",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// DrawFunc renders a leaf into the rectangle assigned to it. It may mutate
// state freely.
type DrawFunc[S any] func(area Rect, state *S)

// Sizing holds the options of an Explicit node.
type Sizing[S any] struct {
	Width     Value
	Height    Value
	MinWidth  Value
	MaxWidth  Value
	MinHeight Value
	MaxHeight Value

	// Aspect is the width / height ratio, or 0 when unset.
	Aspect float32

	// Align overrides the alignment inherited from the parent container.
	Align Align

	DynamicWidth  func(height float32, state *S) float32
	DynamicHeight func(width float32, state *S) float32

	ExpandX bool
	ExpandY bool
}

// Node is one element of a layout tree. Trees are built with the builder
// functions and modifier methods of this package and discarded after a pass.
type Node[S any] struct {
	kind Kind

	// Row, Column, Stack, Group
	children []*Node[S]
	spacing  float32
	align    Align

	// Padding, Offset, Explicit, Conditional
	child  *Node[S]
	insets Edges
	dx, dy float32
	sizing *Sizing[S]
	cond   bool

	draw  DrawFunc[S]
	leaf  func(p *pass, area Rect, state *S)
	scope scopeBody[S]

	// Set during a pass.
	rect      Rect
	placedGen uint64
	slotGen   uint64
	slotIndex int
}

// Kind returns the variant of n.
func (n *Node[S]) Kind() Kind {
	return n.kind
}

// Rect returns the rectangle assigned to n by the most recent layout.
func (n *Node[S]) Rect() Rect {
	return n.rect
}

// Children returns the children of a Row, Column, Stack or Group.
func (n *Node[S]) Children() []*Node[S] {
	return n.children
}

// Child returns the wrapped child of a Padding, Offset, Explicit or
// Conditional node, or nil.
func (n *Node[S]) Child() *Node[S] {
	return n.child
}

// Sizing returns a copy of the options of an Explicit node.
func (n *Node[S]) Sizing() (Sizing[S], bool) {
	if n.kind != KindExplicit {
		return Sizing[S]{}, false
	}
	return *n.sizing, true
}

func invariant(format string, args ...any) {
	panic(fmt.Sprintf("backer: "+format, args...))
}

// resolve prepares n for a single-child position: a conditional becomes its
// child or Empty, nil becomes Empty, and a Group is rejected.
func resolve[S any](n *Node[S]) *Node[S] {
	for {
		switch {
		case n == nil:
			return &Node[S]{kind: KindEmpty}
		case n.kind == KindConditional:
			if !n.cond {
				return &Node[S]{kind: KindEmpty}
			}
			n = n.child
		case n.kind == KindGroup:
			invariant("group can only appear as a child of a container")
		default:
			return n
		}
	}
}

// flatten appends nodes to dst, dropping false conditionals, splicing true
// ones and groups in place.
func flatten[S any](dst []*Node[S], nodes []*Node[S]) []*Node[S] {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		switch n.kind {
		case KindGroup:
			dst = flatten(dst, n.children)
		case KindConditional:
			if n.cond {
				dst = flatten(dst, []*Node[S]{n.child})
			}
		default:
			dst = append(dst, n)
		}
	}
	return dst
}
