// Package backer provides a declarative, immediate-mode layout engine that is
// generic over host state.
//
// A view function builds a fresh tree of [Node] values from the host state on
// every pass. The engine measures the tree bottom-up into [Constraints],
// allocates rectangles top-down, and invokes draw callbacks in tree order with
// the rectangle assigned to each leaf. Drawing is delegated to the host: the
// package never renders anything itself.
//
// Subtrees written against a narrower state can be embedded with [Scope] and
// [ScopeOptional], and leaves can animate between layouts with [Transition].
package backer
