package backer

import (
	"io"

	"github.com/ejjonny/backer-sub000/internal/layout"
)

// Projector hands a subtree the part of Outer it operates on. Project must
// call fn exactly once with a pointer into outer, not a copy, so that
// mutations made by the subtree are visible in outer afterwards.
type Projector[Outer, Inner any] interface {
	Project(outer *Outer, fn func(inner *Inner))
}

// OptionalProjector is a Projector whose inner state may be absent. It calls
// fn with nil when there is nothing to project.
type OptionalProjector[Outer, Inner any] interface {
	ProjectOptional(outer *Outer, fn func(inner *Inner))
}

// Lens projects through a function returning a pointer into outer, typically
// to one of its fields. It implements both Projector and OptionalProjector.
type Lens[Outer, Inner any] func(outer *Outer) *Inner

// Project calls fn with the inner pointer. It panics if the lens returns nil.
func (l Lens[Outer, Inner]) Project(outer *Outer, fn func(inner *Inner)) {
	inner := l(outer)
	if inner == nil {
		invariant("required projection yielded nil")
	}
	fn(inner)
}

// ProjectOptional calls fn with the inner pointer, which may be nil.
func (l Lens[Outer, Inner]) ProjectOptional(outer *Outer, fn func(inner *Inner)) {
	fn(l(outer))
}

// Project runs fn against the state p projects out of outer and returns its
// result. It panics if p never yields.
func Project[Outer, Inner, R any](p Projector[Outer, Inner], outer *Outer, fn func(inner *Inner) R) R {
	var (
		out    R
		called bool
	)
	p.Project(outer, func(inner *Inner) {
		called = true
		out = fn(inner)
	})
	if !called {
		invariant("required projection never yielded")
	}
	return out
}

// ProjectOptional runs fn against the optional state p projects out of outer.
// fn receives nil when the state is absent.
func ProjectOptional[Outer, Inner, R any](p OptionalProjector[Outer, Inner], outer *Outer, fn func(inner *Inner) R) R {
	var (
		out    R
		called bool
	)
	p.ProjectOptional(outer, func(inner *Inner) {
		called = true
		out = fn(inner)
	})
	if !called {
		out = fn(nil)
	}
	return out
}

// Scope embeds child, written against Inner, in a tree over Outer.
func Scope[Outer, Inner any](p Projector[Outer, Inner], child *Node[Inner]) *Node[Outer] {
	child = resolve(child)
	return ScopeView(p, func(*Inner) *Node[Inner] { return child })
}

// ScopeView embeds a subtree built from the projected state. view runs at
// most once per pass.
func ScopeView[Outer, Inner any](p Projector[Outer, Inner], view func(inner *Inner) *Node[Inner]) *Node[Outer] {
	return &Node[Outer]{kind: KindScope, scope: &scoped[Outer, Inner]{
		project: p.Project,
		tree:    &subtree[Inner]{build: view},
	}}
}

// ScopeOptional embeds child over optional inner state. When the state is
// absent the subtree takes no space and draws nothing.
func ScopeOptional[Outer, Inner any](p OptionalProjector[Outer, Inner], child *Node[Inner]) *Node[Outer] {
	child = resolve(child)
	return ScopeOptionalView(p, func(*Inner) *Node[Inner] { return child })
}

// ScopeOptionalView is ScopeView over optional inner state.
func ScopeOptionalView[Outer, Inner any](p OptionalProjector[Outer, Inner], view func(inner *Inner) *Node[Inner]) *Node[Outer] {
	return &Node[Outer]{kind: KindScope, scope: &scoped[Outer, Inner]{
		project:  p.ProjectOptional,
		optional: true,
		tree:     &subtree[Inner]{build: view},
	}}
}

// scopeBody erases the inner state type of a scope so Node[Outer] can hold
// it.
type scopeBody[S any] interface {
	slotAlong(axis Axis, available float32, state *S) layout.Slot
	constraints(p *pass, area Rect, state *S) Constraints
	place(p *pass, area Rect, state *S, inherited Align)
	draw(p *pass, state *S)
	fprint(w io.Writer, depth int)
}

// subtree holds an inner tree built on demand. Scopes rebuild theirs every
// pass; a Lazy keeps its subtree across passes.
type subtree[S any] struct {
	build func(state *S) *Node[S]
	node  *Node[S]
}

func (t *subtree[S]) get(state *S) *Node[S] {
	if t.node == nil {
		t.node = resolve(t.build(state))
	}
	return t.node
}

type scoped[Outer, Inner any] struct {
	project  func(outer *Outer, fn func(inner *Inner))
	optional bool
	tree     *subtree[Inner]
}

// with projects outer and calls fn with the inner state and subtree. It
// reports false when optional inner state is absent.
func (s *scoped[Outer, Inner]) with(outer *Outer, fn func(inner *Inner, tree *Node[Inner])) bool {
	var found, called bool
	s.project(outer, func(inner *Inner) {
		called = true
		if inner == nil {
			if !s.optional {
				invariant("required projection yielded nil")
			}
			return
		}
		found = true
		fn(inner, s.tree.get(inner))
	})
	if !called && !s.optional {
		invariant("required projection never yielded")
	}
	return found
}

// slotAlong delegates to the root of the inner tree. Absent optional state
// collapses out of the run.
func (s *scoped[Outer, Inner]) slotAlong(axis Axis, available float32, outer *Outer) layout.Slot {
	slot := layout.CollapsedSlot()
	s.with(outer, func(inner *Inner, tree *Node[Inner]) {
		slot = tree.slotAlong(axis, available, inner)
	})
	return slot
}

func (s *scoped[Outer, Inner]) constraints(p *pass, area Rect, outer *Outer) Constraints {
	var c Constraints
	if !s.with(outer, func(inner *Inner, tree *Node[Inner]) {
		c = tree.constraints(p, area, inner)
	}) {
		return Constraints{Width: Exactly(0), Height: Exactly(0)}
	}
	return c
}

func (s *scoped[Outer, Inner]) place(p *pass, area Rect, outer *Outer, inherited Align) {
	s.with(outer, func(inner *Inner, tree *Node[Inner]) {
		tree.place(p, area, inner, inherited)
	})
}

func (s *scoped[Outer, Inner]) draw(p *pass, outer *Outer) {
	s.with(outer, func(inner *Inner, tree *Node[Inner]) {
		tree.drawTree(p, inner)
	})
}

func (s *scoped[Outer, Inner]) fprint(w io.Writer, depth int) {
	if s.tree.node == nil {
		return
	}
	fprintNode(w, s.tree.node, depth)
}
