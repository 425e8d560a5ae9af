package backer

// Lazy is a scoped subtree that survives across passes. The subtree is built
// from the inner state the first time it is needed and reused afterwards,
// including any changes made to it during a pass, until Reset is called.
type Lazy[Outer, Inner any] struct {
	project  func(outer *Outer, fn func(inner *Inner))
	optional bool
	tree     subtree[Inner]
}

// NewLazy creates a Lazy subtree over required inner state.
func NewLazy[Outer, Inner any](p Projector[Outer, Inner], build func(inner *Inner) *Node[Inner]) *Lazy[Outer, Inner] {
	if build == nil {
		invariant("lazy build function is nil")
	}
	return &Lazy[Outer, Inner]{project: p.Project, tree: subtree[Inner]{build: build}}
}

// NewLazyOptional creates a Lazy subtree over optional inner state.
func NewLazyOptional[Outer, Inner any](p OptionalProjector[Outer, Inner], build func(inner *Inner) *Node[Inner]) *Lazy[Outer, Inner] {
	if build == nil {
		invariant("lazy build function is nil")
	}
	return &Lazy[Outer, Inner]{project: p.ProjectOptional, optional: true, tree: subtree[Inner]{build: build}}
}

// Node returns a scope node that lays out and draws the stored subtree.
func (l *Lazy[Outer, Inner]) Node() *Node[Outer] {
	return &Node[Outer]{kind: KindScope, scope: &scoped[Outer, Inner]{
		project:  l.project,
		optional: l.optional,
		tree:     &l.tree,
	}}
}

// Reset drops the stored subtree so the next pass rebuilds it.
func (l *Lazy[Outer, Inner]) Reset() {
	l.tree.node = nil
}

// Built reports whether a subtree is currently stored.
func (l *Lazy[Outer, Inner]) Built() bool {
	return l.tree.node != nil
}
