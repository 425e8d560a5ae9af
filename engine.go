package backer

import (
	"fmt"
	"sync/atomic"

	"github.com/ejjonny/backer-sub000/internal/debug"
)

// ViewFunc builds the layout tree for the current state. It is called once
// per pass.
type ViewFunc[S any] func(state *S) *Node[S]

// generation numbers passes across all engines so that nodes kept between
// passes, such as Lazy subtrees, never match a stale cache slot.
var generation atomic.Uint64

// Engine runs layout passes of a view over host state.
type Engine[S any] struct {
	view  ViewFunc[S]
	cfg   config
	cache constraintCache
	last  PassStats
}

// PassStats summarizes the most recent pass of an Engine.
type PassStats struct {
	Generation uint64
	// Slots is the number of nodes measured through the cache.
	Slots   int
	Hits    int
	Misses  int
	Drawn   int
	Skipped int
	// Bank is the number of AnimationBank entries when the state is an
	// AnimationHost, and -1 otherwise.
	Bank int
}

// New creates an Engine for view.
func New[S any](view ViewFunc[S], opts ...Option) (*Engine[S], error) {
	if view == nil {
		return nil, fmt.Errorf("view must not be nil")
	}
	e := &Engine[S]{
		view: view,
		cfg:  defaultConfig(),
	}
	for _, opt := range opts {
		if err := opt(&e.cfg); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Draw builds the tree from state, lays it out in area and invokes every
// draw callback in tree order.
func (e *Engine[S]) Draw(area Rect, state *S) {
	p, root := e.begin(state)
	root.layout(p, area, state)
	root.drawTree(p, state)
	e.finish(p, state)
}

// Layout builds the tree from state and lays it out in area without drawing.
// The returned tree reports the rectangle of every node.
func (e *Engine[S]) Layout(area Rect, state *S) *Node[S] {
	p, root := e.begin(state)
	root.layout(p, area, state)
	e.finish(p, state)
	return root
}

// Measure builds the tree from state and returns its natural size for area.
func (e *Engine[S]) Measure(area Rect, state *S) Constraints {
	p, root := e.begin(state)
	c := root.constraints(p, area, state)
	e.finish(p, state)
	return c
}

func (e *Engine[S]) begin(state *S) (*pass, *Node[S]) {
	p := &pass{
		gen: generation.Add(1),
		now: e.cfg.clock.Now(),
	}
	if e.cfg.cache {
		e.cache.reset(p.gen)
		p.cache = &e.cache
	}
	return p, resolve(e.view(state))
}

func (e *Engine[S]) finish(p *pass, state *S) {
	e.last = PassStats{Generation: p.gen, Drawn: p.drawn, Skipped: p.skipped, Bank: -1}
	if p.cache != nil {
		e.last.Slots = p.cache.Len()
		e.last.Hits = p.cache.hits
		e.last.Misses = p.cache.misses
	}
	if host, ok := any(state).(AnimationHost); ok {
		if bank := host.AnimationBank(); bank != nil {
			e.last.Bank = bank.Len()
		}
	}
	if !debug.Enabled() {
		return
	}
	msg := fmt.Sprintf("pass %d: drawn=%d skipped=%d slots=%d hits=%d misses=%d",
		p.gen, p.drawn, p.skipped, e.last.Slots, e.last.Hits, e.last.Misses)
	if e.last.Bank >= 0 {
		msg += fmt.Sprintf(" bank=%d", e.last.Bank)
	}
	debug.Log("%s%s", e.cfg.logPrefix, msg)
}

// LastPass returns the statistics of the most recent pass.
func (e *Engine[S]) LastPass() PassStats {
	return e.last
}

// Draw lays n out in area and draws it with the system clock and a fresh
// cache. It suits trees that do not need an Engine.
func (n *Node[S]) Draw(area Rect, state *S) {
	p := newPass()
	root := resolve(n)
	root.layout(p, area, state)
	root.drawTree(p, state)
}

// Layout lays n out in area without drawing.
func (n *Node[S]) Layout(area Rect, state *S) {
	resolve(n).layout(newPass(), area, state)
}

// Constraints returns the natural size of n for area.
func (n *Node[S]) Constraints(area Rect, state *S) Constraints {
	return resolve(n).constraints(newPass(), area, state)
}

func newPass() *pass {
	p := &pass{
		gen:   generation.Add(1),
		now:   systemClock{}.Now(),
		cache: &constraintCache{},
	}
	p.cache.reset(p.gen)
	return p
}
