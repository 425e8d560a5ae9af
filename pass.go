package backer

import "time"

// pass carries what one layout-and-draw run shares across the tree: the
// generation, the single clock sample, and the constraint cache.
type pass struct {
	gen   uint64
	now   time.Time
	cache *constraintCache

	drawn   int
	skipped int
}

// constraints returns the natural size of n for area, consulting the cache
// when one is attached.
func (n *Node[S]) constraints(p *pass, area Rect, state *S) Constraints {
	if p.cache == nil {
		return n.measure(p, area, state)
	}
	i := p.cache.slot(&n.slotGen, &n.slotIndex)
	if c, ok := p.cache.lookup(i, area); ok {
		return c
	}
	c := n.measure(p, area, state)
	p.cache.store(i, area, c)
	return c
}
