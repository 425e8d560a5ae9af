package backer

// constraintCache is an arena of per-node measurement results for one pass.
// Each measured node is handed a slot index the first time it is measured in
// a generation; the slot keeps the last queried rectangle and its result.
type constraintCache struct {
	gen     uint64
	entries []cacheEntry
	hits    int
	misses  int
}

type cacheEntry struct {
	area   Rect
	result Constraints
	valid  bool
}

// reset starts a new generation, invalidating every slot handed out before.
func (c *constraintCache) reset(gen uint64) {
	c.gen = gen
	c.entries = c.entries[:0]
	c.hits = 0
	c.misses = 0
}

// slot returns the arena index for the node owning gen and index, assigning
// a fresh one when the node has not been measured in this generation.
func (c *constraintCache) slot(gen *uint64, index *int) int {
	if *gen != c.gen || *index >= len(c.entries) {
		c.entries = append(c.entries, cacheEntry{})
		*gen = c.gen
		*index = len(c.entries) - 1
	}
	return *index
}

func (c *constraintCache) lookup(i int, area Rect) (Constraints, bool) {
	e := c.entries[i]
	if e.valid && e.area == area {
		c.hits++
		return e.result, true
	}
	c.misses++
	return Constraints{}, false
}

func (c *constraintCache) store(i int, area Rect, result Constraints) {
	c.entries[i] = cacheEntry{area: area, result: result, valid: true}
}

// Len returns the number of slots handed out in the current generation.
func (c *constraintCache) Len() int {
	return len(c.entries)
}
