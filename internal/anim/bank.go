package anim

// Bank stores one Area per leaf identity. It lives inside host state and
// persists across layout passes. Entries are never evicted.
// The zero value is ready to use.
type Bank struct {
	areas map[uint64]Area
}

// NewBank returns an empty Bank.
func NewBank() *Bank {
	return &Bank{areas: make(map[uint64]Area)}
}

// Get returns the Area stored for id.
func (b *Bank) Get(id uint64) (Area, bool) {
	a, ok := b.areas[id]
	return a, ok
}

// Put stores the Area for id, replacing any previous entry.
func (b *Bank) Put(id uint64, a Area) {
	if b.areas == nil {
		b.areas = make(map[uint64]Area)
	}
	b.areas[id] = a
}

// Len returns the number of identities tracked.
func (b *Bank) Len() int {
	return len(b.areas)
}
