package blueprint

import backer "github.com/ejjonny/backer-sub000"

// Drawn is one leaf drawn during a pass.
type Drawn struct {
	Label string
	Rect  backer.Rect
}

// Canvas is the state a built blueprint draws into.
type Canvas struct {
	Drawn []Drawn
}

// Reset forgets everything drawn so far.
func (c *Canvas) Reset() {
	c.Drawn = c.Drawn[:0]
}

// Find returns the first leaf drawn with label.
func (c *Canvas) Find(label string) (Drawn, bool) {
	for _, d := range c.Drawn {
		if d.Label == label {
			return d, true
		}
	}
	return Drawn{}, false
}

func (c *Canvas) record(label string, r backer.Rect) {
	c.Drawn = append(c.Drawn, Drawn{Label: label, Rect: r})
}
