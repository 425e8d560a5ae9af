package backer

// canvas records the rectangle every named leaf was drawn in.
type canvas struct {
	rects map[string]Rect
	order []string
	bank  *AnimationBank
}

func newCanvas() *canvas {
	return &canvas{rects: map[string]Rect{}, bank: NewAnimationBank()}
}

func (c *canvas) AnimationBank() *AnimationBank {
	return c.bank
}

func leaf(name string) *Node[canvas] {
	return Draw(func(area Rect, c *canvas) {
		c.rects[name] = area
		c.order = append(c.order, name)
	})
}

var screen = NewRect(0, 0, 100, 100)

// drawn lays out and draws n over screen and returns the recording.
func drawn(n *Node[canvas]) *canvas {
	c := newCanvas()
	n.Draw(screen, c)
	return c
}
