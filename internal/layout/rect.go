package layout

import "github.com/chewxy/math32"

// Rect represents an axis-aligned rectangle.
// X and Y are the top-left corner; Width and Height are dimensions.
// Width and Height may be negative while a layout pass is in progress.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
// Empty rectangles are never handed to a draw callback.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle, or 0 when it is empty.
func (r Rect) Area() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Inset returns a new Rect shrunk by the given Edges.
// The result is not clamped: insets larger than the rectangle produce
// negative dimensions.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Leading,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Leading - e.Trailing,
		Height: r.Height - e.Top - e.Bottom,
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Extent returns the size of the rectangle along the given axis.
func (r Rect) Extent(axis Axis) float32 {
	if axis == Horizontal {
		return r.Width
	}
	return r.Height
}

// Round returns the rectangle with every component rounded to the nearest integer.
func (r Rect) Round() Rect {
	return Rect{
		X:      math32.Round(r.X),
		Y:      math32.Round(r.Y),
		Width:  math32.Round(r.Width),
		Height: math32.Round(r.Height),
	}
}
