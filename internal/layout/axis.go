package layout

// Axis selects the horizontal or vertical dimension.
type Axis uint8

const (
	Horizontal Axis = iota // Width, x positions
	Vertical               // Height, y positions
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
