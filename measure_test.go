package backer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraints(t *testing.T) {
	type tc struct {
		node       *Node[canvas]
		wantWidth  Range
		wantHeight Range
	}

	tests := map[string]tc{
		"leaf": {
			node: leaf("a"),
		},
		"size": {
			node:       leaf("a").Size(10, 20),
			wantWidth:  Exactly(10),
			wantHeight: Exactly(20),
		},
		"relative": {
			node:      leaf("a").RelWidth(0.25),
			wantWidth: Exactly(25),
		},
		"bounds": {
			node:       leaf("a").MinWidth(5).MaxHeight(30),
			wantWidth:  AtLeast(5),
			wantHeight: AtMost(30),
		},
		"size within bounds": {
			node:      leaf("a").Width(50).MaxWidth(40),
			wantWidth: Exactly(40),
		},
		"padding": {
			node:       leaf("a").Size(10, 20).Pad(5),
			wantWidth:  Exactly(20),
			wantHeight: Exactly(30),
		},
		"padding unbounded child": {
			node:       leaf("a").Pad(5),
			wantWidth:  AtLeast(10),
			wantHeight: AtLeast(10),
		},
		"row": {
			node:       RowSpaced(5, leaf("a").Size(10, 10), leaf("b").Size(20, 30)),
			wantWidth:  Exactly(35),
			wantHeight: Between(30, 30),
		},
		"zero width child adds no spacing": {
			node:       RowSpaced(10, leaf("a").Width(0), leaf("b").Size(20, 20)),
			wantWidth:  Exactly(20),
			wantHeight: AtLeast(20),
		},
		"row with flexible child": {
			node:       Row(leaf("a").Width(10), leaf("b")),
			wantWidth:  AtLeast(10),
			wantHeight: Unbounded(),
		},
		"column": {
			node:       ColumnSpaced(2, leaf("a").Size(10, 10), leaf("b").Size(20, 30)),
			wantWidth:  Exactly(20),
			wantHeight: Exactly(42),
		},
		"stack": {
			node:       Stack(leaf("a").Size(10, 40), leaf("b").Size(20, 30)),
			wantWidth:  Between(20, 20),
			wantHeight: Between(40, 40),
		},
		"explicit over child": {
			node:       leaf("a").Size(10, 10).Pad(10).MaxWidth(5),
			wantWidth:  Exactly(30),
			wantHeight: Exactly(30),
		},
		"expand drops upper": {
			node:       leaf("a").Size(10, 10).ExpandX(),
			wantWidth:  AtLeast(10),
			wantHeight: Exactly(10),
		},
		"offset": {
			node:       leaf("a").Size(10, 10).Offset(50, 50),
			wantWidth:  Exactly(10),
			wantHeight: Exactly(10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := tt.node.Constraints(screen, newCanvas())
			assert.Equal(t, tt.wantWidth, c.Width, "width %s", c.Width)
			assert.Equal(t, tt.wantHeight, c.Height, "height %s", c.Height)
		})
	}
}

func TestConstraints_Aspect(t *testing.T) {
	c := leaf("a").Aspect(1.5).Constraints(screen, newCanvas())
	assert.Equal(t, float32(1.5), c.Aspect)

	c = leaf("a").Aspect(1.5).Pad(2).Constraints(screen, newCanvas())
	assert.Equal(t, float32(1.5), c.Aspect, "padding carries aspect")

	c = Row(leaf("a").Aspect(1.5)).Constraints(screen, newCanvas())
	assert.Zero(t, c.Aspect, "containers drop aspect")
}

func TestConstraints_DynamicBoundToState(t *testing.T) {
	type scaled struct{ factor float32 }

	n := Draw(func(Rect, *scaled) {}).DynamicHeight(func(width float32, s *scaled) float32 {
		return width * s.factor
	})
	c := n.Constraints(screen, &scaled{factor: 3})

	require.NotNil(t, c.DynamicHeight)
	assert.Nil(t, c.DynamicWidth)
	assert.Equal(t, float32(30), c.DynamicHeight(10))
}
