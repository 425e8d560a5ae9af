package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backer "github.com/ejjonny/backer-sub000"
)

var screen = backer.NewRect(0, 0, 100, 100)

func draw(bp *Blueprint) *Canvas {
	c := &Canvas{}
	bp.Build().Draw(screen, c)
	return c
}

func TestBuild(t *testing.T) {
	type tc struct {
		bp   Blueprint
		want []Drawn
	}

	tests := map[string]tc{
		"padding": {
			bp:   Blueprint{Kind: KindDraw, Label: "a", Pad: 10},
			want: []Drawn{{Label: "a", Rect: backer.NewRect(10, 10, 80, 80)}},
		},
		"aligned size": {
			bp:   Blueprint{Kind: KindDraw, Label: "a", Width: f32(10), Height: f32(20), Align: "bottom-trailing"},
			want: []Drawn{{Label: "a", Rect: backer.NewRect(90, 80, 10, 20)}},
		},
		"aspect": {
			bp:   Blueprint{Kind: KindDraw, Label: "a", Aspect: 0.5},
			want: []Drawn{{Label: "a", Rect: backer.NewRect(25, 0, 50, 100)}},
		},
		"relative and bounds": {
			bp:   Blueprint{Kind: KindDraw, Label: "a", RelWidth: f32(0.8), MaxWidth: f32(50), MinHeight: f32(10), MaxHeight: f32(10)},
			want: []Drawn{{Label: "a", Rect: backer.NewRect(25, 45, 50, 10)}},
		},
		"expand": {
			bp:   Blueprint{Kind: KindDraw, Label: "a", Width: f32(5), Height: f32(5), Expand: ExpandY},
			want: []Drawn{{Label: "a", Rect: backer.NewRect(47.5, 0, 5, 100)}},
		},
		"side padding and offset": {
			bp:   Blueprint{Kind: KindDraw, Label: "a", PadLeading: 10, PadBottom: 20, Offset: []float32{1, 2}},
			want: []Drawn{{Label: "a", Rect: backer.NewRect(11, 2, 90, 80)}},
		},
		"row with group": {
			bp: Blueprint{Kind: KindRow, Align: "trailing", Children: []Blueprint{
				{Kind: KindDraw, Label: "a", Width: f32(10)},
				{Kind: KindGroup, Children: []Blueprint{{Kind: KindDraw, Label: "b", Width: f32(20)}}},
			}},
			want: []Drawn{
				{Label: "a", Rect: backer.NewRect(70, 0, 10, 100)},
				{Label: "b", Rect: backer.NewRect(80, 0, 20, 100)},
			},
		},
		"stack with space and empty": {
			bp: Blueprint{Kind: KindStack, Children: []Blueprint{
				{Kind: KindSpace}, {Kind: KindEmpty}, {Kind: KindDraw, Label: "a"},
			}},
			want: []Drawn{{Label: "a", Rect: screen}},
		},
		"hidden": {
			bp: Blueprint{Kind: KindColumn, Spacing: 10, Children: []Blueprint{
				{Kind: KindDraw, Label: "a", Visible: new(bool)},
				{Kind: KindDraw, Label: "b"},
			}},
			want: []Drawn{{Label: "b", Rect: screen}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, tt.bp.Validate())
			assert.Equal(t, tt.want, draw(&tt.bp).Drawn)
		})
	}
}

func TestCanvas(t *testing.T) {
	c := &Canvas{}
	c.record("a", screen)

	d, ok := c.Find("a")
	require.True(t, ok)
	assert.Equal(t, screen, d.Rect)

	_, ok = c.Find("b")
	assert.False(t, ok)

	c.Reset()
	assert.Empty(t, c.Drawn)
}
