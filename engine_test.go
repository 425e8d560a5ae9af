package backer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejjonny/backer-sub000/internal/debug"
)

func TestNew_Options(t *testing.T) {
	type tc struct {
		opts    []Option
		wantErr string
	}

	tests := map[string]tc{
		"defaults":         {},
		"clock":            {opts: []Option{WithClock(NewManualClock(time.Unix(0, 0)))}},
		"nil clock":        {opts: []Option{WithClock(nil)}, wantErr: "clock must not be nil"},
		"without cache":    {opts: []Option{WithoutCache()}},
		"log prefix":       {opts: []Option{WithLogPrefix("main")}},
		"empty prefix":     {opts: []Option{WithLogPrefix("")}, wantErr: "log prefix must not be empty"},
		"first error wins": {opts: []Option{WithClock(nil), WithLogPrefix("")}, wantErr: "clock must not be nil"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, err := New(func(*canvas) *Node[canvas] { return leaf("a") }, tt.opts...)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, e)
		})
	}
}

func TestNew_NilView(t *testing.T) {
	_, err := New[canvas](nil)
	require.EqualError(t, err, "view must not be nil")
}

func TestEngine_DrawRebuildsEveryPass(t *testing.T) {
	builds := 0
	e, err := New(func(c *canvas) *Node[canvas] {
		builds++
		return Row(leaf("a"), If(len(c.order) > 0, leaf("b")))
	})
	require.NoError(t, err)

	c := newCanvas()
	e.Draw(screen, c)
	assert.Equal(t, []string{"a"}, c.order)

	e.Draw(screen, c)
	assert.Equal(t, []string{"a", "a", "b"}, c.order)
	assert.Equal(t, NewRect(0, 0, 50, 100), c.rects["a"])
	assert.Equal(t, 2, builds)
}

func TestEngine_Layout(t *testing.T) {
	e, err := New(func(*canvas) *Node[canvas] {
		return Column(leaf("a").Height(10), leaf("b"))
	})
	require.NoError(t, err)

	c := newCanvas()
	root := e.Layout(screen, c)

	assert.Empty(t, c.order, "layout does not draw")
	require.Len(t, root.Children(), 2)
	assert.Equal(t, NewRect(0, 0, 100, 10), root.Children()[0].Rect())
	assert.Equal(t, NewRect(0, 10, 100, 90), root.Children()[1].Rect())
}

func TestEngine_ConditionalRoot(t *testing.T) {
	e, err := New(func(*canvas) *Node[canvas] { return If(false, leaf("a")) })
	require.NoError(t, err)

	c := newCanvas()
	e.Draw(screen, c)
	assert.Empty(t, c.order)
}

func TestEngine_GroupRootPanics(t *testing.T) {
	e, err := New(func(*canvas) *Node[canvas] { return Group(leaf("a")) })
	require.NoError(t, err)

	assert.PanicsWithValue(t, "backer: group can only appear as a child of a container", func() {
		e.Draw(screen, newCanvas())
	})
}

func TestEngine_StatsAndLog(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	t.Cleanup(func() { debug.SetOutput(nil) })

	e, err := New(func(*canvas) *Node[canvas] {
		return Row(leaf("a"), leaf("b").Width(0), leaf("c"))
	}, WithLogPrefix("[main]"))
	require.NoError(t, err)

	e.Draw(screen, newCanvas())
	stats := e.LastPass()
	assert.Equal(t, 2, stats.Drawn)
	assert.Equal(t, 1, stats.Skipped)
	assert.NotZero(t, stats.Generation)
	assert.Contains(t, buf.String(), "[main] pass ")
	assert.Contains(t, buf.String(), "drawn=2 skipped=1")
	assert.Contains(t, buf.String(), "bank=0")
}

func TestEngine_LogsBankSize(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	t.Cleanup(func() { debug.SetOutput(nil) })

	e, err := New(func(*animated) *Node[animated] {
		return Row(
			Transition[animated](TransitionFunc[animated]{Key: PathID(0)}),
			Transition[animated](TransitionFunc[animated]{Key: PathID(1)}),
		)
	})
	require.NoError(t, err)

	e.Draw(screen, &animated{bank: NewAnimationBank()})
	assert.Equal(t, 2, e.LastPass().Bank)
	assert.Contains(t, buf.String(), "bank=2\n")

	type plain struct{}
	p, err := New(func(*plain) *Node[plain] { return Empty[plain]() })
	require.NoError(t, err)
	p.Draw(screen, &plain{})
	assert.Equal(t, -1, p.LastPass().Bank)
}

func TestEngine_OneClockSamplePerPass(t *testing.T) {
	calls := 0
	clock := ClockFunc(func() time.Time {
		calls++
		return time.Unix(0, 0)
	})
	e, err := New(func(*animated) *Node[animated] {
		return Row(
			Transition[animated](TransitionFunc[animated]{Key: PathID(0)}),
			Transition[animated](TransitionFunc[animated]{Key: PathID(1)}),
		)
	}, WithClock(clock))
	require.NoError(t, err)

	e.Draw(screen, &animated{bank: NewAnimationBank()})
	assert.Equal(t, 1, calls)
}
