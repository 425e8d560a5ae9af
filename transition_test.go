package backer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

type frame struct {
	area    Rect
	visible bool
	amount  float32
}

type animated struct {
	bank   *AnimationBank
	show   bool
	wide   bool
	frames []frame
}

func (a *animated) AnimationBank() *AnimationBank {
	return a.bank
}

var fade = TransitionFunc[animated]{
	Key:    StringID("fade"),
	Ease:   ease.Linear,
	Length: 100 * time.Millisecond,
	Fn: func(area Rect, a *animated, visible bool, amount float32) {
		a.frames = append(a.frames, frame{area: area, visible: visible, amount: amount})
	},
}

func animatedView(a *animated) *Node[animated] {
	box := Transition[animated](fade)
	if a.wide {
		box = box.Width(80)
	} else {
		box = box.Width(20)
	}
	if !a.show {
		box = Transition[animated](fade).Width(0)
	}
	return Row(box.Align(Leading)).Align(Leading)
}

func newAnimated(t *testing.T) (*Engine[animated], *ManualClock, *animated) {
	t.Helper()
	clock := NewManualClock(time.Unix(1000, 0))
	e, err := New(animatedView, WithClock(clock))
	require.NoError(t, err)
	return e, clock, &animated{bank: NewAnimationBank(), show: true}
}

func (a *animated) last(t *testing.T) frame {
	t.Helper()
	require.NotEmpty(t, a.frames)
	return a.frames[len(a.frames)-1]
}

func TestTransition_FirstDrawRestsAtTarget(t *testing.T) {
	e, _, a := newAnimated(t)
	e.Draw(screen, a)

	f := a.last(t)
	assert.Equal(t, NewRect(0, 0, 20, 100), f.area)
	assert.True(t, f.visible)
	assert.Equal(t, float32(1), f.amount)
	assert.Equal(t, 1, a.bank.Len())
}

func TestTransition_InterpolatesResize(t *testing.T) {
	e, clock, a := newAnimated(t)
	e.Draw(screen, a)

	a.wide = true
	e.Draw(screen, a)
	assert.Equal(t, float32(20), a.last(t).area.Width, "same clock sample starts the animation")

	clock.Advance(50 * time.Millisecond)
	e.Draw(screen, a)
	assert.InDelta(t, 50, a.last(t).area.Width, 0.01)

	clock.Advance(50 * time.Millisecond)
	e.Draw(screen, a)
	assert.Equal(t, float32(80), a.last(t).area.Width)
}

func TestTransition_HideKeepsDrawingUntilDone(t *testing.T) {
	e, clock, a := newAnimated(t)
	e.Draw(screen, a)

	a.show = false
	e.Draw(screen, a)
	f := a.last(t)
	assert.False(t, f.visible)
	assert.Equal(t, float32(1), f.amount)

	clock.Advance(40 * time.Millisecond)
	e.Draw(screen, a)
	f = a.last(t)
	assert.InDelta(t, 0.6, f.amount, 0.001)
	assert.InDelta(t, 12, f.area.Width, 0.001)

	clock.Advance(60 * time.Millisecond)
	before := len(a.frames)
	e.Draw(screen, a)
	assert.Len(t, a.frames, before, "finished hide is not drawn")
	assert.Equal(t, 1, e.LastPass().Skipped)
}

func TestTransition_NeverShownIsNotDrawn(t *testing.T) {
	e, _, a := newAnimated(t)
	a.show = false
	e.Draw(screen, a)

	assert.Empty(t, a.frames)
	assert.Equal(t, 1, a.bank.Len())
}

func TestTransition_Delay(t *testing.T) {
	delayed := fade
	delayed.Wait = 50 * time.Millisecond

	clock := NewManualClock(time.Unix(0, 0))
	wide := false
	e, err := New(func(*animated) *Node[animated] {
		w := float32(20)
		if wide {
			w = 80
		}
		return Transition[animated](delayed).Width(w).Align(Leading)
	}, WithClock(clock))
	require.NoError(t, err)

	a := &animated{bank: NewAnimationBank()}
	e.Draw(screen, a)
	wide = true
	e.Draw(screen, a)

	clock.Advance(50 * time.Millisecond)
	e.Draw(screen, a)
	assert.Equal(t, float32(20), a.last(t).area.Width)

	clock.Advance(50 * time.Millisecond)
	e.Draw(screen, a)
	assert.InDelta(t, 50, a.last(t).area.Width, 0.01)
}

func TestTransition_NilBankPanics(t *testing.T) {
	a := &animated{}
	assert.PanicsWithValue(t, "backer: animation host returned a nil bank", func() {
		Transition[animated](fade).Draw(screen, a)
	})
}
