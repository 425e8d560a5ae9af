package backer

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/ejjonny/backer-sub000/internal/anim"
)

// AnimationBank stores the animated geometry of transition leaves by
// identity. It persists across passes and lives in host state.
type AnimationBank = anim.Bank

// AnimArea is the animated geometry and visibility of one transition leaf.
type AnimArea = anim.Area

// NewAnimationBank returns an empty AnimationBank.
func NewAnimationBank() *AnimationBank {
	return anim.NewBank()
}

// AnimationHost is implemented by host state that owns an AnimationBank.
type AnimationHost interface {
	AnimationBank() *AnimationBank
}

// Transitioner describes a leaf that animates between the rectangles it is
// assigned from pass to pass.
type Transitioner[S any] interface {
	// ID identifies the leaf across passes.
	ID() uint64
	Easing() ease.TweenFunc
	Duration() time.Duration
	Delay() time.Duration
	// DrawInterpolated draws the leaf. visible is the current target and
	// visibleAmount the animated visibility in [0, 1].
	DrawInterpolated(area Rect, state *S, visible bool, visibleAmount float32)
}

// TransitionFunc is a Transitioner assembled from values and a draw function.
type TransitionFunc[S any] struct {
	Key    uint64
	Ease   ease.TweenFunc
	Length time.Duration
	Wait   time.Duration
	Fn     func(area Rect, state *S, visible bool, visibleAmount float32)
}

func (t TransitionFunc[S]) ID() uint64              { return t.Key }
func (t TransitionFunc[S]) Easing() ease.TweenFunc  { return t.Ease }
func (t TransitionFunc[S]) Duration() time.Duration { return t.Length }
func (t TransitionFunc[S]) Delay() time.Duration    { return t.Wait }

func (t TransitionFunc[S]) DrawInterpolated(area Rect, state *S, visible bool, visibleAmount float32) {
	if t.Fn != nil {
		t.Fn(area, state, visible, visibleAmount)
	}
}

// Transition creates a leaf that animates toward the rectangle it is laid
// out in. The leaf is visible while that rectangle has positive area; when
// it becomes empty the leaf keeps drawing until its hide animation finishes.
//
// The state type must expose its AnimationBank:
//
//	backer.Transition[App](backer.TransitionFunc[App]{...})
func Transition[S any, H interface {
	*S
	AnimationHost
}](t Transitioner[S]) *Node[S] {
	if t == nil {
		invariant("transitioner is nil")
	}
	return &Node[S]{kind: KindDraw, leaf: func(p *pass, area Rect, state *S) {
		drawTransition(p, H(state).AnimationBank(), t, area, state)
	}}
}

func drawTransition[S any](p *pass, bank *AnimationBank, t Transitioner[S], area Rect, state *S) {
	if bank == nil {
		invariant("animation host returned a nil bank")
	}
	id := t.ID()
	visible := area.Area() > 0

	a, ok := bank.Get(id)
	if !ok {
		a = anim.NewArea(area, visible, p.now)
	}
	a.Update(area, visible, p.now, anim.Timing{
		Duration: t.Duration(),
		Delay:    t.Delay(),
		Easing:   t.Easing(),
	})
	bank.Put(id, a)

	if !visible && !a.Hiding(p.now) {
		p.skipped++
		return
	}
	p.drawn++
	t.DrawInterpolated(a.Rect(p.now), state, visible, a.VisibleAmount(p.now))
}
