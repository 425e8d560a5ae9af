package anim

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/tanema/gween/ease"

	"github.com/ejjonny/backer-sub000/internal/layout"
)

// Area tracks the animated geometry and visibility of one leaf.
type Area struct {
	Visible Animator
	X       Animator
	Y       Animator
	Width   Animator
	Height  Animator
}

// Timing holds the transition parameters applied when a channel is retargeted.
type Timing struct {
	Duration time.Duration
	Delay    time.Duration
	Easing   ease.TweenFunc
}

// NewArea returns an Area resting at r with the given visibility.
func NewArea(r layout.Rect, visible bool, now time.Time) Area {
	return Area{
		Visible: NewAnimator(visibility(visible), now),
		X:       NewAnimator(r.X, now),
		Y:       NewAnimator(r.Y, now),
		Width:   NewAnimator(r.Width, now),
		Height:  NewAnimator(r.Height, now),
	}
}

// Update feeds the current targets into every channel.
func (a *Area) Update(r layout.Rect, visible bool, now time.Time, timing Timing) {
	a.Visible.Animate(visibility(visible), now, timing.Duration, timing.Delay, timing.Easing)
	a.X.Animate(r.X, now, timing.Duration, timing.Delay, timing.Easing)
	a.Y.Animate(r.Y, now, timing.Duration, timing.Delay, timing.Easing)
	a.Width.Animate(r.Width, now, timing.Duration, timing.Delay, timing.Easing)
	a.Height.Animate(r.Height, now, timing.Duration, timing.Delay, timing.Easing)
}

// Rect returns the interpolated rectangle at now.
func (a Area) Rect(now time.Time) layout.Rect {
	return layout.Rect{
		X:      a.X.Value(now),
		Y:      a.Y.Value(now),
		Width:  a.Width.Value(now),
		Height: a.Height.Value(now),
	}
}

// VisibleAmount returns the interpolated visibility at now, clamped to [0, 1].
// Overshooting easings are clamped rather than reported.
func (a Area) VisibleAmount(now time.Time) float32 {
	return math32.Min(math32.Max(a.Visible.Value(now), 0), 1)
}

// Hiding reports whether the leaf is fading out at now.
func (a Area) Hiding(now time.Time) bool {
	return a.Visible.Target() == 0 && a.Visible.InProgress(now)
}

func visibility(visible bool) float32 {
	if visible {
		return 1
	}
	return 0
}
