package anim

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Animator interpolates a single value toward its most recent target.
// Every query takes the current time explicitly so that all animators touched
// during one pass observe the same instant.
type Animator struct {
	from     float32
	to       float32
	start    time.Time
	duration time.Duration
	easing   ease.TweenFunc
}

// NewAnimator returns an animator resting at value.
func NewAnimator(value float32, now time.Time) Animator {
	return Animator{from: value, to: value, start: now}
}

// Animate retargets the animator. A transition toward a new target starts
// from the value at now and begins after delay. Repeating the current target
// leaves the in-flight transition untouched.
func (a *Animator) Animate(target float32, now time.Time, duration, delay time.Duration, easing ease.TweenFunc) {
	if target == a.to {
		return
	}
	if easing == nil {
		easing = ease.Linear
	}
	a.from = a.Value(now)
	a.to = target
	a.start = now.Add(delay)
	a.duration = duration
	a.easing = easing
}

// Value returns the interpolated value at now.
func (a Animator) Value(now time.Time) float32 {
	if now.Before(a.start) {
		return a.from
	}
	elapsed := now.Sub(a.start)
	if a.duration <= 0 || elapsed >= a.duration || a.easing == nil {
		return a.to
	}
	t := float32(elapsed.Seconds())
	d := float32(a.duration.Seconds())
	return a.easing(t, a.from, a.to-a.from, d)
}

// Target returns the value the animator is moving toward.
func (a Animator) Target() float32 {
	return a.to
}

// InProgress reports whether a transition is pending or running at now.
func (a Animator) InProgress(now time.Time) bool {
	if a.from == a.to {
		return false
	}
	return now.Before(a.start.Add(a.duration))
}
