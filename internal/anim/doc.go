// Package anim implements the time-based scalar animators behind backer's
// transition layer.
//
// An [Animator] moves one float32 channel toward a target with an easing
// function from github.com/tanema/gween/ease. An [Area] groups the five
// channels a transition tracks (visibility, x, y, width, height), and a
// [Bank] stores one Area per caller-supplied identity across layout passes.
package anim
