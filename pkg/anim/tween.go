// Package anim drives motors over time with harmonica springs.
package anim

import (
	"github.com/charmbracelet/harmonica"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// settleEps bounds both the distance to the target and the spring velocity
// for a tween to count as settled.
const settleEps = 1e-3

// Tween moves a pose from one motor to another along the screw between them.
// A spring animates the interpolation parameter from 0 toward 1.
type Tween struct {
	from, to pga.Motor
	spring   harmonica.Spring
	pos, vel float64
}

// NewTween creates a tween resting at start. Frequency is the spring's
// angular frequency and damping its ratio: 1 is critically damped, below 1
// overshoots.
func NewTween(fps int, frequency, damping float64, start pga.Motor) *Tween {
	return &Tween{
		from:   start,
		to:     start,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		pos:    1,
	}
}

// Retarget starts a new leg toward to from the current pose. The spring
// velocity carries over so a tween redirected mid-flight does not stall.
func (tw *Tween) Retarget(to pga.Motor) {
	tw.from = tw.Motor()
	tw.to = to
	tw.pos = 0
}

// Jump places the tween at m with no motion left.
func (tw *Tween) Jump(m pga.Motor) {
	tw.from, tw.to = m, m
	tw.pos, tw.vel = 1, 0
}

// Update advances the spring by one frame.
func (tw *Tween) Update() {
	tw.pos, tw.vel = tw.spring.Update(tw.pos, tw.vel, 1)
}

// Progress returns the spring position: 0 at the start of a leg, 1 at its end.
func (tw *Tween) Progress() float64 {
	return tw.pos
}

// Motor returns the current pose.
func (tw *Tween) Motor() pga.Motor {
	return motion.Slerp(tw.from, tw.to, float32(tw.pos))
}

// Target returns the motor the tween is heading to.
func (tw *Tween) Target() pga.Motor {
	return tw.to
}

// Settled reports whether the tween has reached its target and stopped.
func (tw *Tween) Settled() bool {
	return math3d.Abs(float32(1-tw.pos)) < settleEps && math3d.Abs(float32(tw.vel)) < settleEps
}
