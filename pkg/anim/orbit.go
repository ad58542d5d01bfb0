package anim

import (
	"github.com/charmbracelet/harmonica"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Orbit is a free spin about a fixed axis. Impulses add angular velocity and
// a spring bleeds it back to zero.
type Orbit struct {
	Axis     math3d.Vec3
	Angle    float64
	Velocity float64

	velSpring harmonica.Spring
	velAccel  float64 // spring velocity of Velocity itself
}

// NewOrbit creates a resting orbit about axis. Frequency 4 with damping 1
// gives a moderate stop without overshoot.
func NewOrbit(fps int, axis math3d.Vec3, frequency, damping float64) *Orbit {
	return &Orbit{
		Axis:      axis.Normalize(),
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Impulse adds angular velocity in radians per frame.
func (o *Orbit) Impulse(v float64) {
	o.Velocity += v
}

// Update applies the velocity and decays it.
func (o *Orbit) Update() {
	o.Angle += o.Velocity
	o.Velocity, o.velAccel = o.velSpring.Update(o.Velocity, o.velAccel, 0)
}

// Reset stops the orbit at angle zero.
func (o *Orbit) Reset() {
	o.Angle, o.Velocity, o.velAccel = 0, 0, 0
}

// Motor returns the rotation by the accumulated angle.
func (o *Orbit) Motor() pga.Motor {
	if o.Axis == (math3d.Vec3{}) {
		return pga.Identity()
	}
	return motion.Rotate(float32(o.Angle), o.Axis)
}
