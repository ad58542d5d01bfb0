// Package motion builds, applies and takes apart rigid-body motors.
//
// A motor m moves an element X by the sandwich m X ~m. Products compose right
// to left: Apply(MulMotor(a, b), p) moves p by b first and then by a.
package motion

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Rotate returns the motor for a right-handed rotation of angle radians about
// the line through the origin with direction axis. The axis is normalized;
// a zero axis gives a pure scalar motor that rotates nothing.
func Rotate(angle float32, axis math3d.Vec3) pga.Motor {
	axis = axis.Normalize()
	s := -math3d.Sin(angle / 2)
	return pga.Motor{S: math3d.Cos(angle / 2), E23: axis.X * s, E31: axis.Y * s, E12: axis.Z * s}
}

// RotateQuat returns the motor that rotates like the unit quaternion q.
func RotateQuat(q math3d.Quat) pga.Motor {
	return pga.Motor{S: q.W, E23: -q.X, E31: -q.Y, E12: -q.Z}
}

// Translate returns the motor that moves every point by v.
func Translate(v math3d.Vec3) pga.Motor {
	return pga.Motor{S: 1, E01: -v.X / 2, E02: -v.Y / 2, E03: -v.Z / 2}
}

// FromRotationTranslation returns Translate(t) * RotateQuat(q): rotate about
// the origin, then move by t.
func FromRotationTranslation(q math3d.Quat, t math3d.Vec3) pga.Motor {
	a, b, c := -t.X/2, -t.Y/2, -t.Z/2
	s, r1, r2, r3 := q.W, -q.X, -q.Y, -q.Z
	return pga.Motor{
		S:     s,
		E23:   r1,
		E31:   r2,
		E12:   r3,
		E01:   a*s - b*r3 + c*r2,
		E02:   a*r3 + b*s - c*r1,
		E03:   -a*r2 + b*r1 + c*s,
		E0123: a*r1 + b*r2 + c*r3,
	}
}

// TranslateAlongLine returns the motor that moves dist units along the
// direction of l.
func TranslateAlongLine(dist float32, l pga.Motor) (pga.Motor, error) {
	n, err := l.Line().Normalize()
	if err != nil {
		return pga.Motor{}, err
	}
	if n.IsIdealLine() {
		return pga.Motor{}, errorsmod.Wrapf(pga.ErrDegenerateGeometry, "line %v has no direction", l)
	}
	h := -dist / 2
	return pga.Motor{S: 1, E01: h * n.E23, E02: h * n.E31, E03: h * n.E12}, nil
}

// Compose returns ms[0] * ms[1] * ... * ms[n-1]. The last motor acts first.
func Compose(ms ...pga.Motor) pga.Motor {
	acc := pga.Identity()
	for _, m := range ms {
		acc = pga.MulMotor(acc, m)
	}
	return acc
}

// Apply moves p by m.
func Apply(m pga.Motor, p pga.Point) pga.Point {
	return pga.MulFlectorMotor(pga.MulMotorPoint(m, p), m.Inverse()).Point
}

// ApplyVec3 moves the position v by m. The sandwich scales the weight by
// the squared magnitude of m, which is divided back out, so m need not be
// normalized. A vanishing weight means m is not a motion at all, such as
// the zero motor or a line at infinity; the coordinates are then returned
// undivided.
func ApplyVec3(m pga.Motor, v math3d.Vec3) math3d.Vec3 {
	p := Apply(m, pga.PointFromVec3(v))
	if w := p.W; w != 1 && !math3d.NearZero(w) {
		return p.Vec3().Scale(1 / w)
	}
	return p.Vec3()
}

// ApplyDir rotates the direction v by m. Translation does not affect it.
func ApplyDir(m pga.Motor, v math3d.Vec3) math3d.Vec3 {
	return Apply(m, pga.IdealPoint(v)).Vec3()
}

// ApplyPlane moves pl by m.
func ApplyPlane(m pga.Motor, pl pga.Plane) pga.Plane {
	return pga.MulFlectorMotor(pga.MulMotorPlane(m, pl), m.Inverse()).Plane
}

// ApplyLine moves the line l by m.
func ApplyLine(m pga.Motor, l pga.Motor) pga.Motor {
	return pga.MulMotor(pga.MulMotor(m, l), m.Inverse()).Line()
}
