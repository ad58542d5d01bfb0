package motion

import (
	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Rotation returns the rotational part of m: the scalar and the Euclidean
// bivectors.
func Rotation(m pga.Motor) pga.Motor {
	return pga.Motor{S: m.S, E23: m.E23, E31: m.E31, E12: m.E12}
}

// RotationQuat returns the rotational part of m as a quaternion.
func RotationQuat(m pga.Motor) math3d.Quat {
	return math3d.Quat{W: m.S, X: -m.E23, Y: -m.E31, Z: -m.E12}
}

// Translation returns the vector m moves the origin by, with the rotation
// factored out on the right: m = Translate(Translation(m)) * Rotation(m).
func Translation(m pga.Motor) math3d.Vec3 {
	t := pga.MulMotor(m, Rotation(m).Inverse())
	return math3d.V3(-2*t.E01, -2*t.E02, -2*t.E03)
}

// TranslationMotor returns Translate(Translation(m)).
func TranslationMotor(m pga.Motor) pga.Motor {
	return Translate(Translation(m))
}

// AxisAngle returns the rotation axis and angle of m in radians. A motor
// without rotation reports the Y axis.
func AxisAngle(m pga.Motor) (math3d.Vec3, float32) {
	return RotationQuat(m).AxisAngle()
}

// ToMat4 returns the column-major matrix Translate(t) * Rotate(q) that
// transforms positions the same way as m.
func ToMat4(m pga.Motor) math3d.Mat4 {
	return math3d.Translate(Translation(m)).Mul(RotationQuat(m).Mat4())
}
