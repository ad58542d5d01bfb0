package pga

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
)

// DivMotor returns a / b = a * b.Inverse().
func DivMotor(a, b Motor) (Motor, error) {
	if b.MagGrade0() < math3d.VerySmall && b.MagGrade2() < math3d.VerySmall &&
		b.MagGrade2Infinity() < math3d.VerySmall && b.MagGrade4() < math3d.VerySmall {
		return Motor{}, errorsmod.Wrapf(ErrDivideByNearZero, "motor divisor %v", b)
	}
	return MulMotor(a, b.Inverse()), nil
}

// DivPlanes returns a / b. A plane is its own inverse, so this is a * b.
func DivPlanes(a, b Plane) (Motor, error) {
	if b.MagGrade1() < math3d.VerySmall && b.MagGrade1Infinity() < math3d.VerySmall {
		return Motor{}, errorsmod.Wrapf(ErrDivideByNearZero, "plane divisor %v", b)
	}
	return MulPlanes(a, b.Inverse()), nil
}

// DivPoints returns a / b = a * -b.
func DivPoints(a, b Point) (Motor, error) {
	if b.Vec4().Len() < math3d.VerySmall {
		return Motor{}, errorsmod.Wrapf(ErrDivideByNearZero, "point divisor %v", b)
	}
	return MulPoints(a, b.Inverse()), nil
}
