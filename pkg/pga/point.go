package pga

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
)

// Point is a homogeneous point read as the trivector
// X e032 + Y e013 + Z e021 + W e123. W is the weight; W = 0 gives a
// direction (a point at infinity).
type Point math3d.Vec4

// NewPoint creates a point from homogeneous coordinates.
func NewPoint(x, y, z, w float32) Point {
	return Point{x, y, z, w}
}

// PointFromVec3 returns the finite point at v (W = 1).
func PointFromVec3(v math3d.Vec3) Point {
	return Point{v.X, v.Y, v.Z, 1}
}

// IdealPoint returns the point at infinity in direction dir (W = 0).
func IdealPoint(dir math3d.Vec3) Point {
	return Point{dir.X, dir.Y, dir.Z, 0}
}

// Origin returns e123.
func Origin() Point {
	return Point{W: 1}
}

// Vec4 returns the homogeneous coordinates.
func (p Point) Vec4() math3d.Vec4 {
	return math3d.Vec4(p)
}

// Vec3 returns (X, Y, Z) without dividing by W.
func (p Point) Vec3() math3d.Vec3 {
	return math3d.V3(p.X, p.Y, p.Z)
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point(math3d.Vec4(p).Add(math3d.Vec4(o)))
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point(math3d.Vec4(p).Sub(math3d.Vec4(o)))
}

// Scale returns p * s.
func (p Point) Scale(s float32) Point {
	return Point(math3d.Vec4(p).Scale(s))
}

// Neg returns -p.
func (p Point) Neg() Point {
	return p.Scale(-1)
}

// Div returns p / s.
func (p Point) Div(s float32) (Point, error) {
	if math3d.NearZero(s) {
		return Point{}, errorsmod.Wrapf(ErrDivideByNearZero, "point / %g", s)
	}
	return p.Scale(1 / s), nil
}

// Inverse returns -p, since a normalized point squares to -1.
func (p Point) Inverse() Point {
	return p.Neg()
}

// Normalize divides by the weight so that W = 1.
func (p Point) Normalize() (Point, error) {
	if math3d.NearZero(p.W) {
		return Point{}, errorsmod.Wrapf(ErrDivideByNearZero, "normalize point with weight %g", p.W)
	}
	return p.Scale(1 / p.W), nil
}

// IsIdeal reports whether the weight is near zero.
func (p Point) IsIdeal() bool {
	return math3d.NearZero(p.W)
}

// ApproxEqual reports whether every component differs by less than eps.
func (p Point) ApproxEqual(o Point, eps float32) bool {
	return math3d.Vec4(p).ApproxEqual(math3d.Vec4(o), eps)
}

func (p Point) String() string {
	return fmt.Sprintf("%.6ge032 + %.6ge013 + %.6ge021 + %.6ge123", p.X, p.Y, p.Z, p.W)
}
