package pga

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
)

// Plane is the grade-1 element E1 e1 + E2 e2 + E3 e3 + E0 e0.
//
// It contains the points with E1 x + E2 y + E3 z + E0 w = 0. In classical
// terms the normal is (E1, E2, E3) and the plane reads n·x - d = 0 with
// d = -E0.
type Plane struct {
	E1, E2, E3, E0 float32
}

// NewPlane builds the plane n·x - d = 0. The normal must be unit length.
func NewPlane(normal math3d.Vec3, d float32) (Plane, error) {
	if l := normal.Len(); math3d.Abs(l-1) > math3d.VerySmall*10 {
		return Plane{}, errorsmod.Wrapf(ErrDegenerateGeometry, "plane normal %v has length %g", normal, l)
	}
	return Plane{normal.X, normal.Y, normal.Z, -d}, nil
}

// PlaneFromComponents sets the four components without validation.
func PlaneFromComponents(e1, e2, e3, e0 float32) Plane {
	return Plane{e1, e2, e3, e0}
}

// PlaneFromPoints returns the normalized plane through a, b and c. Seen from
// the side the normal points to, the vertices wind counter-clockwise.
func PlaneFromPoints(a, b, c math3d.Vec3) (Plane, error) {
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Len()
	if l < math3d.VerySmall {
		return Plane{}, errorsmod.Wrapf(ErrDegenerateGeometry, "points %v %v %v are collinear", a, b, c)
	}
	n = n.Scale(1 / l)
	return Plane{n.X, n.Y, n.Z, -n.Dot(a)}, nil
}

// X is an alias for E1.
func (p Plane) X() float32 { return p.E1 }

// Y is an alias for E2.
func (p Plane) Y() float32 { return p.E2 }

// Z is an alias for E3.
func (p Plane) Z() float32 { return p.E3 }

// D returns the classical offset, -E0.
func (p Plane) D() float32 { return -p.E0 }

// Normal returns (E1, E2, E3).
func (p Plane) Normal() math3d.Vec3 {
	return math3d.V3(p.E1, p.E2, p.E3)
}

// MagGrade1 returns the length of the normal.
func (p Plane) MagGrade1() float32 {
	return p.Normal().Len()
}

// MagGrade1Infinity returns |E0|.
func (p Plane) MagGrade1Infinity() float32 {
	return math3d.Abs(p.E0)
}

// Add returns p + o.
func (p Plane) Add(o Plane) Plane {
	return Plane{p.E1 + o.E1, p.E2 + o.E2, p.E3 + o.E3, p.E0 + o.E0}
}

// Sub returns p - o.
func (p Plane) Sub(o Plane) Plane {
	return Plane{p.E1 - o.E1, p.E2 - o.E2, p.E3 - o.E3, p.E0 - o.E0}
}

// Scale returns p * s.
func (p Plane) Scale(s float32) Plane {
	return Plane{p.E1 * s, p.E2 * s, p.E3 * s, p.E0 * s}
}

// Neg returns the same plane with the opposite orientation.
func (p Plane) Neg() Plane {
	return p.Scale(-1)
}

// Div returns p / s.
func (p Plane) Div(s float32) (Plane, error) {
	if math3d.NearZero(s) {
		return Plane{}, errorsmod.Wrapf(ErrDivideByNearZero, "plane / %g", s)
	}
	return p.Scale(1 / s), nil
}

// Inverse returns p. A plane reflection is its own inverse.
func (p Plane) Inverse() Plane {
	return p
}

// Normalize scales p so its normal has unit length.
func (p Plane) Normalize() (Plane, error) {
	l := p.MagGrade1()
	if l < math3d.VerySmall {
		return Plane{}, errorsmod.Wrapf(ErrDivideByNearZero, "normalize plane %v", p)
	}
	return p.Scale(1 / l), nil
}

// Distance returns the signed distance of v from a normalized plane,
// positive on the side the normal points to.
func (p Plane) Distance(v math3d.Vec3) float32 {
	return p.Normal().Dot(v) + p.E0
}

// Reflect mirrors the direction v in a normalized plane through the origin
// with the same normal.
func (p Plane) Reflect(v math3d.Vec3) math3d.Vec3 {
	return v.Reflect(p.Normal())
}

// Similar reports whether p and o describe the same oriented plane once
// both are normalized.
func (p Plane) Similar(o Plane) bool {
	a, errA := p.Normalize()
	b, errB := o.Normalize()
	if errA != nil || errB != nil {
		return false
	}
	return a.ApproxEqual(b, math3d.VerySmall*10)
}

// MidPlane returns the normalized bisector of a and b: the plane halfway
// between them in angle and distance.
func MidPlane(a, b Plane) (Plane, error) {
	na, err := a.Normalize()
	if err != nil {
		return Plane{}, err
	}
	nb, err := b.Normalize()
	if err != nil {
		return Plane{}, err
	}
	return na.Add(nb).Normalize()
}

// ApproxEqual reports whether every component differs by less than eps.
func (p Plane) ApproxEqual(o Plane, eps float32) bool {
	return math3d.ApproxEqual(p.E1, o.E1, eps) && math3d.ApproxEqual(p.E2, o.E2, eps) &&
		math3d.ApproxEqual(p.E3, o.E3, eps) && math3d.ApproxEqual(p.E0, o.E0, eps)
}

func (p Plane) String() string {
	return fmt.Sprintf("%.6ge1 + %.6ge2 + %.6ge3 + %.6ge0", p.E1, p.E2, p.E3, p.E0)
}
