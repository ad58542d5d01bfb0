package pga

import "fmt"

// Element is one of Motor, Plane, Point or Flector. The set is closed.
type Element interface {
	fmt.Stringer
	element()
}

func (Motor) element()   {}
func (Plane) element()   {}
func (Point) element()   {}
func (Flector) element() {}

// Mul returns the geometric product a * b for any pair of elements. Two odd
// factors give a Motor; one odd and one even give a Flector.
//
// Prefer the typed Mul* functions on hot paths. Mul panics on a nil operand.
func Mul(a, b Element) Element {
	switch a := a.(type) {
	case Motor:
		switch b := b.(type) {
		case Motor:
			return MulMotor(a, b)
		case Plane:
			return MulMotorPlane(a, b)
		case Point:
			return MulMotorPoint(a, b)
		case Flector:
			return MulMotorFlector(a, b)
		}
	case Plane:
		switch b := b.(type) {
		case Motor:
			return MulPlaneMotor(a, b)
		case Plane:
			return MulPlanes(a, b)
		case Point:
			return MulPlanePoint(a, b)
		case Flector:
			return MulPlaneFlector(a, b)
		}
	case Point:
		switch b := b.(type) {
		case Motor:
			return MulPointMotor(a, b)
		case Plane:
			return MulPointPlane(a, b)
		case Point:
			return MulPoints(a, b)
		case Flector:
			return MulPointFlector(a, b)
		}
	case Flector:
		switch b := b.(type) {
		case Motor:
			return MulFlectorMotor(a, b)
		case Plane:
			return MulFlectorPlane(a, b)
		case Point:
			return MulFlectorPoint(a, b)
		case Flector:
			return MulFlectors(a, b)
		}
	}
	panic(fmt.Sprintf("pga: cannot multiply %T by %T", a, b))
}

// MulFlectorPlane returns f * pl.
func MulFlectorPlane(f Flector, pl Plane) Motor {
	return MulPointPlane(f.Point, pl).Add(MulPlanes(f.Plane, pl))
}

// MulFlectorPoint returns f * p.
func MulFlectorPoint(f Flector, p Point) Motor {
	return MulPoints(f.Point, p).Add(MulPlanePoint(f.Plane, p))
}

// MulPlaneFlector returns pl * f.
func MulPlaneFlector(pl Plane, f Flector) Motor {
	return MulPlanes(pl, f.Plane).Add(MulPlanePoint(pl, f.Point))
}

// MulPointFlector returns p * f.
func MulPointFlector(p Point, f Flector) Motor {
	return MulPointPlane(p, f.Plane).Add(MulPoints(p, f.Point))
}

// MulFlectors returns a * b.
func MulFlectors(a, b Flector) Motor {
	return MulFlectorPlane(a, b.Plane).Add(MulFlectorPoint(a, b.Point))
}
