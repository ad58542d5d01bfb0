package motion

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Sqrt returns the motor that does half of what m does, normalize(1 + m).
// It fails when m is a half turn, where 1 + m vanishes.
func Sqrt(m pga.Motor) (pga.Motor, error) {
	return pga.Identity().Add(m).Normalize()
}

// PointToPoint returns the translation that carries a onto b.
func PointToPoint(a, b pga.Point) (pga.Motor, error) {
	na, err := a.Normalize()
	if err != nil {
		return pga.Motor{}, err
	}
	nb, err := b.Normalize()
	if err != nil {
		return pga.Motor{}, err
	}
	q, err := pga.DivPoints(nb, na)
	if err != nil {
		return pga.Motor{}, err
	}
	return Sqrt(q)
}

// LineToLine returns the motor that carries line a onto line b, keeping
// orientation. Lines more than a quarter turn apart, a reversed b included,
// are first flipped by a half turn about a perpendicular of a.
func LineToLine(a, b pga.Motor) (pga.Motor, error) {
	na, err := a.Normalize()
	if err != nil {
		return pga.Motor{}, err
	}
	nb, err := b.Normalize()
	if err != nil {
		return pga.Motor{}, err
	}
	q, err := pga.DivMotor(nb, na)
	if err != nil {
		return pga.Motor{}, err
	}
	if q.S >= 0 {
		return Sqrt(q)
	}

	d := na.Direction()
	perp := d.Cross(nb.Direction())
	if perp.Len() < math3d.VerySmall {
		perp = perpendicular(d)
	} else {
		perp = perp.Normalize()
	}
	foot, err := pga.MeetPlaneLine(pga.DotLinePoint(na, pga.Origin()), na).Normalize()
	if err != nil {
		return pga.Motor{}, err
	}
	hinge := pga.JoinPoints(foot, pga.PointFromVec3(foot.Vec3().Add(perp)))

	h, err := hinge.Normalize()
	if err != nil {
		return pga.Motor{}, err
	}
	q, err = pga.DivMotor(nb, ApplyLine(h, na))
	if err != nil {
		return pga.Motor{}, err
	}
	half, err := Sqrt(q)
	if err != nil {
		return pga.Motor{}, err
	}
	return pga.MulMotor(half, h), nil
}

// PlaneToPlane returns the motor that carries plane a onto plane b. Planes
// more than a quarter turn apart are first flipped by a half turn about a
// line in a: their meet line, or any line of a when they are parallel.
func PlaneToPlane(a, b pga.Plane) (pga.Motor, error) {
	na, err := a.Normalize()
	if err != nil {
		return pga.Motor{}, err
	}
	nb, err := b.Normalize()
	if err != nil {
		return pga.Motor{}, err
	}

	hinge := pga.MeetPlanes(na, nb)
	if hinge.MagGrade2() < math3d.VerySmall {
		n := na.Normal()
		foot := n.Scale(-na.E0)
		hinge = pga.JoinPoints(pga.PointFromVec3(foot), pga.PointFromVec3(foot.Add(perpendicular(n))))
	}
	return alignPlanes(na, nb, hinge)
}

// alignPlanes carries unit plane a onto unit plane b. hinge must lie in a;
// the half turn about it is used when 1 + b/a would lose precision.
func alignPlanes(a, b pga.Plane, hinge pga.Motor) (pga.Motor, error) {
	q, err := pga.DivPlanes(b, a)
	if err != nil {
		return pga.Motor{}, err
	}
	if q.S >= 0 {
		return Sqrt(q)
	}

	// A unit line is the half turn about itself.
	h, err := hinge.Normalize()
	if err != nil {
		return pga.Motor{}, err
	}
	q, err = pga.DivPlanes(b, ApplyPlane(h, a))
	if err != nil {
		return pga.Motor{}, err
	}
	half, err := Sqrt(q)
	if err != nil {
		return pga.Motor{}, err
	}
	return pga.MulMotor(half, h), nil
}

// perpendicular returns a unit vector perpendicular to d.
func perpendicular(d math3d.Vec3) math3d.Vec3 {
	ref := math3d.Right()
	if math3d.Abs(d.X) > 0.9*d.Len() {
		ref = math3d.Up()
	}
	return d.Cross(ref).Normalize()
}

// LookAt returns the view motor of a camera at eye looking towards at. It
// moves eye to the origin, the view direction onto -Z and up into the +Y
// half of the YZ plane.
//
// The motor is built in three alignment steps, each left-multiplied onto
// the previous ones. The roll step turns about the -Z axis, so an upside
// down up vector is rolled by a half turn. LookAt fails when at equals eye
// and when up is parallel to the view direction.
func LookAt(eye, at, up math3d.Vec3) (pga.Motor, error) {
	dir := at.Sub(eye)
	if dir.Len() < math3d.VerySmall {
		return pga.Motor{}, errorsmod.Wrapf(pga.ErrDegenerateGeometry, "look at: eye %v equals target", eye)
	}
	if dir.Normalize().Cross(up.Normalize()).Len() < math3d.VerySmall {
		return pga.Motor{}, errorsmod.Wrapf(pga.ErrDegenerateGeometry, "look at: up %v is parallel to view direction %v", up, dir)
	}

	origin := pga.Origin()
	eyePoint := pga.PointFromVec3(eye)

	toOrigin, err := PointToPoint(eyePoint, origin)
	if err != nil {
		return pga.Motor{}, errorsmod.Wrap(pga.ErrDegenerateGeometry, err.Error())
	}

	look := pga.JoinPoints(eyePoint, pga.PointFromVec3(at))
	zAxis := pga.JoinPoints(origin, pga.NewPoint(0, 0, -1, 1))
	alignLook, err := LineToLine(ApplyLine(toOrigin, look), zAxis)
	if err != nil {
		return pga.Motor{}, errorsmod.Wrapf(pga.ErrDegenerateGeometry, "look at: align %v with -Z: %v", dir, err)
	}
	acc := pga.MulMotor(alignLook, toOrigin)

	upPlane, err := ApplyPlane(acc, pga.JoinLinePoint(look, pga.IdealPoint(up))).Normalize()
	if err != nil {
		return pga.Motor{}, errorsmod.Wrapf(pga.ErrDegenerateGeometry, "look at: up plane of %v: %v", up, err)
	}
	yzPlane := pga.JoinLinePoint(zAxis, pga.IdealPoint(math3d.Up()))
	alignUp, err := alignPlanes(upPlane, yzPlane, zAxis)
	if err != nil {
		return pga.Motor{}, errorsmod.Wrapf(pga.ErrDegenerateGeometry, "look at: align up %v: %v", up, err)
	}
	return pga.MulMotor(alignUp, acc), nil
}

// MustLookAt is LookAt for inputs known to be valid. It panics on error.
func MustLookAt(eye, at, up math3d.Vec3) pga.Motor {
	m, err := LookAt(eye, at, up)
	if err != nil {
		panic(err)
	}
	return m
}
