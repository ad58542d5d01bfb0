package shapes

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Ray is the half line Start + t Dir for t >= 0.
type Ray struct {
	Start math3d.Vec3
	Dir   math3d.Vec3
}

// At returns Start + t Dir.
func (r Ray) At(t float32) math3d.Vec3 {
	return r.Start.Add(r.Dir.Scale(t))
}

// Line returns the line through Start in direction Dir.
func (r Ray) Line() pga.Motor {
	return pga.JoinPoints(pga.PointFromVec3(r.Start), pga.IdealPoint(r.Dir))
}

// PlaneIntersection returns the parameter t where the supporting line of r
// crosses pl. t may be negative. A ray parallel to pl yields
// pga.ErrDegenerateGeometry.
func (r Ray) PlaneIntersection(pl pga.Plane) (float32, error) {
	dd := r.Dir.LenSq()
	if dd < math3d.VerySmall {
		return 0, errorsmod.Wrapf(pga.ErrDegenerateGeometry, "ray %v has no direction", r)
	}
	hit := pga.MeetPlaneLine(pl, r.Line())
	if hit.IsIdeal() {
		return 0, errorsmod.Wrapf(pga.ErrDegenerateGeometry, "ray %v is parallel to plane %v", r, pl)
	}
	p, err := hit.Normalize()
	if err != nil {
		return 0, err
	}
	return p.Vec3().Sub(r.Start).Dot(r.Dir) / dd, nil
}

// IntersectsPlane reports whether r hits pl at t >= 0.
func (r Ray) IntersectsPlane(pl pga.Plane) bool {
	t, err := r.PlaneIntersection(pl)
	return err == nil && t >= 0
}

// TriangleIntersection returns the parameter where r hits tri.
func (r Ray) TriangleIntersection(tri Triangle) (float32, bool) {
	t, err := r.PlaneIntersection(tri.Plane())
	if err != nil || t < 0 {
		return 0, false
	}
	if !tri.ContainsCoplanar(r.At(t)) {
		return 0, false
	}
	return t, true
}

// SphereIntersection returns the parameters where the supporting line of
// r enters and leaves s.
func (r Ray) SphereIntersection(s Sphere) Roots {
	oc := r.Start.Sub(s.Center)
	return FindRoots(r.Dir.Dot(r.Dir), 2*r.Dir.Dot(oc), oc.Dot(oc)-s.Radius*s.Radius)
}
