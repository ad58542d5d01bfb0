package shapes

import (
	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Triangle is three vertices wound counter-clockwise around Normal.
type Triangle struct {
	V0, V1, V2 math3d.Vec3

	plane pga.Plane
}

// NewTriangle returns the triangle v0 v1 v2. Collinear vertices yield
// pga.ErrDegenerateGeometry.
func NewTriangle(v0, v1, v2 math3d.Vec3) (Triangle, error) {
	pl, err := pga.PlaneFromPoints(v0, v1, v2)
	if err != nil {
		return Triangle{}, err
	}
	return Triangle{V0: v0, V1: v1, V2: v2, plane: pl}, nil
}

// Plane returns the normalized supporting plane.
func (t Triangle) Plane() pga.Plane { return t.plane }

// Normal returns the unit normal.
func (t Triangle) Normal() math3d.Vec3 { return t.plane.Normal() }

// Area returns the triangle's area.
func (t Triangle) Area() float32 {
	return t.V1.Sub(t.V0).Cross(t.V2.Sub(t.V0)).Len() / 2
}

// OnPlane reports whether v lies in the triangle's plane.
func (t Triangle) OnPlane(v math3d.Vec3) bool {
	return onPlane(v, t.plane)
}

// ContainsCoplanar reports whether v, assumed to lie in the triangle's
// plane, is inside the triangle or on its boundary.
func (t Triangle) ContainsCoplanar(v math3d.Vec3) bool {
	return sameSide(edgeSides(v, t.V0, t.V1, t.V2), Margin)
}

// Contains reports whether v lies in the plane and inside the triangle.
func (t Triangle) Contains(v math3d.Vec3) bool {
	return t.OnPlane(v) && t.ContainsCoplanar(v)
}

// TouchesCircle reports whether a circle of radius r centred at centre, in
// the triangle's plane, overlaps it. Circles that only reach past a vertex
// can be reported as touching.
func (t Triangle) TouchesCircle(centre math3d.Vec3, r float32) bool {
	if !t.OnPlane(centre) {
		return false
	}
	return sameSide(edgeSides(centre, t.V0, t.V1, t.V2), r)
}

// VerticesInsideSphere reports whether all three vertices are strictly
// inside s.
func (t Triangle) VerticesInsideSphere(s Sphere) bool {
	return s.Contains(t.V0) && s.Contains(t.V1) && s.Contains(t.V2)
}

// Barycentric returns the weights (u, v, w) with p = u V0 + v V1 + w V2 for
// p projected into the triangle's plane.
func (t Triangle) Barycentric(p math3d.Vec3) (u, v, w float32) {
	e0 := t.V1.Sub(t.V0)
	e1 := t.V2.Sub(t.V0)
	e2 := p.Sub(t.V0)
	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := e2.Dot(e0)
	d21 := e2.Dot(e1)
	denom := d00*d11 - d01*d01
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	return 1 - v - w, v, w
}
