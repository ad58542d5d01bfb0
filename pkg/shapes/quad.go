package shapes

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Quad is a flat quadrilateral with vertices wound counter-clockwise.
type Quad struct {
	V0, V1, V2, V3 math3d.Vec3

	plane pga.Plane
	area  float32
}

// NewQuad validates and returns the quad v0 v1 v2 v3. The quad must have
// non-zero area and all four vertices must share one plane.
func NewQuad(v0, v1, v2, v3 math3d.Vec3) (Quad, error) {
	p0, p1, p2, p3 := pga.PointFromVec3(v0), pga.PointFromVec3(v1), pga.PointFromVec3(v2), pga.PointFromVec3(v3)

	// The ideal part of the summed edge loop is twice the enclosed area.
	loop := pga.JoinPoints(p0, p1).Add(pga.JoinPoints(p1, p2)).Add(pga.JoinPoints(p2, p3)).Add(pga.JoinPoints(p3, p0))
	area := 0.5 * loop.MagGrade2Infinity()
	if area < math3d.VerySmall {
		return Quad{}, errorsmod.Wrapf(pga.ErrDegenerateGeometry, "quad %v %v %v %v has no area", v0, v1, v2, v3)
	}

	// Any three vertices may be collinear, so the plane comes from the
	// widest corner triangle and the leftover vertex must lie on it.
	verts := [4]math3d.Vec3{v0, v1, v2, v3}
	best, widest := 0, float32(0)
	for i := range verts {
		a, b, c := verts[i], verts[(i+1)%4], verts[(i+2)%4]
		if w := b.Sub(a).Cross(c.Sub(a)).Len(); w > widest {
			best, widest = i, w
		}
	}
	pl, err := pga.PlaneFromPoints(verts[best], verts[(best+1)%4], verts[(best+2)%4])
	if err != nil {
		return Quad{}, err
	}
	if !onPlane(verts[(best+3)%4], pl) {
		return Quad{}, errorsmod.Wrapf(pga.ErrDegenerateGeometry, "quad %v %v %v %v is not planar", v0, v1, v2, v3)
	}
	return Quad{V0: v0, V1: v1, V2: v2, V3: v3, plane: pl, area: area}, nil
}

// Area returns the enclosed area.
func (q Quad) Area() float32 { return q.area }

// Plane returns the normalized supporting plane.
func (q Quad) Plane() pga.Plane { return q.plane }

// Normal returns the unit normal.
func (q Quad) Normal() math3d.Vec3 { return q.plane.Normal() }

// OnPlane reports whether v lies in the quad's plane.
func (q Quad) OnPlane(v math3d.Vec3) bool {
	return onPlane(v, q.plane)
}

// Contains reports whether v lies in the plane and inside the quad, edges
// included.
func (q Quad) Contains(v math3d.Vec3) bool {
	return q.OnPlane(v) && sameSide(edgeSides(v, q.V0, q.V1, q.V2, q.V3), Margin)
}
