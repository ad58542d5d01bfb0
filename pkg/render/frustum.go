// Package render draws wireframes into a framebuffer and onto a terminal.
// The camera pose is a motor and the frustum is bounded by PGA planes.
package render

import (
	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/measure"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
	"github.com/ScottFielder/MathLibEx/pkg/shapes"
)

// Frustum represents the 6 planes of a view frustum.
// Planes are ordered: Left, Right, Bottom, Top, Near, Far.
// Each plane's normal points inward (toward the center of the frustum).
type Frustum struct {
	Planes [6]pga.Plane
}

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustumFromMatrix extracts frustum planes from a view-projection matrix.
// Uses the Gribb/Hartmann method for extracting planes from the combined matrix.
// The resulting planes have normals pointing inward.
func NewFrustumFromMatrix(m math3d.Mat4) Frustum {
	// For column-major m, row i element j is at m[i + j*4]. Every plane is
	// row3 plus or minus another row.
	row := func(i int) pga.Plane {
		return pga.PlaneFromComponents(m[i], m[i+4], m[i+8], m[i+12])
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	f := Frustum{Planes: [6]pga.Plane{
		FrustumLeft:   r3.Add(r0),
		FrustumRight:  r3.Sub(r0),
		FrustumBottom: r3.Add(r1),
		FrustumTop:    r3.Sub(r1),
		FrustumNear:   r3.Add(r2),
		FrustumFar:    r3.Sub(r2),
	}}

	for i, pl := range f.Planes {
		// A degenerate matrix leaves the plane as extracted
		if n, err := pl.Normalize(); err == nil {
			f.Planes[i] = n
		}
	}

	return f
}

// GetFrustum returns the current view frustum from the camera.
func (c *Camera) GetFrustum() Frustum {
	return NewFrustumFromMatrix(c.ViewProjectionMatrix())
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max math3d.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Center returns the center of the AABB.
func (b AABB) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() math3d.Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners returns the eight corners, bit i of the index choosing Max for
// axis i.
func (b AABB) Corners() [8]math3d.Vec3 {
	var c [8]math3d.Vec3
	for i := range c {
		c[i] = math3d.V3(
			selectComponent(i&1 != 0, b.Max.X, b.Min.X),
			selectComponent(i&2 != 0, b.Max.Y, b.Min.Y),
			selectComponent(i&4 != 0, b.Max.Z, b.Min.Z),
		)
	}
	return c
}

// Transform returns the AABB that bounds b after moving it by m.
func (b AABB) Transform(m pga.Motor) AABB {
	corners := b.Corners()
	first := motion.ApplyVec3(m, corners[0])
	out := AABB{Min: first, Max: first}
	for _, c := range corners[1:] {
		v := motion.ApplyVec3(m, c)
		out.Min = out.Min.Min(v)
		out.Max = out.Max.Max(v)
	}
	return out
}

// ContainsPoint returns true if the point is inside the AABB.
func (b AABB) ContainsPoint(p math3d.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectAABB tests if the AABB intersects or is inside the frustum.
// Returns true if any part of the AABB is visible.
// Uses the "positive vertex" optimization for faster rejection.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, plane := range f.Planes {
		// The corner furthest along the normal. If even that one is
		// outside, the whole box is.
		pVertex := math3d.V3(
			selectComponent(plane.E1 >= 0, box.Max.X, box.Min.X),
			selectComponent(plane.E2 >= 0, box.Max.Y, box.Min.Y),
			selectComponent(plane.E3 >= 0, box.Max.Z, box.Min.Z),
		)
		if plane.Distance(pVertex) < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB tests if the AABB is completely inside the frustum.
func (f Frustum) ContainsAABB(box AABB) bool {
	for _, plane := range f.Planes {
		nVertex := math3d.V3(
			selectComponent(plane.E1 >= 0, box.Min.X, box.Max.X),
			selectComponent(plane.E2 >= 0, box.Min.Y, box.Max.Y),
			selectComponent(plane.E3 >= 0, box.Min.Z, box.Max.Z),
		)
		if plane.Distance(nVertex) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum. Points at infinity
// are never inside.
func (f Frustum) ContainsPoint(p pga.Point) bool {
	for _, plane := range f.Planes {
		d, err := measure.OrientedDistPlane(p, plane)
		if err != nil || d < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere tests if a sphere intersects the frustum.
func (f Frustum) IntersectsSphere(s shapes.Sphere) bool {
	c := pga.PointFromVec3(s.Center)
	for _, plane := range f.Planes {
		d, err := measure.OrientedDistPlane(c, plane)
		if err != nil || d < -s.Radius {
			return false
		}
	}
	return true
}

// selectComponent is a branchless conditional selection helper.
func selectComponent(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
