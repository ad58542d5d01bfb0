package render

import (
	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
	"github.com/ScottFielder/MathLibEx/pkg/shapes"
)

// MeshRenderer is the mesh data the wireframe reads.
type MeshRenderer interface {
	VertexCount() int
	TriangleCount() int
	GetVertex(i int) (pos, normal math3d.Vec3)
	GetFace(i int) [3]int
}

// Wireframe renders 3D wireframe objects.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer

	// Faces skipped by the last DrawMesh because they were outside the frustum
	Culled int
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// DrawLine3D draws a line in 3D space.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	x1, y1, _, vis1 := w.camera.WorldToScreen(p1, w.fb.Width, w.fb.Height)
	x2, y2, _, vis2 := w.camera.WorldToScreen(p2, w.fb.Width, w.fb.Height)

	// Only whole segments are drawn; partially visible ones would need
	// clipping against the frustum first.
	if !vis1 || !vis2 {
		return
	}

	w.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), color)
}

// DrawMesh draws every triangle edge of mesh after moving its vertices by
// pose. Triangles whose bounding sphere lies outside the view frustum are
// skipped.
func (w *Wireframe) DrawMesh(mesh MeshRenderer, pose pga.Motor, color Color) {
	frustum := w.camera.GetFrustum()

	world := make([]math3d.Vec3, mesh.VertexCount())
	for i := range world {
		pos, _ := mesh.GetVertex(i)
		world[i] = motion.ApplyVec3(pose, pos)
	}

	w.Culled = 0
	for i := range mesh.TriangleCount() {
		f := mesh.GetFace(i)
		a, b, c := world[f[0]], world[f[1]], world[f[2]]

		center := a.Add(b).Add(c).Scale(1.0 / 3)
		radius := max(center.Distance(a), center.Distance(b), center.Distance(c))
		if !frustum.IntersectsSphere(shapes.Sphere{Center: center, Radius: radius}) {
			w.Culled++
			continue
		}

		w.DrawLine3D(a, b, color)
		w.DrawLine3D(b, c, color)
		w.DrawLine3D(c, a, color)
	}
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float32) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)   // X axis
	w.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen) // Y axis
	w.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)  // Z axis
}

// DrawGrid draws a grid on the XZ plane at y=0.
func (w *Wireframe) DrawGrid(size, step float32, color Color) {
	half := size / 2
	for x := -half; x <= half; x += step {
		w.DrawLine3D(math3d.V3(x, 0, -half), math3d.V3(x, 0, half), color)
	}
	for z := -half; z <= half; z += step {
		w.DrawLine3D(math3d.V3(-half, 0, z), math3d.V3(half, 0, z), color)
	}
}

// DrawPlane draws a cross of the given size on pl, centred on the point of
// pl closest to the origin, and a tick along its normal.
func (w *Wireframe) DrawPlane(pl pga.Plane, size float32, color Color) error {
	n, err := pl.Normalize()
	if err != nil {
		return err
	}
	normal := n.Normal()
	center := normal.Scale(-n.E0)

	// Any direction not parallel to the normal spans the plane with it.
	ref := math3d.Up()
	if math3d.Abs(normal.Dot(ref)) > 0.9 {
		ref = math3d.Right()
	}
	u := normal.Cross(ref).Normalize().Scale(size / 2)
	v := normal.Cross(u)

	w.DrawLine3D(center.Sub(u), center.Add(u), color)
	w.DrawLine3D(center.Sub(v), center.Add(v), color)
	w.DrawLine3D(center, center.Add(normal.Scale(size/4)), color)
	return nil
}

// DrawPoint draws a point as a small cross.
func (w *Wireframe) DrawPoint(pos math3d.Vec3, size float32, color Color) {
	halfSize := size / 2
	for _, d := range [3]math3d.Vec3{math3d.V3(halfSize, 0, 0), math3d.V3(0, halfSize, 0), math3d.V3(0, 0, halfSize)} {
		w.DrawLine3D(pos.Sub(d), pos.Add(d), color)
	}
}
