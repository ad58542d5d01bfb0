// Package models loads meshes and node hierarchies. Node transforms are kept
// as motors so that world poses compose by motor products.
package models

import (
	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
	"github.com/ScottFielder/MathLibEx/pkg/shapes"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds the vertex attributes the wireframe needs.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
}

// Face is a triangle given by indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]MeshVertex, 0),
		Faces:    make([]Face, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// BoundingSphere returns the sphere around the bounding box.
func (m *Mesh) BoundingSphere() shapes.Sphere {
	return shapes.Sphere{Center: m.Center(), Radius: m.Size().Len() / 2}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Triangle returns face i as a shape. Degenerate faces fail with
// pga.ErrDegenerateGeometry.
func (m *Mesh) Triangle(i int) (shapes.Triangle, error) {
	f := m.Faces[i].V
	return shapes.NewTriangle(m.Vertices[f[0]].Position, m.Vertices[f[1]].Position, m.Vertices[f[2]].Position)
}

// CalculateNormals gives every vertex the normal of the last face that uses
// it. Degenerate faces are skipped.
func (m *Mesh) CalculateNormals() {
	for i, f := range m.Faces {
		tri, err := m.Triangle(i)
		if err != nil {
			continue
		}
		n := tri.Normal()
		for _, vi := range f.V {
			m.Vertices[vi].Normal = n
		}
	}
}

// CalculateSmoothNormals averages the area-weighted face normals around
// each vertex.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	for i, f := range m.Faces {
		tri, err := m.Triangle(i)
		if err != nil {
			continue
		}
		n := tri.Normal().Scale(tri.Area())
		for _, vi := range f.V {
			m.Vertices[vi].Normal = m.Vertices[vi].Normal.Add(n)
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// Transform moves every vertex by the motor. Normals are rotated only.
func (m *Mesh) Transform(motor pga.Motor) {
	for i := range m.Vertices {
		m.Vertices[i].Position = motion.ApplyVec3(motor, m.Vertices[i].Position)
		m.Vertices[i].Normal = motion.ApplyDir(motor, m.Vertices[i].Normal)
	}
	m.CalculateBounds()
}

// ScaleUniform scales every vertex about the origin.
func (m *Mesh) ScaleUniform(s float32) {
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Scale(s)
	}
	m.CalculateBounds()
}

// Fit returns the motor that moves the bounding box center to the origin and
// the uniform scale that makes the largest extent equal to size.
func (m *Mesh) Fit(size float32) (pga.Motor, float32) {
	center := motion.Translate(m.Center().Negate())
	extent := m.Size().MaxComponent()
	if extent < math3d.VerySmall {
		return center, 1
	}
	return center, size / extent
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]MeshVertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Edges returns each undirected edge once, in first-seen order.
func (m *Mesh) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, len(m.Faces)*3)
	edges := make([][2]int, 0, len(m.Faces)*3/2)
	for _, f := range m.Faces {
		for k := range 3 {
			a, b := f.V[k], f.V[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// GetVertex returns the position and normal of vertex i.
// Implements render.MeshRenderer interface.
func (m *Mesh) GetVertex(i int) (pos, normal math3d.Vec3) {
	v := m.Vertices[i]
	return v.Position, v.Normal
}

// GetFace returns the vertex indices for face i.
// Implements render.MeshRenderer interface.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i].V
}

// GetBounds returns the axis-aligned bounding box.
// Implements render.BoundedMeshRenderer interface.
func (m *Mesh) GetBounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}
