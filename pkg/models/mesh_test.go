package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
)

// unitSquare returns two triangles covering [0,1]x[0,1] at z = 0.
func unitSquare() *Mesh {
	m := NewMesh("square")
	for _, p := range []math3d.Vec3{
		math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(1, 1, 0), math3d.V3(0, 1, 0),
	} {
		m.Vertices = append(m.Vertices, MeshVertex{Position: p})
	}
	m.Faces = []Face{{V: [3]int{0, 1, 2}}, {V: [3]int{0, 2, 3}}}
	m.CalculateBounds()
	return m
}

func TestMeshEdges(t *testing.T) {
	edges := unitSquare().Edges()
	assert.Len(t, edges, 5, "the shared diagonal counts once")
	assert.Contains(t, edges, [2]int{0, 2})
}

func TestMeshNormals(t *testing.T) {
	m := unitSquare()
	m.CalculateNormals()
	for i, v := range m.Vertices {
		assert.True(t, v.Normal.ApproxEqual(math3d.V3(0, 0, 1), 1e-6), "flat normal %d = %v", i, v.Normal)
	}

	m.Vertices[2].Position = math3d.V3(1, 1, 1)
	m.CalculateSmoothNormals()
	for i, v := range m.Vertices {
		assert.InDelta(t, 1, v.Normal.Len(), 1e-5, "smooth normal %d", i)
	}
}

func TestMeshDegenerateTriangle(t *testing.T) {
	m := unitSquare()
	m.Vertices[2].Position = math3d.V3(2, 0, 0)
	_, err := m.Triangle(0)
	assert.Error(t, err)

	m.CalculateNormals()
	assert.True(t, m.Vertices[3].Normal.ApproxEqual(math3d.V3(0, 0, 1), 1e-6))
}

func TestMeshFit(t *testing.T) {
	m := unitSquare()
	m.ScaleUniform(4)
	assert.Equal(t, math3d.V3(4, 4, 0), m.Size())

	center, scale := m.Fit(2)
	assert.InDelta(t, 0.5, scale, 1e-6)

	m.Transform(center)
	m.ScaleUniform(scale)
	assert.True(t, m.Center().ApproxEqual(math3d.Zero3(), 1e-6), "center %v", m.Center())
	assert.True(t, m.Size().ApproxEqual(math3d.V3(2, 2, 0), 1e-6), "size %v", m.Size())

	s := m.BoundingSphere()
	assert.InDelta(t, math3d.Sqrt(2), s.Radius, 1e-6)
}

func TestMeshTransform(t *testing.T) {
	m := unitSquare()
	m.CalculateNormals()
	m.Transform(motion.Compose(motion.Translate(math3d.V3(0, 0, 3)), motion.Rotate(math3d.Pi/2, math3d.V3(1, 0, 0))))

	// Rotating +Y a quarter turn about +X gives +Z.
	pos, n := m.GetVertex(3)
	assert.True(t, pos.ApproxEqual(math3d.V3(0, 0, 4), 1e-5), "pos %v", pos)
	assert.True(t, n.ApproxEqual(math3d.V3(0, -1, 0), 1e-5), "normal %v", n)
	_, hi := m.GetBounds()
	assert.InDelta(t, 4, hi.Z, 1e-5)
}

func TestMeshClone(t *testing.T) {
	m := unitSquare()
	c := m.Clone()
	c.Vertices[0].Position = math3d.V3(9, 9, 9)
	c.Faces[0].V[0] = 3

	require.Equal(t, math3d.Zero3(), m.Vertices[0].Position)
	assert.Equal(t, 0, m.Faces[0].V[0])
}
