package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

func rightTriangle(t *testing.T) Triangle {
	t.Helper()
	tri, err := NewTriangle(math3d.V3(0, 0, 0), math3d.V3(4, 0, 0), math3d.V3(0, 4, 0))
	require.NoError(t, err)
	return tri
}

func TestNewTriangle(t *testing.T) {
	tri := rightTriangle(t)
	assert.Equal(t, math3d.V3(0, 0, 1), tri.Normal())
	assert.InDelta(t, 8, tri.Area(), 1e-6)

	_, err := NewTriangle(math3d.V3(0, 0, 0), math3d.V3(1, 1, 1), math3d.V3(3, 3, 3))
	assert.ErrorIs(t, err, pga.ErrDegenerateGeometry)
}

func TestTriangleContains(t *testing.T) {
	tri := rightTriangle(t)

	tests := []struct {
		name string
		v    math3d.Vec3
		want bool
	}{
		{"inside", math3d.V3(1, 1, 0), true},
		{"vertex", math3d.V3(4, 0, 0), true},
		{"on edge", math3d.V3(2, 0, 0), true},
		{"outside", math3d.V3(5, 5, 0), false},
		{"left of y axis", math3d.V3(-0.5, 1, 0), false},
		{"above plane", math3d.V3(1, 1, 0.5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tri.Contains(tc.v))
		})
	}

	// Above the plane but inside the prism.
	assert.True(t, tri.ContainsCoplanar(math3d.V3(1, 1, 0)))
	assert.False(t, tri.OnPlane(math3d.V3(1, 1, 0.5)))
}

func TestTriangleWindingDoesNotMatter(t *testing.T) {
	cw, err := NewTriangle(math3d.V3(0, 0, 0), math3d.V3(0, 4, 0), math3d.V3(4, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, math3d.V3(0, 0, -1), cw.Normal())
	assert.True(t, cw.Contains(math3d.V3(1, 1, 0)))
	assert.False(t, cw.Contains(math3d.V3(5, 5, 0)))
}

func TestTriangleTouchesCircle(t *testing.T) {
	tri := rightTriangle(t)

	assert.True(t, tri.TouchesCircle(math3d.V3(1, 1, 0), 0.1))
	assert.True(t, tri.TouchesCircle(math3d.V3(-0.5, 1, 0), 1))
	assert.False(t, tri.TouchesCircle(math3d.V3(-3, 1, 0), 1))
	assert.False(t, tri.TouchesCircle(math3d.V3(1, 1, 2), 5))
}

func TestTriangleVerticesInsideSphere(t *testing.T) {
	tri := rightTriangle(t)

	assert.True(t, tri.VerticesInsideSphere(Sphere{math3d.V3(1, 1, 0), 4}))
	assert.False(t, tri.VerticesInsideSphere(Sphere{math3d.V3(0, 0, 0), 4}))
}

func TestTriangleBarycentric(t *testing.T) {
	tri := rightTriangle(t)

	u, v, w := tri.Barycentric(math3d.V3(1, 2, 0))
	assert.InDelta(t, 0.25, u, 1e-6)
	assert.InDelta(t, 0.25, v, 1e-6)
	assert.InDelta(t, 0.5, w, 1e-6)
}

func TestQuad(t *testing.T) {
	q, err := NewQuad(math3d.V3(0, 0, 0), math3d.V3(2, 0, 0), math3d.V3(2, 3, 0), math3d.V3(0, 3, 0))
	require.NoError(t, err)

	assert.InDelta(t, 6, q.Area(), 1e-5)
	assert.True(t, q.Normal().ApproxEqual(math3d.V3(0, 0, 1), 1e-6))
	assert.True(t, q.Plane().Similar(pga.PlaneFromComponents(0, 0, 1, 0)))

	tests := []struct {
		name string
		v    math3d.Vec3
		want bool
	}{
		{"inside", math3d.V3(1, 1, 0), true},
		{"on edge", math3d.V3(2, 1.5, 0), true},
		{"outside", math3d.V3(3, 1, 0), false},
		{"off plane", math3d.V3(1, 1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, q.Contains(tc.v))
		})
	}
}

func TestQuadWithCollinearCorner(t *testing.T) {
	// v1 sits on the edge from v0 to v2.
	q, err := NewQuad(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(2, 0, 0), math3d.V3(1, 2, 0))
	require.NoError(t, err)

	assert.InDelta(t, 2, q.Area(), 1e-5)
	assert.True(t, q.Normal().ApproxEqual(math3d.V3(0, 0, 1), 1e-6), "normal %v", q.Normal())
	assert.True(t, q.Contains(math3d.V3(1, 0.5, 0)))
	assert.False(t, q.Contains(math3d.V3(1, 0.5, 0.5)))

	_, err = NewQuad(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(2, 0, 0), math3d.V3(1, 2, 1))
	assert.NoError(t, err, "three collinear corners share a plane with any fourth")
}

func TestQuadInvalid(t *testing.T) {
	tests := []struct {
		name           string
		v0, v1, v2, v3 math3d.Vec3
	}{
		{"collinear", math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(2, 0, 0), math3d.V3(3, 0, 0)},
		{"bent", math3d.V3(0, 0, 0), math3d.V3(2, 0, 0), math3d.V3(2, 3, 0), math3d.V3(0, 3, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewQuad(tc.v0, tc.v1, tc.v2, tc.v3)
			assert.ErrorIs(t, err, pga.ErrDegenerateGeometry)
		})
	}
}
