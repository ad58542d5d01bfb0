package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
	"github.com/ScottFielder/MathLibEx/pkg/shapes"
)

// frustumAt returns the frustum of a camera at the origin looking down -Z.
func frustumAt(near, far float32) Frustum {
	proj := math3d.Perspective(math3d.Pi/3, 16.0/9.0, near, far)
	return NewFrustumFromMatrix(proj.Mul(math3d.Identity()))
}

func TestAABBBasics(t *testing.T) {
	box := NewAABB(math3d.V3(-1, -2, -3), math3d.V3(1, 2, 3))

	center := box.Center()
	if center.X != 0 || center.Y != 0 || center.Z != 0 {
		t.Errorf("center = %v, want (0, 0, 0)", center)
	}

	size := box.Size()
	if size.X != 2 || size.Y != 4 || size.Z != 6 {
		t.Errorf("size = %v, want (2, 4, 6)", size)
	}

	corners := box.Corners()
	if corners[0] != box.Min || corners[7] != box.Max {
		t.Errorf("corners[0] = %v, corners[7] = %v", corners[0], corners[7])
	}
	if corners[5] != math3d.V3(1, -2, 3) {
		t.Errorf("corners[5] = %v, want (1, -2, 3)", corners[5])
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := NewAABB(math3d.V3(0, 0, 0), math3d.V3(10, 10, 10))

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected bool
	}{
		{"center", math3d.V3(5, 5, 5), true},
		{"corner", math3d.V3(0, 0, 0), true},
		{"outside X", math3d.V3(11, 5, 5), false},
		{"outside Z", math3d.V3(5, 5, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := box.ContainsPoint(tc.point); got != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, got, tc.expected)
			}
		})
	}
}

func TestAABBTransform(t *testing.T) {
	box := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))

	t.Run("translation", func(t *testing.T) {
		got := box.Transform(motion.Translate(math3d.V3(10, 20, 30)))
		assert.True(t, got.Min.ApproxEqual(math3d.V3(9, 19, 29), 1e-5), "min %v", got.Min)
		assert.True(t, got.Max.ApproxEqual(math3d.V3(11, 21, 31), 1e-5), "max %v", got.Max)
	})

	t.Run("rotation", func(t *testing.T) {
		// A 45 degree turn about Y widens the box in X and Z to sqrt(2).
		got := box.Transform(motion.Rotate(math3d.Pi/4, math3d.V3(0, 1, 0)))
		r := math3d.Sqrt(2)
		assert.True(t, got.Max.ApproxEqual(math3d.V3(r, 1, r), 1e-5), "max %v", got.Max)
		assert.True(t, got.Min.ApproxEqual(math3d.V3(-r, -1, -r), 1e-5), "min %v", got.Min)
	})
}

func TestFrustumFromPerspective(t *testing.T) {
	frustum := frustumAt(0.1, 100)

	for i, plane := range frustum.Planes {
		assert.InDelta(t, 1, plane.MagGrade1(), 1e-6, "plane %d", i)
	}

	// Near and far planes face each other along Z.
	assert.True(t, frustum.Planes[FrustumNear].Normal().ApproxEqual(math3d.V3(0, 0, -1), 1e-6))
	assert.True(t, frustum.Planes[FrustumFar].Normal().ApproxEqual(math3d.V3(0, 0, 1), 1e-6))
	assert.InDelta(t, 0.1, -frustum.Planes[FrustumNear].E0, 1e-4)
	assert.InDelta(t, 100, frustum.Planes[FrustumFar].E0, 0.05)
}

func TestFrustumContainsPoint(t *testing.T) {
	frustum := frustumAt(0.1, 100)

	tests := []struct {
		name     string
		point    pga.Point
		expected bool
	}{
		{"center near", pga.NewPoint(0, 0, -1, 1), true},
		{"center mid", pga.NewPoint(0, 0, -50, 1), true},
		{"center far", pga.NewPoint(0, 0, -99, 1), true},
		{"heavy weight", pga.NewPoint(0, 0, -100, 2), true},
		{"behind camera", pga.NewPoint(0, 0, 1, 1), false},
		{"too far", pga.NewPoint(0, 0, -200, 1), false},
		{"too close", pga.NewPoint(0, 0, -0.01, 1), false},
		{"at infinity", pga.IdealPoint(math3d.V3(0, 0, -1)), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := frustum.ContainsPoint(tc.point)
			if result != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, result, tc.expected)
			}
		})
	}
}

func TestFrustumIntersectAABB(t *testing.T) {
	frustum := frustumAt(1, 100)

	tests := []struct {
		name     string
		box      AABB
		expected bool
	}{
		{
			"fully inside",
			NewAABB(math3d.V3(-1, -1, -10), math3d.V3(1, 1, -5)),
			true,
		},
		{
			"partially visible",
			NewAABB(math3d.V3(-1, -1, -2), math3d.V3(1, 1, 2)), // Crosses near plane and goes behind
			true,
		},
		{
			"behind camera",
			NewAABB(math3d.V3(-1, -1, 5), math3d.V3(1, 1, 10)),
			false,
		},
		{
			"beyond far plane",
			NewAABB(math3d.V3(-1, -1, -150), math3d.V3(1, 1, -120)),
			false,
		},
		{
			"far to the right",
			NewAABB(math3d.V3(100, -1, -10), math3d.V3(110, 1, -5)),
			false,
		},
		{
			"large box containing frustum",
			NewAABB(math3d.V3(-200, -200, -200), math3d.V3(200, 200, 200)),
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := frustum.IntersectAABB(tc.box)
			if result != tc.expected {
				t.Errorf("IntersectAABB(%v) = %v, want %v", tc.box, result, tc.expected)
			}
		})
	}

	assert.True(t, frustum.ContainsAABB(tests[0].box))
	assert.False(t, frustum.ContainsAABB(tests[1].box))
}

func TestFrustumIntersectsSphere(t *testing.T) {
	frustum := frustumAt(1, 100)

	tests := []struct {
		name     string
		center   math3d.Vec3
		radius   float32
		expected bool
	}{
		{"inside", math3d.V3(0, 0, -10), 1.0, true},
		{"partially visible", math3d.V3(0, 0, -0.5), 1.0, true}, // Near the near plane
		{"behind", math3d.V3(0, 0, 5), 1.0, false},
		{"far behind", math3d.V3(0, 0, 20), 1.0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := shapes.Sphere{Center: tc.center, Radius: tc.radius}
			result := frustum.IntersectsSphere(s)
			if result != tc.expected {
				t.Errorf("IntersectsSphere(%v, %v) = %v, want %v", tc.center, tc.radius, result, tc.expected)
			}
		})
	}
}

func TestFrustumWithRotatedCamera(t *testing.T) {
	cam := NewCamera()
	cam.SetAspectRatio(1)
	cam.SetClipPlanes(1, 100)
	if err := cam.LookAt(math3d.V3(0, 0, 0), math3d.V3(10, 0, 0), math3d.V3(0, 1, 0)); err != nil {
		t.Fatal(err)
	}
	frustum := cam.GetFrustum()

	if !frustum.ContainsPoint(pga.NewPoint(10, 0, 0, 1)) {
		t.Error("point in front of rotated camera should be visible")
	}
	if frustum.ContainsPoint(pga.NewPoint(-10, 0, 0, 1)) {
		t.Error("point behind rotated camera should not be visible")
	}
}

func BenchmarkFrustumIntersectAABB(b *testing.B) {
	frustum := frustumAt(0.1, 1000)
	box := NewAABB(math3d.V3(-1, -1, -10), math3d.V3(1, 1, -5))

	for b.Loop() {
		_ = frustum.IntersectAABB(box)
	}
}

func BenchmarkFrustumIntersectsSphere(b *testing.B) {
	frustum := frustumAt(0.1, 1000)
	s := shapes.Sphere{Center: math3d.V3(0, 0, -10), Radius: 2}

	for b.Loop() {
		_ = frustum.IntersectsSphere(s)
	}
}

func BenchmarkFrustumExtraction(b *testing.B) {
	cam := NewCamera()
	viewProj := cam.ViewProjectionMatrix()

	for b.Loop() {
		_ = NewFrustumFromMatrix(viewProj)
	}
}

func BenchmarkAABBTransform(b *testing.B) {
	box := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))
	m := motion.Compose(motion.Translate(math3d.V3(10, 0, 0)), motion.Rotate(0.5, math3d.V3(0, 1, 0)))

	for b.Loop() {
		_ = box.Transform(m)
	}
}
