package shapes

import (
	"github.com/ScottFielder/MathLibEx/pkg/math3d"
)

// Sphere is a centre and a radius.
type Sphere struct {
	Center math3d.Vec3
	Radius float32
}

// Contains reports whether v is strictly inside s.
func (s Sphere) Contains(v math3d.Vec3) bool {
	return v.Distance(s.Center) < s.Radius
}
