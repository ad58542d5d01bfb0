// Package shapes provides simple solids and primitives whose queries are
// answered with joins and oriented distances.
package shapes

import (
	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/measure"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Margin is the slack allowed when a point sits on an edge or plane.
const Margin = math3d.VerySmall * 10

// onPlane reports whether v lies within Margin of pl.
func onPlane(v math3d.Vec3, pl pga.Plane) bool {
	d, err := measure.OrientedDistPlane(pga.PointFromVec3(v), pl)
	return err == nil && math3d.Abs(d) <= Margin
}

// edgeSides returns the oriented distances from v to each closed edge of
// the polygon verts. A degenerate edge reports 0.
func edgeSides(v math3d.Vec3, verts ...math3d.Vec3) []float32 {
	p := pga.PointFromVec3(v)
	out := make([]float32, len(verts))
	for i, a := range verts {
		b := verts[(i+1)%len(verts)]
		d, err := measure.OrientedDistLine(p, pga.JoinPoints(pga.PointFromVec3(a), pga.PointFromVec3(b)))
		if err == nil {
			out[i] = d
		}
	}
	return out
}

// sameSide reports whether every distance is at least -slack or every
// distance is at most slack.
func sameSide(ds []float32, slack float32) bool {
	left, right := true, true
	for _, d := range ds {
		left = left && d >= -slack
		right = right && d <= slack
	}
	return left || right
}
