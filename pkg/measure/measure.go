// Package measure computes signed distances and orthogonal projections
// between points, lines and planes.
package measure

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// OrientedDistPlane returns the signed distance from p to pl, positive on
// the side the normal points to.
func OrientedDistPlane(p pga.Point, pl pga.Plane) (float32, error) {
	np, err := p.Normalize()
	if err != nil {
		return 0, err
	}
	npl, err := pl.Normalize()
	if err != nil {
		return 0, err
	}
	return pga.MeetPlanePoint(npl, np).E0123, nil
}

// OrientedDistLine returns the distance from p to l with a sign: for a line
// running counter-clockwise as seen from a normal axis, points on its left
// are positive. The axis is the first of x, y and z the plane through p and
// l is not parallel to. A point on the line has distance 0. A line at
// infinity has no finite distance and gives ErrDegenerateGeometry.
func OrientedDistLine(p pga.Point, l pga.Motor) (float32, error) {
	if l.IsIdealLine() {
		return 0, errorsmod.Wrapf(pga.ErrDegenerateGeometry, "distance to line at infinity %v", l)
	}
	np, err := p.Normalize()
	if err != nil {
		return 0, err
	}
	nl, err := l.Normalize()
	if err != nil {
		return 0, err
	}
	pl := pga.JoinLinePoint(nl, np)
	mag := pl.MagGrade1()
	for _, c := range [3]float32{pl.E1, pl.E2, pl.E3} {
		if math3d.Abs(c) > math3d.VerySmall {
			return -math3d.Sign(c) * mag, nil
		}
	}
	return 0, nil
}

// ProjectPointPlane returns the foot of the perpendicular from p to pl.
func ProjectPointPlane(p pga.Point, pl pga.Plane) (pga.Point, error) {
	perp := pga.DotPlanePoint(pl, p)
	return pga.MeetPlaneLine(pl, perp).Normalize()
}

// ProjectPointLine returns the point on l closest to p.
func ProjectPointLine(p pga.Point, l pga.Motor) (pga.Point, error) {
	perp := pga.DotLinePoint(l, p)
	return pga.MeetPlaneLine(perp, l).Normalize()
}

// ProjectLinePlane returns the orthogonal projection of l onto pl. A line
// perpendicular to pl projects to the zero motor.
func ProjectLinePlane(l pga.Motor, pl pga.Plane) pga.Motor {
	return pga.MeetPlanes(pga.DotPlaneLine(pl, l), pl)
}
