package pga

// MeetPlanes returns the line where a and b intersect. Parallel planes meet
// in a line at infinity.
func MeetPlanes(a, b Plane) Motor {
	m := MulPlanes(a, b)
	m.S = 0
	return m
}

// MeetPlaneLine returns the point where l pierces pl. The result is ideal
// when l is parallel to pl.
func MeetPlaneLine(pl Plane, l Motor) Point {
	return Point{
		X: -pl.E0*l.E23 + pl.E2*l.E03 - pl.E3*l.E02,
		Y: -pl.E0*l.E31 - pl.E1*l.E03 + pl.E3*l.E01,
		Z: -pl.E0*l.E12 + pl.E1*l.E02 - pl.E2*l.E01,
		W: pl.E1*l.E23 + pl.E2*l.E31 + pl.E3*l.E12,
	}
}

// MeetLinePlane is MeetPlaneLine with the operands swapped. The outer
// product of a plane and a line commutes.
func MeetLinePlane(l Motor, pl Plane) Point {
	return MeetPlaneLine(pl, l)
}

// MeetPointPlane returns the pseudoscalar p ∧ pl. Its E0123 is minus the
// plane equation evaluated at p, and zero when p lies on pl.
func MeetPointPlane(p Point, pl Plane) Motor {
	return Motor{E0123: -(p.X*pl.E1 + p.Y*pl.E2 + p.Z*pl.E3 + p.W*pl.E0)}
}

// MeetPlanePoint returns pl ∧ p = -(p ∧ pl).
func MeetPlanePoint(pl Plane, p Point) Motor {
	return MeetPointPlane(p, pl).Neg()
}
