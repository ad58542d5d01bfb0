package pga

// JoinPoints returns the line through a and b, directed from a to b.
func JoinPoints(a, b Point) Motor {
	return MeetPlanes(a.Dual(), b.Dual()).Dual()
}

// JoinLinePoint returns the plane containing l and p.
func JoinLinePoint(l Motor, p Point) Plane {
	return MeetPlaneLine(p.Dual(), l.Dual()).Dual()
}

// JoinPointLine is JoinLinePoint with the operands swapped.
func JoinPointLine(p Point, l Motor) Plane {
	return JoinLinePoint(l, p)
}

// JoinPoints3 returns the plane through a, b and c. The result has a zero
// normal when the points are collinear.
func JoinPoints3(a, b, c Point) Plane {
	return JoinLinePoint(JoinPoints(a, b), c)
}
