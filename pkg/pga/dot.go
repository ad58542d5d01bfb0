package pga

// DotPlanes returns the cosine of the angle between two normalized planes.
func DotPlanes(a, b Plane) float32 {
	return a.E1*b.E1 + a.E2*b.E2 + a.E3*b.E3
}

// DotLines returns the scalar part of a * b. Euclidean bivectors square to
// -1, so for normalized lines this is minus the cosine of the angle between
// them.
func DotLines(a, b Motor) float32 {
	return -(a.E23*b.E23 + a.E31*b.E31 + a.E12*b.E12)
}

// DotPoints returns -a.W * b.W.
func DotPoints(a, b Point) float32 {
	return -a.W * b.W
}

// DotPlanePoint returns the line through p perpendicular to pl.
func DotPlanePoint(pl Plane, p Point) Motor {
	m := MulPlanePoint(pl, p)
	m.E0123 = 0
	return m
}

// DotPointPlane returns the same line as DotPlanePoint.
func DotPointPlane(p Point, pl Plane) Motor {
	m := MulPointPlane(p, pl)
	m.E0123 = 0
	return m
}

// DotLinePoint returns the plane through p perpendicular to l.
func DotLinePoint(l Motor, p Point) Plane {
	return MulMotorPoint(l.Line(), p).Plane
}

// DotPointLine returns the same plane as DotLinePoint.
func DotPointLine(p Point, l Motor) Plane {
	return MulPointMotor(p, l.Line()).Plane
}

// DotPlaneLine returns the plane through l perpendicular to pl.
func DotPlaneLine(pl Plane, l Motor) Plane {
	return MulPlaneMotor(pl, l.Line()).Plane
}

// DotLinePlane returns DotPlaneLine with the opposite orientation.
func DotLinePlane(l Motor, pl Plane) Plane {
	return MulMotorPlane(l.Line(), pl).Plane
}
