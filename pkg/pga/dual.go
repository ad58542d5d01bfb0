package pga

// Dual maps each basis blade of m to its complement: the scalar trades places
// with e0123 and each Euclidean bivector with the ideal one sharing no index.
func (m Motor) Dual() Motor {
	return Motor{
		S:     m.E0123,
		E23:   m.E01,
		E31:   m.E02,
		E12:   m.E03,
		E01:   m.E23,
		E02:   m.E31,
		E03:   m.E12,
		E0123: m.S,
	}
}

// Dual returns the plane with the same coordinates as p.
func (p Point) Dual() Plane {
	return Plane{p.X, p.Y, p.Z, p.W}
}

// Dual returns the point with the same coordinates as p.
func (p Plane) Dual() Point {
	return Point{p.E1, p.E2, p.E3, p.E0}
}

// Dual swaps the two halves of f.
func (f Flector) Dual() Flector {
	return Flector{Plane: f.Point.Dual(), Point: f.Plane.Dual()}
}
