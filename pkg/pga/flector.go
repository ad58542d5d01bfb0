package pga

import "fmt"

// Flector is the odd-grade element: a plane part and a point part.
// Products that mix one odd factor with even ones land here.
type Flector struct {
	Plane Plane
	Point Point
}

// Add returns the component-wise sum of two flectors.
func (f Flector) Add(o Flector) Flector {
	return Flector{f.Plane.Add(o.Plane), f.Point.Add(o.Point)}
}

// Scale returns f * s.
func (f Flector) Scale(s float32) Flector {
	return Flector{f.Plane.Scale(s), f.Point.Scale(s)}
}

// ApproxEqual reports whether both parts differ by less than eps.
func (f Flector) ApproxEqual(o Flector, eps float32) bool {
	return f.Plane.ApproxEqual(o.Plane, eps) && f.Point.ApproxEqual(o.Point, eps)
}

func (f Flector) String() string {
	return fmt.Sprintf("(%v) + (%v)", f.Plane, f.Point)
}
