package shapes

import (
	"fmt"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
)

// Roots holds the real solutions of a quadratic. Unused slots are zero.
type Roots struct {
	N             int
	First, Second float32
}

func (r Roots) String() string {
	return fmt.Sprintf("%d roots: %g %g", r.N, r.First, r.Second)
}

// FindRoots solves a x² + b x + c = 0. Two roots come back in ascending
// order; a discriminant within VerySmall of zero counts as one root. With a
// near zero the equation is solved as linear.
func FindRoots(a, b, c float32) Roots {
	if math3d.NearZero(a) {
		if math3d.NearZero(b) {
			return Roots{}
		}
		x := -c / b
		return Roots{1, x, x}
	}
	disc := b*b - 4*a*c
	switch {
	case math3d.NearZero(disc):
		x := -b / (2 * a)
		return Roots{1, x, x}
	case disc < 0:
		return Roots{}
	}
	sq := math3d.Sqrt(disc)
	r1 := (-b + sq) / (2 * a)
	r2 := (-b - sq) / (2 * a)
	return Roots{2, min(r1, r2), max(r1, r2)}
}
