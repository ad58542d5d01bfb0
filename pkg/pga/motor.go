package pga

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
)

// Motor is the even-grade element: a scalar, three rotation bivectors that
// square to -1, three translation bivectors and the pseudoscalar, all of
// which square to 0.
//
// Unit motors encode rigid motions. A motor with S and E0123 zero is a line
// with direction (E23, E31, E12) and moment (E01, E02, E03).
type Motor struct {
	S             float32
	E23, E31, E12 float32
	E01, E02, E03 float32
	E0123         float32
}

// NewMotor creates a motor from its eight components.
func NewMotor(s, e23, e31, e12, e01, e02, e03, e0123 float32) Motor {
	return Motor{s, e23, e31, e12, e01, e02, e03, e0123}
}

// Identity returns the motor that leaves everything in place.
func Identity() Motor {
	return Motor{S: 1}
}

// Pseudoscalar returns e0123.
func Pseudoscalar() Motor {
	return Motor{E0123: 1}
}

// Real returns the scalar part.
func (m Motor) Real() float32 {
	return m.S
}

// Direction returns the rotation bivector part (E23, E31, E12).
func (m Motor) Direction() math3d.Vec3 {
	return math3d.V3(m.E23, m.E31, m.E12)
}

// Moment returns the translation bivector part (E01, E02, E03).
func (m Motor) Moment() math3d.Vec3 {
	return math3d.V3(m.E01, m.E02, m.E03)
}

// Line returns the grade-2 part of m.
func (m Motor) Line() Motor {
	return Motor{0, m.E23, m.E31, m.E12, m.E01, m.E02, m.E03, 0}
}

// Add returns m + o.
func (m Motor) Add(o Motor) Motor {
	return Motor{
		m.S + o.S,
		m.E23 + o.E23, m.E31 + o.E31, m.E12 + o.E12,
		m.E01 + o.E01, m.E02 + o.E02, m.E03 + o.E03,
		m.E0123 + o.E0123,
	}
}

// Sub returns m - o.
func (m Motor) Sub(o Motor) Motor {
	return m.Add(o.Neg())
}

// Scale returns m * s.
func (m Motor) Scale(s float32) Motor {
	return Motor{
		m.S * s,
		m.E23 * s, m.E31 * s, m.E12 * s,
		m.E01 * s, m.E02 * s, m.E03 * s,
		m.E0123 * s,
	}
}

// Neg returns -m.
func (m Motor) Neg() Motor {
	return m.Scale(-1)
}

// Div returns m / s.
func (m Motor) Div(s float32) (Motor, error) {
	if math3d.NearZero(s) {
		return Motor{}, errorsmod.Wrapf(ErrDivideByNearZero, "motor / %g", s)
	}
	return m.Scale(1 / s), nil
}

// Inverse returns the reverse of m: all six bivectors flipped, scalar and
// pseudoscalar kept. For unit motors m * m.Inverse() is the identity.
func (m Motor) Inverse() Motor {
	return Motor{
		m.S,
		-m.E23, -m.E31, -m.E12,
		-m.E01, -m.E02, -m.E03,
		m.E0123,
	}
}

// MagGrade0 returns |S|.
func (m Motor) MagGrade0() float32 {
	return math3d.Abs(m.S)
}

// MagGrade2 returns the magnitude of the Euclidean bivector part.
func (m Motor) MagGrade2() float32 {
	return math3d.Sqrt(m.E23*m.E23 + m.E31*m.E31 + m.E12*m.E12)
}

// MagGrade2Infinity returns the magnitude of the ideal bivector part.
func (m Motor) MagGrade2Infinity() float32 {
	return math3d.Sqrt(m.E01*m.E01 + m.E02*m.E02 + m.E03*m.E03)
}

// MagGrade4 returns |E0123|.
func (m Motor) MagGrade4() float32 {
	return math3d.Abs(m.E0123)
}

// IsIdealLine reports whether m is a line at infinity: no Euclidean
// bivector part but a non-zero ideal one.
func (m Motor) IsIdealLine() bool {
	return m.MagGrade2() < math3d.VerySmall && m.MagGrade2Infinity() >= math3d.VerySmall
}

// Normalize scales m to unit magnitude.
//
// Euclidean motors and lines are divided by sqrt(S² + E23² + E31² + E12²),
// which is the grade-2 magnitude for a line, and then corrected so that
// m * m.Inverse() has no e0123 residue. A line at infinity has no Euclidean
// part and is divided by its ideal magnitude instead.
func (m Motor) Normalize() (Motor, error) {
	a2 := m.S*m.S + m.E23*m.E23 + m.E31*m.E31 + m.E12*m.E12
	if a := math3d.Sqrt(a2); a >= math3d.VerySmall {
		n := m.Scale(1 / a)
		t := (m.S*m.E0123 - (m.E23*m.E01 + m.E31*m.E02 + m.E12*m.E03)) / a2
		n.E01 += t * n.E23
		n.E02 += t * n.E31
		n.E03 += t * n.E12
		n.E0123 -= t * n.S
		return n, nil
	}
	ideal := m.MagGrade2Infinity()
	if ideal < math3d.VerySmall {
		return Motor{}, errorsmod.Wrapf(ErrDivideByNearZero, "normalize motor %v", m)
	}
	return m.Scale(1 / ideal), nil
}

// ApproxEqual reports whether every component differs by less than eps.
func (m Motor) ApproxEqual(o Motor, eps float32) bool {
	a, b := m.components(), o.components()
	for i := range a {
		if !math3d.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func (m Motor) components() [8]float32 {
	return [8]float32{m.S, m.E23, m.E31, m.E12, m.E01, m.E02, m.E03, m.E0123}
}

func (m Motor) String() string {
	return fmt.Sprintf("%.6g + %.6ge23 + %.6ge31 + %.6ge12 + %.6ge01 + %.6ge02 + %.6ge03 + %.6ge0123",
		m.S, m.E23, m.E31, m.E12, m.E01, m.E02, m.E03, m.E0123)
}
