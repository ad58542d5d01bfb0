package pga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
)

func TestMotorTimesInverseIsIdentity(t *testing.T) {
	s := newSampler()
	for range 20 {
		m, err := s.motor().Normalize()
		require.NoError(t, err)

		got := MulMotor(m, m.Inverse())
		if !got.ApproxEqual(Identity(), 1e-4) {
			t.Errorf("m * ~m = %v, want identity (m = %v)", got, m)
		}
		got = MulMotor(m.Inverse(), m)
		if !got.ApproxEqual(Identity(), 1e-4) {
			t.Errorf("~m * m = %v, want identity (m = %v)", got, m)
		}
	}
}

func TestMotorNormalize(t *testing.T) {
	t.Run("ideal line", func(t *testing.T) {
		m := NewMotor(0, 0, 0, 0, 5, 6, 7, 8)
		n, err := m.Normalize()
		require.NoError(t, err)

		mag := math3d.Sqrt(110)
		want := NewMotor(0, 0, 0, 0, 5/mag, 6/mag, 7/mag, 8/mag)
		assert.True(t, n.ApproxEqual(want, 1e-6), "got %v, want %v", n, want)
		assert.True(t, m.IsIdealLine())
	})

	t.Run("euclidean line", func(t *testing.T) {
		l := JoinPoints(NewPoint(1, 2, 3, 1), NewPoint(4, 6, 3, 1))
		n, err := l.Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 1, n.MagGrade2(), 1e-6)
		assert.InDelta(t, 0, n.S, 1e-6)
		assert.InDelta(t, 0, n.E0123, 1e-6)
		// The moment stays perpendicular to the direction.
		assert.InDelta(t, 0, n.Direction().Dot(n.Moment()), 1e-5)
	})

	t.Run("zero motor", func(t *testing.T) {
		_, err := Motor{}.Normalize()
		require.ErrorIs(t, err, ErrDivideByNearZero)
	})

	t.Run("pure pseudoscalar", func(t *testing.T) {
		_, err := Pseudoscalar().Normalize()
		require.ErrorIs(t, err, ErrDivideByNearZero)
	})
}

func TestMotorMagnitudes(t *testing.T) {
	m := NewMotor(-2, 3, 0, 4, 0, 0, 12, -7)

	assert.InDelta(t, 2, m.MagGrade0(), 1e-6)
	assert.InDelta(t, 5, m.MagGrade2(), 1e-6)
	assert.InDelta(t, 12, m.MagGrade2Infinity(), 1e-6)
	assert.InDelta(t, 7, m.MagGrade4(), 1e-6)
	assert.False(t, m.IsIdealLine())
}

func TestMotorLine(t *testing.T) {
	m := NewMotor(1, 2, 3, 4, 5, 6, 7, 8)
	assert.Equal(t, NewMotor(0, 2, 3, 4, 5, 6, 7, 0), m.Line())
	assert.Equal(t, math3d.V3(2, 3, 4), m.Direction())
	assert.Equal(t, math3d.V3(5, 6, 7), m.Moment())
	assert.Equal(t, float32(1), m.Real())
}

func TestMotorArithmetic(t *testing.T) {
	a := NewMotor(1, 2, 3, 4, 5, 6, 7, 8)
	b := NewMotor(8, 7, 6, 5, 4, 3, 2, 1)

	assert.Equal(t, NewMotor(9, 9, 9, 9, 9, 9, 9, 9), a.Add(b))
	assert.Equal(t, NewMotor(-7, -5, -3, -1, 1, 3, 5, 7), a.Sub(b))
	assert.Equal(t, a, a.Neg().Neg())

	half, err := a.Div(2)
	require.NoError(t, err)
	assert.Equal(t, a.Scale(0.5), half)

	_, err = a.Div(1e-9)
	require.ErrorIs(t, err, ErrDivideByNearZero)
}
