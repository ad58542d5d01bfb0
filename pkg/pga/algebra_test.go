package pga

import (
	"errors"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
)

func TestDualIsInvolution(t *testing.T) {
	s := newSampler()
	for range 10 {
		m, pl, p := s.motor(), s.plane(), s.point()
		f := Flector{pl, p}

		assert.Equal(t, m, m.Dual().Dual())
		assert.Equal(t, pl, pl.Dual().Dual())
		assert.Equal(t, p, p.Dual().Dual())
		assert.Equal(t, f, f.Dual().Dual())
	}
}

func TestJoinPoints(t *testing.T) {
	a := NewPoint(1, 2, 3, 1)
	b := NewPoint(4, -1, 5, 1)

	l := JoinPoints(a, b)
	assert.Equal(t, MeetPlanes(a.Dual(), b.Dual()).Dual(), l)

	dir := b.Vec3().Sub(a.Vec3())
	assert.True(t, l.Direction().ApproxEqual(dir, 1e-5), "direction %v, want %v", l.Direction(), dir)

	// A point on the line joins with it to the zero plane.
	for _, p := range []Point{a, b, a.Scale(0.7).Add(b.Scale(0.3))} {
		pl := JoinLinePoint(l, p)
		assert.True(t, pl.ApproxEqual(Plane{}, 1e-4), "join with %v = %v", p, pl)
	}
	assert.Equal(t, JoinLinePoint(l, Origin()), JoinPointLine(Origin(), l))
}

func TestJoinPoints3(t *testing.T) {
	a := math3d.V3(0, 0, 2)
	b := math3d.V3(1, 0, 2)
	c := math3d.V3(0, 1, 2)

	byPoints, err := PlaneFromPoints(a, b, c)
	require.NoError(t, err)
	assert.True(t, byPoints.ApproxEqual(Plane{0, 0, 1, -2}, 1e-6), "got %v", byPoints)

	// The regressive join winds the other way round.
	joined := JoinPoints3(PointFromVec3(a), PointFromVec3(b), PointFromVec3(c))
	assert.True(t, joined.Neg().Similar(byPoints), "join %v vs %v", joined, byPoints)

	collinear := JoinPoints3(PointFromVec3(a), PointFromVec3(b), PointFromVec3(math3d.V3(5, 0, 2)))
	assert.InDelta(t, 0, collinear.MagGrade1(), 1e-6)
}

func TestMeetPlanes(t *testing.T) {
	// x = 1 and y = 2 meet in the vertical line through (1, 2, 0).
	l := MeetPlanes(Plane{1, 0, 0, -1}, Plane{0, 1, 0, -2})
	assert.True(t, l.Direction().ApproxEqual(math3d.V3(0, 0, 1), 1e-6), "got %v", l)

	p := MeetPlaneLine(Plane{0, 0, 1, -7}, l)
	n, err := p.Normalize()
	require.NoError(t, err)
	assert.True(t, n.ApproxEqual(NewPoint(1, 2, 7, 1), 1e-5), "got %v", n)

	// Parallel planes meet at infinity.
	ideal := MeetPlanes(Plane{0, 0, 1, 0}, Plane{0, 0, 1, -3})
	assert.True(t, ideal.IsIdealLine())
}

func TestMeetPointPlane(t *testing.T) {
	pl := Plane{0, 1, 0, -5}
	on := NewPoint(3, 5, -2, 1)
	off := NewPoint(0, 8, 0, 1)

	assert.InDelta(t, 0, MeetPointPlane(on, pl).E0123, 1e-6)
	assert.InDelta(t, 3, MeetPlanePoint(pl, off).E0123, 1e-6)
	assert.Equal(t, MeetPlanePoint(pl, off), MeetPointPlane(off, pl).Neg())
}

func TestDotGeometry(t *testing.T) {
	xAxis := JoinPoints(Origin(), NewPoint(1, 0, 0, 1))
	p := NewPoint(5, 2, 0, 1)

	// Plane through p perpendicular to the x axis: x = 5.
	perp, err := DotLinePoint(xAxis, p).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0, perp.Distance(p.Vec3()), 1e-6)
	assert.InDelta(t, 1, math3d.Abs(perp.E1), 1e-6)

	// Line through p perpendicular to z = 0 points along z.
	normal := DotPlanePoint(Plane{0, 0, 1, 0}, p)
	assert.True(t, normal.Direction().ApproxEqual(math3d.V3(0, 0, 1), 1e-6), "got %v", normal)

	// Normalized lines at right angles have a zero dot, parallel ones -1.
	yAxis := JoinPoints(Origin(), NewPoint(0, 1, 0, 1))
	assert.InDelta(t, 0, DotLines(xAxis, yAxis), 1e-6)
	assert.InDelta(t, -1, DotLines(xAxis, xAxis), 1e-6)

	assert.InDelta(t, -1, DotPoints(Origin(), p), 1e-6)
	assert.InDelta(t, 0.6, DotPlanes(Plane{0, 0.6, 0.8, 3}, Plane{0, 1, 0, -2}), 1e-6)
}

func TestDivision(t *testing.T) {
	s := newSampler()
	m, err := s.motor().Normalize()
	require.NoError(t, err)

	q, err := DivMotor(m, m)
	require.NoError(t, err)
	assert.True(t, q.ApproxEqual(Identity(), 1e-4), "m / m = %v", q)

	pl, err := s.plane().Normalize()
	require.NoError(t, err)
	q, err = DivPlanes(pl, pl)
	require.NoError(t, err)
	assert.True(t, q.ApproxEqual(Identity(), 1e-5), "pl / pl = %v", q)

	p, err := NewPoint(2, 4, 6, 2).Normalize()
	require.NoError(t, err)
	q, err = DivPoints(p, p)
	require.NoError(t, err)
	assert.True(t, q.ApproxEqual(Identity(), 1e-6), "p / p = %v", q)

	_, err = DivMotor(m, Motor{})
	assert.ErrorIs(t, err, ErrDivideByNearZero)
	_, err = DivPlanes(pl, Plane{})
	assert.ErrorIs(t, err, ErrDivideByNearZero)
	_, err = DivPoints(p, Point{})
	assert.ErrorIs(t, err, ErrDivideByNearZero)
}

func TestErrorsRegistered(t *testing.T) {
	assert.Equal(t, Codespace, ErrDivideByNearZero.Codespace())
	assert.Equal(t, uint32(2), ErrDivideByNearZero.ABCICode())
	assert.Equal(t, uint32(3), ErrDegenerateGeometry.ABCICode())

	wrapped := errorsmod.Wrapf(ErrDegenerateGeometry, "context %d", 1)
	assert.True(t, errors.Is(wrapped, ErrDegenerateGeometry))
	assert.False(t, errors.Is(wrapped, ErrDivideByNearZero))
	assert.Contains(t, wrapped.Error(), "degenerate geometry")
}
