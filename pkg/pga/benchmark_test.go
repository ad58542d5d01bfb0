package pga

import (
	"testing"
)

func BenchmarkMulMotor(b *testing.B) {
	m1 := NewMotor(0.9, 0.1, -0.3, 0.2, 1, 2, 3, 0.5)
	m2 := NewMotor(0.7, -0.5, 0.2, 0.1, -4, 0, 1, 0)

	for b.Loop() {
		_ = MulMotor(m1, m2)
	}
}

func BenchmarkSandwichPoint(b *testing.B) {
	m := NewMotor(0.9, 0.1, -0.3, 0.2, 1, 2, 3, 0.5)
	inv := m.Inverse()
	p := NewPoint(1, 2, 3, 1)

	for b.Loop() {
		_ = MulFlectorMotor(MulMotorPoint(m, p), inv).Point
	}
}

func BenchmarkJoinPoints(b *testing.B) {
	p1 := NewPoint(1, 2, 3, 1)
	p2 := NewPoint(-4, 0, 2, 1)

	for b.Loop() {
		_ = JoinPoints(p1, p2)
	}
}

func BenchmarkMotorNormalize(b *testing.B) {
	m := NewMotor(2, 0.1, -0.3, 0.2, 1, 2, 3, 0.5)

	for b.Loop() {
		_, _ = m.Normalize()
	}
}
