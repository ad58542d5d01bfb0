// Package math3d provides the single-precision linear algebra the geometric
// algebra packages are built on: vectors, quaternions and 4x4 matrices.
package math3d

import "math"

// VerySmall is the shared near-zero threshold. Every comparison against zero
// in this module goes through it.
const VerySmall float32 = 1e-6

// Pi as float32.
const Pi = float32(math.Pi)

const (
	DegreesToRadians = Pi / 180
	RadiansToDegrees = 180 / Pi
)

// NearZero reports whether |x| < VerySmall.
func NearZero(x float32) bool {
	return Abs(x) < VerySmall
}

// ApproxEqual reports whether a and b differ by less than eps.
func ApproxEqual(a, b, eps float32) bool {
	return Abs(a-b) < eps
}

// Abs returns |x|.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin returns the sine of x (radians).
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns the cosine of x (radians).
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Tan returns the tangent of x (radians).
func Tan(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

// Acos returns the arccosine of x, clamping x to [-1, 1] first so rounding
// noise on unit quantities never yields NaN.
func Acos(x float32) float32 {
	return float32(math.Acos(float64(Clamp(x, -1, 1))))
}

// Atan2 returns the arc tangent of y/x.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	return min(max(x, lo), hi)
}

// Sign returns -1 for negative x and 1 otherwise.
func Sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}
