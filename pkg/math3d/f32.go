package math3d

import "golang.org/x/image/math/f32"

// ToF32 returns the matrix in the row-major order f32.Mat4 uses.
func (m Mat4) ToF32() f32.Mat4 {
	t := m.Transpose()
	return f32.Mat4(t)
}
