package math3d

// Quat is a rotation quaternion w + xi + yj + zk.
type Quat struct {
	W, X, Y, Z float32
}

// IdentityQuat returns the no-rotation quaternion.
func IdentityQuat() Quat {
	return Quat{W: 1}
}

// AngleAxis builds a right-handed rotation of angle radians about axis.
// The axis is normalized first.
func AngleAxis(angle float32, axis Vec3) Quat {
	axis = axis.Normalize()
	s := Sin(angle / 2)
	return Quat{Cos(angle / 2), axis.X * s, axis.Y * s, axis.Z * s}
}

// Vec returns the vector part (x, y, z).
func (q Quat) Vec() Vec3 {
	return Vec3{q.X, q.Y, q.Z}
}

// Mul returns the Hamilton product q * r (apply r first, then q).
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Conjugate returns w - xi - yj - zk.
func (q Quat) Conjugate() Quat {
	return Quat{q.W, -q.X, -q.Y, -q.Z}
}

// Len returns the quaternion magnitude.
func (q Quat) Len() float32 {
	return Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns the unit quaternion. A near-zero quaternion becomes the identity.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l < VerySmall {
		return IdentityQuat()
	}
	return Quat{q.W / l, q.X / l, q.Y / l, q.Z / l}
}

// Inverse returns conjugate / |q|².
func (q Quat) Inverse() Quat {
	l2 := q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
	if l2 < VerySmall {
		return IdentityQuat()
	}
	c := q.Conjugate()
	return Quat{c.W / l2, c.X / l2, c.Y / l2, c.Z / l2}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := q.Vec()
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// AxisAngle returns the rotation axis and angle in radians.
// The identity rotation reports the Y axis.
func (q Quat) AxisAngle() (Vec3, float32) {
	angle := 2 * Acos(q.W)
	axis := q.Vec()
	if axis.Len() < VerySmall {
		return Up(), 0
	}
	return axis.Normalize(), angle
}

// Mat4 returns the rotation as a column-major matrix.
func (q Quat) Mat4() Mat4 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return Mat4{
		1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y), 0,
		2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x), 0,
		2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y), 0,
		0, 0, 0, 1,
	}
}

// ApproxEqual reports whether every component differs by less than eps.
func (q Quat) ApproxEqual(r Quat, eps float32) bool {
	return ApproxEqual(q.W, r.W, eps) && ApproxEqual(q.X, r.X, eps) &&
		ApproxEqual(q.Y, r.Y, eps) && ApproxEqual(q.Z, r.Z, eps)
}

// QuatFromMat4 extracts the rotation from the upper 3x3 block of m, which
// must be orthonormal.
func QuatFromMat4(m Mat4) Quat {
	m00, m01, m02 := m[0], m[4], m[8]
	m10, m11, m12 := m[1], m[5], m[9]
	m20, m21, m22 := m[2], m[6], m[10]

	var q Quat
	switch tr := m00 + m11 + m22; {
	case tr > 0:
		s := 0.5 / Sqrt(tr+1)
		q = Quat{0.25 / s, (m21 - m12) * s, (m02 - m20) * s, (m10 - m01) * s}
	case m00 > m11 && m00 > m22:
		s := 2 * Sqrt(1+m00-m11-m22)
		q = Quat{(m21 - m12) / s, 0.25 * s, (m01 + m10) / s, (m02 + m20) / s}
	case m11 > m22:
		s := 2 * Sqrt(1+m11-m00-m22)
		q = Quat{(m02 - m20) / s, (m01 + m10) / s, 0.25 * s, (m12 + m21) / s}
	default:
		s := 2 * Sqrt(1+m22-m00-m11)
		q = Quat{(m10 - m01) / s, (m02 + m20) / s, (m12 + m21) / s, 0.25 * s}
	}
	return q.Normalize()
}
