package pga

// MulMotor returns the geometric product a * b of two motors.
func MulMotor(a, b Motor) Motor {
	return Motor{
		S: a.S*b.S - a.E23*b.E23 - a.E31*b.E31 - a.E12*b.E12,

		E23: a.S*b.E23 + a.E23*b.S - a.E31*b.E12 + a.E12*b.E31,
		E31: a.S*b.E31 + a.E23*b.E12 + a.E31*b.S - a.E12*b.E23,
		E12: a.S*b.E12 - a.E23*b.E31 + a.E31*b.E23 + a.E12*b.S,

		E01: a.S*b.E01 - a.E23*b.E0123 - a.E31*b.E03 + a.E12*b.E02 +
			a.E01*b.S - a.E02*b.E12 + a.E03*b.E31 - a.E0123*b.E23,
		E02: a.S*b.E02 + a.E23*b.E03 - a.E31*b.E0123 - a.E12*b.E01 +
			a.E01*b.E12 + a.E02*b.S - a.E03*b.E23 - a.E0123*b.E31,
		E03: a.S*b.E03 - a.E23*b.E02 + a.E31*b.E01 - a.E12*b.E0123 -
			a.E01*b.E31 + a.E02*b.E23 + a.E03*b.S - a.E0123*b.E12,

		E0123: a.S*b.E0123 + a.E23*b.E01 + a.E31*b.E02 + a.E12*b.E03 +
			a.E01*b.E23 + a.E02*b.E31 + a.E03*b.E12 + a.E0123*b.S,
	}
}

// MulPlanes returns a * b. The scalar part is the cosine of the angle
// between the normals and the bivector part is the line they meet in.
func MulPlanes(a, b Plane) Motor {
	return Motor{
		S:     a.E1*b.E1 + a.E2*b.E2 + a.E3*b.E3,
		E23:   a.E2*b.E3 - a.E3*b.E2,
		E31:   a.E3*b.E1 - a.E1*b.E3,
		E12:   a.E1*b.E2 - a.E2*b.E1,
		E01:   a.E0*b.E1 - a.E1*b.E0,
		E02:   a.E0*b.E2 - a.E2*b.E0,
		E03:   a.E0*b.E3 - a.E3*b.E0,
		E0123: 0,
	}
}

// MulPoints returns a * b. Only the scalar and the ideal bivectors survive:
// the result is a translation along b - a scaled by the weights.
func MulPoints(a, b Point) Motor {
	return Motor{
		S:   -a.W * b.W,
		E01: a.X*b.W - a.W*b.X,
		E02: a.Y*b.W - a.W*b.Y,
		E03: a.Z*b.W - a.W*b.Z,
	}
}

// MulPlanePoint returns plane * point.
func MulPlanePoint(pl Plane, p Point) Motor {
	return Motor{
		E23:   pl.E1 * p.W,
		E31:   pl.E2 * p.W,
		E12:   pl.E3 * p.W,
		E01:   pl.E3*p.Y - pl.E2*p.Z,
		E02:   pl.E1*p.Z - pl.E3*p.X,
		E03:   pl.E2*p.X - pl.E1*p.Y,
		E0123: pl.E0*p.W + pl.E1*p.X + pl.E2*p.Y + pl.E3*p.Z,
	}
}

// MulPointPlane returns point * plane. It differs from MulPlanePoint only in
// the sign of the pseudoscalar.
func MulPointPlane(p Point, pl Plane) Motor {
	m := MulPlanePoint(pl, p)
	m.E0123 = -m.E0123
	return m
}

// MulMotorPoint returns m * p.
func MulMotorPoint(m Motor, p Point) Flector {
	return Flector{
		Plane: Plane{
			E1: -m.E23 * p.W,
			E2: -m.E31 * p.W,
			E3: -m.E12 * p.W,
			E0: m.E23*p.X + m.E31*p.Y + m.E12*p.Z - m.E0123*p.W,
		},
		Point: Point{
			X: m.S*p.X + m.E12*p.Y - m.E31*p.Z - m.E01*p.W,
			Y: m.S*p.Y - m.E12*p.X + m.E23*p.Z - m.E02*p.W,
			Z: m.S*p.Z + m.E31*p.X - m.E23*p.Y - m.E03*p.W,
			W: m.S * p.W,
		},
	}
}

// MulPointMotor returns p * m. Compared to MulMotorPoint the Euclidean and
// ideal bivector terms of the point part and the pseudoscalar term of the
// plane part change sign.
func MulPointMotor(p Point, m Motor) Flector {
	return Flector{
		Plane: Plane{
			E1: -m.E23 * p.W,
			E2: -m.E31 * p.W,
			E3: -m.E12 * p.W,
			E0: m.E23*p.X + m.E31*p.Y + m.E12*p.Z + m.E0123*p.W,
		},
		Point: Point{
			X: m.S*p.X - m.E12*p.Y + m.E31*p.Z + m.E01*p.W,
			Y: m.S*p.Y + m.E12*p.X - m.E23*p.Z + m.E02*p.W,
			Z: m.S*p.Z - m.E31*p.X + m.E23*p.Y + m.E03*p.W,
			W: m.S * p.W,
		},
	}
}

// MulPlaneMotor returns pl * m.
func MulPlaneMotor(pl Plane, m Motor) Flector {
	return Flector{
		Plane: Plane{
			E1: pl.E1*m.S - pl.E2*m.E12 + pl.E3*m.E31,
			E2: pl.E1*m.E12 + pl.E2*m.S - pl.E3*m.E23,
			E3: pl.E2*m.E23 + pl.E3*m.S - pl.E1*m.E31,
			E0: pl.E0*m.S - pl.E1*m.E01 - pl.E2*m.E02 - pl.E3*m.E03,
		},
		Point: Point{
			X: -pl.E0*m.E23 + pl.E1*m.E0123 + pl.E2*m.E03 - pl.E3*m.E02,
			Y: -pl.E0*m.E31 - pl.E1*m.E03 + pl.E2*m.E0123 + pl.E3*m.E01,
			Z: -pl.E0*m.E12 + pl.E1*m.E02 - pl.E2*m.E01 + pl.E3*m.E0123,
			W: pl.E1*m.E23 + pl.E2*m.E31 + pl.E3*m.E12,
		},
	}
}

// MulMotorPlane returns m * pl.
func MulMotorPlane(m Motor, pl Plane) Flector {
	return Flector{
		Plane: Plane{
			E1: m.S*pl.E1 - m.E31*pl.E3 + m.E12*pl.E2,
			E2: m.S*pl.E2 + m.E23*pl.E3 - m.E12*pl.E1,
			E3: m.S*pl.E3 - m.E23*pl.E2 + m.E31*pl.E1,
			E0: m.S*pl.E0 + m.E01*pl.E1 + m.E02*pl.E2 + m.E03*pl.E3,
		},
		Point: Point{
			X: -m.E23*pl.E0 - m.E02*pl.E3 + m.E03*pl.E2 - m.E0123*pl.E1,
			Y: -m.E31*pl.E0 + m.E01*pl.E3 - m.E03*pl.E1 - m.E0123*pl.E2,
			Z: -m.E12*pl.E0 - m.E01*pl.E2 + m.E02*pl.E1 - m.E0123*pl.E3,
			W: m.E23*pl.E1 + m.E31*pl.E2 + m.E12*pl.E3,
		},
	}
}

// MulFlectorMotor returns f * m by distributing over the two parts.
func MulFlectorMotor(f Flector, m Motor) Flector {
	return MulPointMotor(f.Point, m).Add(MulPlaneMotor(f.Plane, m))
}

// MulMotorFlector returns m * f.
func MulMotorFlector(m Motor, f Flector) Flector {
	return MulMotorPoint(m, f.Point).Add(MulMotorPlane(m, f.Plane))
}
