package pga

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace groups the registered error codes of this module.
const Codespace = "pga"

var (
	// ErrDivideByNearZero is returned when a divisor or normalizing
	// magnitude falls below math3d.VerySmall.
	ErrDivideByNearZero = errorsmod.Register(Codespace, 2, "divide by near zero")

	// ErrDegenerateGeometry is returned when inputs do not describe the
	// requested object: an unnormalized plane normal, collinear vertices,
	// a zero-area shape, an undefined alignment.
	ErrDegenerateGeometry = errorsmod.Register(Codespace, 3, "degenerate geometry")
)
