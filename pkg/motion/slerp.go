package motion

import (
	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Slerp interpolates between two unit motors. The relative motion
// end * ~start is split into a rotation angle about its axis and a
// translation, both scaled by t and applied after start.
//
// Slerp(a, b, 0) is a and Slerp(a, b, 1) is b. The rotation is taken the way
// the relative motor describes it, which may be the long way round.
func Slerp(start, end pga.Motor, t float32) pga.Motor {
	rel := pga.MulMotor(end, start.Inverse())

	// atan2 keeps tiny angles exact where acos(S) would round S to 1.
	bv := math3d.V3(-rel.E23, -rel.E31, -rel.E12)
	angle := 2 * math3d.Atan2(bv.Len(), rel.S)
	axis := bv.Normalize()
	if angle < math3d.VerySmall || axis == (math3d.Vec3{}) {
		axis = math3d.Up()
	}

	tr := Translation(rel).Scale(t)
	return Compose(Translate(tr), Rotate(t*angle, axis), start)
}
