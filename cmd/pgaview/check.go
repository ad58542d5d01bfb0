package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/measure"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// checkEps is the tolerance of the geometric checks.
const checkEps = 1e-4

var errCheckFailed = errors.New("checks failed")

type check struct {
	name string
	run  func() error
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the algebra checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := runChecks(cmd.OutOrStdout(), checks())
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errCheckFailed, failed, len(checks()))
			}
			return nil
		},
	}
}

// runChecks prints one PASS or FAIL line per check and returns the number of
// failures.
func runChecks(w io.Writer, cs []check) int {
	failed := 0
	for _, c := range cs {
		if err := c.run(); err != nil {
			failed++
			fmt.Fprintf(w, "FAIL  %s: %v\n", c.name, err)
			continue
		}
		fmt.Fprintf(w, "PASS  %s\n", c.name)
	}
	return failed
}

func checks() []check {
	return []check{
		{"motor times its inverse is the identity", checkInverse},
		{"dual is an involution", checkDual},
		{"join of points is the dual of the meet of their duals", checkJoin},
		{"translation and rotation split back out of a motor", checkDecompose},
		{"slerp hits its endpoints", checkSlerp},
		{"applying a product equals applying its factors", checkComposition},
		{"two constructions of the same motion agree", checkConstruction},
		{"look-at matches quaternion and matrix builds", checkLookAt},
		{"a line at infinity normalizes by its ideal magnitude", checkIdealNormalize},
		{"parallel planes are distinct and 5 apart", checkParallelPlanes},
	}
}

func expectPoint(what string, want, got math3d.Vec3) error {
	if !want.ApproxEqual(got, checkEps) {
		return fmt.Errorf("%s: got %s, want %s", what, fmtVec(got), fmtVec(want))
	}
	return nil
}

// samplePoints are the points each motion check maps.
var samplePoints = []math3d.Vec3{
	math3d.V3(1, 0, 0),
	math3d.V3(0, 2, -1),
	math3d.V3(-3, 1, 4),
	math3d.V3(5, -7, 2),
}

func sampleMotor() pga.Motor {
	return motion.Compose(
		motion.Translate(math3d.V3(1, -2, 3)),
		motion.Rotate(0.7, math3d.V3(1, 1, 0)),
	)
}

func checkInverse() error {
	m := sampleMotor()
	if got := pga.MulMotor(m, m.Inverse()); !got.ApproxEqual(pga.Identity(), checkEps) {
		return fmt.Errorf("got %v", got)
	}
	return nil
}

func checkDual() error {
	pl := pga.PlaneFromComponents(1, -2, 3, 4)
	p := pga.NewPoint(5, 6, -7, 2)
	m := sampleMotor()
	if pl.Dual().Dual() != pl {
		return fmt.Errorf("plane %v", pl)
	}
	if p.Dual().Dual() != p {
		return fmt.Errorf("point %v", p)
	}
	if m.Dual().Dual() != m {
		return fmt.Errorf("motor %v", m)
	}
	return nil
}

func checkJoin() error {
	a := pga.NewPoint(1, 2, 3, 1)
	b := pga.NewPoint(4, -1, 5, 1)
	l := pga.JoinPoints(a, b)
	if dual := pga.MeetPlanes(a.Dual(), b.Dual()).Dual(); dual != l {
		return fmt.Errorf("join %v, dual of meet %v", l, dual)
	}
	for _, p := range []pga.Point{a, b} {
		d, err := measure.OrientedDistLine(p, l)
		if err != nil {
			return err
		}
		if math3d.Abs(d) > checkEps {
			return fmt.Errorf("%v is %g from its own line", p, d)
		}
	}
	return nil
}

func checkDecompose() error {
	r := motion.Rotate(1.1, math3d.V3(0, 1, 1))
	m := pga.MulMotor(motion.Translate(math3d.V3(4, 0, -2)), r)
	rebuilt := pga.MulMotor(motion.TranslationMotor(m), motion.Rotation(m))
	for _, v := range samplePoints {
		if err := expectPoint("rotation", motion.ApplyVec3(r, v), motion.ApplyVec3(motion.Rotation(m), v)); err != nil {
			return err
		}
		if err := expectPoint("rebuilt", motion.ApplyVec3(m, v), motion.ApplyVec3(rebuilt, v)); err != nil {
			return err
		}
	}
	return nil
}

func checkSlerp() error {
	a := sampleMotor()
	b := motion.Compose(motion.Translate(math3d.V3(-2, 5, 0)), motion.Rotate(-0.4, math3d.V3(0, 0, 1)))
	if got := motion.Slerp(a, b, 0); !got.ApproxEqual(a, checkEps) {
		return fmt.Errorf("t=0: got %v, want %v", got, a)
	}
	if got := motion.Slerp(a, b, 1); !got.ApproxEqual(b, checkEps) {
		return fmt.Errorf("t=1: got %v, want %v", got, b)
	}

	ta := motion.Translate(math3d.V3(0, 0, 0))
	tb := motion.Translate(math3d.V3(4, -2, 6))
	mid := motion.Slerp(ta, tb, 0.5)
	return expectPoint("translation midpoint", math3d.V3(2, -1, 3), motion.ApplyVec3(mid, math3d.Zero3()))
}

func checkComposition() error {
	m1 := sampleMotor()
	m2 := motion.Compose(motion.Rotate(-1.3, math3d.V3(0, 0, 1)), motion.Translate(math3d.V3(0, 3, 1)))
	m12 := pga.MulMotor(m1, m2)
	for _, v := range samplePoints {
		p := pga.PointFromVec3(v)
		want, err := motion.Apply(m1, motion.Apply(m2, p)).Normalize()
		if err != nil {
			return err
		}
		got, err := motion.Apply(m12, p).Normalize()
		if err != nil {
			return err
		}
		if err := expectPoint("composed", want.Vec3(), got.Vec3()); err != nil {
			return err
		}
	}
	return nil
}

func checkConstruction() error {
	angle := float32(90) * math3d.DegreesToRadians
	t := math3d.V3(10, 0, 0)
	product := pga.MulMotor(motion.Translate(t), motion.Rotate(angle, math3d.Up()))
	direct := motion.FromRotationTranslation(math3d.AngleAxis(angle, math3d.Up()), t)
	v := math3d.V3(1, 0, 0)
	return expectPoint("constructions", motion.ApplyVec3(product, v), motion.ApplyVec3(direct, v))
}

func checkLookAt() error {
	eye := math3d.V3(0, 0, 20)
	at := math3d.V3(1, 0, 20)
	up := math3d.Up()

	m, err := motion.LookAt(eye, at, up)
	if err != nil {
		return err
	}
	turn := math3d.AngleAxis(-90*math3d.DegreesToRadians, up).Inverse()
	want := pga.MulMotor(motion.RotateQuat(turn), motion.Translate(eye.Negate()))
	view := math3d.LookAt(eye, at, up)

	for _, v := range append([]math3d.Vec3{eye, at}, samplePoints...) {
		got := motion.ApplyVec3(m, v)
		if err := expectPoint("quaternion build", motion.ApplyVec3(want, v), got); err != nil {
			return err
		}
		if err := expectPoint("matrix", view.MulVec3(v), got); err != nil {
			return err
		}
	}
	return nil
}

func checkIdealNormalize() error {
	m := pga.NewMotor(0, 0, 0, 0, 5, 6, 7, 8)
	got, err := m.Normalize()
	if err != nil {
		return err
	}
	want := m.Scale(1 / math3d.Sqrt(110))
	if !got.ApproxEqual(want, 1e-6) {
		return fmt.Errorf("got %v, want %v", got, want)
	}
	return nil
}

func checkParallelPlanes() error {
	ground, err := pga.NewPlane(math3d.Up(), 0)
	if err != nil {
		return err
	}
	raised, err := pga.NewPlane(math3d.Up(), 5)
	if err != nil {
		return err
	}
	if ground.Similar(raised) {
		return fmt.Errorf("%v and %v reported similar", ground, raised)
	}
	d0, err := measure.OrientedDistPlane(pga.Origin(), ground)
	if err != nil {
		return err
	}
	d5, err := measure.OrientedDistPlane(pga.Origin(), raised)
	if err != nil {
		return err
	}
	if d0-d5 != 5 {
		return fmt.Errorf("distances %g and %g differ by %g", d0, d5, d0-d5)
	}
	return nil
}
