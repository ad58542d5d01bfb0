package render

import (
	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Camera is a perspective camera whose pose is a view motor: the rigid
// motion that takes world space to camera space, where the camera sits at
// the origin looking down -Z with +Y up.
type Camera struct {
	// Pose inputs, kept so the view can be rebuilt after a dolly
	Eye, Target, Up math3d.Vec3

	// Projection parameters
	FOV         float32 // Vertical field of view in radians
	AspectRatio float32 // Width / Height
	Near        float32 // Near clipping plane
	Far         float32 // Far clipping plane

	view pga.Motor

	// Cached matrices (computed on demand)
	viewMatrix     math3d.Mat4
	projMatrix     math3d.Mat4
	viewProjMatrix math3d.Mat4
	viewDirty      bool
	projDirty      bool
	vpDirty        bool
}

// NewCamera creates a camera at (0, 2, 10) looking at the origin.
func NewCamera() *Camera {
	c := &Camera{
		FOV:         math3d.Pi / 3, // 60 degrees
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         1000,
		projDirty:   true,
	}
	c.Eye, c.Target, c.Up = math3d.V3(0, 2, 10), math3d.Zero3(), math3d.Up()
	c.view = motion.MustLookAt(c.Eye, c.Target, c.Up)
	c.viewDirty = true
	return c
}

// LookAt places the camera at eye facing target. On error the camera keeps
// its previous pose.
func (c *Camera) LookAt(eye, target, up math3d.Vec3) error {
	v, err := motion.LookAt(eye, target, up)
	if err != nil {
		return err
	}
	c.Eye, c.Target, c.Up = eye, target, up
	c.view = v
	c.viewDirty = true
	return nil
}

// View returns the world-to-camera motor.
func (c *Camera) View() pga.Motor {
	return c.view
}

// Position returns where the camera sits in world space.
func (c *Camera) Position() math3d.Vec3 {
	return motion.ApplyVec3(c.view.Inverse(), math3d.Zero3())
}

// Forward returns the world direction the camera looks along.
func (c *Camera) Forward() math3d.Vec3 {
	return motion.ApplyDir(c.view.Inverse(), math3d.V3(0, 0, -1))
}

// Right returns the world direction of the camera's +X.
func (c *Camera) Right() math3d.Vec3 {
	return motion.ApplyDir(c.view.Inverse(), math3d.V3(1, 0, 0))
}

// ViewLine returns the line from the eye through the target.
func (c *Camera) ViewLine() pga.Motor {
	return pga.JoinPoints(pga.PointFromVec3(c.Eye), pga.PointFromVec3(c.Target))
}

// Dolly moves the eye dist units toward the target along the view line, or
// away from it when dist is negative. The eye stops short of the near plane
// in front of the target.
func (c *Camera) Dolly(dist float32) error {
	if room := c.Eye.Distance(c.Target) - c.Near; dist > room {
		dist = room
	}
	t, err := motion.TranslateAlongLine(dist, c.ViewLine())
	if err != nil {
		return err
	}
	return c.LookAt(motion.ApplyVec3(t, c.Eye), c.Target, c.Up)
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float32) {
	c.FOV = fov
	c.projDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float32) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float32) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// ViewMatrix returns the view motor as a matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix = motion.ToMat4(c.view)
		c.viewDirty = false
		c.vpDirty = true
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
		c.vpDirty = true
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns the combined view-projection matrix.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	view, proj := c.ViewMatrix(), c.ProjectionMatrix()
	if c.vpDirty {
		c.viewProjMatrix = proj.Mul(view)
		c.vpDirty = false
	}
	return c.viewProjMatrix
}

// WorldToScreen moves a world point into camera space with the view motor
// and projects it. Returns (screenX, screenY, depth, visible).
func (c *Camera) WorldToScreen(worldPos math3d.Vec3, screenWidth, screenHeight int) (x, y, depth float32, visible bool) {
	eyePos := motion.ApplyVec3(c.view, worldPos)
	clipPos := c.ProjectionMatrix().MulVec4(math3d.V4FromV3(eyePos, 1))

	// Behind the camera
	if clipPos.W <= 0 {
		return 0, 0, 0, false
	}

	ndc := clipPos.PerspectiveDivide()
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, 0, false
	}

	x = (ndc.X + 1) * 0.5 * float32(screenWidth)
	y = (1 - ndc.Y) * 0.5 * float32(screenHeight) // Y is flipped
	depth = ndc.Z

	return x, y, depth, true
}
