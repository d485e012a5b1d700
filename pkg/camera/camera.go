package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pvogt/rayfield/pkg/core"
)

// Camera generates world-space rays from a camera-to-world transform and an
// inverse projection matrix. Both matrices are opaque per-frame inputs; the
// camera never mutates them.
type Camera struct {
	cameraToWorld mgl64.Mat4
	invProjection mgl64.Mat4
	origin        core.Vec3 // cached world-space camera position
}

// New creates a camera from a camera-to-world matrix and an inverse
// projection matrix
func New(cameraToWorld, invProjection mgl64.Mat4) *Camera {
	o := cameraToWorld.Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	return &Camera{
		cameraToWorld: cameraToWorld,
		invProjection: invProjection,
		origin:        core.NewVec3(o.X(), o.Y(), o.Z()),
	}
}

// NewLookAt builds a camera from an eye position, a look-at target, an up
// vector, a vertical field of view in degrees, and the output aspect ratio.
func NewLookAt(eye, target, up core.Vec3, vfovDegrees, aspect float64) *Camera {
	view := mgl64.LookAtV(
		mgl64.Vec3{eye.X, eye.Y, eye.Z},
		mgl64.Vec3{target.X, target.Y, target.Z},
		mgl64.Vec3{up.X, up.Y, up.Z},
	)
	proj := mgl64.Perspective(mgl64.DegToRad(vfovDegrees), aspect, 0.1, 1000.0)
	return New(view.Inv(), proj.Inv())
}

// Origin returns the camera's world-space position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// RayThrough returns the world-space ray through the normalized screen point
// (u, v), both in [-1, 1] with +v pointing up. The screen point is
// unprojected as a point into view space, and the resulting direction is
// rotated into world space without translation.
func (c *Camera) RayThrough(u, v float64) core.Ray {
	view := c.invProjection.Mul4x1(mgl64.Vec4{u, v, 0, 1})
	world := c.cameraToWorld.Mul4x1(mgl64.Vec4{view.X(), view.Y(), view.Z(), 0})
	direction := core.NewVec3(world.X(), world.Y(), world.Z()).Normalize()
	return core.NewRay(c.origin, direction)
}

// RayForPixel returns the ray through the center of pixel (x, y) in an image
// of the given dimensions. Pixel rows grow downward, so the v coordinate is
// flipped to keep +v up.
func (c *Camera) RayForPixel(x, y, width, height int) core.Ray {
	u := (float64(x)+0.5)/float64(width)*2.0 - 1.0
	v := 1.0 - (float64(y)+0.5)/float64(height)*2.0
	return c.RayThrough(u, v)
}
