package camera

import (
	"math"

	"github.com/pvogt/rayfield/pkg/core"
)

// OrbitRig produces per-frame cameras circling a target at a fixed radius
// and height, so animations show parallax. The rendering core still sees
// only the resulting per-frame matrices.
type OrbitRig struct {
	Target       core.Vec3
	Radius       float64
	Height       float64
	AngularSpeed float64 // radians per second of scene time
	VFov         float64 // vertical field of view in degrees
	Aspect       float64
}

// NewOrbitRig creates an orbit rig with a slow default angular speed
func NewOrbitRig(target core.Vec3, radius, height, vfov, aspect float64) OrbitRig {
	return OrbitRig{
		Target:       target,
		Radius:       radius,
		Height:       height,
		AngularSpeed: 0.25,
		VFov:         vfov,
		Aspect:       aspect,
	}
}

// CameraAt returns the camera for the given elapsed time
func (r OrbitRig) CameraAt(elapsed float64) *Camera {
	angle := elapsed * r.AngularSpeed
	eye := core.NewVec3(
		r.Target.X+r.Radius*math.Sin(angle),
		r.Height,
		r.Target.Z+r.Radius*math.Cos(angle),
	)
	return NewLookAt(eye, r.Target, core.NewVec3(0, 1, 0), r.VFov, r.Aspect)
}
