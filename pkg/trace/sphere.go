package trace

import (
	"math"

	"github.com/pvogt/rayfield/pkg/core"
)

// Sphere is an analytically intersected sphere. Floating spheres bob
// vertically over time; the vertical offset is computed from the elapsed
// time each frame and never stored.
type Sphere struct {
	Center            core.Vec3
	Radius            float64
	FloatingOffset    float64 // phase offset into the bob cycle
	FloatingMagnitude float64 // bob amplitude, 0 disables floating motion
	Albedo            core.Vec3
}

// NewSphere creates a static sphere with the given center, radius, and albedo
func NewSphere(center core.Vec3, radius float64, albedo core.Vec3) Sphere {
	return Sphere{Center: center, Radius: radius, Albedo: albedo}
}

// CenterAt returns the sphere's center at the given elapsed time
func (s *Sphere) CenterAt(elapsed float64) core.Vec3 {
	if s.FloatingMagnitude == 0 {
		return s.Center
	}
	offset := math.Sin(elapsed+s.FloatingOffset) * s.FloatingMagnitude
	return core.NewVec3(s.Center.X, s.Center.Y+offset, s.Center.Z)
}

// Intersect tests the ray against the sphere at the given time and records
// the intersection if it is strictly closer than the current record.
// Ray directions are unit length, so the quadratic's leading coefficient is 1.
func (s *Sphere) Intersect(ray core.Ray, elapsed float64, hit *core.RayHit) {
	center := s.CenterAt(elapsed)
	oc := ray.Origin.Subtract(center)

	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - c
	if discriminant < 0 {
		return
	}

	sqrtD := math.Sqrt(discriminant)

	// Prefer the near intersection; fall back to the far one when the near
	// root is behind the origin, which handles a camera inside the sphere.
	root := -halfB - sqrtD
	if root <= 0 {
		root = -halfB + sqrtD
	}
	if root <= 0 {
		return
	}

	position := ray.At(root)
	normal := position.Subtract(center).Multiply(1.0 / s.Radius)
	hit.Record(root, position, normal, s.Albedo)
}
