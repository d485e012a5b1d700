package trace

import (
	"github.com/pvogt/rayfield/pkg/core"
)

const (
	// shadowEpsilon offsets shadow ray origins along the surface normal to
	// avoid self-intersection (shadow acne)
	shadowEpsilon = 1e-3
	// shadowFactor scales the albedo of surfaces in hard shadow
	shadowFactor = 0.1
)

// sunDirection is the fixed zenith sun; shadow rays always point straight up
var sunDirection = core.NewVec3(0, 1, 0)

// Scene is the analytic demo scene: an infinite ground plane at y=0 plus a
// collection of spheres. The collection is read-only during a frame; it only
// changes when the scene is regenerated between frames.
type Scene struct {
	Spheres      []Sphere
	GroundAlbedo core.Vec3
	SkyColor     core.Vec3
}

// NewScene creates a scene from a sphere collection and ground/sky colors
func NewScene(spheres []Sphere, groundAlbedo, skyColor core.Vec3) *Scene {
	return &Scene{
		Spheres:      spheres,
		GroundAlbedo: groundAlbedo,
		SkyColor:     skyColor,
	}
}

// Intersect returns the closest hit along the ray at the given time, or a
// record with infinite distance if the ray escapes to the sky.
func (s *Scene) Intersect(ray core.Ray, elapsed float64) core.RayHit {
	hit := core.NewRayHit()

	s.intersectGround(ray, &hit)
	for i := range s.Spheres {
		s.Spheres[i].Intersect(ray, elapsed, &hit)
	}

	return hit
}

// intersectGround tests the ray against the ground plane y=0
func (s *Scene) intersectGround(ray core.Ray, hit *core.RayHit) {
	if ray.Direction.Y == 0 {
		return
	}

	t := -ray.Origin.Y / ray.Direction.Y
	if t <= 0 {
		return
	}

	hit.Record(t, ray.At(t), core.NewVec3(0, 1, 0), s.GroundAlbedo)
}

// Shadowed reports whether the surface point is occluded toward the sun.
// The shadow ray starts a small epsilon along the normal.
func (s *Scene) Shadowed(position, normal core.Vec3, elapsed float64) bool {
	origin := position.Add(normal.Multiply(shadowEpsilon))
	hit := s.Intersect(core.NewRay(origin, sunDirection), elapsed)
	return hit.IsHit()
}

// Trace computes the color seen along a camera ray: the closest surface's
// albedo, dimmed to shadowFactor when in hard shadow, or the sky color when
// nothing is hit.
func (s *Scene) Trace(ray core.Ray, elapsed float64) core.Vec3 {
	hit := s.Intersect(ray, elapsed)
	if !hit.IsHit() {
		return s.SkyColor
	}

	if s.Shadowed(hit.Position, hit.Normal, elapsed) {
		return hit.Albedo.Multiply(shadowFactor)
	}
	return hit.Albedo
}
