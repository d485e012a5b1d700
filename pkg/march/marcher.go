package march

import (
	"github.com/pvogt/rayfield/pkg/core"
)

// Marcher drives sphere tracing over a scene SDF: the ray advances by the
// sampled distance each step, which is safe because the SDF never
// overestimates the distance to the nearest surface.
type Marcher struct {
	Scene         *Scene
	MaxSteps      int     // iteration budget; exhaustion is a miss, not an error
	HitEpsilon    float64 // convergence threshold for a surface hit
	NormalEpsilon float64 // central-difference step for normal estimation
	StartOffset   float64 // initial advance along the ray
	MaxDistance   float64 // far-plane escape; rays past this distance miss
}

// NewMarcher creates a marcher with the given step budget and default
// thresholds
func NewMarcher(scene *Scene, maxSteps int) *Marcher {
	return &Marcher{
		Scene:         scene,
		MaxSteps:      maxSteps,
		HitEpsilon:    1e-3,
		NormalEpsilon: 1e-3,
		StartOffset:   1e-2,
		MaxDistance:   200.0,
	}
}

// March sphere-traces the ray and returns the hit record, or a record with
// infinite distance when the step budget is exhausted or the ray escapes.
func (m *Marcher) March(ray core.Ray, elapsed float64) core.RayHit {
	traveled := m.StartOffset

	for step := 0; step < m.MaxSteps; step++ {
		position := ray.At(traveled)
		sample := m.Scene.Evaluate(position, elapsed)

		if sample.Distance < m.HitEpsilon {
			hit := core.NewRayHit()
			hit.Record(traveled, position, m.NormalAt(position, elapsed), sample.Albedo)
			return hit
		}

		traveled += sample.Distance
		if traveled > m.MaxDistance {
			break
		}
	}

	return core.NewRayHit()
}

// NormalAt estimates the surface normal at a point by central-difference
// sampling of the SDF along each axis
func (m *Marcher) NormalAt(point core.Vec3, elapsed float64) core.Vec3 {
	e := m.NormalEpsilon
	dx := m.Scene.Evaluate(point.Add(core.NewVec3(e, 0, 0)), elapsed).Distance -
		m.Scene.Evaluate(point.Subtract(core.NewVec3(e, 0, 0)), elapsed).Distance
	dy := m.Scene.Evaluate(point.Add(core.NewVec3(0, e, 0)), elapsed).Distance -
		m.Scene.Evaluate(point.Subtract(core.NewVec3(0, e, 0)), elapsed).Distance
	dz := m.Scene.Evaluate(point.Add(core.NewVec3(0, 0, e)), elapsed).Distance -
		m.Scene.Evaluate(point.Subtract(core.NewVec3(0, 0, e)), elapsed).Distance

	return core.NewVec3(dx, dy, dz).Normalize()
}
