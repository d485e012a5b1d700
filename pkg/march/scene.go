package march

import (
	"math"

	"github.com/pvogt/rayfield/pkg/core"
)

// Sample is the result of evaluating the scene SDF at a point: the signed
// distance to the nearest surface and that surface's base color
type Sample struct {
	Distance float64
	Albedo   core.Vec3
}

// Part pairs a primitive with the operator that folds it into its object.
// The first part of an object seeds the fold; its operator is ignored.
type Part struct {
	Op        Op
	Primitive Primitive
}

// Object is a sequence of primitives folded left to right with explicit
// combinators, sharing one albedo
type Object struct {
	Parts  []Part
	Albedo core.Vec3
}

// NewObject creates an object from a seed primitive
func NewObject(seed Primitive, albedo core.Vec3) Object {
	return Object{
		Parts:  []Part{{Op: OpUnion, Primitive: seed}},
		Albedo: albedo,
	}
}

// With appends a primitive combined with the given operator
func (o Object) With(op Op, p Primitive) Object {
	o.Parts = append(o.Parts, Part{Op: op, Primitive: p})
	return o
}

// Distance folds the object's parts into a single signed distance
func (o *Object) Distance(point core.Vec3, elapsed float64) float64 {
	if len(o.Parts) == 0 {
		return math.Inf(1)
	}

	d := o.Parts[0].Primitive.Distance(point, elapsed)
	for _, part := range o.Parts[1:] {
		d = part.Op.Combine(d, part.Primitive.Distance(point, elapsed))
	}
	return d
}

// Scene is a union of objects. Evaluating it keeps the minimum-distance
// object as the active hit candidate, carrying its albedo.
type Scene struct {
	Objects  []Object
	SkyColor core.Vec3
}

// NewScene creates a scene from a set of objects and a sky color
func NewScene(objects []Object, skyColor core.Vec3) *Scene {
	return &Scene{Objects: objects, SkyColor: skyColor}
}

// Evaluate returns the scene SDF sample at the point: the pointwise minimum
// over all objects' distances, with the closest object's albedo
func (s *Scene) Evaluate(point core.Vec3, elapsed float64) Sample {
	sample := Sample{Distance: math.Inf(1)}

	for i := range s.Objects {
		if d := s.Objects[i].Distance(point, elapsed); d < sample.Distance {
			sample.Distance = d
			sample.Albedo = s.Objects[i].Albedo
		}
	}

	return sample
}

// NewDemoScene builds the fixed demo scene: a bobbing sphere, a pillar
// formed by carving a large sphere out of a box, and an infinite ground
// plane at y=0.
func NewDemoScene(groundAlbedo, skyColor core.Vec3) *Scene {
	orb := Primitive{
		Kind:              KindSphere,
		Center:            core.NewVec3(0, 1.6, 0),
		Radius:            1.0,
		FloatingMagnitude: 0.4,
	}

	pillarBox := NewBoxPrimitive(core.NewVec3(-3, 1.25, -1.5), core.NewVec3(0.75, 1.25, 0.75))
	pillarHole := NewSpherePrimitive(core.NewVec3(-3, 2.5, -0.75), 1.1)

	objects := []Object{
		NewObject(orb, core.NewVec3(0.85, 0.3, 0.25)),
		NewObject(pillarBox, core.NewVec3(0.7, 0.65, 0.6)).With(OpSubtract, pillarHole),
		NewObject(NewPlanePrimitive(0), groundAlbedo),
	}

	return NewScene(objects, skyColor)
}
