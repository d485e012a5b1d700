package march

import (
	"math"

	"github.com/pvogt/rayfield/pkg/core"
)

// Kind identifies an SDF primitive shape
type Kind int

const (
	KindSphere Kind = iota
	KindBox
	KindPlane
)

// Primitive is a tagged SDF primitive: a shape kind plus its parameters.
// Scenes are built from sequences of primitives folded with explicit
// combinators instead of hard-coded distance call chains, so new shapes
// only need a new kind here.
type Primitive struct {
	Kind              Kind
	Center            core.Vec3 // all kinds; plane uses only Y
	Radius            float64   // sphere
	Size              core.Vec3 // box half-extents
	FloatingOffset    float64   // phase offset into the bob cycle
	FloatingMagnitude float64   // bob amplitude, 0 disables floating motion
}

// NewSpherePrimitive creates a sphere primitive
func NewSpherePrimitive(center core.Vec3, radius float64) Primitive {
	return Primitive{Kind: KindSphere, Center: center, Radius: radius}
}

// NewBoxPrimitive creates a box primitive with the given half-extents
func NewBoxPrimitive(center, size core.Vec3) Primitive {
	return Primitive{Kind: KindBox, Center: center, Size: size}
}

// NewPlanePrimitive creates an infinite horizontal plane at the given height
func NewPlanePrimitive(height float64) Primitive {
	return Primitive{Kind: KindPlane, Center: core.NewVec3(0, height, 0)}
}

// centerAt returns the primitive's center at the given elapsed time
func (p Primitive) centerAt(elapsed float64) core.Vec3 {
	if p.FloatingMagnitude == 0 {
		return p.Center
	}
	offset := math.Sin(elapsed+p.FloatingOffset) * p.FloatingMagnitude
	return core.NewVec3(p.Center.X, p.Center.Y+offset, p.Center.Z)
}

// Distance returns the signed distance from the point to the primitive's
// surface: negative inside, positive outside, never an overestimate.
func (p Primitive) Distance(point core.Vec3, elapsed float64) float64 {
	switch p.Kind {
	case KindSphere:
		return point.Subtract(p.centerAt(elapsed)).Length() - p.Radius
	case KindBox:
		q := point.Subtract(p.centerAt(elapsed)).Abs().Subtract(p.Size)
		outside := q.Max(core.Vec3{}).Length()
		inside := math.Min(q.MaxComponent(), 0)
		return outside + inside
	case KindPlane:
		return point.Y - p.Center.Y
	default:
		return math.Inf(1)
	}
}
