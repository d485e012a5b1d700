package march

import "math"

// Op is a boolean combinator over two signed distances
type Op int

const (
	OpUnion     Op = iota // surface exists where either input surface is
	OpIntersect           // surface exists only where both are
	OpSubtract            // first surface minus the region enclosed by the second
)

// Union returns the distance to the union of two surfaces
func Union(d1, d2 float64) float64 {
	return math.Min(d1, d2)
}

// Intersect returns the distance to the intersection of two surfaces
func Intersect(d1, d2 float64) float64 {
	return math.Max(d1, d2)
}

// Subtract carves the second surface's interior out of the first
func Subtract(d1, d2 float64) float64 {
	return math.Max(d1, -d2)
}

// Combine applies the operator to two signed distances
func (op Op) Combine(d1, d2 float64) float64 {
	switch op {
	case OpIntersect:
		return Intersect(d1, d2)
	case OpSubtract:
		return Subtract(d1, d2)
	default:
		return Union(d1, d2)
	}
}

func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersect:
		return "intersect"
	case OpSubtract:
		return "subtract"
	default:
		return "unknown"
	}
}
