package march

import (
	"testing"

	"github.com/pvogt/rayfield/pkg/core"
)

func TestOps_Combinators(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		d1, d2   float64
		expected float64
	}{
		{"union picks closer", OpUnion, 3, 1, 1},
		{"union negative wins", OpUnion, 0.5, -0.2, -0.2},
		{"intersect picks farther", OpIntersect, 3, 1, 3},
		{"intersect outside either is outside", OpIntersect, -1, 2, 2},
		// Inside the box (d1=-1) and inside the carving sphere (d2=-2):
		// the carved region is outside the result, distance 2
		{"subtract carves interior", OpSubtract, -1, -2, 2},
		{"subtract keeps surface clear of tool", OpSubtract, 0.5, 3, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.Combine(tt.d1, tt.d2); got != tt.expected {
				t.Errorf("%s(%v, %v): expected %v, got %v",
					tt.op, tt.d1, tt.d2, tt.expected, got)
			}
		})
	}
}

func TestOps_SubtractSelfIsEmpty(t *testing.T) {
	// Subtracting a primitive from itself never leaves a surface to hit:
	// max(d, -d) = |d| >= 0 everywhere, so no point is interior
	sphere := NewSpherePrimitive(core.NewVec3(0, 0, 0), 1)

	points := []core.Vec3{
		core.NewVec3(0, 0, 0),     // center
		core.NewVec3(0.5, 0, 0),   // inside
		core.NewVec3(2, 0, 0),     // outside
		core.NewVec3(0, -0.99, 0), // just inside the surface
	}

	for _, p := range points {
		d := sphere.Distance(p, 0)
		if got := Subtract(d, d); got < 0 {
			t.Errorf("Expected non-negative distance at %v, got %v", p, got)
		}
	}
}

func TestOps_String(t *testing.T) {
	if OpUnion.String() != "union" || OpIntersect.String() != "intersect" || OpSubtract.String() != "subtract" {
		t.Error("Unexpected operator names")
	}
}
