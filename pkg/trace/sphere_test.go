package trace

import (
	"math"
	"testing"

	"github.com/pvogt/rayfield/pkg/core"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 0, 0))
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit := core.NewRayHit()
	sphere.Intersect(ray, 0, &hit)

	if hit.IsHit() {
		t.Errorf("Expected miss, got hit at distance %f", hit.Distance)
	}
}

func TestSphere_Intersect_HeadOnDistance(t *testing.T) {
	// A ray from outside aimed at the center hits at |origin-center| - radius
	tests := []struct {
		name   string
		origin core.Vec3
		center core.Vec3
		radius float64
	}{
		{"along -z", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -5), 1.0},
		{"along +x", core.NewVec3(-3, 2, 1), core.NewVec3(7, 2, 1), 2.5},
		{"diagonal", core.NewVec3(1, 1, 1), core.NewVec3(4, 5, 1), 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, core.NewVec3(1, 1, 1))
			direction := tt.center.Subtract(tt.origin).Normalize()
			ray := core.NewRay(tt.origin, direction)

			hit := core.NewRayHit()
			sphere.Intersect(ray, 0, &hit)

			if !hit.IsHit() {
				t.Fatal("Expected hit, got miss")
			}

			expected := tt.center.Subtract(tt.origin).Length() - tt.radius
			if math.Abs(hit.Distance-expected) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", expected, hit.Distance)
			}

			// Normal points back toward the ray origin for a head-on hit
			if math.Abs(hit.Normal.Dot(direction)+1.0) > 1e-9 {
				t.Errorf("Expected normal opposing ray direction, got %v", hit.Normal)
			}
		})
	}
}

func TestSphere_Intersect_InsideUsesFarRoot(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit := core.NewRayHit()
	sphere.Intersect(ray, 0, &hit)

	if !hit.IsHit() {
		t.Fatal("Expected hit from inside the sphere")
	}
	if math.Abs(hit.Distance-2.0) > 1e-9 {
		t.Errorf("Expected far-root distance 2, got %f", hit.Distance)
	}
}

func TestSphere_Intersect_BehindCameraIgnored(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit := core.NewRayHit()
	sphere.Intersect(ray, 0, &hit)

	if hit.IsHit() {
		t.Errorf("Expected sphere behind camera to be ignored, got distance %f", hit.Distance)
	}
}

func TestSphere_CenterAt_Floating(t *testing.T) {
	sphere := Sphere{
		Center:            core.NewVec3(0, 1, 0),
		Radius:            1,
		FloatingOffset:    0,
		FloatingMagnitude: 0.5,
	}

	// sin(pi/2) = 1, so the center is lifted by the full magnitude
	center := sphere.CenterAt(math.Pi / 2)
	if math.Abs(center.Y-1.5) > 1e-9 {
		t.Errorf("Expected center y=1.5, got %f", center.Y)
	}

	// Zero magnitude means no motion regardless of time
	static := NewSphere(core.NewVec3(0, 1, 0), 1, core.NewVec3(1, 1, 1))
	if static.CenterAt(123.456) != static.Center {
		t.Error("Expected static sphere center to be time-invariant")
	}
}

func TestSphere_Intersect_FloatingOffsetApplied(t *testing.T) {
	sphere := Sphere{
		Center:            core.NewVec3(0, 0, -5),
		Radius:            0.5,
		FloatingMagnitude: 2.0,
		Albedo:            core.NewVec3(1, 1, 1),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// At t=0 the sphere sits on the ray axis
	hit := core.NewRayHit()
	sphere.Intersect(ray, 0, &hit)
	if !hit.IsHit() {
		t.Fatal("Expected hit at t=0")
	}

	// At sin(t)=1 the sphere has bobbed 2 units up, clear of the ray
	hit = core.NewRayHit()
	sphere.Intersect(ray, math.Pi/2, &hit)
	if hit.IsHit() {
		t.Errorf("Expected miss after bob, got distance %f", hit.Distance)
	}
}
