package scenegen

import (
	"math"
	"testing"
)

func TestGenerate_NoOverlaps(t *testing.T) {
	cfg := Config{
		SphereCount:     100,
		PlacementRadius: 10,
		RadiusMin:       0,
		RadiusMax:       5,
		MagnitudeMin:    0.1,
		MagnitudeMax:    0.5,
		Seed:            1,
	}
	spheres := Generate(cfg)

	for i := 0; i < len(spheres); i++ {
		for j := i + 1; j < len(spheres); j++ {
			dist := spheres[i].Center.Subtract(spheres[j].Center).Length()
			minDist := spheres[i].Radius + spheres[j].Radius
			if dist < minDist {
				t.Errorf("Spheres %d and %d overlap: center distance %f < radii sum %f",
					i, j, dist, minDist)
			}
		}
	}
}

func TestGenerate_AcceptedCountMayBeLower(t *testing.T) {
	// Large radii in a small disk force rejections
	cfg := Config{
		SphereCount:     100,
		PlacementRadius: 2,
		RadiusMin:       1,
		RadiusMax:       2,
		Seed:            3,
	}
	spheres := Generate(cfg)

	if len(spheres) > cfg.SphereCount {
		t.Fatalf("Generated more spheres than requested: %d", len(spheres))
	}
	if len(spheres) == cfg.SphereCount {
		t.Errorf("Expected rejections in a crowded disk, accepted all %d", len(spheres))
	}
	if len(spheres) == 0 {
		t.Error("Expected at least one accepted sphere")
	}
}

func TestGenerate_PlacementInvariants(t *testing.T) {
	cfg := DefaultConfig()
	spheres := Generate(cfg)

	if len(spheres) == 0 {
		t.Fatal("Expected spheres from default config")
	}

	for i, s := range spheres {
		if s.Radius < cfg.RadiusMin || s.Radius > cfg.RadiusMax {
			t.Errorf("Sphere %d radius %f outside [%f, %f]", i, s.Radius, cfg.RadiusMin, cfg.RadiusMax)
		}
		// Resting on the ground plane
		if s.Center.Y != s.Radius {
			t.Errorf("Sphere %d center y=%f, expected radius %f", i, s.Center.Y, s.Radius)
		}
		// Inside the placement disk
		horizontal := math.Hypot(s.Center.X, s.Center.Z)
		if horizontal > cfg.PlacementRadius {
			t.Errorf("Sphere %d placed at disk radius %f > %f", i, horizontal, cfg.PlacementRadius)
		}
		// Colors in [0,1]
		for _, ch := range []float64{s.Albedo.X, s.Albedo.Y, s.Albedo.Z} {
			if ch < 0 || ch > 1 {
				t.Errorf("Sphere %d albedo out of range: %v", i, s.Albedo)
			}
		}
		if s.FloatingMagnitude < 0 {
			t.Errorf("Sphere %d has negative floating magnitude", i)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultConfig()

	a := Generate(cfg)
	b := Generate(cfg)

	if len(a) != len(b) {
		t.Fatalf("Same seed produced different counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Sphere %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}

	cfg.Seed++
	c := Generate(cfg)
	same := len(a) == len(c)
	if same {
		for i := range a {
			if a[i] != c[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Different seeds produced identical scenes")
	}
}

func TestGenerate_SomeSpheresFloat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SphereCount = 60
	spheres := Generate(cfg)

	floating := 0
	for _, s := range spheres {
		if s.FloatingMagnitude > 0 {
			floating++
		}
	}

	// 2/3 probability: with 60 candidates both classes should appear
	if floating == 0 {
		t.Error("Expected some floating spheres")
	}
	if floating == len(spheres) {
		t.Error("Expected some static spheres")
	}
}
