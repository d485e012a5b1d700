package scenegen

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pvogt/rayfield/pkg/core"
	"github.com/pvogt/rayfield/pkg/trace"
)

const (
	// floatingProbability is the chance a sphere gets floating motion
	floatingProbability = 2.0 / 3.0
	// minMagnitudeScale floors the inverse radius scaling so near-zero
	// radii cannot produce unbounded bob amplitudes
	minMagnitudeScale = 0.25
)

// Config controls sphere placement. It is passed by value and never
// mutated; regeneration with the same config and seed is deterministic.
type Config struct {
	SphereCount          int     // requested count; accepted count may be lower
	PlacementRadius      float64 // spheres land inside a disk of this radius
	RadiusMin, RadiusMax float64
	MagnitudeMin         float64 // floating magnitude range before scaling
	MagnitudeMax         float64
	Seed                 int64
}

// DefaultConfig returns sensible placement defaults
func DefaultConfig() Config {
	return Config{
		SphereCount:     40,
		PlacementRadius: 12.0,
		RadiusMin:       0.3,
		RadiusMax:       1.6,
		MagnitudeMin:    0.1,
		MagnitudeMax:    0.4,
		Seed:            42,
	}
}

// Generate places up to cfg.SphereCount spheres on the ground plane.
// Candidates whose bounding sphere overlaps a previously accepted sphere
// are discarded, not retried, so the result may hold fewer spheres than
// requested; that is expected behavior, not an error.
func Generate(cfg Config) []trace.Sphere {
	random := rand.New(rand.NewSource(cfg.Seed))
	spheres := make([]trace.Sphere, 0, cfg.SphereCount)

	for i := 0; i < cfg.SphereCount; i++ {
		radius := cfg.RadiusMin + random.Float64()*(cfg.RadiusMax-cfg.RadiusMin)
		disk := core.RandomInUnitDisk(random).Multiply(cfg.PlacementRadius)

		candidate := trace.Sphere{
			Center: core.NewVec3(disk.X, radius, disk.Z), // resting on the ground
			Radius: radius,
			Albedo: sampleAlbedo(random),
		}

		if random.Float64() < floatingProbability {
			candidate.FloatingOffset = random.Float64() * 2 * math.Pi
			magnitude := cfg.MagnitudeMin + random.Float64()*(cfg.MagnitudeMax-cfg.MagnitudeMin)
			candidate.FloatingMagnitude = magnitude / magnitudeScale(radius, cfg.RadiusMax)
		}

		if overlapsAny(candidate, spheres) {
			continue
		}
		spheres = append(spheres, candidate)
	}

	return spheres
}

// magnitudeScale scales bob amplitudes inversely by the sphere's radius
// relative to the configured maximum, floored at minMagnitudeScale
func magnitudeScale(radius, radiusMax float64) float64 {
	if radiusMax <= 0 {
		return 1.0
	}
	return math.Max(radius/radiusMax, minMagnitudeScale)
}

// overlapsAny reports whether the candidate's bounding sphere overlaps any
// accepted sphere, using a squared-distance test against the sum of radii
func overlapsAny(candidate trace.Sphere, accepted []trace.Sphere) bool {
	for i := range accepted {
		minDist := candidate.Radius + accepted[i].Radius
		if candidate.Center.Subtract(accepted[i].Center).LengthSquared() < minDist*minDist {
			return true
		}
	}
	return false
}

// sampleAlbedo draws a surface color from a restricted hue/saturation/value
// range so generated scenes stay visually consistent
func sampleAlbedo(random *rand.Rand) core.Vec3 {
	c := colorful.Hsv(
		random.Float64()*360.0,     // any hue
		0.55+random.Float64()*0.30, // moderately saturated
		0.70+random.Float64()*0.30, // bright
	)
	return core.NewVec3(c.R, c.G, c.B)
}
