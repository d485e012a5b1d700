package renderer

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/pvogt/rayfield/pkg/core"
	"github.com/pvogt/rayfield/pkg/march"
	"github.com/pvogt/rayfield/pkg/scenegen"
	"github.com/pvogt/rayfield/pkg/trace"
)

// Pipeline names
const (
	PipelineTrace = "trace"
	PipelineMarch = "march"
)

// Per-pipeline default thread group sizes
const (
	traceGroupSize = 8
	marchGroupSize = 16
)

// Config is the host-facing render configuration. The core packages never
// see it; the hosts clamp it and pass immutable values down.
type Config struct {
	// Pipeline selects "trace" or "march"
	Pipeline string `toml:"pipeline"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Frames   int    `toml:"frames"`
	// TimeStep is seconds of scene time per frame
	TimeStep float64 `toml:"time_step"`
	// Workers is the parallel worker count; 0 means one per CPU
	Workers int `toml:"workers"`
	// GroupSize overrides the pipeline's thread group size when positive
	GroupSize int `toml:"group_size"`

	SkyColor    [3]float64 `toml:"sky_color"`
	GroundColor [3]float64 `toml:"ground_color"`

	Scene SceneConfig `toml:"scene"`
	March MarchConfig `toml:"march"`
}

// SceneConfig configures sphere placement for the trace pipeline
type SceneConfig struct {
	SphereCount     int     `toml:"sphere_count"`
	PlacementRadius float64 `toml:"placement_radius"`
	RadiusMin       float64 `toml:"radius_min"`
	RadiusMax       float64 `toml:"radius_max"`
	MagnitudeMin    float64 `toml:"magnitude_min"`
	MagnitudeMax    float64 `toml:"magnitude_max"`
	Seed            int64   `toml:"seed"`
}

// MarchConfig configures the march pipeline
type MarchConfig struct {
	MaxSteps   int     `toml:"max_steps"`
	FogDensity float64 `toml:"fog_density"`
}

// DefaultConfig returns sensible defaults for either pipeline
func DefaultConfig() Config {
	gen := scenegen.DefaultConfig()
	return Config{
		Pipeline:    PipelineTrace,
		Width:       640,
		Height:      360,
		Frames:      1,
		TimeStep:    1.0 / 30.0,
		SkyColor:    [3]float64{0.47, 0.65, 0.95},
		GroundColor: [3]float64{0.55, 0.55, 0.5},
		Scene: SceneConfig{
			SphereCount:     gen.SphereCount,
			PlacementRadius: gen.PlacementRadius,
			RadiusMin:       gen.RadiusMin,
			RadiusMax:       gen.RadiusMax,
			MagnitudeMin:    gen.MagnitudeMin,
			MagnitudeMax:    gen.MagnitudeMax,
			Seed:            gen.Seed,
		},
		March: MarchConfig{
			MaxSteps:   128,
			FogDensity: 0.02,
		},
	}
}

// LoadConfig reads a TOML file over the defaults, then clamps and validates
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Clamp()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Clamp forces host-facing values into their supported ranges. The numeric
// core assumes well-formed inputs, so range enforcement happens here.
func (c *Config) Clamp() {
	c.Scene.SphereCount = clampInt(c.Scene.SphereCount, 0, 200)
	c.Scene.PlacementRadius = clampFloat(c.Scene.PlacementRadius, 1, 100)
	c.March.MaxSteps = clampInt(c.March.MaxSteps, 1, 1024)
	if c.Scene.RadiusMin < 0 {
		c.Scene.RadiusMin = 0
	}
	if c.Scene.RadiusMax < c.Scene.RadiusMin {
		c.Scene.RadiusMax = c.Scene.RadiusMin
	}
	if c.Frames < 1 {
		c.Frames = 1
	}
	if c.Width < 1 {
		c.Width = 1
	}
	if c.Height < 1 {
		c.Height = 1
	}
}

// Validate rejects configurations Clamp cannot repair
func (c Config) Validate() error {
	if c.Pipeline != PipelineTrace && c.Pipeline != PipelineMarch {
		return fmt.Errorf("unknown pipeline %q (want %q or %q)", c.Pipeline, PipelineTrace, PipelineMarch)
	}
	return nil
}

// ResolvedGroupSize returns the configured thread group size, or the
// pipeline default (8x8 trace, 16x16 march) when unset
func (c Config) ResolvedGroupSize() int {
	if c.GroupSize > 0 {
		return c.GroupSize
	}
	if c.Pipeline == PipelineMarch {
		return marchGroupSize
	}
	return traceGroupSize
}

// NewTracer builds the configured pipeline's tracer
func (c Config) NewTracer() (Tracer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sky := core.NewVec3(c.SkyColor[0], c.SkyColor[1], c.SkyColor[2])
	ground := core.NewVec3(c.GroundColor[0], c.GroundColor[1], c.GroundColor[2])

	switch c.Pipeline {
	case PipelineMarch:
		scene := march.NewDemoScene(ground, sky)
		marcher := march.NewMarcher(scene, c.March.MaxSteps)
		return march.NewShader(marcher, c.March.FogDensity), nil
	default:
		spheres := scenegen.Generate(scenegen.Config{
			SphereCount:     c.Scene.SphereCount,
			PlacementRadius: c.Scene.PlacementRadius,
			RadiusMin:       c.Scene.RadiusMin,
			RadiusMax:       c.Scene.RadiusMax,
			MagnitudeMin:    c.Scene.MagnitudeMin,
			MagnitudeMax:    c.Scene.MagnitudeMax,
			Seed:            c.Scene.Seed,
		})
		return trace.NewScene(spheres, ground, sky), nil
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func clampFloat(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
