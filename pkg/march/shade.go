package march

import (
	"math"

	"github.com/pvogt/rayfield/pkg/core"
)

// Shader turns march results into colors. Hits are blended toward the sky
// color by an exponential fog term and modulated by a cheap two-term
// lighting approximation of the normal; there are no shadow rays.
type Shader struct {
	Marcher    *Marcher
	FogDensity float64 // k in fog = exp(-(distance*k)^2)
}

// NewShader creates a shader over a marcher
func NewShader(marcher *Marcher, fogDensity float64) *Shader {
	return &Shader{Marcher: marcher, FogDensity: fogDensity}
}

// Trace computes the color seen along a camera ray
func (sh *Shader) Trace(ray core.Ray, elapsed float64) core.Vec3 {
	sky := sh.Marcher.Scene.SkyColor

	hit := sh.Marcher.March(ray, elapsed)
	if !hit.IsHit() {
		return sky
	}

	x := hit.Distance * sh.FogDensity
	fog := math.Exp(-x * x) // 1 at the camera, 0 at the horizon

	light := 0.55 + 0.35*hit.Normal.Y + 0.10*hit.Normal.X
	lit := hit.Albedo.Multiply(light)

	return lit.Lerp(sky, 1.0-fog).Clamp(0.0, 1.0)
}
