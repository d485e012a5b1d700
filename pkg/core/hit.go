package core

import "math"

// RayHit accumulates the closest surface found along a ray.
// Distance starts at +Inf ("nothing hit yet") and only ever decreases:
// a candidate surface overwrites the record only when it is strictly
// closer than the current distance.
type RayHit struct {
	Distance float64 // Distance along the ray, +Inf until a surface is found
	Position Vec3    // World-space hit position, valid only if Distance is finite
	Normal   Vec3    // Unit surface normal, valid only if Distance is finite
	Albedo   Vec3    // Surface base color, valid only if Distance is finite
}

// NewRayHit creates an empty hit record with infinite distance
func NewRayHit() RayHit {
	return RayHit{Distance: math.Inf(1)}
}

// Record replaces the hit record if the candidate is strictly closer.
// Returns true if the record was updated.
func (h *RayHit) Record(distance float64, position, normal, albedo Vec3) bool {
	if distance >= h.Distance {
		return false
	}
	h.Distance = distance
	h.Position = position
	h.Normal = normal
	h.Albedo = albedo
	return true
}

// IsHit reports whether any surface was recorded
func (h *RayHit) IsHit() bool {
	return !math.IsInf(h.Distance, 1)
}
