package core

import "math/rand"

// HitRecord captures everything an intersection needs to pass on to
// shading and light sampling.
type HitRecord struct {
	Point       Point3
	Normal      Vec3 // always points against the incident ray
	T           float64
	U, V        float64 // surface parameterization, for textured extensions
	FrontFace   bool
	Material    Material
	IncidentEta float64 // index of refraction of the medium the ray arrived through
}

// SetFaceNormal orients Normal against the incoming ray and records
// which face was hit.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is satisfied by anything a ray can intersect: primitives,
// lists of primitives, BVH nodes and the affine wrappers (Translate,
// RotateY).
type Hittable interface {
	Hit(r Ray, tRange Interval) (HitRecord, bool)
	BoundingBox() AABB
}

// Material composes a BSDF at a hit point and reports emission.
// Lobes that compose the BSDF are enumerated through LobeCount/Lobe so
// the BSDF container (pkg/material) can build its local-frame sampling
// and evaluation logic generically over however many lobes a material
// mixes together. incidentEta is the index of refraction of the medium
// the ray arrived through (HitRecord.IncidentEta); only a refractive
// lobe needs it, but every material takes it so the integrator never
// has to know which concrete material it hit.
type Material interface {
	LobeCount() int
	Lobe(i int, incidentEta float64) BSDFLobe
	Emitted(r Ray, hit HitRecord) Color
}

// LobeFlags classifies a BSDF lobe's behavior, mirroring the
// reflection/transmission/diffuse/specular taxonomy used throughout
// physically based renderers.
type LobeFlags uint8

const (
	LobeReflection LobeFlags = 1 << iota
	LobeTransmission
	LobeDiffuse
	LobeSpecular
)

// IsDelta reports whether the lobe is a delta distribution (perfect
// mirror or perfect refraction), which cannot be hit by light
// sampling and must never contribute to NEE.
func (f LobeFlags) IsDelta() bool {
	return f&LobeSpecular != 0
}

// BSDFLobe is one additive term of a material's scattering function,
// evaluated in the local shading frame where the normal is +Z.
type BSDFLobe interface {
	Flags() LobeFlags
	// F evaluates the lobe for explicit incoming/outgoing directions
	// (both pointing away from the surface). Delta lobes return zero.
	F(wo, wi Vec3) Color
	// Pdf returns the density of sampling wi given wo, under this
	// lobe's own sampling strategy. Delta lobes return zero.
	Pdf(wo, wi Vec3) float64
	// Sample draws a wi given wo, returning the lobe value, the
	// sampled direction, the PDF (0 for delta lobes, by convention),
	// the index of refraction wi now travels through (0 means
	// unchanged -- reflection, or any lobe that never transmits), and
	// whether sampling succeeded.
	Sample(wo Vec3, random *rand.Rand) (f Color, wi Vec3, pdf float64, eta float64, ok bool)
}

// LightSample is the result of sampling a point on a light source
// from a shading point, expressed as a solid-angle measure PDF.
type LightSample struct {
	Point     Point3
	Normal    Vec3
	Direction Vec3 // unit, from shading point toward the light sample
	Distance  float64
	Emission  Color
	PDF       float64 // solid-angle PDF; 0 means no contribution
}

// Light is a Hittable that can additionally be importance sampled for
// next-event estimation.
type Light interface {
	Hittable
	Sample(point Point3, random *rand.Rand) LightSample
	PDF(point Point3, direction Vec3) float64
}

// LightSampler chooses among a scene's lights for NEE.
type LightSampler interface {
	Sample(point Point3, random *rand.Rand) (Light, float64, bool)
	PDF(point Point3, direction Vec3, lights []Light) float64
}
