package material

import (
	"math"
	"math/rand"

	"github.com/wrenlight/arclight/pkg/core"
)

// local-frame helper: cosine of the angle a direction makes with the
// shading normal, which is always +Z in the local frame.
func cosTheta(v core.Vec3) float64 { return v.Z }

// LambertianLobe is a perfectly diffuse reflector with albedo Albedo,
// sampled cosine-weighted about the normal.
type LambertianLobe struct {
	Albedo core.Color
}

func (l LambertianLobe) Flags() core.LobeFlags {
	return core.LobeReflection | core.LobeDiffuse
}

func (l LambertianLobe) F(wo, wi core.Vec3) core.Color {
	if cosTheta(wo) <= 0 || cosTheta(wi) <= 0 {
		return core.Color{}
	}
	return l.Albedo.Multiply(1 / math.Pi)
}

func (l LambertianLobe) Pdf(wo, wi core.Vec3) float64 {
	if cosTheta(wo) <= 0 || cosTheta(wi) <= 0 {
		return 0
	}
	return core.CosineHemispherePDF(cosTheta(wi))
}

func (l LambertianLobe) Sample(wo core.Vec3, random *rand.Rand) (core.Color, core.Vec3, float64, float64, bool) {
	if cosTheta(wo) <= 0 {
		return core.Color{}, core.Vec3{}, 0, 0, false
	}
	wi := core.RandomCosineDirection(random)
	pdf := core.CosineHemispherePDF(cosTheta(wi))
	if pdf <= 0 {
		return core.Color{}, core.Vec3{}, 0, 0, false
	}
	return l.Albedo.Multiply(1 / math.Pi), wi, pdf, 0, true
}

// SpecularReflectionLobe is a (possibly fuzzed) mirror reflection.
// Fuzz perturbs the ideal reflection direction by a random offset
// scaled by Fuzz, same as a glossy-metal approximation; the lobe is
// still treated as a delta distribution, matching the convention that
// fuzz narrows a highlight rather than turning it into a sampleable
// BRDF lobe reachable by light sampling.
type SpecularReflectionLobe struct {
	Albedo core.Color
	Fuzz   float64
}

func (s SpecularReflectionLobe) Flags() core.LobeFlags {
	return core.LobeReflection | core.LobeSpecular
}

func (s SpecularReflectionLobe) F(wo, wi core.Vec3) core.Color { return core.Color{} }
func (s SpecularReflectionLobe) Pdf(wo, wi core.Vec3) float64  { return 0 }

func (s SpecularReflectionLobe) Sample(wo core.Vec3, random *rand.Rand) (core.Color, core.Vec3, float64, float64, bool) {
	reflected := core.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
	if s.Fuzz > 0 {
		reflected = reflected.Normalize().Add(core.RandomUnitVector(random).Multiply(s.Fuzz))
	}
	if cosTheta(reflected) <= 0 {
		return core.Color{}, core.Vec3{}, 0, 0, false
	}
	return s.Albedo, reflected.Normalize(), 0, 0, true
}

// SpecularDielectricLobe is a smooth glass boundary: perfect
// reflection or perfect refraction chosen by the exact Fresnel
// reflectance (core.FresnelDielectric), not Schlick's approximation.
// Eta is the material's own index of refraction; IncidentEta is the
// index of the medium the ray arrived through (HitRecord.IncidentEta,
// threaded in by the Dielectric material's Lobe method). Entering the
// surface, the relative index is Eta over IncidentEta; exiting it, the
// medium beyond the surface is taken to be vacuum (index 1).
type SpecularDielectricLobe struct {
	Eta         float64
	IncidentEta float64
}

func (d SpecularDielectricLobe) Flags() core.LobeFlags {
	return core.LobeReflection | core.LobeTransmission | core.LobeSpecular
}

func (d SpecularDielectricLobe) F(wo, wi core.Vec3) core.Color { return core.Color{} }
func (d SpecularDielectricLobe) Pdf(wo, wi core.Vec3) float64  { return 0 }

func (d SpecularDielectricLobe) Sample(wo core.Vec3, random *rand.Rand) (core.Color, core.Vec3, float64, float64, bool) {
	entering := cosTheta(wo) > 0

	fromEta := d.IncidentEta
	if fromEta <= 0 {
		fromEta = 1
	}
	toEta := d.Eta
	normal := core.Vec3{X: 0, Y: 0, Z: 1}
	if !entering {
		// Leaving the dielectric back out into vacuum; a renderer that
		// modeled a dielectric nested inside another medium would need
		// a medium stack to know what lies beyond this surface, which
		// arclight's scenes never require.
		toEta = 1
		normal = normal.Negate()
	}

	relativeEta := toEta / fromEta
	cosI := wo.Dot(normal)
	reflectance := core.FresnelDielectric(cosI, relativeEta)

	if random.Float64() < reflectance {
		reflected := core.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
		return core.Color{X: 1, Y: 1, Z: 1}, reflected, 0, 0, true
	}

	incident := wo.Negate()
	refracted := core.Refract(incident, normal, fromEta/toEta)
	if refracted.NearZero() {
		// total internal reflection slipped past the Fresnel check due
		// to floating point error at grazing angles; fall back to
		// reflecting instead of returning a degenerate direction.
		reflected := core.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
		return core.Color{X: 1, Y: 1, Z: 1}, reflected, 0, 0, true
	}
	return core.Color{X: 1, Y: 1, Z: 1}, refracted, 0, toEta, true
}
