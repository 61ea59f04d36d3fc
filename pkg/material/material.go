package material

import "github.com/wrenlight/arclight/pkg/core"

// Lambertian is a matte material with a single cosine-weighted diffuse
// lobe.
type Lambertian struct {
	Albedo core.Color
	lobes  []core.BSDFLobe
}

// NewLambertian constructs a Lambertian material with the given albedo.
func NewLambertian(albedo core.Color) *Lambertian {
	m := &Lambertian{Albedo: albedo}
	m.lobes = []core.BSDFLobe{LambertianLobe{Albedo: albedo}}
	return m
}

func (m *Lambertian) LobeCount() int { return len(m.lobes) }
func (m *Lambertian) Lobe(i int, incidentEta float64) core.BSDFLobe { return m.lobes[i] }
func (m *Lambertian) Emitted(core.Ray, core.HitRecord) core.Color { return core.Color{} }

// Metal is a (possibly fuzzed) specular reflector.
type Metal struct {
	Albedo core.Color
	Fuzz   float64
	lobes  []core.BSDFLobe
}

// NewMetal constructs a Metal material, clamping fuzz to [0, 1].
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	m := &Metal{Albedo: albedo, Fuzz: fuzz}
	m.lobes = []core.BSDFLobe{SpecularReflectionLobe{Albedo: albedo, Fuzz: fuzz}}
	return m
}

func (m *Metal) LobeCount() int { return len(m.lobes) }
func (m *Metal) Lobe(i int, incidentEta float64) core.BSDFLobe { return m.lobes[i] }
func (m *Metal) Emitted(core.Ray, core.HitRecord) core.Color { return core.Color{} }

// Dielectric is a smooth refractive material (glass, water) with
// index of refraction Eta. Unlike Lambertian/Metal, its lobe cannot be
// precomputed at construction time: it depends on the incident
// medium's index at the hit point, which varies ray to ray.
type Dielectric struct {
	Eta float64
}

// NewDielectric constructs a Dielectric material with the given index
// of refraction.
func NewDielectric(eta float64) *Dielectric {
	return &Dielectric{Eta: eta}
}

func (m *Dielectric) LobeCount() int { return 1 }
func (m *Dielectric) Lobe(i int, incidentEta float64) core.BSDFLobe {
	return SpecularDielectricLobe{Eta: m.Eta, IncidentEta: incidentEta}
}
func (m *Dielectric) Emitted(core.Ray, core.HitRecord) core.Color { return core.Color{} }

// DiffuseLight is a pure emitter with no scattering lobes: rays that
// hit it terminate, contributing Emission.
type DiffuseLight struct {
	Emission core.Color
}

// NewDiffuseLight constructs a DiffuseLight material with constant
// emission.
func NewDiffuseLight(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

func (m *DiffuseLight) LobeCount() int { return 0 }
func (m *DiffuseLight) Lobe(i int, incidentEta float64) core.BSDFLobe {
	panic("material: DiffuseLight has no lobes")
}

// Emitted returns Emission only for rays hitting the front face; light
// sources in arclight are one-sided area emitters.
func (m *DiffuseLight) Emitted(r core.Ray, hit core.HitRecord) core.Color {
	if !hit.FrontFace {
		return core.Color{}
	}
	return m.Emission
}
