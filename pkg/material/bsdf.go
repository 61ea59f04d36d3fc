// Package material implements the BSDF lobes and the BSDF container
// that composes them, plus the concrete Material implementations
// (Lambertian, Metal, Dielectric, DiffuseLight).
package material

import (
	"math/rand"

	"github.com/wrenlight/arclight/pkg/core"
)

// BSDF composes one or more core.BSDFLobe values in the local shading
// frame built from a surface normal. It is constructed fresh at every
// hit point; lobes themselves carry no directional state.
type BSDF struct {
	frame core.ONB
	lobes []core.BSDFLobe
}

// NewBSDF builds a BSDF around the given shading normal.
func NewBSDF(normal core.Vec3, lobes ...core.BSDFLobe) *BSDF {
	return &BSDF{frame: core.NewONB(normal), lobes: lobes}
}

func (b *BSDF) toLocal(v core.Vec3) core.Vec3 {
	return core.Vec3{X: v.Dot(b.frame.U), Y: v.Dot(b.frame.V), Z: v.Dot(b.frame.W)}
}

func (b *BSDF) toWorld(v core.Vec3) core.Vec3 {
	return b.frame.Transform(v)
}

// F evaluates the sum of every non-delta lobe for explicit world-space
// directions. Delta lobes contribute nothing here, since they can only
// be reached through Sample.
func (b *BSDF) F(woWorld, wiWorld core.Vec3) core.Color {
	wo, wi := b.toLocal(woWorld), b.toLocal(wiWorld)
	sum := core.Color{}
	for _, lobe := range b.lobes {
		if lobe.Flags().IsDelta() {
			continue
		}
		sum = sum.Add(lobe.F(wo, wi))
	}
	return sum
}

// Pdf returns the BSDF's combined sampling density for wiWorld given
// woWorld: the sum of every non-delta lobe's PDF, normalized by the
// TOTAL lobe count K (including delta lobes), not by the count of
// non-delta lobes minus one. Dividing by K-1 undercounts a
// delta-inclusive mixture and double-weights the remaining lobes;
// every lobe, delta or not, gets an equal 1/K selection probability in
// Sample, so Pdf must normalize the same way.
func (b *BSDF) Pdf(woWorld, wiWorld core.Vec3) float64 {
	if len(b.lobes) == 0 {
		return 0
	}
	wo, wi := b.toLocal(woWorld), b.toLocal(wiWorld)
	sum := 0.0
	for _, lobe := range b.lobes {
		if lobe.Flags().IsDelta() {
			continue
		}
		sum += lobe.Pdf(wo, wi)
	}
	return sum / float64(len(b.lobes))
}

// IsDelta reports whether every lobe in the BSDF is a delta
// distribution, meaning light sampling can never connect to this
// surface.
func (b *BSDF) IsDelta() bool {
	for _, lobe := range b.lobes {
		if !lobe.Flags().IsDelta() {
			return false
		}
	}
	return len(b.lobes) > 0
}

// Sample picks one of the K lobes uniformly at random (weight 1/K,
// the same normalization Pdf uses), asks it to sample a direction,
// and — for non-delta lobes — combines f/pdf across every non-delta
// lobe (the chosen one included) so a multi-lobe material (e.g. a coated diffuse)
// evaluates consistently with F/Pdf. isSpecular is true when the
// chosen lobe is a delta lobe, in which case pdf is 0 by convention
// and the caller must not divide by it for MIS purposes. eta is the
// index of refraction wiWorld now travels through; 0 means the ray
// stays in its current medium (every non-refractive lobe, and any
// reflected sample off a dielectric).
func (b *BSDF) Sample(woWorld core.Vec3, random *rand.Rand) (f core.Color, wiWorld core.Vec3, pdf float64, eta float64, isSpecular bool, ok bool) {
	k := len(b.lobes)
	if k == 0 {
		return core.Color{}, core.Vec3{}, 0, 0, false, false
	}
	idx := random.Intn(k)
	chosen := b.lobes[idx]

	wo := b.toLocal(woWorld)
	fLocal, wiLocal, _, sampledEta, sampleOK := chosen.Sample(wo, random)
	if !sampleOK {
		return core.Color{}, core.Vec3{}, 0, 0, false, false
	}
	wiWorld = b.toWorld(wiLocal)

	if chosen.Flags().IsDelta() {
		return fLocal, wiWorld, 0, sampledEta, true, true
	}

	fSum := core.Color{}
	pdfSum := 0.0
	for _, lobe := range b.lobes {
		if lobe.Flags().IsDelta() {
			continue
		}
		fSum = fSum.Add(lobe.F(wo, wiLocal))
		pdfSum += lobe.Pdf(wo, wiLocal)
	}
	if pdfSum <= 0 {
		return core.Color{}, core.Vec3{}, 0, 0, false, false
	}
	return fSum, wiWorld, pdfSum / float64(k), 0, false, true
}
