// Package integrator implements the recursive Monte Carlo path
// tracer: next-event estimation against the scene's lights combined
// with BSDF sampling via multiple importance sampling (the power
// heuristic), plus Russian roulette termination for long paths.
package integrator

import (
	"math"
	"math/rand"

	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/material"
)

// Config holds the per-render sampling parameters.
type Config struct {
	MaxDepth int

	// RussianRouletteMinBounces is the bounce count after which paths
	// become eligible for probabilistic termination. Zero (or >=
	// MaxDepth) disables Russian roulette entirely.
	RussianRouletteMinBounces int
}

// PathTracer evaluates incident radiance along camera rays against a
// scene's geometry, materials and lights.
type PathTracer struct {
	World        core.Hittable
	Lights       []core.Light
	LightSampler core.LightSampler
	Background   core.Color
	Config       Config
}

// shadowEpsilon keeps shadow and continuation rays from re-hitting the
// surface they just left due to floating point error.
const shadowEpsilon = 1e-3

// Li returns the estimated incident radiance along ray, starting a
// fresh path with full throughput. The primary ray is treated like a
// specular bounce for MIS purposes: light sampling could never have
// produced it, so any emission it hits directly carries full weight.
func (pt *PathTracer) Li(ray core.Ray, random *rand.Rand) core.Color {
	return pt.li(ray, pt.Config.MaxDepth, core.Color{X: 1, Y: 1, Z: 1}, 0, true, random)
}

// li evaluates radiance along ray. prevBSDFPdf and prevSpecular
// describe the BSDF sample that produced ray (unused when prevSpecular
// is true): they let any emission this ray hits directly be weighted
// against light sampling's density for the same direction, without
// that weight leaking into the NEE and indirect terms gathered at
// deeper vertices.
func (pt *PathTracer) li(ray core.Ray, depth int, throughput core.Color, prevBSDFPdf float64, prevSpecular bool, random *rand.Rand) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	terminate, rrCompensation := pt.russianRoulette(depth, throughput, random)
	if terminate {
		return core.Color{}
	}

	hit, ok := pt.World.Hit(ray, core.NewInterval(shadowEpsilon, math.Inf(1)))
	if !ok {
		return pt.Background.Multiply(rrCompensation)
	}
	hit.IncidentEta = ray.Eta

	emitted := pt.weightedEmission(ray, hit, prevBSDFPdf, prevSpecular)

	bsdf := composeBSDF(hit)
	if bsdf == nil {
		return emitted.Multiply(rrCompensation)
	}

	wo := ray.Direction.Negate().Normalize()

	var scattered core.Color
	if bsdf.IsDelta() {
		scattered = pt.sampleSpecular(bsdf, wo, ray, hit, depth, throughput, random)
	} else {
		direct := pt.sampleLights(bsdf, wo, hit, random)
		indirect := pt.sampleBSDF(bsdf, wo, ray, hit, depth, throughput, random)
		scattered = direct.Add(indirect)
	}

	return emitted.Add(scattered).Multiply(rrCompensation)
}

// weightedEmission applies the BSDF-sampling side of the MIS weight to
// emission reached directly by ray: full weight when light sampling
// could never have produced ray (a camera ray, or one that left a
// delta/specular surface), and the power-heuristic weight against
// light sampling's density for this direction otherwise.
func (pt *PathTracer) weightedEmission(ray core.Ray, hit core.HitRecord, prevBSDFPdf float64, prevSpecular bool) core.Color {
	emitted := hit.Material.Emitted(ray, hit)
	if emitted.IsBlack() || prevSpecular {
		return emitted
	}
	lightPDF := pt.lightPDF(ray.Origin, ray.Direction)
	misWeight := core.PowerHeuristic(1, prevBSDFPdf, 1, lightPDF)
	return emitted.Multiply(misWeight)
}

// composeBSDF builds a material.BSDF-shaped evaluator around the hit.
// Materials expose their lobes through core.Material so the
// integrator never needs to know which concrete material it hit.
func composeBSDF(hit core.HitRecord) *material.BSDF {
	n := hit.Material.LobeCount()
	if n == 0 {
		return nil
	}
	lobes := make([]core.BSDFLobe, n)
	for i := 0; i < n; i++ {
		lobes[i] = hit.Material.Lobe(i, hit.IncidentEta)
	}
	return material.NewBSDF(hit.Normal, lobes...)
}

func (pt *PathTracer) sampleSpecular(bsdf *material.BSDF, wo core.Vec3, ray core.Ray, hit core.HitRecord, depth int, throughput core.Color, random *rand.Rand) core.Color {
	f, wi, _, eta, _, ok := bsdf.Sample(wo, random)
	if !ok {
		return core.Color{}
	}
	newThroughput := throughput.MultiplyVec(f)
	scatteredRay := core.NewRayWithEta(hit.Point, wi, scatteredEta(ray.Eta, eta))
	incoming := pt.li(scatteredRay, depth-1, newThroughput, 0, true, random)
	return f.MultiplyVec(incoming)
}

func (pt *PathTracer) sampleBSDF(bsdf *material.BSDF, wo core.Vec3, ray core.Ray, hit core.HitRecord, depth int, throughput core.Color, random *rand.Rand) core.Color {
	f, wi, pdf, eta, isSpecular, ok := bsdf.Sample(wo, random)
	if !ok || isSpecular || pdf <= 0 {
		return core.Color{}
	}

	cosine := math.Abs(wi.Dot(hit.Normal))
	if cosine <= 0 {
		return core.Color{}
	}

	newThroughput := throughput.MultiplyVec(f).Multiply(cosine / pdf)
	scatteredRay := core.NewRayWithEta(hit.Point, wi, scatteredEta(ray.Eta, eta))
	incoming := pt.li(scatteredRay, depth-1, newThroughput, pdf, false, random)

	// Only the emission incoming picks up directly gets MIS-weighted
	// against light sampling (inside weightedEmission); the NEE and
	// further-indirect terms folded into incoming carry their own,
	// separate weighting and must not be scaled again here.
	return f.Multiply(cosine / pdf).MultiplyVec(incoming)
}

// scatteredEta resolves the medium index a scattered ray now travels
// through: sampledEta of 0 means the lobe left the ray in its current
// medium (reflection, or any non-refractive lobe).
func scatteredEta(currentEta, sampledEta float64) float64 {
	if sampledEta > 0 {
		return sampledEta
	}
	return currentEta
}

func (pt *PathTracer) sampleLights(bsdf *material.BSDF, wo core.Vec3, hit core.HitRecord, random *rand.Rand) core.Color {
	if pt.LightSampler == nil {
		return core.Color{}
	}
	light, selectProb, ok := pt.LightSampler.Sample(hit.Point, random)
	if !ok || selectProb <= 0 {
		return core.Color{}
	}

	sample := light.Sample(hit.Point, random)
	if sample.PDF <= 0 {
		return core.Color{}
	}
	lightPDF := sample.PDF * selectProb

	cosine := sample.Direction.Dot(hit.Normal)
	if cosine <= 0 {
		return core.Color{}
	}

	shadowRay := core.NewRay(hit.Point, sample.Direction)
	shadowRange := core.NewInterval(shadowEpsilon, sample.Distance-shadowEpsilon)
	if _, blocked := pt.World.Hit(shadowRay, shadowRange); blocked {
		return core.Color{}
	}

	f := bsdf.F(wo, sample.Direction)
	if f.IsBlack() {
		return core.Color{}
	}

	materialPDF := bsdf.Pdf(wo, sample.Direction)
	misWeight := core.PowerHeuristic(1, lightPDF, 1, materialPDF)

	return f.MultiplyVec(sample.Emission).Multiply(cosine * misWeight / lightPDF)
}

// lightPDF returns the combined light-sampling PDF for direction,
// used as the "other strategy" density in the power heuristic when
// weighting a BSDF-sampled direction.
func (pt *PathTracer) lightPDF(point core.Point3, direction core.Vec3) float64 {
	if pt.LightSampler == nil || len(pt.Lights) == 0 {
		return 0
	}
	return pt.LightSampler.PDF(point, direction, pt.Lights)
}

// russianRoulette decides whether to terminate the path after `depth`
// remaining bounces (i.e. MaxDepth-depth taken so far), returning the
// energy-conserving compensation factor for surviving paths.
func (pt *PathTracer) russianRoulette(depth int, throughput core.Color, random *rand.Rand) (terminate bool, compensation float64) {
	if pt.Config.RussianRouletteMinBounces <= 0 {
		return false, 1.0
	}
	bouncesTaken := pt.Config.MaxDepth - depth
	if bouncesTaken < pt.Config.RussianRouletteMinBounces {
		return false, 1.0
	}

	survivalProb := math.Min(1.0, math.Max(0.05, throughput.Luminance()))
	if random.Float64() > survivalProb {
		return true, 0
	}
	return false, 1.0 / survivalProb
}
