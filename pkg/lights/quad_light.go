// Package lights implements Light sources that can be importance
// sampled for next-event estimation, and the sampler that chooses
// among them.
package lights

import (
	"math"
	"math/rand"

	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/geometry"
)

// QuadLight is a rectangular area light: a Quad whose material emits,
// sampled uniformly over its area and converted to a solid-angle PDF.
type QuadLight struct {
	*geometry.Quad
	area float64
}

// NewQuadLight constructs a QuadLight over a quad with the given
// emissive material.
func NewQuadLight(corner, u, v core.Point3, mat core.Material) *QuadLight {
	quad := geometry.NewQuad(corner, u, v, mat)
	return &QuadLight{Quad: quad, area: quad.Area()}
}

// Sample draws a uniformly distributed point on the quad and converts
// the area PDF to a solid-angle PDF as seen from point.
func (q *QuadLight) Sample(point core.Point3, random *rand.Rand) core.LightSample {
	alpha := random.Float64()
	beta := random.Float64()
	samplePoint := q.Corner.Add(q.U.Multiply(alpha)).Add(q.V.Multiply(beta))

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	direction := toLight.Multiply(1.0 / distance)

	cosTheta := q.Normal.Dot(direction.Negate())
	if cosTheta <= 1e-8 {
		// The sampled point lies on the light's back face: no emission
		// reaches point from there, and the sample contributes nothing.
		return core.LightSample{Point: samplePoint, Normal: q.Normal, Direction: direction, Distance: distance}
	}

	areaPDF := 1.0 / q.area
	solidAnglePDF := areaPDF * distance * distance / cosTheta

	dummyRay := core.NewRay(point, direction)
	dummyHit := core.HitRecord{Point: samplePoint, Normal: q.Normal, FrontFace: cosTheta > 0, Material: q.Material}
	emission := q.Material.Emitted(dummyRay, dummyHit)

	return core.LightSample{
		Point:     samplePoint,
		Normal:    q.Normal,
		Direction: direction,
		Distance:  distance,
		Emission:  emission,
		PDF:       solidAnglePDF,
	}
}

// PDF returns the solid-angle density of sampling direction from
// point, by re-intersecting the quad.
func (q *QuadLight) PDF(point core.Point3, direction core.Vec3) float64 {
	ray := core.NewRay(point, direction)
	hit, ok := q.Quad.Hit(ray, core.NewInterval(1e-3, math.Inf(1)))
	if !ok {
		return 0
	}

	cosTheta := q.Normal.Dot(direction.Negate())
	if cosTheta <= 1e-8 {
		// direction strikes the light's back face: not a valid NEE
		// connection, so its density is zero.
		return 0
	}

	areaPDF := 1.0 / q.area
	return areaPDF * hit.T * hit.T / cosTheta
}
