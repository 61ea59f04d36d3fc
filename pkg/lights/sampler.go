package lights

import (
	"math/rand"

	"github.com/wrenlight/arclight/pkg/core"
)

// UniformLightSampler picks among a scene's lights with equal
// probability, matching the common "uniform one-light" NEE strategy
// for scenes without per-light power weighting.
type UniformLightSampler struct {
	Lights []core.Light
}

// NewUniformLightSampler constructs a sampler over the given lights.
func NewUniformLightSampler(lights []core.Light) *UniformLightSampler {
	return &UniformLightSampler{Lights: lights}
}

// Sample picks one light uniformly and returns it along with the
// selection probability 1/N.
func (s *UniformLightSampler) Sample(point core.Point3, random *rand.Rand) (core.Light, float64, bool) {
	if len(s.Lights) == 0 {
		return nil, 0, false
	}
	idx := random.Intn(len(s.Lights))
	return s.Lights[idx], 1.0 / float64(len(s.Lights)), true
}

// PDF returns the combined light-sampling PDF of a direction: the
// average, over every light in lights, of that light's own PDF,
// weighted by the uniform 1/N selection probability.
func (s *UniformLightSampler) PDF(point core.Point3, direction core.Vec3, lightsHit []core.Light) float64 {
	if len(s.Lights) == 0 {
		return 0
	}
	sum := 0.0
	for _, l := range lightsHit {
		sum += l.PDF(point, direction)
	}
	return sum / float64(len(s.Lights))
}
