// Package scene assembles the concrete test scenarios (a Cornell box,
// a single sphere over a large ground sphere, etc.) into a renderable
// Scene: a BVH over the geometry, the camera, and the lights NEE
// samples against.
package scene

import (
	"github.com/wrenlight/arclight/pkg/bvh"
	"github.com/wrenlight/arclight/pkg/camera"
	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/geometry"
	"github.com/wrenlight/arclight/pkg/lights"
)

// Scene bundles everything a render needs once the BVH has been
// built: the camera, the accelerated geometry, and a light sampler.
type Scene struct {
	Camera       *camera.Camera
	World        core.Hittable
	Lights       []core.Light
	LightSampler core.LightSampler
	Background   core.Color
}

// Builder accumulates shapes and lights before the final BVH build.
type Builder struct {
	shapes []core.Hittable
	lights []core.Light
}

// NewBuilder returns an empty scene Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a non-emissive shape to the scene's geometry.
func (b *Builder) Add(shape core.Hittable) {
	b.shapes = append(b.shapes, shape)
}

// AddLight appends a light, which is also added to the BVH's geometry
// so camera rays can hit it directly (a light is always a Hittable).
func (b *Builder) AddLight(light core.Light) {
	b.lights = append(b.lights, light)
	b.shapes = append(b.shapes, light)
}

// Build constructs the final Scene: a BVH over every shape (lights
// included) and a uniform light sampler over the accumulated lights.
func (b *Builder) Build(cam *camera.Camera, background core.Color) *Scene {
	tree := bvh.Build(b.shapes)
	return &Scene{
		Camera:       cam,
		World:        tree,
		Lights:       b.lights,
		LightSampler: lights.NewUniformLightSampler(b.lights),
		Background:   background,
	}
}

// ensure geometry.List satisfies core.Hittable at compile time; scenes
// sometimes add a pre-assembled List (e.g. a box's six quads) as a
// single shape.
var _ core.Hittable = (*geometry.List)(nil)
