package scene

import (
	"github.com/wrenlight/arclight/pkg/camera"
	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/geometry"
	"github.com/wrenlight/arclight/pkg/material"
)

// NewSingleSphere builds S2: a small Lambertian sphere resting on a
// large ground sphere, against a constant sky-blue background. The
// scene has no lights, so all illumination comes from the background:
// camera rays that miss both spheres return the background color
// exactly, and a ray that hits a sphere needs a max depth of at least
// 2 for its bounce to reach the sky. The center pixel, on the small
// sphere, comes out darker than the background.
func NewSingleSphere(width, height int) *Scene {
	cam := camera.New(camera.Config{
		LookFrom:      core.Point3{X: 0, Y: 0, Z: 0},
		LookAt:        core.Point3{X: 0, Y: 0, Z: -1},
		Up:            core.Vec3{X: 0, Y: 1, Z: 0},
		ImageWidth:    width,
		ImageHeight:   height,
		VFov:          90,
		FocusDistance: 10,
	})

	b := NewBuilder()

	ground := geometry.NewSphere(
		core.Point3{X: 0, Y: -100.5, Z: -1},
		100,
		material.NewLambertian(core.Color{X: 0.8, Y: 0.8, Z: 0.0}),
	)
	sphere := geometry.NewSphere(
		core.Point3{X: 0, Y: 0, Z: -1},
		0.5,
		material.NewLambertian(core.Color{X: 0.5, Y: 0.5, Z: 0.5}),
	)

	b.Add(ground)
	b.Add(sphere)

	return b.Build(cam, core.Color{X: 0.7, Y: 0.8, Z: 1.0})
}

// NewGlassOnQuads builds S3: a dielectric sphere (IOR 1.5) centered in
// front of a backdrop of five colored quads, exercising refraction
// through a convex dielectric against non-specular geometry behind it.
func NewGlassOnQuads(width, height int) *Scene {
	cam := camera.New(camera.Config{
		LookFrom:      core.Point3{X: 0, Y: 0, Z: 20},
		LookAt:        core.Point3{X: 0, Y: 0, Z: 0},
		Up:            core.Vec3{X: 0, Y: 1, Z: 0},
		ImageWidth:    width,
		ImageHeight:   height,
		VFov:          30,
		FocusDistance: 20,
	})

	b := NewBuilder()

	const quadSize = 4.0
	colors := []core.Color{
		{X: 1.0, Y: 0.2, Z: 0.2},
		{X: 0.2, Y: 1.0, Z: 0.2},
		{X: 0.2, Y: 0.2, Z: 1.0},
		{X: 1.0, Y: 1.0, Z: 0.2},
		{X: 0.2, Y: 1.0, Z: 1.0},
	}
	// Five quads spread across the backdrop plane at z = 0, behind the
	// glass sphere at z = 6.
	positions := [][2]float64{
		{-6, 0}, {-3, 0}, {0, 0}, {3, 0}, {6, 0},
	}
	for i, pos := range positions {
		mat := material.NewLambertian(colors[i])
		quad := geometry.NewQuad(
			core.Point3{X: pos[0] - quadSize/2, Y: pos[1] - quadSize/2, Z: 0},
			core.Vec3{X: quadSize},
			core.Vec3{Y: quadSize},
			mat,
		)
		b.Add(quad)
	}

	glass := geometry.NewSphere(
		core.Point3{X: 0, Y: 0, Z: 6},
		2.0,
		material.NewDielectric(1.5),
	)
	b.Add(glass)

	return b.Build(cam, core.Color{X: 0.05, Y: 0.05, Z: 0.08})
}
