package scene

import (
	"math"

	"github.com/wrenlight/arclight/pkg/camera"
	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/geometry"
	"github.com/wrenlight/arclight/pkg/lights"
	"github.com/wrenlight/arclight/pkg/material"
)

// NewCornellBox builds S1: the classic 555-unit Cornell box lit by a
// single rectangular ceiling light, containing a tall and a short
// diffuse box, each rotated off-axis. Placement of the walls, light
// and boxes matches the reference scenario exactly.
func NewCornellBox(width, height int) *Scene {
	cam := camera.New(camera.Config{
		LookFrom:       core.Point3{X: 278, Y: 278, Z: -800},
		LookAt:         core.Point3{X: 278, Y: 278, Z: 0},
		Up:             core.Vec3{X: 0, Y: 1, Z: 0},
		ImageWidth:     width,
		ImageHeight:    height,
		VFov:           40.0,
		DefocusAngle:   0.0,
		FocusDistance:  800.0,
		HorizontalFlip: true,
	})

	b := NewBuilder()

	white := material.NewLambertian(core.Color{X: 0.73, Y: 0.73, Z: 0.73})
	red := material.NewLambertian(core.Color{X: 0.65, Y: 0.05, Z: 0.05})
	green := material.NewLambertian(core.Color{X: 0.12, Y: 0.45, Z: 0.15})

	const boxSize = 555.0

	floor := geometry.NewQuad(
		core.Point3{X: 0, Y: 0, Z: 0},
		core.Vec3{X: boxSize},
		core.Vec3{Z: boxSize},
		white,
	)
	ceiling := geometry.NewQuad(
		core.Point3{X: 0, Y: boxSize, Z: 0},
		core.Vec3{X: boxSize},
		core.Vec3{Z: boxSize},
		white,
	)
	backWall := geometry.NewQuad(
		core.Point3{X: 0, Y: 0, Z: boxSize},
		core.Vec3{X: boxSize},
		core.Vec3{Y: boxSize},
		white,
	)
	leftWall := geometry.NewQuad(
		core.Point3{X: 0, Y: 0, Z: 0},
		core.Vec3{Z: boxSize},
		core.Vec3{Y: boxSize},
		green,
	)
	rightWall := geometry.NewQuad(
		core.Point3{X: boxSize, Y: 0, Z: 0},
		core.Vec3{Y: boxSize},
		core.Vec3{Z: boxSize},
		red,
	)

	b.Add(floor)
	b.Add(ceiling)
	b.Add(backWall)
	b.Add(leftWall)
	b.Add(rightWall)

	ceilingLight := lights.NewQuadLight(
		core.Point3{X: 343, Y: 554, Z: 332},
		core.Vec3{X: -130},
		core.Vec3{Z: -105},
		material.NewDiffuseLight(core.Color{X: 15, Y: 15, Z: 15}),
	)
	b.AddLight(ceilingLight)

	tallBox := geometry.NewBox(
		core.Point3{X: 0, Y: 0, Z: 0},
		core.Point3{X: 165, Y: 330, Z: 165},
		white,
	)
	tallRotated := geometry.NewRotateY(tallBox, 15.0*math.Pi/180.0)
	tallPlaced := geometry.NewTranslate(tallRotated, core.Vec3{X: 130, Y: 0, Z: 295})
	b.Add(tallPlaced)

	shortBox := geometry.NewBox(
		core.Point3{X: 0, Y: 0, Z: 0},
		core.Point3{X: 165, Y: 165, Z: 165},
		white,
	)
	shortRotated := geometry.NewRotateY(shortBox, -18.0*math.Pi/180.0)
	shortPlaced := geometry.NewTranslate(shortRotated, core.Vec3{X: 265, Y: 0, Z: 65})
	b.Add(shortPlaced)

	return b.Build(cam, core.Color{})
}
