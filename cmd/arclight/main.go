// Command arclight renders one of a handful of built-in scenes by
// Monte-Carlo path tracing and writes the result as a PPM (P3, ASCII)
// image on standard output. Progress is logged to standard error;
// stdout carries only the image stream.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wrenlight/arclight/pkg/camera"
	"github.com/wrenlight/arclight/pkg/config"
	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/geometry"
	"github.com/wrenlight/arclight/pkg/imageio"
	"github.com/wrenlight/arclight/pkg/integrator"
	"github.com/wrenlight/arclight/pkg/lights"
	"github.com/wrenlight/arclight/pkg/loaders"
	"github.com/wrenlight/arclight/pkg/material"
	"github.com/wrenlight/arclight/pkg/renderer"
	"github.com/wrenlight/arclight/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "cornell", "scene to render: cornell, sphere, glass, mesh")
	configPath := flag.String("config", "", "optional YAML render-parameter overlay")
	meshPath := flag.String("mesh", "", "OBJ/glTF/GLB mesh file rendered by -scene mesh")
	workers := flag.Int("workers", 0, "parallel render workers (0 = auto-detect CPU count)")
	flag.Parse()

	logger := core.StderrLogger{}

	var cfg config.Scene
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "arclight: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	sc, err := buildScene(*sceneName, *meshPath, cfg, *configPath != "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "arclight: %v\n", err)
		os.Exit(1)
	}
	if cfg.HasCamera {
		sc.Scene.Camera = camera.New(camera.Config{
			LookFrom:       core.Point3{X: cfg.Camera.LookFrom[0], Y: cfg.Camera.LookFrom[1], Z: cfg.Camera.LookFrom[2]},
			LookAt:         core.Point3{X: cfg.Camera.LookAt[0], Y: cfg.Camera.LookAt[1], Z: cfg.Camera.LookAt[2]},
			Up:             core.Vec3{X: cfg.Camera.Up[0], Y: cfg.Camera.Up[1], Z: cfg.Camera.Up[2]},
			ImageWidth:     sc.Width,
			ImageHeight:    sc.Height,
			VFov:           cfg.Camera.VFov,
			DefocusAngle:   cfg.Camera.DefocusAngle,
			FocusDistance:  cfg.Camera.FocusDistance,
			HorizontalFlip: cfg.Camera.HorizontalFlip,
		})
	}

	samplesPerPixel := sc.SamplesPerPixel
	maxDepth := sc.MaxDepth

	pt := &integrator.PathTracer{
		World:        sc.Scene.World,
		Lights:       sc.Scene.Lights,
		LightSampler: sc.Scene.LightSampler,
		Background:   sc.Scene.Background,
		Config: integrator.Config{
			MaxDepth:                  maxDepth,
			RussianRouletteMinBounces: 8,
		},
	}

	renderCfg := renderer.DefaultConfig()
	renderCfg.SamplesPerPixel = samplesPerPixel
	if *workers > 0 {
		renderCfg.NumWorkers = *workers
	}

	logger.Printf("rendering %q: %dx%d, %d spp, depth %d\n", *sceneName, sc.Width, sc.Height, samplesPerPixel, maxDepth)

	fb := renderer.Render(sc.Scene.Camera, pt, sc.Width, sc.Height, renderCfg, logger)

	out := bufio.NewWriter(os.Stdout)
	if err := imageio.WritePPM(out, fb); err != nil {
		fmt.Fprintf(os.Stderr, "arclight: writing image: %v\n", err)
		os.Exit(1)
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "arclight: writing image: %v\n", err)
		os.Exit(1)
	}
}

// builtScene bundles a scene.Scene with the render parameters that
// drove its construction (resolution, sampling, depth), since those
// live outside scene.Scene itself.
type builtScene struct {
	Scene           *scene.Scene
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
}

func buildScene(name, meshPath string, cfg config.Scene, haveConfig bool) (builtScene, error) {
	width, height, spp, depth := 600, 600, 200, 50

	switch name {
	case "cornell":
		if haveConfig {
			width, height, spp, depth = cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.MaxDepth
		}
		return builtScene{
			Scene:           scene.NewCornellBox(width, height),
			Width:           width,
			Height:          height,
			SamplesPerPixel: spp,
			MaxDepth:        depth,
		}, nil

	case "sphere":
		width, height, spp, depth = 200, 100, 100, 10
		if haveConfig {
			width, height, spp, depth = cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.MaxDepth
		}
		return builtScene{
			Scene:           scene.NewSingleSphere(width, height),
			Width:           width,
			Height:          height,
			SamplesPerPixel: spp,
			MaxDepth:        depth,
		}, nil

	case "glass":
		width, height, spp, depth = 400, 400, 200, 50
		if haveConfig {
			width, height, spp, depth = cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.MaxDepth
		}
		return builtScene{
			Scene:           scene.NewGlassOnQuads(width, height),
			Width:           width,
			Height:          height,
			SamplesPerPixel: spp,
			MaxDepth:        depth,
		}, nil

	case "mesh":
		if meshPath == "" {
			return builtScene{}, fmt.Errorf("scene %q requires -mesh <path.obj|.gltf|.glb>", name)
		}
		width, height, spp, depth = 400, 400, 100, 20
		if haveConfig {
			width, height, spp, depth = cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.MaxDepth
		}
		sc, err := buildMeshScene(meshPath, width, height)
		if err != nil {
			return builtScene{}, err
		}
		return builtScene{
			Scene:           sc,
			Width:           width,
			Height:          height,
			SamplesPerPixel: spp,
			MaxDepth:        depth,
		}, nil

	default:
		return builtScene{}, fmt.Errorf("unknown scene %q (want cornell, sphere, glass, mesh)", name)
	}
}

// buildMeshScene loads an OBJ, glTF or GLB mesh (dispatched by file
// extension) and places it above a Lambertian ground plane (a large
// sphere), lit by a single overhead quad light, so -mesh has somewhere
// to put its geometry without needing a dedicated hand-authored
// scenario.
func buildMeshScene(path string, width, height int) (*scene.Scene, error) {
	meshMat := material.NewLambertian(core.Color{X: 0.6, Y: 0.6, Z: 0.6})

	var triangles []*geometry.Triangle
	var err error
	if strings.EqualFold(filepath.Ext(path), ".obj") {
		triangles, err = loaders.LoadOBJ(path, meshMat)
	} else {
		triangles, err = loaders.LoadGLTF(path, meshMat)
	}
	if err != nil {
		return nil, fmt.Errorf("loading mesh: %w", err)
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh %q contains no triangles", path)
	}

	cam := camera.New(camera.Config{
		LookFrom:      core.Point3{X: 0, Y: 2, Z: 6},
		LookAt:        core.Point3{X: 0, Y: 0.5, Z: 0},
		Up:            core.Vec3{X: 0, Y: 1, Z: 0},
		ImageWidth:    width,
		ImageHeight:   height,
		VFov:          35,
		FocusDistance: 6,
	})

	b := scene.NewBuilder()

	ground := geometry.NewSphere(
		core.Point3{X: 0, Y: -1000, Z: 0},
		1000,
		material.NewLambertian(core.Color{X: 0.5, Y: 0.5, Z: 0.5}),
	)
	b.Add(ground)

	b.Add(geometry.NewTriangleMesh(triangles))

	light := lights.NewQuadLight(
		core.Point3{X: -3, Y: 6, Z: -3},
		core.Vec3{X: 6},
		core.Vec3{Z: 6},
		material.NewDiffuseLight(core.Color{X: 8, Y: 8, Z: 8}),
	)
	b.AddLight(light)

	return b.Build(cam, core.Color{X: 0.5, Y: 0.7, Z: 1.0}), nil
}
