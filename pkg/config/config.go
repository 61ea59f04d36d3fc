// Package config loads an optional YAML overlay of render parameters,
// letting image resolution, sampling and camera placement be tuned
// without recompiling. Programmatic scene builders (pkg/scene) remain
// the primary way a scene's geometry and materials are assembled; this
// is strictly a render-parameter overlay on top of them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CameraConfig mirrors pkg/camera.Config's fields for YAML loading.
type CameraConfig struct {
	LookFrom [3]float64 `yaml:"look_from"`
	LookAt   [3]float64 `yaml:"look_at"`
	Up       [3]float64 `yaml:"up"`

	VFov          float64 `yaml:"vfov"`
	DefocusAngle  float64 `yaml:"defocus_angle"`
	FocusDistance float64 `yaml:"focus_distance"`

	HorizontalFlip bool `yaml:"horizontal_flip"`
}

// Scene describes the overridable render parameters for a scene.
type Scene struct {
	Width           int          `yaml:"width"`
	Height          int          `yaml:"height"`
	SamplesPerPixel int          `yaml:"samples_per_pixel"`
	MaxDepth        int          `yaml:"max_depth"`
	Background      [3]float64   `yaml:"background"` // read from the file; cmd/arclight does not apply it, each scene keeps its own background
	Camera          CameraConfig `yaml:"camera"`

	// HasCamera reports whether the YAML document included a "camera:"
	// section at all, so a config overlay that only tunes resolution or
	// sample count doesn't silently reset a scene's hand-tuned camera
	// to config's generic defaults.
	HasCamera bool `yaml:"-"`
}

// defaults matches the generic camera parameters so a config file only
// needs to specify the fields it wants to override: a 100px-square
// image, 10 samples per pixel, depth 10, a camera at the origin
// looking down -Z with a 90-degree vertical field of view, no defocus
// blur, focus distance 10, and a black background.
func defaults() Scene {
	return Scene{
		Width:           100,
		Height:          100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		Camera: CameraConfig{
			LookFrom:      [3]float64{0, 0, 0},
			LookAt:        [3]float64{0, 0, -1},
			Up:            [3]float64{0, 1, 0},
			VFov:          90,
			FocusDistance: 10,
		},
	}
}

// Load reads a YAML scene configuration from path, starting from
// defaults() and overwriting any field present in the file. A file
// that cannot be read or parsed is an error; cmd/arclight only calls
// Load when --config was given explicitly.
func Load(path string) (Scene, error) {
	scene := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &scene); err != nil {
		return Scene{}, fmt.Errorf("config: parse %q: %w", path, err)
	}

	var probe struct {
		Camera *CameraConfig `yaml:"camera"`
	}
	if err := yaml.Unmarshal(data, &probe); err == nil {
		scene.HasCamera = probe.Camera != nil
	}

	return scene, nil
}
