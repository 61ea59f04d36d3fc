package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadOverlaysOnlyGivenFields(t *testing.T) {
	path := writeTempConfig(t, `
width: 800
samples_per_pixel: 500
camera:
  vfov: 20
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Width != 800 {
		t.Errorf("Width = %v, want 800 (overridden)", cfg.Width)
	}
	if cfg.SamplesPerPixel != 500 {
		t.Errorf("SamplesPerPixel = %v, want 500 (overridden)", cfg.SamplesPerPixel)
	}
	if cfg.Camera.VFov != 20 {
		t.Errorf("Camera.VFov = %v, want 20 (overridden)", cfg.Camera.VFov)
	}

	want := defaults()
	if cfg.Height != want.Height {
		t.Errorf("Height = %v, want default %v (untouched)", cfg.Height, want.Height)
	}
	if cfg.MaxDepth != want.MaxDepth {
		t.Errorf("MaxDepth = %v, want default %v (untouched)", cfg.MaxDepth, want.MaxDepth)
	}
	if cfg.Camera.LookAt != want.Camera.LookAt {
		t.Errorf("Camera.LookAt = %v, want default %v (untouched)", cfg.Camera.LookAt, want.Camera.LookAt)
	}
	if !cfg.HasCamera {
		t.Error("HasCamera = false, want true (YAML included a camera section)")
	}
}

func TestLoadWithoutCameraSectionLeavesHasCameraFalse(t *testing.T) {
	path := writeTempConfig(t, `
width: 800
samples_per_pixel: 500
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HasCamera {
		t.Error("HasCamera = true, want false (YAML had no camera section)")
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Error("expected an error loading a nonexistent config path")
	}
}

func TestLoadMalformedYAMLReturnsError(t *testing.T) {
	path := writeTempConfig(t, "width: [this is not, a, valid: scalar\n")
	if _, err := Load(path); err == nil {
		t.Error("expected an error parsing malformed YAML")
	}
}
