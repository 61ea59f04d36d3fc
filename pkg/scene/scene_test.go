package scene

import "testing"

func assertWellFormed(t *testing.T, name string, s *Scene) {
	t.Helper()
	if s == nil {
		t.Fatalf("%s: Build returned nil", name)
	}
	if s.Camera == nil {
		t.Errorf("%s: scene has no camera", name)
	}
	if s.World == nil {
		t.Errorf("%s: scene has no world geometry", name)
	}
	if s.LightSampler == nil {
		t.Errorf("%s: scene has no light sampler", name)
	}
}

func TestNewCornellBoxIsWellFormed(t *testing.T) {
	s := NewCornellBox(100, 100)
	assertWellFormed(t, "cornell", s)
	if len(s.Lights) == 0 {
		t.Error("cornell box should have at least one light")
	}
}

func TestNewSingleSphereIsWellFormed(t *testing.T) {
	s := NewSingleSphere(100, 50)
	assertWellFormed(t, "single sphere", s)
}

func TestNewGlassOnQuadsIsWellFormed(t *testing.T) {
	s := NewGlassOnQuads(100, 100)
	assertWellFormed(t, "glass on quads", s)
}
