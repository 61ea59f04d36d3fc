package geometry

import (
	"math"
	"testing"

	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/material"
)

func TestSphereHitFrontFace(t *testing.T) {
	mat := material.NewLambertian(core.Color{X: 1, Y: 1, Z: 1})
	s := NewSphere(core.Point3{X: 0, Y: 0, Z: -1}, 0.5, mat)

	ray := core.NewRay(core.Point3{X: 0, Y: 0, Z: 1}, core.Vec3{X: 0, Y: 0, Z: -1})
	hit, ok := s.Hit(ray, core.NewInterval(1e-3, math.Inf(1)))
	if !ok {
		t.Fatal("expected a hit")
	}
	// The near surface is at z = -0.5, 1.5 units from the ray origin.
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("t = %v, want 1.5", hit.T)
	}
	if !hit.FrontFace {
		t.Error("a ray from outside should report a front-face hit")
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("normal should be unit length, got length %v", hit.Normal.Length())
	}
}

func TestSphereMiss(t *testing.T) {
	mat := material.NewLambertian(core.Color{X: 1, Y: 1, Z: 1})
	s := NewSphere(core.Point3{X: 0, Y: 0, Z: -1}, 0.5, mat)

	ray := core.NewRay(core.Point3{X: 10, Y: 10, Z: 1}, core.Vec3{X: 0, Y: 0, Z: -1})
	if _, ok := s.Hit(ray, core.NewInterval(1e-3, math.Inf(1))); ok {
		t.Error("a ray far from the sphere should miss")
	}
}

func TestSphereBoundingBox(t *testing.T) {
	mat := material.NewLambertian(core.Color{X: 1, Y: 1, Z: 1})
	s := NewSphere(core.Point3{X: 1, Y: 2, Z: 3}, 2, mat)
	box := s.BoundingBox()
	if box.X.Min != -1 || box.X.Max != 3 {
		t.Errorf("x-interval = [%v, %v], want [-1, 3]", box.X.Min, box.X.Max)
	}
}
