package geometry

import (
	"math"
	"testing"

	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/material"
)

// S4: a unit quad hit dead-on from above.
func TestQuadHitS4(t *testing.T) {
	mat := material.NewLambertian(core.Color{X: 1, Y: 1, Z: 1})
	q := NewQuad(core.Point3{X: 0, Y: 0, Z: 0}, core.Vec3{X: 1}, core.Vec3{Y: 1}, mat)

	ray := core.NewRay(core.Point3{X: 0.5, Y: 0.5, Z: 1}, core.Vec3{X: 0, Y: 0, Z: -1})
	hit, ok := q.Hit(ray, core.NewInterval(1e-3, math.Inf(1)))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("t = %v, want 1", hit.T)
	}
	want := core.Point3{X: 0.5, Y: 0.5, Z: 0}
	if math.Abs(hit.Point.X-want.X) > 1e-9 || math.Abs(hit.Point.Y-want.Y) > 1e-9 || math.Abs(hit.Point.Z-want.Z) > 1e-9 {
		t.Errorf("p = %v, want %v", hit.Point, want)
	}
	if !hit.FrontFace {
		t.Error("front_face should be true for a ray hitting the quad from its normal side")
	}
}

func TestQuadHitMissOutsideBounds(t *testing.T) {
	mat := material.NewLambertian(core.Color{X: 1, Y: 1, Z: 1})
	q := NewQuad(core.Point3{X: 0, Y: 0, Z: 0}, core.Vec3{X: 1}, core.Vec3{Y: 1}, mat)

	ray := core.NewRay(core.Point3{X: 5, Y: 5, Z: 1}, core.Vec3{X: 0, Y: 0, Z: -1})
	if _, ok := q.Hit(ray, core.NewInterval(1e-3, math.Inf(1))); ok {
		t.Error("a ray outside the quad's (u, v) extent should miss")
	}
}

// S6: a quad lying exactly in the z=0 plane has a bounding box whose
// z-extent is still at least minAABBThickness after construction.
func TestQuadBoundingBoxPadding(t *testing.T) {
	mat := material.NewLambertian(core.Color{X: 1, Y: 1, Z: 1})
	q := NewQuad(core.Point3{X: -1, Y: -1, Z: 0}, core.Vec3{X: 2}, core.Vec3{Y: 2}, mat)
	box := q.BoundingBox()
	if box.Z.Size() < 1e-4 {
		t.Errorf("z-size = %v, want >= 1e-4", box.Z.Size())
	}
}
