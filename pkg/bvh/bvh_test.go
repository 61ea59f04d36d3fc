package bvh

import (
	"math"
	"math/rand"
	"testing"

	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/geometry"
	"github.com/wrenlight/arclight/pkg/material"
)

func linearScanClosest(shapes []core.Hittable, ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	closest := tRange
	var best core.HitRecord
	hitAny := false
	for _, s := range shapes {
		if hit, ok := s.Hit(ray, closest); ok {
			hitAny = true
			closest.Max = hit.T
			best = hit
		}
	}
	return best, hitAny
}

// property 3: a BVH must return the same closest hit a linear scan of
// the same primitives would, for every ray. S5 uses a field of random
// spheres and 10^4 random rays at tolerance 1e-9; this test uses a
// smaller field/ray count at the same tolerance to keep it fast.
func TestBVHMatchesLinearScanClosestHit(t *testing.T) {
	random := rand.New(rand.NewSource(99))
	mat := material.NewLambertian(core.Color{X: 0.5, Y: 0.5, Z: 0.5})

	const numSpheres = 120
	shapes := make([]core.Hittable, numSpheres)
	for i := range shapes {
		center := core.Point3{
			X: -11 + 22*random.Float64(),
			Y: 0.2,
			Z: -11 + 22*random.Float64(),
		}
		radius := 0.1 + 0.15*random.Float64()
		shapes[i] = geometry.NewSphere(center, radius, mat)
	}

	tree := Build(shapes)

	const numRays = 2000
	for i := 0; i < numRays; i++ {
		origin := core.Point3{
			X: -15 + 30*random.Float64(),
			Y: -5 + 10*random.Float64(),
			Z: -15 + 30*random.Float64(),
		}
		target := core.Point3{
			X: -11 + 22*random.Float64(),
			Y: 0.2,
			Z: -11 + 22*random.Float64(),
		}
		dir := core.Vec3{X: target.X - origin.X, Y: target.Y - origin.Y, Z: target.Z - origin.Z}
		ray := core.NewRay(origin, dir)
		tRange := core.NewInterval(1e-3, math.Inf(1))

		wantHit, wantOK := linearScanClosest(shapes, ray, tRange)
		gotHit, gotOK := tree.Hit(ray, tRange)

		if wantOK != gotOK {
			t.Fatalf("ray %d: linear scan hit=%v, bvh hit=%v", i, wantOK, gotOK)
		}
		if !wantOK {
			continue
		}
		if math.Abs(wantHit.T-gotHit.T) > 1e-9 {
			t.Fatalf("ray %d: linear scan t=%v, bvh t=%v", i, wantHit.T, gotHit.T)
		}
	}
}

// property 4: Build must terminate and every leaf-reachable primitive
// must be reachable through exactly one root-to-leaf path, for spans
// of 0, 1, 2, 3 and N primitives.
func TestBVHBuildTerminatesForEverySpan(t *testing.T) {
	mat := material.NewLambertian(core.Color{X: 1, Y: 1, Z: 1})

	for _, n := range []int{0, 1, 2, 3, 4, 5, 37} {
		shapes := make([]core.Hittable, n)
		for i := range shapes {
			shapes[i] = geometry.NewSphere(core.Point3{X: float64(i), Y: 0, Z: 0}, 0.4, mat)
		}

		tree := Build(shapes)
		seen := make(map[core.Hittable]int)
		countReachable(tree.Root, seen)

		total := 0
		for _, c := range seen {
			if c != 1 {
				t.Errorf("n=%d: primitive reached via %d root-to-leaf paths, want exactly 1", n, c)
			}
			total += c
		}
		if total != n {
			t.Errorf("n=%d: reached %d primitives total, want %d", n, total, n)
		}
	}
}

func countReachable(node *Node, seen map[core.Hittable]int) {
	if node == nil {
		return
	}
	for _, s := range node.Shapes {
		seen[s]++
	}
	countReachable(node.Left, seen)
	countReachable(node.Right, seen)
}

func TestBVHEmptyBuildHasNilRoot(t *testing.T) {
	tree := Build(nil)
	if tree.Root != nil {
		t.Error("building over no shapes should produce a nil root")
	}
	if _, ok := tree.Hit(core.NewRay(core.Point3{}, core.Vec3{X: 0, Y: 0, Z: 1}), core.NewInterval(0, math.Inf(1))); ok {
		t.Error("an empty BVH should never report a hit")
	}
	// BoundingBox on an empty tree should not panic.
	_ = tree.BoundingBox()
}
