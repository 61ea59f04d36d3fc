package geometry

import (
	"github.com/wrenlight/arclight/pkg/core"
)

// Triangle is a single triangle with vertices V0, V1, V2, hit-tested
// with the Möller-Trumbore algorithm.
type Triangle struct {
	V0, V1, V2 core.Point3
	Material   core.Material
}

// NewTriangle constructs a Triangle.
func NewTriangle(v0, v1, v2 core.Point3, mat core.Material) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
}

// Hit implements core.Hittable via the Möller-Trumbore intersection
// test.
func (t *Triangle) Hit(ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return core.HitRecord{}, false // ray parallel to triangle
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return core.HitRecord{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return core.HitRecord{}, false
	}

	tHit := f * edge2.Dot(q)
	if !tRange.Surrounds(tHit) {
		return core.HitRecord{}, false
	}

	point := ray.At(tHit)
	outwardNormal := edge1.Cross(edge2).Normalize()

	hit := core.HitRecord{T: tHit, Point: point, Material: t.Material, U: u, V: v}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the AABB of the triangle's three vertices.
func (t *Triangle) BoundingBox() core.AABB {
	box := core.NewAABBFromPoints(t.V0, t.V1)
	return box.Union(core.NewAABBFromPoints(t.V1, t.V2))
}

// TriangleMesh is a flat list of triangles sharing one material,
// produced by the OBJ and glTF loaders. It implements core.Hittable
// directly and holds no acceleration structure of its own.
type TriangleMesh struct {
	Triangles []*Triangle
	bounds    core.AABB
}

// NewTriangleMesh builds a mesh from a flat list of triangles.
func NewTriangleMesh(triangles []*Triangle) *TriangleMesh {
	box := core.EmptyAABB()
	for _, tri := range triangles {
		box = box.Union(tri.BoundingBox())
	}
	return &TriangleMesh{Triangles: triangles, bounds: box}
}

// Hit linearly scans every triangle of the mesh and returns the
// closest hit.
func (m *TriangleMesh) Hit(ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	closest := tRange
	var best core.HitRecord
	hitAny := false
	for _, tri := range m.Triangles {
		if hit, ok := tri.Hit(ray, closest); ok {
			hitAny = true
			closest.Max = hit.T
			best = hit
		}
	}
	return best, hitAny
}

// BoundingBox returns the precomputed bounding box of every triangle.
func (m *TriangleMesh) BoundingBox() core.AABB {
	return m.bounds
}
