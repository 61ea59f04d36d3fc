package geometry

import (
	"github.com/wrenlight/arclight/pkg/core"
)

// Quad is a planar rectangle spanned by edge vectors U and V from
// Corner. Hit testing follows the standard plane-intersect +
// barycentric approach: intersect the ray with the quad's plane, then
// express the hit point in the (U, V) basis and reject it if either
// coordinate falls outside [0, 1].
type Quad struct {
	Corner   core.Point3
	U, V     core.Vec3
	Normal   core.Vec3 // unit normal, U x V normalized
	Material core.Material
	d        float64   // plane equation constant: Normal . p = d
	w        core.Vec3 // cached for barycentric coordinate recovery
}

// NewQuad constructs a Quad from a corner and two edge vectors.
func NewQuad(corner, u, v core.Point3, mat core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()
	d := normal.Dot(corner)
	w := normal.Multiply(1.0 / normal.Dot(cross))
	return &Quad{Corner: corner, U: u, V: v, Normal: normal, Material: mat, d: d, w: w}
}

// Hit implements core.Hittable.
func (q *Quad) Hit(ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	denom := q.Normal.Dot(ray.Direction)
	if denom > -1e-8 && denom < 1e-8 {
		return core.HitRecord{}, false
	}

	t := (q.d - q.Normal.Dot(ray.Origin)) / denom
	if !tRange.Surrounds(t) {
		return core.HitRecord{}, false
	}

	point := ray.At(t)
	hitVec := point.Subtract(q.Corner)
	alpha := q.w.Dot(hitVec.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVec))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.HitRecord{}, false
	}

	hit := core.HitRecord{T: t, Point: point, Material: q.Material, U: alpha, V: beta}
	hit.SetFaceNormal(ray, q.Normal)
	return hit, true
}

// BoundingBox returns an AABB enclosing all four corners; core.NewAABB
// pads any axis that collapses to zero thickness, so an axis-aligned
// quad still yields a usable (non-degenerate) box without special
// casing.
func (q *Quad) BoundingBox() core.AABB {
	c0 := q.Corner
	c1 := q.Corner.Add(q.U)
	c2 := q.Corner.Add(q.V)
	c3 := q.Corner.Add(q.U).Add(q.V)

	box := core.NewAABBFromPoints(c0, c1)
	box = box.Union(core.NewAABBFromPoints(c2, c3))
	return box
}

// Area returns |U x V|, the quad's surface area.
func (q *Quad) Area() float64 {
	return q.U.Cross(q.V).Length()
}
