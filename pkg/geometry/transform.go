package geometry

import (
	"math"

	"github.com/wrenlight/arclight/pkg/core"
)

// Translate wraps a Hittable, offsetting it by Offset. The ray is
// moved into the child's object space rather than transforming the
// child's geometry, so the wrapped shape's own Hit logic is reused
// unchanged.
type Translate struct {
	Child  core.Hittable
	Offset core.Vec3
	bounds core.AABB
}

// NewTranslate constructs a Translate wrapper.
func NewTranslate(child core.Hittable, offset core.Vec3) *Translate {
	box := child.BoundingBox()
	moved := core.NewAABBFromPoints(
		box.Center().Add(offset).Subtract(core.Vec3{X: box.X.Size() / 2, Y: box.Y.Size() / 2, Z: box.Z.Size() / 2}),
		box.Center().Add(offset).Add(core.Vec3{X: box.X.Size() / 2, Y: box.Y.Size() / 2, Z: box.Z.Size() / 2}),
	)
	return &Translate{Child: child, Offset: offset, bounds: moved}
}

// Hit implements core.Hittable.
func (t *Translate) Hit(ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	offsetRay := core.NewRayWithEta(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Eta)
	hit, ok := t.Child.Hit(offsetRay, tRange)
	if !ok {
		return core.HitRecord{}, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the translated bounding box.
func (t *Translate) BoundingBox() core.AABB {
	return t.bounds
}

// RotateY wraps a Hittable, rotating it about the Y axis by the angle
// given to NewRotateY. As with Translate, the ray is rotated into object space and
// the resulting hit point/normal rotated back, rather than
// transforming the child's geometry.
type RotateY struct {
	Child      core.Hittable
	sinT, cosT float64
	bounds     core.AABB
}

// NewRotateY constructs a RotateY wrapper. angle is in radians.
func NewRotateY(child core.Hittable, angle float64) *RotateY {
	sinT, cosT := math.Sin(angle), math.Cos(angle)
	box := child.BoundingBox()

	rotated := core.EmptyAABB()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerp(i, box.X)
				y := lerp(j, box.Y)
				z := lerp(k, box.Z)

				newX := cosT*x + sinT*z
				newZ := -sinT*x + cosT*z

				corner := core.Point3{X: newX, Y: y, Z: newZ}
				rotated = rotated.Union(core.NewAABBFromPoints(corner, corner))
			}
		}
	}

	return &RotateY{Child: child, sinT: sinT, cosT: cosT, bounds: rotated}
}

func lerp(i int, interval core.Interval) float64 {
	if i == 0 {
		return interval.Min
	}
	return interval.Max
}

// Hit implements core.Hittable.
func (r *RotateY) Hit(ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	origin := core.Point3{
		X: r.cosT*ray.Origin.X - r.sinT*ray.Origin.Z,
		Y: ray.Origin.Y,
		Z: r.sinT*ray.Origin.X + r.cosT*ray.Origin.Z,
	}
	direction := core.Vec3{
		X: r.cosT*ray.Direction.X - r.sinT*ray.Direction.Z,
		Y: ray.Direction.Y,
		Z: r.sinT*ray.Direction.X + r.cosT*ray.Direction.Z,
	}
	rotatedRay := core.NewRayWithEta(origin, direction, ray.Eta)

	hit, ok := r.Child.Hit(rotatedRay, tRange)
	if !ok {
		return core.HitRecord{}, false
	}

	hit.Point = core.Point3{
		X: r.cosT*hit.Point.X + r.sinT*hit.Point.Z,
		Y: hit.Point.Y,
		Z: -r.sinT*hit.Point.X + r.cosT*hit.Point.Z,
	}
	hit.Normal = core.Vec3{
		X: r.cosT*hit.Normal.X + r.sinT*hit.Normal.Z,
		Y: hit.Normal.Y,
		Z: -r.sinT*hit.Normal.X + r.cosT*hit.Normal.Z,
	}
	return hit, true
}

// BoundingBox returns the rotated bounding box.
func (r *RotateY) BoundingBox() core.AABB {
	return r.bounds
}
