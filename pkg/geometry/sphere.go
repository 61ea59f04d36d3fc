// Package geometry implements the primitive Hittable shapes (sphere,
// quad, triangle/mesh) and the affine wrappers (Translate, RotateY)
// used to place them in a scene.
package geometry

import (
	"math"

	"github.com/wrenlight/arclight/pkg/core"
)

// Sphere is a sphere of constant Radius centered at Center.
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material core.Material
}

// NewSphere constructs a Sphere.
func NewSphere(center core.Point3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves the ray-sphere quadratic, preferring the nearer root that
// falls within tRange.
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !tRange.Surrounds(root) {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi

	hit := core.HitRecord{
		T:        root,
		Point:    point,
		Material: s.Material,
		U:        phi / (2 * math.Pi),
		V:        theta / math.Pi,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the sphere's axis-aligned bounding box.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return core.NewAABBFromPoints(s.Center.Subtract(r), s.Center.Add(r))
}
