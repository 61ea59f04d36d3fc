package geometry

import "github.com/wrenlight/arclight/pkg/core"

// List is an unordered collection of Hittables tested by linear scan.
// It groups a small fixed set of shapes into one Hittable (e.g. the
// six quads NewBox returns), which a scene then adds to its BVH as a
// single shape.
type List struct {
	Shapes []core.Hittable
	bounds core.AABB
}

// NewList constructs a List from zero or more shapes.
func NewList(shapes ...core.Hittable) *List {
	l := &List{}
	for _, s := range shapes {
		l.Add(s)
	}
	return l
}

// Add appends a shape and folds its bounding box into the list's box.
func (l *List) Add(shape core.Hittable) {
	if l.Shapes == nil {
		l.bounds = core.EmptyAABB()
	}
	l.Shapes = append(l.Shapes, shape)
	l.bounds = l.bounds.Union(shape.BoundingBox())
}

// Hit returns the closest intersection among every shape in the list.
func (l *List) Hit(ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	closest := tRange
	var best core.HitRecord
	hitAny := false
	for _, shape := range l.Shapes {
		if hit, ok := shape.Hit(ray, closest); ok {
			hitAny = true
			closest.Max = hit.T
			best = hit
		}
	}
	return best, hitAny
}

// BoundingBox returns the union of every shape's bounding box.
func (l *List) BoundingBox() core.AABB {
	return l.bounds
}
