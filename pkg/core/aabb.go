package core

// minAABBThickness is the smallest extent an AABB is allowed to have
// along any axis. Perfectly flat primitives (an axis-aligned quad, a
// triangle lying in a plane) would otherwise produce a zero-thickness
// slab that the BVH's splitting heuristics handle poorly.
const minAABBThickness = 1e-4

// AABB is an axis-aligned bounding box expressed as one Interval per
// axis.
type AABB struct {
	X, Y, Z Interval
}

// NewAABB builds an AABB from three intervals, padding any axis
// thinner than minAABBThickness.
func NewAABB(x, y, z Interval) AABB {
	b := AABB{X: x, Y: y, Z: z}
	return b.padToMinimums()
}

// NewAABBFromPoints returns the smallest AABB enclosing a and b.
func NewAABBFromPoints(a, b Point3) AABB {
	x := NewInterval(minF(a.X, b.X), maxF(a.X, b.X))
	y := NewInterval(minF(a.Y, b.Y), maxF(a.Y, b.Y))
	z := NewInterval(minF(a.Z, b.Z), maxF(a.Z, b.Z))
	return NewAABB(x, y, z)
}

// EmptyAABB returns an AABB that contains no points.
func EmptyAABB() AABB {
	return AABB{X: Empty(), Y: Empty(), Z: Empty()}
}

func (b AABB) padToMinimums() AABB {
	if b.X.Size() < minAABBThickness {
		b.X = b.X.Expand(minAABBThickness)
	}
	if b.Y.Size() < minAABBThickness {
		b.Y = b.Y.Expand(minAABBThickness)
	}
	if b.Z.Size() < minAABBThickness {
		b.Z = b.Z.Expand(minAABBThickness)
	}
	return b
}

// AxisInterval returns the interval for axis 0=X, 1=Y, 2=Z.
func (b AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// Union returns the smallest AABB enclosing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		X: b.X.Union(other.X),
		Y: b.Y.Union(other.Y),
		Z: b.Z.Union(other.Z),
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Point3 {
	return Point3{
		X: (b.X.Min + b.X.Max) / 2,
		Y: (b.Y.Min + b.Y.Max) / 2,
		Z: (b.Z.Min + b.Z.Max) / 2,
	}
}

// SurfaceArea returns the total surface area of the box, used by the
// BVH's SAH cost model.
func (b AABB) SurfaceArea() float64 {
	dx, dy, dz := b.X.Size(), b.Y.Size(), b.Z.Size()
	return 2 * (dx*dy + dy*dz + dz*dx)
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the box's longest
// extent.
func (b AABB) LongestAxis() int {
	dx, dy, dz := b.X.Size(), b.Y.Size(), b.Z.Size()
	if dx > dy && dx > dz {
		return 0
	}
	if dy > dz {
		return 1
	}
	return 2
}

// Hit performs the slab test against ray over the parameter interval
// tRange, returning whether the ray intersects the box within that
// range.
func (b AABB) Hit(r Ray, tRange Interval) bool {
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		ax := b.AxisInterval(axis)
		if dir[axis] == 0 {
			if !ax.Surrounds(origin[axis]) && !ax.Contains(origin[axis]) {
				return false
			}
			continue
		}
		invD := 1.0 / dir[axis]
		t0 := (ax.Min - origin[axis]) * invD
		t1 := (ax.Max - origin[axis]) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tRange.Min {
			tRange.Min = t0
		}
		if t1 < tRange.Max {
			tRange.Max = t1
		}
		if tRange.Max <= tRange.Min {
			return false
		}
	}
	return true
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
