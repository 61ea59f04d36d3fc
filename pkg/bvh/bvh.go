// Package bvh builds and traverses a bounding volume hierarchy over a
// set of core.Hittable shapes, splitting each internal node with the
// surface-area heuristic (SAH) over bucketed primitive centroids
// rather than a plain median split.
package bvh

import "github.com/wrenlight/arclight/pkg/core"

// leafThreshold is the shape count at or below which a node stores its
// shapes directly instead of splitting further.
const leafThreshold = 4

// maxBuckets caps the number of SAH buckets considered per axis; a
// span of fewer primitives just uses one bucket per primitive.
const maxBuckets = 12

// Node is one node of the hierarchy: either a leaf carrying Shapes
// directly, or an internal node carrying Left/Right children.
type Node struct {
	Bounds core.AABB
	Left   *Node
	Right  *Node
	Shapes []core.Hittable // non-nil only on leaves
}

// BVH wraps the root node and answers core.Hittable-shaped queries
// over the whole tree.
type BVH struct {
	Root *Node
}

// Build constructs a BVH over shapes. The input slice is copied before
// partitioning, so callers may reuse it afterward.
func Build(shapes []core.Hittable) *BVH {
	if len(shapes) == 0 {
		return &BVH{Root: nil}
	}
	cp := make([]core.Hittable, len(shapes))
	copy(cp, shapes)
	return &BVH{Root: build(cp)}
}

func boundsOf(shapes []core.Hittable) core.AABB {
	box := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		box = box.Union(s.BoundingBox())
	}
	return box
}

func build(shapes []core.Hittable) *Node {
	bounds := boundsOf(shapes)

	if len(shapes) <= leafThreshold {
		return &Node{Bounds: bounds, Shapes: shapes}
	}

	axis, splitPos, ok := bestSAHSplit(shapes, bounds)
	if !ok {
		return &Node{Bounds: bounds, Shapes: shapes}
	}

	left, right := partition(shapes, axis, splitPos)
	if len(left) == 0 || len(right) == 0 {
		return &Node{Bounds: bounds, Shapes: shapes}
	}

	return &Node{
		Bounds: bounds,
		Left:   build(left),
		Right:  build(right),
	}
}

// bucket accumulates the bounds and count of centroids falling into
// one SAH bucket along the split axis.
type bucket struct {
	count  int
	bounds core.AABB
	filled bool
}

// bestSAHSplit evaluates a bucketed SAH cost along the node's longest
// axis and returns the split position (a centroid coordinate
// threshold) with lowest estimated cost. Following PBRT's binned-SAH
// construction: centroids are bucketed into min(span, maxBuckets)
// equal-width buckets, left/right surface-area-times-count costs are
// accumulated via a prefix/suffix sweep over the bucket boundaries,
// and the boundary with lowest total cost is chosen. Spans of 1-3
// primitives are split without bucketing, at the midpoint of the
// node's bounds along that axis.
func bestSAHSplit(shapes []core.Hittable, bounds core.AABB) (axis int, splitPos float64, ok bool) {
	axis = bounds.LongestAxis()
	axisInterval := bounds.AxisInterval(axis)
	extent := axisInterval.Size()
	if extent <= 0 {
		return 0, 0, false
	}

	n := len(shapes)
	if n <= 3 {
		// Not enough primitives for bucketing to pay off; split at the
		// midpoint of the node's bounds along the longest axis.
		return axis, axisInterval.Min + extent/2, true
	}

	numBuckets := n
	if numBuckets > maxBuckets {
		numBuckets = maxBuckets
	}
	bucketWidth := extent / float64(numBuckets)

	buckets := make([]bucket, numBuckets)
	centroidAxis := func(s core.Hittable) float64 {
		return axisValue(s.BoundingBox().Center(), axis)
	}

	bucketIndex := func(s core.Hittable) int {
		b := int((centroidAxis(s) - axisInterval.Min) / bucketWidth)
		if b < 0 {
			b = 0
		}
		if b >= numBuckets {
			b = numBuckets - 1
		}
		return b
	}

	for _, s := range shapes {
		bi := bucketIndex(s)
		box := s.BoundingBox()
		if !buckets[bi].filled {
			buckets[bi].bounds = box
			buckets[bi].filled = true
		} else {
			buckets[bi].bounds = buckets[bi].bounds.Union(box)
		}
		buckets[bi].count++
	}

	// Prefix sweep: leftArea[i] / leftCount[i] summarize buckets [0, i].
	leftArea := make([]float64, numBuckets)
	leftCount := make([]int, numBuckets)
	runningBox := core.EmptyAABB()
	runningFilled := false
	runningCount := 0
	for i := 0; i < numBuckets; i++ {
		if buckets[i].filled {
			if !runningFilled {
				runningBox = buckets[i].bounds
				runningFilled = true
			} else {
				runningBox = runningBox.Union(buckets[i].bounds)
			}
			runningCount += buckets[i].count
		}
		if runningFilled {
			leftArea[i] = runningBox.SurfaceArea()
		}
		leftCount[i] = runningCount
	}

	// Suffix sweep: rightArea[i] / rightCount[i] summarize buckets [i, numBuckets-1].
	rightArea := make([]float64, numBuckets)
	rightCount := make([]int, numBuckets)
	runningBox = core.EmptyAABB()
	runningFilled = false
	runningCount = 0
	for i := numBuckets - 1; i >= 0; i-- {
		if buckets[i].filled {
			if !runningFilled {
				runningBox = buckets[i].bounds
				runningFilled = true
			} else {
				runningBox = runningBox.Union(buckets[i].bounds)
			}
			runningCount += buckets[i].count
		}
		if runningFilled {
			rightArea[i] = runningBox.SurfaceArea()
		}
		rightCount[i] = runningCount
	}

	bestCost := -1.0
	bestCursor := -1
	for cursor := 0; cursor < numBuckets-1; cursor++ {
		lc, rc := leftCount[cursor], rightCount[cursor+1]
		if lc == 0 || rc == 0 {
			continue
		}
		cost := leftArea[cursor]*float64(lc) + rightArea[cursor+1]*float64(rc)
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			bestCursor = cursor
		}
	}

	if bestCursor < 0 {
		return 0, 0, false
	}

	splitPos = axisInterval.Min + float64(bestCursor+1)*bucketWidth
	return axis, splitPos, true
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func partition(shapes []core.Hittable, axis int, splitPos float64) ([]core.Hittable, []core.Hittable) {
	var left, right []core.Hittable
	for _, s := range shapes {
		if axisValue(s.BoundingBox().Center(), axis) < splitPos {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	return left, right
}

// Hit implements core.Hittable over the whole tree.
func (b *BVH) Hit(ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	if b.Root == nil {
		return core.HitRecord{}, false
	}
	return hitNode(b.Root, ray, tRange)
}

// BoundingBox implements core.Hittable.
func (b *BVH) BoundingBox() core.AABB {
	if b.Root == nil {
		return core.EmptyAABB()
	}
	return b.Root.Bounds
}

func hitNode(node *Node, ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	if !node.Bounds.Hit(ray, tRange) {
		return core.HitRecord{}, false
	}

	if node.Shapes != nil {
		closest := tRange
		var best core.HitRecord
		hitAny := false
		for _, s := range node.Shapes {
			if hit, ok := s.Hit(ray, closest); ok {
				hitAny = true
				closest.Max = hit.T
				best = hit
			}
		}
		return best, hitAny
	}

	closest := tRange
	var best core.HitRecord
	hitAny := false
	if node.Left != nil {
		if hit, ok := hitNode(node.Left, ray, closest); ok {
			hitAny = true
			closest.Max = hit.T
			best = hit
		}
	}
	if node.Right != nil {
		if hit, ok := hitNode(node.Right, ray, closest); ok {
			hitAny = true
			closest.Max = hit.T
			best = hit
		}
	}
	return best, hitAny
}
