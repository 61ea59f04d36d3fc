package geometry

import "github.com/wrenlight/arclight/pkg/core"

// NewBox builds an axis-aligned box between corners a and b out of six
// quads, convenience sugar over Quad used by scenes that want solid
// blocks (e.g. the short/tall boxes in a Cornell scene) without
// hand-assembling each face.
func NewBox(a, b core.Point3, mat core.Material) *List {
	min := core.Point3{X: minF(a.X, b.X), Y: minF(a.Y, b.Y), Z: minF(a.Z, b.Z)}
	max := core.Point3{X: maxF(a.X, b.X), Y: maxF(a.Y, b.Y), Z: maxF(a.Z, b.Z)}

	dx := core.Vec3{X: max.X - min.X}
	dy := core.Vec3{Y: max.Y - min.Y}
	dz := core.Vec3{Z: max.Z - min.Z}

	sides := NewList(
		NewQuad(core.Point3{X: min.X, Y: min.Y, Z: max.Z}, dx, dy, mat),         // front
		NewQuad(core.Point3{X: max.X, Y: min.Y, Z: max.Z}, dz.Negate(), dy, mat), // right
		NewQuad(core.Point3{X: max.X, Y: min.Y, Z: min.Z}, dx.Negate(), dy, mat), // back
		NewQuad(core.Point3{X: min.X, Y: min.Y, Z: min.Z}, dz, dy, mat),          // left
		NewQuad(core.Point3{X: min.X, Y: max.Y, Z: max.Z}, dx, dz.Negate(), mat), // top
		NewQuad(core.Point3{X: min.X, Y: min.Y, Z: min.Z}, dx, dz, mat),          // bottom
	)
	return sides
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
