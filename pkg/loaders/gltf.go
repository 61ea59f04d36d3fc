package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/geometry"
)

// LoadGLTF reads a glTF or GLB document at path and returns its
// geometry as a flat triangle list, ready for geometry.NewTriangleMesh
// or pkg/bvh.Build. Only the POSITION accessor of each TRIANGLES-mode
// primitive is consumed; normals, texture coordinates, materials and
// animation in the document are ignored, matching the OBJ loader's
// positions-only contract.
func LoadGLTF(path string, mat core.Material) ([]*geometry.Triangle, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open gltf %q: %w", path, err)
	}

	var triangles []*geometry.Triangle

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue // only triangle lists are supported
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("loaders: read positions: %w", err)
			}

			verts := make([]core.Point3, len(positions))
			for i, p := range positions {
				verts[i] = core.Point3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
			}

			if prim.Indices != nil {
				indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("loaders: read indices: %w", err)
				}
				for i := 0; i+2 < len(indices); i += 3 {
					triangles = append(triangles, geometry.NewTriangle(
						verts[indices[i]], verts[indices[i+1]], verts[indices[i+2]], mat))
				}
			} else {
				for i := 0; i+2 < len(verts); i += 3 {
					triangles = append(triangles, geometry.NewTriangle(verts[i], verts[i+1], verts[i+2], mat))
				}
			}
		}
	}

	return triangles, nil
}
