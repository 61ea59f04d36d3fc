package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/geometry"
)

// LoadOBJ reads a Wavefront OBJ file and returns its faces as a flat
// triangle list. Only v (vertex position) and f (face) records
// contribute to the result; vt/vn records are recognized and skipped
// without being parsed or stored, and the vt/vn parts of face tokens
// are ignored, since arclight materials carry no texture or normal
// maps. Quad faces are triangulated as (v0, v1, v2) + (v0, v2,
// v3); faces with more than four vertices are rejected.
func LoadOBJ(path string, mat core.Material) ([]*geometry.Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open obj %q: %w", path, err)
	}
	defer f.Close()

	return parseOBJ(f, mat)
}

func parseOBJ(r io.Reader, mat core.Material) ([]*geometry.Triangle, error) {
	var positions []core.Point3
	var triangles []*geometry.Triangle

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: obj line %d: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vt", "vn":
			// texture/normal coordinates are not used by arclight's
			// materials; skip without further parsing.
		case "f":
			faceTriangles, err := parseFace(fields[1:], positions, mat)
			if err != nil {
				return nil, fmt.Errorf("loaders: obj line %d: %w", lineNo, err)
			}
			triangles = append(triangles, faceTriangles...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: read obj: %w", err)
	}

	return triangles, nil
}

func parseVertex(fields []string) (core.Point3, error) {
	if len(fields) < 3 {
		return core.Point3{}, fmt.Errorf("vertex record needs 3 coordinates, got %d", len(fields))
	}
	coords := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Point3{}, fmt.Errorf("parsing coordinate %q: %w", fields[i], err)
		}
		coords[i] = v
	}
	return core.Point3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// faceVertexIndex parses an OBJ face-vertex token, which may be
// "v", "v/vt", "v/vt/vn" or "v//vn"; only the position index is used.
func faceVertexIndex(token string) (int, error) {
	idxStr := strings.SplitN(token, "/", 2)[0]
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return 0, fmt.Errorf("parsing face index %q: %w", token, err)
	}
	return idx, nil
}

func parseFace(fields []string, positions []core.Point3, mat core.Material) ([]*geometry.Triangle, error) {
	if len(fields) < 3 || len(fields) > 4 {
		return nil, fmt.Errorf("face record must have 3 or 4 vertices, got %d", len(fields))
	}

	resolve := func(token string) (core.Point3, error) {
		idx, err := faceVertexIndex(token)
		if err != nil {
			return core.Point3{}, err
		}
		// OBJ indices are 1-based; negative indices count from the end.
		if idx < 0 {
			idx = len(positions) + idx + 1
		}
		if idx < 1 || idx > len(positions) {
			return core.Point3{}, fmt.Errorf("face index %d out of range (have %d vertices)", idx, len(positions))
		}
		return positions[idx-1], nil
	}

	verts := make([]core.Point3, len(fields))
	for i, token := range fields {
		p, err := resolve(token)
		if err != nil {
			return nil, err
		}
		verts[i] = p
	}

	tri0 := geometry.NewTriangle(verts[0], verts[1], verts[2], mat)
	if len(verts) == 3 {
		return []*geometry.Triangle{tri0}, nil
	}
	tri1 := geometry.NewTriangle(verts[0], verts[2], verts[3], mat)
	return []*geometry.Triangle{tri0, tri1}, nil
}
