package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/opensaft/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file into a Mesh. Only the subset
// needed to round-trip saftgen's own output is supported: v/vn/f
// lines, with f accepting bare indices or v/vt/vn and v//vn forms.
// Faces with more than three vertices are fan-triangulated.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh := NewMesh(filepath.Base(path))

	var positions []math3d.Vec3
	var normals []math3d.Vec3
	haveNormals := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
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
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
			}
			positions = append(positions, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
			}
			normals = append(normals, n)
			haveNormals = true
		case "f":
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				vi, _, ni, err := parseFaceVertex(tok)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				vIdx, err := resolveIndex(vi, len(positions))
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}

				var n math3d.Vec3
				if ni != 0 {
					nIdx, err := resolveIndex(ni, len(normals))
					if err != nil {
						return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
					}
					n = normals[nIdx]
				}

				mesh.Vertices = append(mesh.Vertices, MeshVertex{
					Position: positions[vIdx],
					Normal:   n,
				})
				idx = append(idx, len(mesh.Vertices)-1)
			}
			for i := 1; i+1 < len(idx); i++ {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{idx[0], idx[i], idx[i+1]}})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if !haveNormals {
		mesh.CalculateNormals()
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func parseVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var v [3]float64
	for i := 0; i < 3; i++ {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("bad float %q: %w", fields[i], err)
		}
		v[i] = x
	}
	return math3d.V3(v[0], v[1], v[2]), nil
}

// parseFaceVertex splits a face-vertex token of the form v, v/vt,
// v//vn, or v/vt/vn. Missing components are returned as 0.
func parseFaceVertex(tok string) (v, vt, vn int, err error) {
	parts := strings.Split(tok, "/")
	v, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad face index %q: %w", tok, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		vt, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("bad face index %q: %w", tok, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		vn, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("bad face index %q: %w", tok, err)
		}
	}
	return v, vt, vn, nil
}

// resolveIndex converts a 1-based (or, per the OBJ spec, negative
// relative) index into a 0-based slice index.
func resolveIndex(i, count int) (int, error) {
	switch {
	case i > 0:
		i--
	case i < 0:
		i = count + i
	default:
		return 0, fmt.Errorf("index 0 is not valid in OBJ")
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("index %d out of range (have %d)", i, count)
	}
	return i, nil
}
