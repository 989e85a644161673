// Package marching extracts an indexed triangle mesh from the zero
// isosurface of a dense scalar grid via the classic 256-case marching
// cubes algorithm. The case/edge tables in this package are not derived
// from any ported source: they are the standard public-domain
// Lorensen-Cline tables, since no marching-cubes implementation was
// available to ground this package on directly.
package marching

import (
	"math"

	"github.com/taigrr/opensaft/pkg/grid"
	"github.com/taigrr/opensaft/pkg/sdf"
	"github.com/taigrr/opensaft/pkg/vecf"
)

const isoLevel = 0.0

// Result is a welded, indexed triangle mesh: three consecutive entries
// in Indices form one triangle, each indexing into Positions/Normals,
// in grid-cell coordinates (x,y,z each in [0, size-1]). Callers map
// this into world space.
type Result struct {
	Positions []vecf.Vec3
	Normals   []vecf.Vec3
	Indices   []uint32
}

func vertexInterp(p1, p2 vecf.Vec3, v1, v2 float32) (vecf.Vec3, float32) {
	if float32(math.Abs(float64(v2-v1))) < 1e-6 {
		return p1, 0
	}
	t := (isoLevel - v1) / (v2 - v1)
	return p1.Lerp(p2, t), t
}

// idxSlice caches the vertex index already emitted for a grid edge,
// keyed by x+w*y of the edge's lower corner. -1 means the edge hasn't
// been visited yet.
type idxSlice []int32

func newIdxSlice(w, h int) idxSlice {
	s := make(idxSlice, w*h)
	for i := range s {
		s[i] = -1
	}
	return s
}

// edgePlane holds the two index caches needed for the XY-edges lying
// in one Z plane of the grid: edges running along X and edges running
// along Y.
type edgePlane struct {
	x, y idxSlice
}

func newEdgePlane(w, h int) edgePlane {
	return edgePlane{x: newIdxSlice(w, h), y: newIdxSlice(w, h)}
}

// edgeAxis names which of a cube's three edge families an edge
// belongs to, used to pick the right cache out of an edgePlane.
type edgeAxis int

const (
	axisX edgeAxis = iota
	axisY
)

// edgeLoc places one of a cube's 12 edges into its owning cache:
// bottom/top pick the cube layer's lower or upper Z plane (the
// vertical edges use neither, and index the layer's own cache
// instead), axis picks X- or Y-running within that plane, and dx, dy
// offset the cell's (x,y) to the edge's shared key.
type edgeLoc struct {
	vertical bool
	top      bool
	axis     edgeAxis
	dx, dy   int
}

// edgeLocs maps cubeEdgeVertices' 12 edges to the plane, axis and key
// offset that owns each one, so a grid edge shared by neighboring
// cubes is only ever turned into a vertex once.
var edgeLocs = [12]edgeLoc{
	{axis: axisX, dx: 0, dy: 0},             // 0: bottom X at (x,y)
	{axis: axisY, dx: 1, dy: 0},             // 1: bottom Y at (x+1,y)
	{axis: axisX, dx: 0, dy: 1},             // 2: bottom X at (x,y+1)
	{axis: axisY, dx: 0, dy: 0},             // 3: bottom Y at (x,y)
	{top: true, axis: axisX, dx: 0, dy: 0},  // 4: top X at (x,y)
	{top: true, axis: axisY, dx: 1, dy: 0},  // 5: top Y at (x+1,y)
	{top: true, axis: axisX, dx: 0, dy: 1},  // 6: top X at (x,y+1)
	{top: true, axis: axisY, dx: 0, dy: 0},  // 7: top Y at (x,y)
	{vertical: true, dx: 0, dy: 0},          // 8: vertical at (x,y)
	{vertical: true, dx: 1, dy: 0},          // 9: vertical at (x+1,y)
	{vertical: true, dx: 1, dy: 1},          // 10: vertical at (x+1,y+1)
	{vertical: true, dx: 0, dy: 1},          // 11: vertical at (x,y+1)
}

// layerCtx bundles the rolling planes live while one cube layer
// (between grid Z levels z and z+1) is being polygonized.
type layerCtx struct {
	w, h     int
	bottom   edgePlane // XY-edges on the layer's lower Z plane
	top      edgePlane // XY-edges on the layer's upper Z plane
	vertical idxSlice  // Z-edges within this layer only
}

func (lc *layerCtx) key(x, y int) int { return x + lc.w*y }

func (lc *layerCtx) cache(loc edgeLoc) idxSlice {
	if loc.vertical {
		return lc.vertical
	}
	plane := lc.bottom
	if loc.top {
		plane = lc.top
	}
	if loc.axis == axisX {
		return plane.x
	}
	return plane.y
}

// Polygonize extracts the zero isosurface of g. The Z axis is walked in
// order: each cube layer reuses the XY-edge index planes rolled over
// from the layer below it, and the vertical-edge plane only ever needs
// to live for the current layer, so the whole volume never needs more
// than two XY planes of cached indices at once.
func Polygonize(g *grid.Grid3[sdf.ScalarDistance]) *Result {
	size := g.Size()
	if size[0] < 2 || size[1] < 2 || size[2] < 2 {
		return &Result{}
	}
	w, h := size[0], size[1]
	result := &Result{}

	bottom := newEdgePlane(w, h)
	top := newEdgePlane(w, h)
	for z := 0; z < size[2]-1; z++ {
		lc := &layerCtx{w: w, h: h, bottom: bottom, top: top, vertical: newIdxSlice(w, h)}
		polygonizeLayer(g, z, lc, result)

		bottom = top
		if z+1 < size[2]-1 {
			top = newEdgePlane(w, h)
		}
	}
	return result
}

func (lc *layerCtx) vertexIndex(e, x, y int, cornerPos [8]vecf.Vec3, cornerVal [8]float32, cornerGrad [8]vecf.Vec3, result *Result) uint32 {
	loc := edgeLocs[e]
	cache := lc.cache(loc)
	key := lc.key(x+loc.dx, y+loc.dy)

	if idx := cache[key]; idx >= 0 {
		return uint32(idx)
	}

	a, b := cubeEdgeVertices[e][0], cubeEdgeVertices[e][1]
	pos, t := vertexInterp(cornerPos[a], cornerPos[b], cornerVal[a], cornerVal[b])
	normal := cornerGrad[a].Lerp(cornerGrad[b], t).Normalize()

	idx := int32(len(result.Positions))
	result.Positions = append(result.Positions, pos)
	result.Normals = append(result.Normals, normal)
	cache[key] = idx
	return uint32(idx)
}

func polygonizeLayer(g *grid.Grid3[sdf.ScalarDistance], z int, lc *layerCtx, result *Result) {
	size := g.Size()

	var cornerPos [8]vecf.Vec3
	var cornerVal [8]float32
	var cornerGrad [8]vecf.Vec3

	for y := 0; y < size[1]-1; y++ {
		for x := 0; x < size[0]-1; x++ {
			cubeIndex := 0
			for c := 0; c < 8; c++ {
				off := cubeCornerOffsets[c]
				idx := grid.Index3{x + off[0], y + off[1], z + off[2]}
				cornerPos[c] = vecf.V3(float32(idx[0]), float32(idx[1]), float32(idx[2]))
				cornerVal[c] = g.At(idx).Distance()
				cornerGrad[c] = g.GradientClamped(idx)
				if cornerVal[c] < isoLevel {
					cubeIndex |= 1 << uint(c)
				}
			}

			if edgeTable[cubeIndex] == 0 {
				continue
			}

			var edgeVertex [12]uint32
			for e := 0; e < 12; e++ {
				if edgeTable[cubeIndex]&(1<<uint(e)) == 0 {
					continue
				}
				edgeVertex[e] = lc.vertexIndex(e, x, y, cornerPos, cornerVal, cornerGrad, result)
			}

			tris := triTable[cubeIndex]
			for i := 0; i+2 < len(tris) && tris[i] != -1; i += 3 {
				result.Indices = append(result.Indices,
					edgeVertex[tris[i]], edgeVertex[tris[i+1]], edgeVertex[tris[i+2]])
			}
		}
	}
}
