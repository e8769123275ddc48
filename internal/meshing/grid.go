package meshing

import (
	"fmt"
	"math"
)

// GridSpec describes the flat rectangular grid the terrain is built on.
// Zero subdivisions on an axis still produce one cell along it.
type GridSpec struct {
	Width         float64
	Depth         float64
	SubdivisionsX int
	SubdivisionsZ int
}

// Validate rejects non-positive extents and negative subdivision counts.
func (g GridSpec) Validate() error {
	if !(g.Width > 0) || math.IsInf(g.Width, 0) {
		return fmt.Errorf("%w: width must be positive and finite, got %v", ErrInvalidConfiguration, g.Width)
	}
	if !(g.Depth > 0) || math.IsInf(g.Depth, 0) {
		return fmt.Errorf("%w: depth must be positive and finite, got %v", ErrInvalidConfiguration, g.Depth)
	}
	if g.SubdivisionsX < 0 || g.SubdivisionsZ < 0 {
		return fmt.Errorf("%w: subdivisions must be non-negative, got %dx%d", ErrInvalidConfiguration, g.SubdivisionsX, g.SubdivisionsZ)
	}
	return nil
}

// Cells returns the number of quads along X and Z.
func (g GridSpec) Cells() (cx, cz int) {
	return max(g.SubdivisionsX, 1), max(g.SubdivisionsZ, 1)
}

// VertexCount returns the vertex count a mesh of this grid will have.
func (g GridSpec) VertexCount() int {
	cx, cz := g.Cells()
	return (cx + 1) * (cz + 1)
}

// TriangleCount returns the triangle count a mesh of this grid will have.
func (g GridSpec) TriangleCount() int {
	cx, cz := g.Cells()
	return 2 * cx * cz
}

// layoutFlat returns world-space X/Z for every vertex, row by row along Z.
// Edge vertices land exactly on ±Width/2 and ±Depth/2.
func layoutFlat(g GridSpec) (xs, zs []float64) {
	cx, cz := g.Cells()
	xs = make([]float64, cx+1)
	zs = make([]float64, cz+1)
	for i := range xs {
		xs[i] = -g.Width/2 + g.Width*float64(i)/float64(cx)
	}
	for j := range zs {
		zs[j] = -g.Depth/2 + g.Depth*float64(j)/float64(cz)
	}
	return xs, zs
}

// triangulate splits each cell into two counter-clockwise triangles (seen
// from +Y). For a cell with corners a=(i,j) b=(i+1,j) c=(i,j+1) d=(i+1,j+1)
// the triangles are (a,c,b) and (b,c,d).
func triangulate(g GridSpec) []uint32 {
	cx, cz := g.Cells()
	cols := uint32(cx + 1)
	indices := make([]uint32, 0, 6*cx*cz)
	for j := range uint32(cz) {
		for i := range uint32(cx) {
			a := j*cols + i
			b := a + 1
			c := a + cols
			d := c + 1
			indices = append(indices, a, c, b, b, c, d)
		}
	}
	return indices
}
