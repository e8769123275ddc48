package meshing

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidConfiguration reports unusable grid or noise parameters.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrNoiseSampling reports a noise backend that produced an unusable value.
	ErrNoiseSampling = errors.New("noise sampling failure")
	// ErrDegenerateMesh reports a vertex whose normal cannot be computed.
	ErrDegenerateMesh = errors.New("degenerate mesh")
)

// Vertex is a render-ready vertex (pos.xyz + normal.xyz).
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Mesh is an indexed triangle list laid out as a Columns×Rows vertex grid
// (x varies fastest). Build always returns a fresh Mesh; callers treat it
// as immutable.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Columns  int
	Rows     int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// HeightRange returns the lowest and highest vertex Y.
func (m *Mesh) HeightRange() (lo, hi float32) {
	if len(m.Vertices) == 0 {
		return 0, 0
	}
	lo, hi = m.Vertices[0].Position.Y(), m.Vertices[0].Position.Y()
	for _, v := range m.Vertices[1:] {
		y := v.Position.Y()
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return lo, hi
}

// Validate checks the structural invariants: a complete vertex grid, whole
// triangles and every index in range.
func (m *Mesh) Validate() error {
	if m.Columns*m.Rows != len(m.Vertices) {
		return fmt.Errorf("%w: %dx%d grid but %d vertices", ErrDegenerateMesh, m.Columns, m.Rows, len(m.Vertices))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrDegenerateMesh, len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrDegenerateMesh, idx, i, n)
		}
	}
	return nil
}
