package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"quickscape/internal/meshing"
)

// WriteOBJ writes the mesh as Wavefront OBJ with per-vertex normals.
// OBJ indices are 1-based; faces reference position and normal by the same index.
func WriteOBJ(w io.Writer, m *meshing.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# quickscape terrain: %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	for _, v := range m.Vertices {
		writeTriple(bw, "v", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range m.Vertices {
		writeTriple(bw, "vn", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t]+1, m.Indices[t+1]+1, m.Indices[t+2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}
	return bw.Flush()
}

func writeTriple(w *bufio.Writer, tag string, x, y, z float32) {
	w.WriteString(tag)
	for _, f := range [3]float32{x, y, z} {
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	w.WriteByte('\n')
}
