package meshio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"quickscape/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/klauspost/compress/zstd"
)

// Binary mesh frame, zstd compressed, little endian:
//
//	magic   [4]byte "QSMH"
//	version uint16
//	columns uint32
//	rows    uint32
//	indices uint32 (count)
//	columns*rows × (pos.xyz, normal.xyz) float32
//	indices × uint32
var frameMagic = [4]byte{'Q', 'S', 'M', 'H'}

const frameVersion uint16 = 1

// maxDecodeVertices bounds allocations when decoding untrusted frames.
const maxDecodeVertices = 1 << 26

// ErrBadFrame reports a stream that is not a mesh frame this version understands.
var ErrBadFrame = errors.New("meshio: bad mesh frame")

type frameHeader struct {
	Magic   [4]byte
	Version uint16
	Columns uint32
	Rows    uint32
	Indices uint32
}

// Encode writes m as a compressed binary frame.
func Encode(w io.Writer, m *meshing.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}

	hdr := frameHeader{
		Magic:   frameMagic,
		Version: frameVersion,
		Columns: uint32(m.Columns),
		Rows:    uint32(m.Rows),
		Indices: uint32(len(m.Indices)),
	}
	if err := binary.Write(enc, binary.LittleEndian, hdr); err != nil {
		enc.Close()
		return fmt.Errorf("write header: %w", err)
	}

	floats := make([]float32, 0, 6*len(m.Vertices))
	for _, v := range m.Vertices {
		floats = append(floats, v.Position[0], v.Position[1], v.Position[2], v.Normal[0], v.Normal[1], v.Normal[2])
	}
	if err := binary.Write(enc, binary.LittleEndian, floats); err != nil {
		enc.Close()
		return fmt.Errorf("write vertices: %w", err)
	}
	if err := binary.Write(enc, binary.LittleEndian, m.Indices); err != nil {
		enc.Close()
		return fmt.Errorf("write indices: %w", err)
	}
	return enc.Close()
}

// Decode reads a frame written by Encode and validates the result.
func Decode(r io.Reader) (*meshing.Mesh, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	var hdr frameHeader
	if err := binary.Read(dec, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadFrame, err)
	}
	if hdr.Magic != frameMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadFrame, hdr.Magic[:])
	}
	if hdr.Version != frameVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadFrame, hdr.Version)
	}
	n := uint64(hdr.Columns) * uint64(hdr.Rows)
	if n > maxDecodeVertices || uint64(hdr.Indices) > 6*maxDecodeVertices {
		return nil, fmt.Errorf("%w: %dx%d vertices, %d indices", ErrBadFrame, hdr.Columns, hdr.Rows, hdr.Indices)
	}

	floats := make([]float32, 6*n)
	if err := binary.Read(dec, binary.LittleEndian, floats); err != nil {
		return nil, fmt.Errorf("%w: vertices: %v", ErrBadFrame, err)
	}
	indices := make([]uint32, hdr.Indices)
	if err := binary.Read(dec, binary.LittleEndian, indices); err != nil {
		return nil, fmt.Errorf("%w: indices: %v", ErrBadFrame, err)
	}

	m := &meshing.Mesh{
		Vertices: make([]meshing.Vertex, n),
		Indices:  indices,
		Columns:  int(hdr.Columns),
		Rows:     int(hdr.Rows),
	}
	for i := range m.Vertices {
		f := floats[6*i : 6*i+6]
		m.Vertices[i] = meshing.Vertex{
			Position: mgl32.Vec3{f[0], f[1], f[2]},
			Normal:   mgl32.Vec3{f[3], f[4], f[5]},
		}
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFrame, err)
	}
	return m, nil
}
