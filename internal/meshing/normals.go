package meshing

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// smoothNormals returns area-weighted vertex normals: the unnormalized face
// normal (b-a)×(c-a) of every adjacent triangle is summed, then normalized.
func smoothNormals(positions []mgl32.Vec3, indices []uint32) ([]mgl32.Vec3, error) {
	normals := make([]mgl32.Vec3, len(positions))
	for t := 0; t+2 < len(indices); t += 3 {
		ia, ib, ic := indices[t], indices[t+1], indices[t+2]
		a, b, c := positions[ia], positions[ib], positions[ic]
		face := b.Sub(a).Cross(c.Sub(a))
		normals[ia] = normals[ia].Add(face)
		normals[ib] = normals[ib].Add(face)
		normals[ic] = normals[ic].Add(face)
	}

	for i, n := range normals {
		l := n.Len()
		if l == 0 || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
			return nil, fmt.Errorf("%w: vertex %d has no usable adjacent faces", ErrDegenerateMesh, i)
		}
		normals[i] = n.Mul(1 / l)
	}
	return normals, nil
}
