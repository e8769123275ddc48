package meshing

import (
	"fmt"
	"math"

	"quickscape/internal/noise"
	"quickscape/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Build lays out the flat grid, displaces every vertex by
// field.Sample(x, z)*heightScale in world coordinates, and recomputes smooth
// normals from the displaced surface. It runs synchronously on the calling
// goroutine and never mutates a previously returned Mesh.
func Build(grid GridSpec, field noise.Field, heightScale float64) (*Mesh, error) {
	defer profiling.Track("meshing.Build")()

	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if field == nil {
		return nil, fmt.Errorf("%w: nil noise field", ErrInvalidConfiguration)
	}
	if math.IsNaN(heightScale) || math.IsInf(heightScale, 0) {
		return nil, fmt.Errorf("%w: height scale must be finite, got %v", ErrInvalidConfiguration, heightScale)
	}

	xs, zs := layoutFlat(grid)
	indices := triangulate(grid)

	positions, err := displace(xs, zs, field, heightScale)
	if err != nil {
		return nil, err
	}

	stop := profiling.Track("meshing.Normals")
	normals, err := smoothNormals(positions, indices)
	stop()
	if err != nil {
		return nil, err
	}

	vertices := make([]Vertex, len(positions))
	for i := range positions {
		vertices[i] = Vertex{Position: positions[i], Normal: normals[i]}
	}
	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Columns:  len(xs),
		Rows:     len(zs),
	}, nil
}

// BuildFromConfig constructs the fractal field described by cfg and builds
// the mesh with it.
func BuildFromConfig(grid GridSpec, cfg noise.Config, heightScale float64) (*Mesh, error) {
	field, err := noise.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return Build(grid, field, heightScale)
}

func displace(xs, zs []float64, field noise.Field, heightScale float64) ([]mgl32.Vec3, error) {
	defer profiling.Track("meshing.Displace")()

	positions := make([]mgl32.Vec3, 0, len(xs)*len(zs))
	for _, z := range zs {
		for _, x := range xs {
			s := field.Sample(x, z)
			if math.IsNaN(s) || math.IsInf(s, 0) {
				return nil, fmt.Errorf("%w: sample at (%g, %g) is %v", ErrNoiseSampling, x, z, s)
			}
			positions = append(positions, mgl32.Vec3{float32(x), float32(s * heightScale), float32(z)})
		}
	}
	return positions, nil
}
