package terrain

import (
	"fmt"
	"math"

	"quickscape/internal/meshing"
	"quickscape/internal/noise"
)

// Errors surfaced by Generate. Both leave the current output untouched.
var (
	ErrInvalidConfiguration = meshing.ErrInvalidConfiguration
	ErrNoiseSampling        = meshing.ErrNoiseSampling
)

// MaxCells caps SubdivisionsX*SubdivisionsZ so a single request has bounded
// latency and every vertex index fits in uint32.
const MaxCells = 1 << 24

// Params are the externally configurable generation inputs.
type Params struct {
	Width         float64
	Depth         float64
	SubdivisionsX int
	SubdivisionsZ int
	// Period is the noise wavelength in world units; frequency = 1/Period.
	Period      float64
	Octaves     int
	HeightScale float64
	// Seed pins the noise seed. Nil draws a fresh seed on every call.
	Seed      *int64
	Algorithm noise.Algorithm
	// Material is handed through to the output untouched.
	Material any
}

// DefaultParams returns a 200×200 unit terrain with 100×100 subdivisions,
// period 50, 6 octaves, height scale 10 and an unpinned seed.
func DefaultParams() Params {
	return Params{
		Width:         200,
		Depth:         200,
		SubdivisionsX: 100,
		SubdivisionsZ: 100,
		Period:        50,
		Octaves:       6,
		HeightScale:   10,
		Algorithm:     noise.SmoothSimplex,
	}
}

// WithSeed returns a copy of p with the seed pinned.
func (p Params) WithSeed(seed int64) Params {
	p.Seed = &seed
	return p
}

// Grid returns the flat grid the params describe.
func (p Params) Grid() meshing.GridSpec {
	return meshing.GridSpec{
		Width:         p.Width,
		Depth:         p.Depth,
		SubdivisionsX: p.SubdivisionsX,
		SubdivisionsZ: p.SubdivisionsZ,
	}
}

// NoiseConfig returns the fractal noise config for the given seed.
func (p Params) NoiseConfig(seed int64) noise.Config {
	return noise.Config{
		Seed:      seed,
		Frequency: 1 / p.Period,
		Octaves:   p.Octaves,
		Algorithm: p.Algorithm,
	}
}

// Validate checks every parameter; failures wrap ErrInvalidConfiguration.
func (p Params) Validate() error {
	if err := p.Grid().Validate(); err != nil {
		return err
	}
	if !(p.Period > 0) || math.IsInf(p.Period, 0) {
		return fmt.Errorf("%w: period must be positive and finite, got %v", ErrInvalidConfiguration, p.Period)
	}
	if p.Octaves < 1 {
		return fmt.Errorf("%w: octaves must be at least 1, got %d", ErrInvalidConfiguration, p.Octaves)
	}
	if math.IsNaN(p.HeightScale) || math.IsInf(p.HeightScale, 0) {
		return fmt.Errorf("%w: height scale must be finite, got %v", ErrInvalidConfiguration, p.HeightScale)
	}
	cx, cz := p.Grid().Cells()
	if int64(cx)*int64(cz) > MaxCells {
		return fmt.Errorf("%w: %dx%d subdivisions exceed %d cells", ErrInvalidConfiguration, cx, cz, MaxCells)
	}
	if err := p.NoiseConfig(0).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}
