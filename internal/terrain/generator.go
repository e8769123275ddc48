package terrain

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"quickscape/internal/meshing"
	"quickscape/internal/noise"
	"quickscape/internal/profiling"
)

// Generator turns Params into terrain and owns the output slot the result
// is attached to. Calls on one Generator must be serialized by the caller;
// readers of Slot may run concurrently with them.
type Generator struct {
	slot  Slot
	seeds func() int64
	now   func() time.Time
}

// NewGenerator returns a generator with an empty slot. Unpinned seeds are
// drawn from math/rand/v2.
func NewGenerator() *Generator {
	return &Generator{
		seeds: rand.Int64,
		now:   time.Now,
	}
}

// Slot returns the generator's output slot.
func (g *Generator) Slot() *Slot {
	return &g.slot
}

// Generate builds a new terrain and, only on success, swaps it into the
// slot. ctx is consulted once before the swap so a host can drop a request
// that went stale while it was building.
func (g *Generator) Generate(ctx context.Context, p Params) (*Output, error) {
	out, err := g.Build(p)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generation abandoned: %w", err)
	}
	g.slot.Replace(out)
	return out, nil
}

// Build produces an output without attaching it to the slot.
func (g *Generator) Build(p Params) (*Output, error) {
	defer profiling.Track("terrain.Build")()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	seed := g.resolveSeed(p)
	field, err := g.field(p, seed)
	if err != nil {
		return nil, err
	}
	mesh, err := meshing.Build(p.Grid(), field, p.HeightScale)
	if err != nil {
		return nil, err
	}
	return g.output(p, seed, mesh), nil
}

func (g *Generator) resolveSeed(p Params) int64 {
	if p.Seed != nil {
		return *p.Seed
	}
	return g.seeds()
}

func (g *Generator) field(p Params, seed int64) (noise.Field, error) {
	defer profiling.Track("terrain.Field")()
	f, err := noise.New(p.NoiseConfig(seed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return f, nil
}

func (g *Generator) output(p Params, seed int64, mesh *meshing.Mesh) *Output {
	p.Seed = &seed
	return &Output{
		Mesh:      mesh,
		Seed:      seed,
		Params:    p,
		Material:  p.Material,
		Generated: g.now(),
	}
}
