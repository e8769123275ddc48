package terrain

import (
	"context"
	"errors"
	"fmt"

	"quickscape/internal/meshing"
	"quickscape/internal/noise"
)

// BuildBatch builds independent terrains on a worker pool. Outputs come
// back in the order of params and are not attached to the slot. If any
// build fails the joined errors are returned along with the outputs that
// succeeded (failed entries are nil).
func (g *Generator) BuildBatch(ctx context.Context, params []Params, workers int) ([]*Output, error) {
	outputs := make([]*Output, len(params))
	if len(params) == 0 {
		return outputs, nil
	}

	seeds := make([]int64, len(params))
	fields := make([]noise.Field, len(params))
	var errs []error
	for i, p := range params {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("terrain %d: %w", i, err))
			continue
		}
		seeds[i] = g.resolveSeed(p)
		f, err := g.field(p, seeds[i])
		if err != nil {
			errs = append(errs, fmt.Errorf("terrain %d: %w", i, err))
			continue
		}
		fields[i] = f
	}

	pool := meshing.NewWorkerPool(workers, len(params))
	defer pool.Shutdown()

	results := make(chan meshing.Result, len(params))
	pending := 0
	for i, p := range params {
		if fields[i] == nil {
			continue
		}
		job := meshing.Job{
			Key:         i,
			Grid:        p.Grid(),
			Field:       fields[i],
			HeightScale: p.HeightScale,
			ResultChan:  results,
		}
		if !pool.SubmitBlocking(ctx, job) {
			errs = append(errs, fmt.Errorf("terrain %d: %w", i, ctx.Err()))
			continue
		}
		pending++
	}

	for ; pending > 0; pending-- {
		select {
		case r := <-results:
			if r.Err != nil {
				errs = append(errs, fmt.Errorf("terrain %d: %w", r.Key, r.Err))
				continue
			}
			outputs[r.Key] = g.output(params[r.Key], seeds[r.Key], r.Mesh)
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("batch abandoned with %d builds pending: %w", pending, ctx.Err()))
			return outputs, errors.Join(errs...)
		}
	}
	return outputs, errors.Join(errs...)
}
