package terrain

import (
	"sync/atomic"
	"time"

	"quickscape/internal/meshing"
)

// Output is one generated terrain. It is never mutated after it is
// published to a Slot.
type Output struct {
	Mesh      *meshing.Mesh
	Seed      int64
	Params    Params
	Material  any
	Generated time.Time
}

// Slot holds the single output owned by a generator. Replacement swaps a
// pointer, so a concurrent reader sees either the old or the new output,
// never a mix.
type Slot struct {
	current atomic.Pointer[Output]
}

// Current returns the attached output, or nil before the first generation.
func (s *Slot) Current() *Output {
	return s.current.Load()
}

// Replace attaches out and returns the output it displaced so the host can
// release any resources tied to it.
func (s *Slot) Replace(out *Output) *Output {
	return s.current.Swap(out)
}

// Clear detaches the current output.
func (s *Slot) Clear() *Output {
	return s.current.Swap(nil)
}
