package noise

import "math"

// Fractal sums Octaves layers of noise at increasing frequency and
// decreasing amplitude, normalized by the total amplitude so the result
// stays in [-1, 1]. A Fractal is immutable and safe for concurrent use.
type Fractal struct {
	cfg    Config
	layers []layer
	freqs  []float64
	amps   []float64
	norm   float64
}

// New builds a fractal field. Per-octave lookup tables are built here once.
func New(cfg Config) (*Fractal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	f := &Fractal{
		cfg:    cfg,
		layers: make([]layer, cfg.Octaves),
		freqs:  make([]float64, cfg.Octaves),
		amps:   make([]float64, cfg.Octaves),
	}
	freq := cfg.Frequency
	amp := 1.0
	for i := range cfg.Octaves {
		f.layers[i] = newLayer(cfg.Algorithm, cfg.Seed+int64(i))
		f.freqs[i] = freq
		f.amps[i] = amp
		f.norm += amp
		freq *= cfg.Lacunarity
		amp *= cfg.Gain
	}
	return f, nil
}

// Config returns the parameters the field was built with, defaults applied.
func (f *Fractal) Config() Config {
	return f.cfg
}

// Sample implements Field.
func (f *Fractal) Sample(x, z float64) float64 {
	sum := 0.0
	for i, l := range f.layers {
		sum += l.eval(x*f.freqs[i], z*f.freqs[i]) * f.amps[i]
	}
	return clamp(sum/f.norm, -1, 1)
}

// clamp leaves NaN untouched so callers can detect a broken backend.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Roughness is the mean squared second difference of the field over an
// n×n lattice with spacing h starting at (x0, z0). It grows with the
// high-frequency content of the field.
func Roughness(f Field, x0, z0, h float64, n int) float64 {
	if n < 3 {
		return 0
	}
	sum := 0.0
	count := 0
	for i := 1; i < n-1; i++ {
		for j := 1; j < n-1; j++ {
			x := x0 + float64(i)*h
			z := z0 + float64(j)*h
			c := f.Sample(x, z)
			dxx := f.Sample(x-h, z) - 2*c + f.Sample(x+h, z)
			dzz := f.Sample(x, z-h) - 2*c + f.Sample(x, z+h)
			sum += dxx*dxx + dzz*dzz
			count++
		}
	}
	if count == 0 || math.IsNaN(sum) {
		return 0
	}
	return sum / float64(count)
}
