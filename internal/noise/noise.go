package noise

import (
	"errors"
	"fmt"
	"math"
)

// Field is a deterministic scalar height field over the X/Z plane.
// Implementations must return the same value for the same (x, z) for as
// long as the field exists and stay within [-1, 1].
type Field interface {
	Sample(x, z float64) float64
}

// Algorithm selects the coherent noise used for each octave.
type Algorithm int

const (
	// SmoothSimplex is OpenSimplex noise, the default.
	SmoothSimplex Algorithm = iota
	// Perlin is classic gradient noise.
	Perlin
	// Value is hashed lattice value noise with quintic smoothing.
	Value
)

var algorithmNames = map[Algorithm]string{
	SmoothSimplex: "smooth-simplex",
	Perlin:        "perlin",
	Value:         "value",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm maps a configuration name to an Algorithm. The empty
// string selects SmoothSimplex.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		return SmoothSimplex, nil
	}
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown noise algorithm %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if _, ok := algorithmNames[a]; !ok {
		return nil, fmt.Errorf("unknown noise algorithm %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	parsed, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

const (
	defaultLacunarity = 2.0
	defaultGain       = 0.5
)

// Config parameterizes a fractal noise field. Frequency is in cycles per
// world unit (1/period). Zero Lacunarity and Gain select 2 and 0.5.
type Config struct {
	Seed       int64
	Frequency  float64
	Octaves    int
	Algorithm  Algorithm
	Lacunarity float64
	Gain       float64
}

// ErrInvalidConfig is returned by New for unusable parameters.
var ErrInvalidConfig = errors.New("noise: invalid config")

func (c Config) withDefaults() Config {
	if c.Lacunarity == 0 {
		c.Lacunarity = defaultLacunarity
	}
	if c.Gain == 0 {
		c.Gain = defaultGain
	}
	return c
}

// Validate reports whether the config can build a field.
func (c Config) Validate() error {
	c = c.withDefaults()
	switch {
	case !(c.Frequency > 0) || math.IsInf(c.Frequency, 0):
		return fmt.Errorf("%w: frequency must be positive and finite, got %v", ErrInvalidConfig, c.Frequency)
	case c.Octaves < 1:
		return fmt.Errorf("%w: octaves must be at least 1, got %d", ErrInvalidConfig, c.Octaves)
	case !(c.Lacunarity > 0) || math.IsInf(c.Lacunarity, 0):
		return fmt.Errorf("%w: lacunarity must be positive, got %v", ErrInvalidConfig, c.Lacunarity)
	case !(c.Gain > 0) || math.IsInf(c.Gain, 0):
		return fmt.Errorf("%w: gain must be positive, got %v", ErrInvalidConfig, c.Gain)
	}
	if _, ok := algorithmNames[c.Algorithm]; !ok {
		return fmt.Errorf("%w: unknown algorithm %d", ErrInvalidConfig, int(c.Algorithm))
	}
	return nil
}
