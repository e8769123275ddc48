package config

import (
	"fmt"
	"os"

	"quickscape/internal/noise"
	"quickscape/internal/terrain"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk form of the generation parameters.
type Config struct {
	Width         float64 `yaml:"width"`
	Depth         float64 `yaml:"depth"`
	SubdivisionsX int     `yaml:"subdivisions_x"`
	SubdivisionsZ int     `yaml:"subdivisions_z"`
	Period        float64 `yaml:"period"`
	Octaves       int     `yaml:"octaves"`
	HeightScale   float64 `yaml:"height_scale"`
	// Seed is optional; when absent every generation draws a fresh seed.
	Seed      *int64 `yaml:"seed,omitempty"`
	Algorithm string `yaml:"algorithm"`
	Material  string `yaml:"material,omitempty"`
}

// Default returns the config matching terrain.DefaultParams.
func Default() Config {
	p := terrain.DefaultParams()
	return Config{
		Width:         p.Width,
		Depth:         p.Depth,
		SubdivisionsX: p.SubdivisionsX,
		SubdivisionsZ: p.SubdivisionsZ,
		Period:        p.Period,
		Octaves:       p.Octaves,
		HeightScale:   p.HeightScale,
		Algorithm:     p.Algorithm.String(),
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// defaults.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates raw YAML against the config schema and decodes it over
// the defaults.
func Parse(raw []byte) (Config, error) {
	if err := validateDocument(raw); err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decode: %v", terrain.ErrInvalidConfiguration, err)
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Params converts the config into generation parameters.
func (c Config) Params() (terrain.Params, error) {
	algo, err := noise.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return terrain.Params{}, fmt.Errorf("%w: %v", terrain.ErrInvalidConfiguration, err)
	}
	p := terrain.Params{
		Width:         c.Width,
		Depth:         c.Depth,
		SubdivisionsX: c.SubdivisionsX,
		SubdivisionsZ: c.SubdivisionsZ,
		Period:        c.Period,
		Octaves:       c.Octaves,
		HeightScale:   c.HeightScale,
		Algorithm:     algo,
	}
	if c.Seed != nil {
		p = p.WithSeed(*c.Seed)
	}
	if c.Material != "" {
		p.Material = c.Material
	}
	return p, nil
}
