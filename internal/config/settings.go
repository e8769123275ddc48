package config

import (
	"sync"

	"quickscape/internal/terrain"
)

// Settings holds the live, host-editable generation parameters. Hosts set
// fields as the user edits them and take a Snapshot when they request a
// generation; setting a field never triggers one.
type Settings struct {
	mu  sync.RWMutex
	cfg Config
}

// NewSettings returns settings initialized from cfg.
func NewSettings(cfg Config) *Settings {
	return &Settings{cfg: cfg}
}

// Snapshot returns a copy of the current settings.
func (s *Settings) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg := s.cfg
	if cfg.Seed != nil {
		seed := *cfg.Seed
		cfg.Seed = &seed
	}
	return cfg
}

// Params converts a snapshot of the settings into generation parameters.
func (s *Settings) Params() (terrain.Params, error) {
	return s.Snapshot().Params()
}

// Apply replaces every setting at once.
func (s *Settings) Apply(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// SetSize sets the world extents.
func (s *Settings) SetSize(width, depth float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Width = width
	s.cfg.Depth = depth
}

// SetSubdivisions sets the grid resolution.
func (s *Settings) SetSubdivisions(x, z int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.SubdivisionsX = x
	s.cfg.SubdivisionsZ = z
}

// SetPeriod sets the noise wavelength in world units.
func (s *Settings) SetPeriod(period float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Period = period
}

// SetOctaves sets the fractal octave count.
func (s *Settings) SetOctaves(octaves int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Octaves = octaves
}

// SetHeightScale sets the vertical scale.
func (s *Settings) SetHeightScale(scale float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.HeightScale = scale
}

// SetSeed pins the noise seed.
func (s *Settings) SetSeed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Seed = &seed
}

// ClearSeed unpins the seed so each generation draws a fresh one.
func (s *Settings) ClearSeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Seed = nil
}

// SetAlgorithm selects the noise algorithm by name.
func (s *Settings) SetAlgorithm(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Algorithm = name
}

// SetMaterial sets the opaque material reference passed to outputs.
func (s *Settings) SetMaterial(material string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Material = material
}
