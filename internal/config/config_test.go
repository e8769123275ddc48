package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"quickscape/internal/noise"
	"quickscape/internal/terrain"
)

func TestDefaultMatchesTerrainDefaults(t *testing.T) {
	p, err := Default().Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	want := terrain.DefaultParams()
	if p.Width != want.Width || p.Depth != want.Depth ||
		p.SubdivisionsX != want.SubdivisionsX || p.SubdivisionsZ != want.SubdivisionsZ ||
		p.Period != want.Period || p.Octaves != want.Octaves ||
		p.HeightScale != want.HeightScale || p.Algorithm != want.Algorithm || p.Seed != nil {
		t.Errorf("Default().Params() = %+v, want %+v", p, want)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	raw := []byte(`
width: 64
subdivisions_x: 8
seed: 42
algorithm: perlin
material: res://ground.tres
`)
	cfg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 64 || cfg.SubdivisionsX != 8 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Depth != 200 || cfg.Octaves != 6 || cfg.Period != 50 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.Seed == nil || *p.Seed != 42 {
		t.Errorf("seed = %v, want 42", p.Seed)
	}
	if p.Algorithm != noise.Perlin {
		t.Errorf("algorithm = %v, want perlin", p.Algorithm)
	}
	if p.Material != "res://ground.tres" {
		t.Errorf("material = %v", p.Material)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if cfg != Default() {
		t.Errorf("Parse(nil) = %+v, want defaults", cfg)
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"negative subdivisions", "subdivisions_x: -1\n"},
		{"zero width", "width: 0\n"},
		{"negative depth", "depth: -5\n"},
		{"fractional subdivisions", "subdivisions_z: 2.5\n"},
		{"zero octaves", "octaves: 0\n"},
		{"unknown algorithm", "algorithm: worley\n"},
		{"unknown key", "build: true\n"},
		{"not a mapping", "- 1\n- 2\n"},
		{"malformed yaml", "width: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); !errors.Is(err, terrain.ErrInvalidConfiguration) {
				t.Errorf("Parse(%q) err = %v, want ErrInvalidConfiguration", tt.raw, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terrain.yaml")
	if err := os.WriteFile(path, []byte("octaves: 3\nheight_scale: 4.5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Octaves != 3 || cfg.HeightScale != 4.5 {
		t.Errorf("Load = %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) err = %v, want os.ErrNotExist", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	seed := int64(7)
	cfg.Seed = &seed
	cfg.Algorithm = "value"
	raw, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%s): %v", raw, err)
	}
	if got.Seed == nil || *got.Seed != 7 || got.Algorithm != "value" || got.Width != cfg.Width {
		t.Errorf("round trip = %+v", got)
	}
}

func TestSettingsSnapshotIsIndependent(t *testing.T) {
	s := NewSettings(Default())
	s.SetSeed(5)
	snap := s.Snapshot()
	s.SetSeed(6)
	if *snap.Seed != 5 {
		t.Errorf("snapshot seed changed to %d after SetSeed", *snap.Seed)
	}
	s.ClearSeed()
	if s.Snapshot().Seed != nil {
		t.Errorf("ClearSeed left a seed pinned")
	}
}

func TestSettingsSetters(t *testing.T) {
	s := NewSettings(Default())
	s.SetSize(32, 16)
	s.SetSubdivisions(4, 2)
	s.SetPeriod(10)
	s.SetOctaves(2)
	s.SetHeightScale(3)
	s.SetAlgorithm("value")
	s.SetMaterial("rock")

	p, err := s.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.Width != 32 || p.Depth != 16 || p.SubdivisionsX != 4 || p.SubdivisionsZ != 2 ||
		p.Period != 10 || p.Octaves != 2 || p.HeightScale != 3 ||
		p.Algorithm != noise.Value || p.Material != "rock" {
		t.Errorf("Params = %+v", p)
	}

	s.SetAlgorithm("bogus")
	if _, err := s.Params(); !errors.Is(err, terrain.ErrInvalidConfiguration) {
		t.Errorf("bogus algorithm err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestSettingsConcurrentAccess(t *testing.T) {
	s := NewSettings(Default())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.SetOctaves(1 + i%6)
			s.SetSeed(int64(i))
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	if o := s.Snapshot().Octaves; o < 1 || o > 6 {
		t.Errorf("octaves = %d", o)
	}
}
