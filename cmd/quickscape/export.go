package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"quickscape/internal/meshio"
	"quickscape/internal/preview"
	"quickscape/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// Light direction for hillshade previews: from the north-west, 45° up.
var hillshadeLight = mgl32.Vec3{-1, 1.41421356, -1}

type exporter struct {
	obj         string
	mesh        string
	heightmap   string
	hillshade   string
	previewSize int
	logger      *log.Logger
}

// write exports o to every configured path. A non-negative index is
// inserted before the file extension so batch outputs do not collide.
func (e exporter) write(o *terrain.Output, index int) error {
	if o == nil {
		return fmt.Errorf("no terrain attached")
	}
	if p := indexed(e.obj, index); p != "" {
		if err := writeFile(p, func(f *os.File) error { return meshio.WriteOBJ(f, o.Mesh) }); err != nil {
			return err
		}
		e.logger.Printf("wrote %s", p)
	}
	if p := indexed(e.mesh, index); p != "" {
		if err := writeFile(p, func(f *os.File) error { return meshio.Encode(f, o.Mesh) }); err != nil {
			return err
		}
		e.logger.Printf("wrote %s", p)
	}
	if p := indexed(e.heightmap, index); p != "" {
		img, err := preview.Heightmap(o.Mesh)
		if err != nil {
			return err
		}
		if err := preview.Save(p, img, e.previewSize); err != nil {
			return err
		}
		e.logger.Printf("wrote %s", p)
	}
	if p := indexed(e.hillshade, index); p != "" {
		img, err := preview.Hillshade(o.Mesh, hillshadeLight, 0.2)
		if err != nil {
			return err
		}
		if err := preview.Save(p, img, e.previewSize); err != nil {
			return err
		}
		e.logger.Printf("wrote %s", p)
	}
	return nil
}

func indexed(path string, index int) string {
	path = strings.TrimSpace(path)
	if path == "" || index < 0 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), index, ext)
}

func writeFile(path string, fn func(f *os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
