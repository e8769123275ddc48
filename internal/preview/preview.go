package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"quickscape/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
)

// Heightmap renders vertex heights as grayscale, one pixel per vertex, with
// the lowest vertex black and the highest white. A flat mesh is mid gray.
func Heightmap(m *meshing.Mesh) (*image.Gray, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, m.Columns, m.Rows))
	lo, hi := m.HeightRange()
	span := hi - lo
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Columns; col++ {
			y := m.Vertices[row*m.Columns+col].Position.Y()
			v := uint8(128)
			if span > 0 {
				v = uint8(math.Round(float64((y - lo) / span * 255)))
			}
			img.SetGray(col, row, color.Gray{Y: v})
		}
	}
	return img, nil
}

// Hillshade lights the mesh normals from direction light (pointing towards
// the light) and renders the Lambert term with an ambient floor.
func Hillshade(m *meshing.Mesh, light mgl32.Vec3, ambient float32) (*image.Gray, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if light.Len() == 0 {
		return nil, fmt.Errorf("hillshade: zero light direction")
	}
	light = light.Normalize()
	img := image.NewGray(image.Rect(0, 0, m.Columns, m.Rows))
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Columns; col++ {
			n := m.Vertices[row*m.Columns+col].Normal
			lambert := max(n.Dot(light), 0)
			shade := min(ambient+(1-ambient)*lambert, 1)
			img.SetGray(col, row, color.Gray{Y: uint8(math.Round(float64(shade * 255)))})
		}
	}
	return img, nil
}

// Save scales img so its longer side is size pixels (0 keeps it as is) and
// writes it as PNG, creating parent directories as needed.
func Save(path string, img image.Image, size int) error {
	if size > 0 {
		img = scale(img, size)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preview dir: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return file.Close()
}

func scale(src image.Image, size int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return src
	}
	if w >= h {
		h = max(1, h*size/w)
		w = size
	} else {
		w = max(1, w*size/h)
		h = size
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
