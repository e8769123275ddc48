package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// layer is a single octave of coherent noise in roughly [-1, 1].
type layer interface {
	eval(x, z float64) float64
}

type simplexLayer struct {
	n opensimplex.Noise
}

func newSimplexLayer(seed int64) layer {
	return simplexLayer{n: opensimplex.New(seed)}
}

func (l simplexLayer) eval(x, z float64) float64 {
	return l.n.Eval2(x, z)
}

// perlinLayer is a single go-perlin octave; Fractal does the accumulation.
type perlinLayer struct {
	p *perlin.Perlin
}

func newPerlinLayer(seed int64) layer {
	return perlinLayer{p: perlin.NewPerlin(2, 2, 1, seed)}
}

func (l perlinLayer) eval(x, z float64) float64 {
	return l.p.Noise2D(x, z)
}

func newLayer(a Algorithm, seed int64) layer {
	switch a {
	case Perlin:
		return newPerlinLayer(seed)
	case Value:
		return newValueLayer(seed)
	default:
		return newSimplexLayer(seed)
	}
}
