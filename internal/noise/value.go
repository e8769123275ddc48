package noise

import "math"

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash2 is a SplitMix64 style integer hash, stable across runs.
func hash2(x, z, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(z)*0x517CC1B727220A95 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// latticeValue maps the lattice hash to [-1, 1].
func latticeValue(x, z, seed int64) float64 {
	h := hash2(x, z, seed)
	return float64(h&0xFFFFFFFF)/float64(0xFFFFFFFF)*2 - 1
}

type valueLayer struct {
	seed int64
}

func newValueLayer(seed int64) layer {
	return valueLayer{seed: seed}
}

func (l valueLayer) eval(x, z float64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	ix, iz := int64(x0), int64(z0)

	fx := fade(x - x0)
	fz := fade(z - z0)

	v00 := latticeValue(ix, iz, l.seed)
	v10 := latticeValue(ix+1, iz, l.seed)
	v01 := latticeValue(ix, iz+1, l.seed)
	v11 := latticeValue(ix+1, iz+1, l.seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz)
}
