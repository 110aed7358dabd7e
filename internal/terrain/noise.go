package terrain

import "math"

// The lattice repeats every noisePeriod units. Coordinates beyond one period are
// reduced before flooring so huge inputs never overflow the integer lattice.
const (
	noisePeriod  = 1 << 32
	noiseMask    = noisePeriod - 1
	octaveOffset = 131.7
	latticeDenom = float64(1<<53 - 1)
)

// ValueNoise is seeded 2D value noise. Lattice values are hashed from the
// integer corner and blended with a quintic fade, so the field is continuous
// across integer boundaries.
type ValueNoise struct {
	seed int64
}

// NewValueNoise returns a noise source for the seed.
func NewValueNoise(seed int64) *ValueNoise {
	return &ValueNoise{seed: seed}
}

func (n *ValueNoise) Seed() int64 { return n.seed }

// Sample returns noise at (x, y) in [0, 1]. Non-finite inputs sample the origin.
func (n *ValueNoise) Sample(x, y float64) float64 {
	xr := wrapCoordinate(x)
	yr := wrapCoordinate(y)

	x0 := math.Floor(xr)
	y0 := math.Floor(yr)
	fx := fade(xr - x0)
	fy := fade(yr - y0)

	ix0 := int64(x0) & noiseMask
	iy0 := int64(y0) & noiseMask
	ix1 := (ix0 + 1) & noiseMask
	iy1 := (iy0 + 1) & noiseMask

	v00 := n.lattice(ix0, iy0)
	v10 := n.lattice(ix1, iy0)
	v01 := n.lattice(ix0, iy1)
	v11 := n.lattice(ix1, iy1)

	top := lerp(v00, v10, fx)
	bottom := lerp(v01, v11, fx)
	return clamp01(lerp(top, bottom, fy))
}

// SampleOctaves sums octaves layers, each at double the previous frequency and
// persistence times the previous amplitude, normalized back into [0, 1].
// A single octave is exactly Sample(x*frequency, y*frequency).
func (n *ValueNoise) SampleOctaves(x, y float64, octaves int, frequency, amplitude, persistence float64) float64 {
	if octaves <= 1 {
		return n.Sample(x*frequency, y*frequency)
	}
	if !isFinite(amplitude) || amplitude <= 0 {
		amplitude = 1
	}
	if !isFinite(persistence) || persistence < 0 {
		persistence = 0
	}

	var total, norm float64
	freq := frequency
	amp := amplitude
	for i := 0; i < octaves; i++ {
		offset := float64(i) * octaveOffset
		total += n.Sample(x*freq+offset, y*freq+offset) * amp
		norm += amp
		amp *= persistence
		freq *= 2
	}
	if norm == 0 || !isFinite(total) || !isFinite(norm) {
		return 0
	}
	return clamp01(total / norm)
}

func (n *ValueNoise) lattice(x, y int64) float64 {
	return float64(hash2(n.seed, x, y)>>11) / latticeDenom
}

// hash2 is a SplitMix64 finalizer over the mixed seed and corner.
func hash2(seed, x, y int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(seed)*0x165667B19E3779F9
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func wrapCoordinate(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	if math.Abs(v) >= noisePeriod {
		return math.Mod(v, noisePeriod)
	}
	return v
}

// fade is the smootherstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
