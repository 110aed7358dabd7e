package terrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueNoiseDeterminism(t *testing.T) {
	n1 := NewValueNoise(12345)
	n2 := NewValueNoise(12345)

	for i := 0; i < 200; i++ {
		x := float64(i)*0.37 - 40
		y := float64(i)*0.53 - 20
		if n1.Sample(x, y) != n2.Sample(x, y) {
			t.Fatalf("Sample not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestValueNoiseDifferentSeeds(t *testing.T) {
	n1 := NewValueNoise(1)
	n2 := NewValueNoise(2)
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.5
		y := float64(i) * 0.3
		if n1.Sample(x, y) == n2.Sample(x, y) {
			same++
		}
	}
	assert.Less(t, same, 5, "different seeds should rarely agree")
}

func TestValueNoiseBoundedForLargeInputs(t *testing.T) {
	n := NewValueNoise(99)
	inputs := []float64{
		0, 0.5, -0.5, 1e6, -1e6, 1e15, -1e18, 1e300, -1e300,
		math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64,
		float64(noisePeriod), float64(noisePeriod) - 0.25, -float64(noisePeriod),
		math.Inf(1), math.Inf(-1),
	}

	for _, x := range inputs {
		for _, y := range inputs {
			v := n.Sample(x, y)
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "Sample(%g, %g) = %v", x, y, v)
			require.True(t, v >= 0 && v <= 1, "Sample(%g, %g) = %v outside [0,1]", x, y, v)

			o := n.SampleOctaves(x, y, 5, 0.1, 1, 0.5)
			require.False(t, math.IsNaN(o) || math.IsInf(o, 0), "SampleOctaves(%g, %g) = %v", x, y, o)
			require.True(t, o >= 0 && o <= 1, "SampleOctaves(%g, %g) = %v outside [0,1]", x, y, o)
		}
	}
}

func TestValueNoiseContinuousAcrossIntegerEdges(t *testing.T) {
	n := NewValueNoise(7)
	const eps = 1e-9
	for k := -20; k <= 20; k++ {
		edge := float64(k)
		left := n.Sample(edge-eps, 3.25)
		right := n.Sample(edge+eps, 3.25)
		assert.InDelta(t, left, right, 1e-6, "jump at x=%d", k)

		below := n.Sample(1.75, edge-eps)
		above := n.Sample(1.75, edge+eps)
		assert.InDelta(t, below, above, 1e-6, "jump at y=%d", k)
	}
}

func TestSampleOctavesSingleOctaveEqualsSample(t *testing.T) {
	n := NewValueNoise(42)
	for i := 0; i < 50; i++ {
		x := float64(i)*1.3 - 17
		y := float64(i)*0.9 + 4
		assert.Equal(t, n.Sample(x*0.3, y*0.3), n.SampleOctaves(x, y, 1, 0.3, 0.7, 0.5))
	}
}

func TestSampleOctavesSmoothness(t *testing.T) {
	n := NewValueNoise(77)
	prev := n.SampleOctaves(0, 0, 4, 1, 1, 0.5)
	maxDiff := 0.0
	for i := 1; i < 1000; i++ {
		v := n.SampleOctaves(float64(i)*0.01, 0, 4, 1, 1, 0.5)
		maxDiff = math.Max(maxDiff, math.Abs(v-prev))
		prev = v
	}
	assert.Less(t, maxDiff, 0.5, "adjacent samples should not jump")
}

func TestHeightGeneratorDeterministicAndQuantized(t *testing.T) {
	settings := DefaultHeightSettings(42)
	g1, err := NewHeightGenerator(settings)
	require.NoError(t, err)
	g2, err := NewHeightGenerator(settings)
	require.NoError(t, err)

	for y := -40; y <= 40; y += 3 {
		for x := -40; x <= 40; x += 3 {
			h := g1.GetHeight(x, y)
			require.Equal(t, h, g2.GetHeight(x, y), "height at (%d, %d)", x, y)
			require.Equal(t, math.Round(h*2), h*2, "height %v at (%d, %d) not a multiple of 0.5", h, x, y)
			require.True(t, h >= 0 && h <= settings.MaxHeight, "height %v out of range", h)
		}
	}
}

func TestHeightGeneratorSeedsDiffer(t *testing.T) {
	g1, err := NewHeightGenerator(DefaultHeightSettings(1))
	require.NoError(t, err)
	g2, err := NewHeightGenerator(DefaultHeightSettings(2))
	require.NoError(t, err)

	differ := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if g1.GetHeight(x, y) != g2.GetHeight(x, y) {
				differ++
			}
		}
	}
	assert.Greater(t, differ, 0)
}

func TestHeightGeneratorLargeCoordinates(t *testing.T) {
	g, err := NewHeightGenerator(DefaultHeightSettings(5))
	require.NoError(t, err)
	for _, c := range []int{math.MaxInt64, math.MinInt64, math.MaxInt32, -math.MaxInt32, 1 << 40} {
		h := g.GetHeight(c, -c)
		assert.False(t, math.IsNaN(h) || math.IsInf(h, 0), "height at %d", c)
	}
}

func TestHeightSettingsValidate(t *testing.T) {
	base := DefaultHeightSettings(0)
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*HeightSettings)
	}{
		{"zero step", func(s *HeightSettings) { s.Step = 0 }},
		{"NaN step", func(s *HeightSettings) { s.Step = math.NaN() }},
		{"negative max height", func(s *HeightSettings) { s.MaxHeight = -1 }},
		{"zero frequency", func(s *HeightSettings) { s.Frequency = 0 }},
		{"no octaves", func(s *HeightSettings) { s.Octaves = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			_, err := NewHeightGenerator(s)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, 1.5, Quantize(1.6, 0.5))
	assert.Equal(t, 2.0, Quantize(1.76, 0.5))
	assert.Equal(t, 0.0, Quantize(0.2, 0.5))
}
