package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/swarm/config"
)

type constSampler float64

func (c constSampler) Eval2(_, _ float64) float64 { return float64(c) }

func TestNoiseFieldRangeAndDeterminism(t *testing.T) {
	for _, algo := range []string{config.NoisePerlin, config.NoiseOpenSimplex} {
		t.Run(algo, func(t *testing.T) {
			for _, seed := range []int64{0, 1, 42, -7, 1 << 40} {
				s1, err := NewSampler(algo, seed)
				require.NoError(t, err)
				s2, err := NewSampler(algo, seed)
				require.NoError(t, err)

				f1 := NewNoiseField(s1, 0.1)
				f2 := NewNoiseField(s2, 0.1)

				for y := -20; y < 60; y += 3 {
					for x := -20; x < 60; x += 3 {
						v := f1.ValueAt(x, y)
						assert.GreaterOrEqual(t, v, 0.0)
						assert.LessOrEqual(t, v, 1.0)
						assert.Equal(t, v, f2.ValueAt(x, y), "seed %d at (%d,%d)", seed, x, y)
						assert.Equal(t, v, f1.ValueAt(x, y), "repeat lookup at (%d,%d)", x, y)
					}
				}
			}
		})
	}
}

func TestNoiseFieldSeedsDiffer(t *testing.T) {
	a := NewNoiseField(NewPerlinNoise(1), 0.1)
	b := NewNoiseField(NewPerlinNoise(2), 0.1)

	differs := false
	for y := 0; y < 20 && !differs; y++ {
		for x := 0; x < 20; x++ {
			if a.ValueAt(x, y) != b.ValueAt(x, y) {
				differs = true
				break
			}
		}
	}
	assert.True(t, differs, "different seeds should give different fields")
}

func TestNoiseFieldNormalizesAndClamps(t *testing.T) {
	assert.Equal(t, 0.5, NewNoiseField(constSampler(0), 0.1).ValueAt(3, 4))
	assert.Equal(t, 1.0, NewNoiseField(constSampler(1), 0.1).ValueAt(3, 4))
	assert.Equal(t, 0.0, NewNoiseField(constSampler(-1), 0.1).ValueAt(3, 4))
	assert.Equal(t, 1.0, NewNoiseField(constSampler(2.5), 0.1).ValueAt(0, 0))
	assert.Equal(t, 0.0, NewNoiseField(constSampler(-3), 0.1).ValueAt(0, 0))
}

func TestPerlinLatticePointsAreZero(t *testing.T) {
	p := NewPerlinNoise(99)
	for _, pt := range [][2]float64{{0, 0}, {1, 0}, {3, 7}, {-2, 5}} {
		assert.InDelta(t, 0.0, p.Eval2(pt[0], pt[1]), 1e-12)
	}
}

func TestNewSamplerUnknown(t *testing.T) {
	_, err := NewSampler("value", 1)
	assert.Error(t, err)
}
