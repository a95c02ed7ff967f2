package systems

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/swarm/config"
)

// Sampler is a coherent noise function returning values in about [-1, 1].
type Sampler interface {
	Eval2(x, y float64) float64
}

// Field maps grid cells to normalized noise values in [0, 1].
type Field interface {
	ValueAt(x, y int) float64
}

// NewSampler builds the configured noise generator for the given seed.
func NewSampler(algorithm string, seed int64) (Sampler, error) {
	switch algorithm {
	case config.NoisePerlin:
		return NewPerlinNoise(seed), nil
	case config.NoiseOpenSimplex:
		return opensimplex.New(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise algorithm %q", algorithm)
	}
}

// NoiseField samples a Sampler at scaled cell coordinates and normalizes the
// result with (raw+1)/2, clamped to [0, 1].
type NoiseField struct {
	sampler Sampler
	scale   float64
}

// NewNoiseField creates a field sampling s every scale units per cell.
func NewNoiseField(s Sampler, scale float64) *NoiseField {
	return &NoiseField{sampler: s, scale: scale}
}

// ValueAt returns the normalized noise value at cell (x, y).
func (f *NoiseField) ValueAt(x, y int) float64 {
	raw := f.sampler.Eval2(float64(x)*f.scale, float64(y)*f.scale)
	return clamp01((raw + 1) / 2)
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

// PerlinNoise generates coherent noise values.
type PerlinNoise struct {
	perm [512]int
}

// NewPerlinNoise creates a new Perlin noise generator.
func NewPerlinNoise(seed int64) *PerlinNoise {
	p := &PerlinNoise{}
	rng := rand.New(rand.NewSource(seed))

	var perm [256]int
	for i := range perm {
		perm[i] = i
	}

	// Shuffle
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	// Duplicate so corner hashes never index past the table
	for i := 0; i < 256; i++ {
		p.perm[i] = perm[i]
		p.perm[i+256] = perm[i]
	}

	return p
}

// Eval2 returns the noise value at (x, y).
func (p *PerlinNoise) Eval2(x, y float64) float64 {
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)

	u := fade(x)
	v := fade(y)

	A := p.perm[X] + Y
	B := p.perm[X+1] + Y

	return lerp(v,
		lerp(u, grad2D(p.perm[A], x, y), grad2D(p.perm[B], x-1, y)),
		lerp(u, grad2D(p.perm[A+1], x, y-1), grad2D(p.perm[B+1], x-1, y-1)))
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad2D picks one of eight unit-ish gradients from the hash.
func grad2D(hash int, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}
