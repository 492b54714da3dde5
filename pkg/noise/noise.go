package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source produces 2D gradient noise in [-1, 1], deterministic for a seed.
type Source struct {
	noise opensimplex.Noise
}

// New creates a seeded noise source.
func New(seed int64) *Source {
	return &Source{noise: opensimplex.New(seed)}
}

// Eval2 returns the noise value at (x, y) in [-1, 1].
func (s *Source) Eval2(x, y float64) float64 {
	return s.noise.Eval2(x, y)
}

// Normalized2 returns the noise value at (x, y) rescaled to [0, 1].
func (s *Source) Normalized2(x, y float64) float64 {
	return (s.noise.Eval2(x, y) + 1) / 2
}

// Fractal sums octaves of a noise source for natural-looking terrain.
type Fractal struct {
	source *Source
	// octaves is the number of noise layers summed.
	octaves int
	// lacunarity is the frequency multiplier between octaves.
	lacunarity float64
	// persistence is the amplitude multiplier between octaves.
	persistence float64
}

type NewFractalOptions struct {
	Seed        int64
	Octaves     int
	Lacunarity  float64
	Persistence float64
}

func NewFractal(opts NewFractalOptions) *Fractal {
	octaves := opts.Octaves
	if octaves < 1 {
		octaves = 1
	}
	lacunarity := opts.Lacunarity
	if lacunarity == 0 {
		lacunarity = 2.0
	}
	persistence := opts.Persistence
	if persistence == 0 {
		persistence = 0.5
	}
	return &Fractal{
		source:      New(opts.Seed),
		octaves:     octaves,
		lacunarity:  lacunarity,
		persistence: persistence,
	}
}

// Eval2 returns the fractal noise value at (x, y) in [-1, 1].
func (f *Fractal) Eval2(x, y float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	norm := 0.0
	for i := 0; i < f.octaves; i++ {
		sum += f.source.Eval2(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= f.persistence
		frequency *= f.lacunarity
	}
	return sum / norm
}

// Normalized2 returns the fractal noise value at (x, y) rescaled to [0, 1].
func (f *Fractal) Normalized2(x, y float64) float64 {
	return (f.Eval2(x, y) + 1) / 2
}
