package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)
	c := New(43)

	same := true
	for i := 0; i < 16; i++ {
		x, y := float64(i)*0.3, float64(i)*0.7
		assert.Equal(t, a.Eval2(x, y), b.Eval2(x, y))
		if a.Eval2(x, y) != c.Eval2(x, y) {
			same = false
		}
	}
	assert.False(t, same, "different seeds should produce different noise")
}

func TestSourceRange(t *testing.T) {
	s := New(7)
	for i := 0; i < 100; i++ {
		x, y := float64(i)*0.11, float64(i)*0.17
		v := s.Eval2(x, y)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)

		n := s.Normalized2(x, y)
		assert.GreaterOrEqual(t, n, 0.0)
		assert.LessOrEqual(t, n, 1.0)
	}
}

func TestFractalDefaults(t *testing.T) {
	f := NewFractal(NewFractalOptions{Seed: 1})
	assert.Equal(t, 1, f.octaves)
	assert.Equal(t, 2.0, f.lacunarity)
	assert.Equal(t, 0.5, f.persistence)

	// A single octave matches the raw source.
	s := New(1)
	assert.Equal(t, s.Eval2(0.5, 0.25), f.Eval2(0.5, 0.25))
}

func TestFractalRangeAndOctaves(t *testing.T) {
	single := NewFractal(NewFractalOptions{Seed: 3, Octaves: 1})
	multi := NewFractal(NewFractalOptions{Seed: 3, Octaves: 4})

	differs := false
	for i := 0; i < 50; i++ {
		x, y := float64(i)*0.13, float64(i)*0.29
		v := multi.Eval2(x, y)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
		if v != single.Eval2(x, y) {
			differs = true
		}
	}
	assert.True(t, differs, "octaves should change the output")
}
