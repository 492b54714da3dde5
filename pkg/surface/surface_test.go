package surface

import (
	"testing"

	"github.com/cbodonnell/ldengine/pkg/vec"
	"github.com/stretchr/testify/assert"
)

func TestSizeAndAbs(t *testing.T) {
	s := New(640, 480)

	assert.Equal(t, vec.V(640, 480), s.Size())

	x, y := s.Abs(vec.V(0, 0))
	assert.InDelta(t, 320.0, x, 1e-9)
	assert.InDelta(t, 240.0, y, 1e-9)

	x, y = s.Abs(vec.V(-320, -240))
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)

	x, y = s.Abs(vec.V(100, -50))
	assert.InDelta(t, 420.0, x, 1e-9)
	assert.InDelta(t, 190.0, y, 1e-9)
}

func TestSetLineDashCopies(t *testing.T) {
	s := New(10, 10)
	pattern := []float64{4, 2}
	s.SetLineDash(pattern)
	pattern[0] = 99
	assert.Equal(t, []float64{4, 2}, s.dash)

	s.SetLineDash(nil)
	assert.Empty(t, s.dash)
}

func TestSetLineDashSanitizes(t *testing.T) {
	s := New(10, 10)

	// An all-zero pattern clears the dash, falling back to solid lines.
	s.SetLineDash([]float64{4, 2})
	s.SetLineDash([]float64{0, 0})
	assert.Empty(t, s.dash)

	// A pattern with a negative length is ignored.
	s.SetLineDash([]float64{4, 2})
	s.SetLineDash([]float64{3, -1})
	assert.Equal(t, []float64{4, 2}, s.dash)

	// Zero entries are fine as long as one length is positive.
	s.SetLineDash([]float64{0, 4})
	assert.Equal(t, []float64{0, 4}, s.dash)
}

func TestDashSegments(t *testing.T) {
	from := vec.V(0, 0)
	to := vec.V(10, 0)

	segs := dashSegments(from, to, []float64{4, 2})
	assert.Equal(t, [][2]vec.V2{
		{vec.V(0, 0), vec.V(4, 0)},
		{vec.V(6, 0), vec.V(10, 0)},
	}, segs)

	// A single-length pattern alternates on and off.
	segs = dashSegments(from, to, []float64{3})
	assert.Equal(t, [][2]vec.V2{
		{vec.V(0, 0), vec.V(3, 0)},
		{vec.V(6, 0), vec.V(9, 0)},
	}, segs)

	// A zero drawn length yields no segment but still terminates.
	segs = dashSegments(from, to, []float64{0, 5})
	assert.Empty(t, segs)

	assert.Empty(t, dashSegments(from, from, []float64{4, 2}))
}
