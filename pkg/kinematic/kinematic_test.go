package kinematic

import (
	"testing"

	"github.com/cbodonnell/ldengine/pkg/vec"
	"github.com/stretchr/testify/assert"
)

func TestDisplacement(t *testing.T) {
	tests := []struct {
		name            string
		initialVelocity float64
		time            float64
		acceleration    float64
		want            float64
	}{
		{
			name:            "no motion",
			initialVelocity: 0,
			time:            1,
			acceleration:    0,
			want:            0,
		},
		{
			name:            "constant velocity",
			initialVelocity: 10,
			time:            2,
			acceleration:    0,
			want:            20,
		},
		{
			name:            "accelerating from rest",
			initialVelocity: 0,
			time:            2,
			acceleration:    10,
			want:            20,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Displacement(tt.initialVelocity, tt.time, tt.acceleration), 1e-9)
		})
	}
}

func TestFinalVelocity(t *testing.T) {
	assert.InDelta(t, 10.0, FinalVelocity(0, 1, 10), 1e-9)
	assert.InDelta(t, 5.0, FinalVelocity(10, 0.5, -10), 1e-9)
}

func TestVectorForms(t *testing.T) {
	d := DisplacementV(vec.V(10, 0), 2, vec.V(0, 10))
	assert.InDelta(t, 20.0, d.X(), 1e-9)
	assert.InDelta(t, 20.0, d.Y(), 1e-9)

	v := FinalVelocityV(vec.V(1, 2), 2, vec.V(3, 4))
	assert.InDelta(t, 7.0, v.X(), 1e-9)
	assert.InDelta(t, 10.0, v.Y(), 1e-9)
}
