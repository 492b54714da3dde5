package kinematic

// This package includes functions for the big four kinematic equations,
// in scalar and vector forms.

import (
	"math"

	"github.com/cbodonnell/ldengine/pkg/vec"
)

const (
	// Gravity is the default downward acceleration in surface units
	// per second squared. The surface's y axis points down.
	Gravity float64 = 980
)

// Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity*time + 0.5*acceleration*math.Pow(time, 2)
}

// FinalVelocity returns the final velocity of an object given its initial velocity, time, and acceleration.
func FinalVelocity(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity + acceleration*time
}

// DisplacementV returns the displacement vector of an object given its initial velocity, time, and acceleration.
func DisplacementV(initialVelocity vec.V2, time float64, acceleration vec.V2) vec.V2 {
	return vec.V(
		Displacement(initialVelocity.X(), time, acceleration.X()),
		Displacement(initialVelocity.Y(), time, acceleration.Y()),
	)
}

// FinalVelocityV returns the final velocity vector of an object given its initial velocity, time, and acceleration.
func FinalVelocityV(initialVelocity vec.V2, time float64, acceleration vec.V2) vec.V2 {
	return initialVelocity.Add(acceleration.Mul(time))
}
