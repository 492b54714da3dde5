package vec

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// V2 is the engine's 2D vector type. Coordinates are in device pixels with
// the origin at the center of the surface and y pointing down.
type V2 = mgl64.Vec2

// V constructs a V2 from its components.
func V(x, y float64) V2 {
	return V2{x, y}
}

// Splat constructs a V2 with both components set to v.
func Splat(v float64) V2 {
	return V2{v, v}
}

// Zero is the zero vector.
func Zero() V2 {
	return V2{}
}

// Scale returns v scaled component-wise by s.
func Scale(v V2, s float64) V2 {
	return v.Mul(s)
}

// Rotate returns v rotated by angle radians about the origin.
func Rotate(v V2, angle float64) V2 {
	sin, cos := math.Sincos(angle)
	return V2{v.X()*cos - v.Y()*sin, v.X()*sin + v.Y()*cos}
}

// Clamp returns v with each component clamped to [min, max].
func Clamp(v V2, min, max float64) V2 {
	return V2{
		math.Min(math.Max(v.X(), min), max),
		math.Min(math.Max(v.Y(), min), max),
	}
}
