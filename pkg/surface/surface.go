package surface

import (
	"image/color"
	"math"

	"github.com/cbodonnell/ldengine/pkg/vec"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the engine's draw target for a single frame. Coordinates are
// logical pixels with the origin at the center of the screen and y pointing
// down. Begin must be called with the frame image before any drawing.
type Surface struct {
	screen *ebiten.Image

	width  float64
	height float64

	strokeColor color.Color
	fillColor   color.Color
	lineWidth   float32
	dash        []float64
}

// New creates a surface with the given logical size.
func New(width, height float64) *Surface {
	return &Surface{
		width:       width,
		height:      height,
		strokeColor: color.White,
		fillColor:   color.White,
		lineWidth:   1,
	}
}

// Begin binds the surface to the current frame image.
func (s *Surface) Begin(screen *ebiten.Image) {
	s.screen = screen
	b := screen.Bounds()
	s.width = float64(b.Dx())
	s.height = float64(b.Dy())
}

// Screen returns the bound frame image, or nil outside a draw.
func (s *Surface) Screen() *ebiten.Image {
	return s.screen
}

// Size returns the logical size of the surface.
func (s *Surface) Size() vec.V2 {
	return vec.V(s.width, s.height)
}

// Abs converts a centered surface position to top-left screen coordinates.
func (s *Surface) Abs(p vec.V2) (float64, float64) {
	return p.X() + s.width/2, p.Y() + s.height/2
}

// SetStrokeColor sets the color used by stroke primitives.
func (s *Surface) SetStrokeColor(c color.Color) {
	s.strokeColor = c
}

// SetFillColor sets the color used by fill primitives.
func (s *Surface) SetFillColor(c color.Color) {
	s.fillColor = c
}

// SetLineWidth sets the stroke width in logical pixels.
func (s *Surface) SetLineWidth(w float64) {
	s.lineWidth = float32(w)
}

// SetLineDash sets the dash pattern, alternating drawn and skipped lengths.
// An empty or all-zero pattern draws solid lines. A pattern containing a
// negative length is ignored, keeping the current pattern, following canvas
// setLineDash semantics.
func (s *Surface) SetLineDash(pattern []float64) {
	allZero := true
	for _, v := range pattern {
		if v < 0 {
			return
		}
		if v > 0 {
			allZero = false
		}
	}
	if allZero {
		s.dash = s.dash[:0]
		return
	}
	s.dash = append(s.dash[:0], pattern...)
}

// Fill clears the whole surface with the fill color.
func (s *Surface) Fill() {
	s.screen.Fill(s.fillColor)
}

// Line strokes a line segment, honoring the dash pattern.
func (s *Surface) Line(from, to vec.V2) {
	if len(s.dash) == 0 {
		s.solidLine(from, to)
		return
	}
	s.dashedLine(from, to)
}

func (s *Surface) solidLine(from, to vec.V2) {
	x0, y0 := s.Abs(from)
	x1, y1 := s.Abs(to)
	vector.StrokeLine(s.screen, float32(x0), float32(y0), float32(x1), float32(y1), s.lineWidth, s.strokeColor, true)
}

func (s *Surface) dashedLine(from, to vec.V2) {
	for _, seg := range dashSegments(from, to, s.dash) {
		s.solidLine(seg[0], seg[1])
	}
}

// dashSegments splits the line from-to into the drawn portions of the dash
// pattern. The pattern must contain at least one positive length, which
// SetLineDash guarantees.
func dashSegments(from, to vec.V2, dash []float64) [][2]vec.V2 {
	dir := to.Sub(from)
	length := dir.Len()
	if length == 0 {
		return nil
	}
	unit := dir.Mul(1 / length)

	var segs [][2]vec.V2
	pos := 0.0
	for i := 0; pos < length; i++ {
		end := math.Min(pos+dash[i%len(dash)], length)
		if i%2 == 0 && end > pos {
			segs = append(segs, [2]vec.V2{from.Add(unit.Mul(pos)), from.Add(unit.Mul(end))})
		}
		pos = end
	}
	return segs
}

// Circle strokes a circle of the given radius around pos.
func (s *Surface) Circle(pos vec.V2, radius float64) {
	x, y := s.Abs(pos)
	vector.StrokeCircle(s.screen, float32(x), float32(y), float32(radius), s.lineWidth, s.strokeColor, true)
}

// FillCircle fills a circle of the given radius around pos.
func (s *Surface) FillCircle(pos vec.V2, radius float64) {
	x, y := s.Abs(pos)
	vector.DrawFilledCircle(s.screen, float32(x), float32(y), float32(radius), s.fillColor, true)
}

// Rect strokes an axis-aligned rectangle centered on pos.
func (s *Surface) Rect(pos, size vec.V2) {
	x, y := s.Abs(pos.Sub(size.Mul(0.5)))
	vector.StrokeRect(s.screen, float32(x), float32(y), float32(size.X()), float32(size.Y()), s.lineWidth, s.strokeColor, true)
}

// FillRect fills an axis-aligned rectangle centered on pos.
func (s *Surface) FillRect(pos, size vec.V2) {
	x, y := s.Abs(pos.Sub(size.Mul(0.5)))
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(size.X()), float32(size.Y()), s.fillColor, true)
}
