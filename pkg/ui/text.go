package ui

import (
	"image/color"

	"github.com/cbodonnell/ldengine/pkg/engine"
	"github.com/cbodonnell/ldengine/pkg/fonts"
	"github.com/cbodonnell/ldengine/pkg/vec"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const defaultTextSize = 2.5

// Text is a center-anchored monospace label sized in rem.
type Text struct {
	// Pos is the position of the text center in surface coordinates.
	Pos vec.V2
	// Text is the displayed string.
	Text string

	size float64
}

func NewText(s string) *Text {
	return &Text{
		Text: s,
		size: defaultTextSize,
	}
}

func EmptyText() *Text {
	return NewText("")
}

func (t *Text) WithSize(size float64) *Text {
	t.SetSize(size)
	return t
}

func (t *Text) SetSize(size float64) {
	t.size = size
}

func (t *Text) face(ctx *engine.Context) font.Face {
	return fonts.MonoFace(ctx.Rem(t.size))
}

// Measure returns the rendered width and height in pixels.
func (t *Text) Measure(ctx *engine.Context) (float64, float64) {
	w := font.MeasureString(t.face(ctx), t.Text)
	return float64(w) / 64, ctx.Rem(t.size)
}

// IsOver reports whether pos is inside the text's bounding box.
func (t *Text) IsOver(pos vec.V2, ctx *engine.Context) bool {
	w, h := t.Measure(ctx)
	return pos.X() >= t.Pos.X()-w/2 &&
		pos.X() <= t.Pos.X()+w/2 &&
		pos.Y() >= t.Pos.Y()-h/2 &&
		pos.Y() <= t.Pos.Y()+h/2
}

// Draw renders the text centered on pos.
func (t *Text) Draw(ctx *engine.Context, pos vec.V2, clr color.Color) {
	t.Pos = pos

	face := t.face(ctx)
	w, _ := t.Measure(ctx)
	metrics := face.Metrics()
	ascent := float64(metrics.Ascent) / 64
	descent := float64(metrics.Descent) / 64

	x, y := ctx.Surface().Abs(pos)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-w/2, y+(ascent-descent)/2)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(ctx.Surface().Screen(), t.Text, face, op)
}
