package ui

import (
	"image/color"

	"github.com/cbodonnell/ldengine/pkg/engine"
	"github.com/cbodonnell/ldengine/pkg/input"
	"github.com/cbodonnell/ldengine/pkg/sound"
	"github.com/cbodonnell/ldengine/pkg/vec"
)

// Button is a clickable text label. Mouse hover is tracked from move
// events; touch activation falls back to the last seen touch position
// because the final touchend event may carry no touches.
type Button struct {
	Text    *Text
	Enabled bool

	color         color.Color
	hoverColor    color.Color
	disabledColor color.Color

	clickSound sound.Player
	hoverSound sound.Player

	hovered   bool
	lastTouch *vec.V2
}

func NewButton(text string, clr color.Color) *Button {
	return &Button{
		Text:          NewText(text),
		Enabled:       true,
		color:         clr,
		hoverColor:    clr,
		disabledColor: clr,
	}
}

func EmptyButton(clr color.Color) *Button {
	return NewButton("", clr)
}

func (b *Button) WithSize(size float64) *Button {
	b.Text.SetSize(size)
	return b
}

func (b *Button) WithHoverColor(clr color.Color) *Button {
	b.hoverColor = clr
	return b
}

func (b *Button) WithDisabledColor(clr color.Color) *Button {
	b.disabledColor = clr
	return b
}

func (b *Button) WithClickSound(s sound.Player) *Button {
	b.clickSound = s
	return b
}

func (b *Button) WithHoverSound(s sound.Player) *Button {
	b.hoverSound = s
	return b
}

func (b *Button) SetText(text string) {
	b.Text.Text = text
}

func (b *Button) handlePress(pos vec.V2, ctx *engine.Context) bool {
	if !b.Text.IsOver(pos, ctx) {
		return false
	}
	if b.clickSound != nil {
		b.clickSound.Play()
	}
	return true
}

// OnEvent processes an input event and reports whether the button was
// activated.
func (b *Button) OnEvent(e input.Event, ctx *engine.Context) bool {
	if !b.Enabled {
		return false
	}
	switch e := e.(type) {
	case input.MouseMove:
		over := b.Text.IsOver(e.Pos, ctx)
		if !b.hovered && over && b.hoverSound != nil {
			b.hoverSound.Play()
		}
		b.hovered = over
		return false
	case input.MouseUp:
		if e.Button != input.MouseButtonLeft {
			return false
		}
		return b.handlePress(e.Pos, ctx)
	case input.TouchStart:
		if len(e.Touches) > 0 {
			t := e.Touches[0]
			b.lastTouch = &t
		}
		return false
	case input.TouchMove:
		if len(e.Touches) > 0 {
			t := e.Touches[0]
			b.lastTouch = &t
		}
		return false
	case input.TouchEnd:
		if len(e.Touches) > 1 {
			return false
		}
		b.hovered = false
		pos := b.lastTouch
		if len(e.Touches) == 1 {
			pos = &e.Touches[0]
		}
		if pos == nil {
			return false
		}
		return b.handlePress(*pos, ctx)
	}
	return false
}

// Draw renders the button centered on pos with the color matching its state.
func (b *Button) Draw(ctx *engine.Context, pos vec.V2) {
	clr := b.color
	if !b.Enabled {
		clr = b.disabledColor
	} else if b.hovered {
		clr = b.hoverColor
	}
	b.Text.Draw(ctx, pos, clr)
}
