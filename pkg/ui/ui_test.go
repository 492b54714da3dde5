package ui

import (
	"image/color"
	"testing"

	"github.com/cbodonnell/ldengine/pkg/engine"
	"github.com/cbodonnell/ldengine/pkg/input"
	"github.com/cbodonnell/ldengine/pkg/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	plays int
}

func (p *fakePlayer) Play() {
	p.plays++
}

func testContext() *engine.Context {
	return engine.NewContext(engine.ContextOptions{})
}

func TestTextMeasure(t *testing.T) {
	ctx := testContext()

	text := NewText("hello")
	w, h := text.Measure(ctx)
	assert.Greater(t, w, 0.0)
	assert.InDelta(t, ctx.Rem(2.5), h, 1e-9)

	// Monospace: doubling the characters doubles the width.
	double := NewText("hellohello")
	w2, _ := double.Measure(ctx)
	assert.InDelta(t, 2*w, w2, 1.0)

	small := NewText("hello").WithSize(1.0)
	ws, hs := small.Measure(ctx)
	assert.Less(t, ws, w)
	assert.InDelta(t, ctx.Rem(1.0), hs, 1e-9)
}

func TestTextIsOver(t *testing.T) {
	ctx := testContext()

	text := NewText("hi")
	text.Pos = vec.V(0, 0)
	w, h := text.Measure(ctx)

	assert.True(t, text.IsOver(vec.V(0, 0), ctx))
	assert.True(t, text.IsOver(vec.V(w/2, h/2), ctx))
	assert.False(t, text.IsOver(vec.V(w/2+1, 0), ctx))
	assert.False(t, text.IsOver(vec.V(0, h/2+1), ctx))

	text.Pos = vec.V(100, 50)
	assert.False(t, text.IsOver(vec.V(0, 0), ctx))
	assert.True(t, text.IsOver(vec.V(100, 50), ctx))
}

func TestButtonClick(t *testing.T) {
	ctx := testContext()
	click := &fakePlayer{}

	b := NewButton("play", color.White).WithClickSound(click)
	b.Text.Pos = vec.V(0, 0)

	// Left release over the button activates it.
	assert.True(t, b.OnEvent(input.MouseUp{Pos: vec.V(0, 0), Button: input.MouseButtonLeft}, ctx))
	assert.Equal(t, 1, click.plays)

	// Right release does not.
	assert.False(t, b.OnEvent(input.MouseUp{Pos: vec.V(0, 0), Button: input.MouseButtonRight}, ctx))

	// A miss does not.
	assert.False(t, b.OnEvent(input.MouseUp{Pos: vec.V(1000, 1000), Button: input.MouseButtonLeft}, ctx))
	assert.Equal(t, 1, click.plays)
}

func TestButtonDisabled(t *testing.T) {
	ctx := testContext()

	b := NewButton("play", color.White)
	b.Text.Pos = vec.V(0, 0)
	b.Enabled = false

	assert.False(t, b.OnEvent(input.MouseUp{Pos: vec.V(0, 0), Button: input.MouseButtonLeft}, ctx))
}

func TestButtonHoverSound(t *testing.T) {
	ctx := testContext()
	hover := &fakePlayer{}

	b := NewButton("play", color.White).WithHoverSound(hover)
	b.Text.Pos = vec.V(0, 0)

	require.False(t, b.OnEvent(input.MouseMove{Pos: vec.V(0, 0)}, ctx))
	assert.Equal(t, 1, hover.plays)

	// Staying hovered does not retrigger the sound.
	require.False(t, b.OnEvent(input.MouseMove{Pos: vec.V(1, 1)}, ctx))
	assert.Equal(t, 1, hover.plays)

	// Leaving and re-entering does.
	require.False(t, b.OnEvent(input.MouseMove{Pos: vec.V(1000, 1000)}, ctx))
	require.False(t, b.OnEvent(input.MouseMove{Pos: vec.V(0, 0)}, ctx))
	assert.Equal(t, 2, hover.plays)
}

func TestButtonTouch(t *testing.T) {
	ctx := testContext()
	click := &fakePlayer{}

	b := NewButton("play", color.White).WithClickSound(click)
	b.Text.Pos = vec.V(0, 0)

	// touchend with no touches falls back to the last touch position.
	assert.False(t, b.OnEvent(input.TouchStart{Touches: []vec.V2{vec.V(0, 0)}}, ctx))
	assert.True(t, b.OnEvent(input.TouchEnd{}, ctx))
	assert.Equal(t, 1, click.plays)

	// Multi-touch end is ignored.
	assert.False(t, b.OnEvent(input.TouchEnd{Touches: []vec.V2{vec.V(0, 0), vec.V(5, 5)}}, ctx))

	// A touch ending away from the button does not activate it.
	assert.False(t, b.OnEvent(input.TouchStart{Touches: []vec.V2{vec.V(500, 500)}}, ctx))
	assert.False(t, b.OnEvent(input.TouchEnd{Touches: []vec.V2{vec.V(500, 500)}}, ctx))
	assert.Equal(t, 1, click.plays)
}
