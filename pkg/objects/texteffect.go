package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/ldengine/pkg/engine"
	"github.com/cbodonnell/ldengine/pkg/ui"
	"github.com/cbodonnell/ldengine/pkg/vec"
)

// TextEffect is a transient floating label that removes itself from its
// parent when its time to live expires.
type TextEffect struct {
	*BaseObject

	text   *ui.Text
	pos    vec.V2
	color  color.Color
	scroll bool
	ttl    float64
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// Pos is the position in surface coordinates.
	Pos vec.V2
	// Size is the text size in rem. Zero keeps the default.
	Size float64
	// Color is the color of the text.
	Color color.Color
	// Scroll makes the text drift upward.
	Scroll bool
	// TTL is the time to live in seconds.
	TTL float64
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}

	text := ui.NewText(opts.Text)
	if opts.Size > 0 {
		text.SetSize(opts.Size)
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		text:   text,
		pos:    opts.Pos,
		color:  clr,
		scroll: opts.Scroll,
		ttl:    opts.TTL,
	}
}

func (o *TextEffect) Update(ctx *engine.Context) error {
	if o.scroll {
		o.pos = o.pos.Sub(vec.V(0, 60*ctx.DeltaTime()))
	}
	if o.ttl > 0 {
		o.ttl -= ctx.DeltaTime()
		if o.ttl <= 0 {
			if err := o.RemoveFromParent(); err != nil {
				return fmt.Errorf("failed to remove text effect from parent: %w", err)
			}
		}
	}
	return nil
}

func (o *TextEffect) Draw(ctx *engine.Context) {
	o.text.Draw(ctx, o.pos, o.color)
}
