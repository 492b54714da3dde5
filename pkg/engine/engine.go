package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/ldengine/pkg/input"
	"github.com/cbodonnell/ldengine/pkg/log"
	"github.com/cbodonnell/ldengine/pkg/sound"
	"github.com/cbodonnell/ldengine/pkg/storage"
	"github.com/cbodonnell/ldengine/pkg/surface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
	DefaultTPS          = 60
)

// Resources is what a game gets to load its assets with.
type Resources struct {
	// Audio is the engine's audio context.
	Audio *sound.Context
}

// Game is implemented by the user's game. Load builds the game's assets and
// returns the initial state.
type Game interface {
	Load(res Resources) (State, error)
}

type Options struct {
	// Title is the window title.
	Title string
	// Width and Height are the logical screen size in pixels.
	Width  int
	Height int
	// TPS is the tick rate. Zero means DefaultTPS.
	TPS int
	// Repository persists save data. Nil disables persistence.
	Repository storage.Repository
	// SaveKey is the save slot. Empty means storage.DefaultKey.
	SaveKey string
	// Debug draws an FPS/TPS overlay.
	Debug bool
}

// Run loads the game and drives it until the last state pops or an error
// escapes the loop.
func Run(game Game, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = DefaultScreenWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultScreenHeight
	}
	if opts.TPS <= 0 {
		opts.TPS = DefaultTPS
	}
	if opts.SaveKey == "" {
		opts.SaveKey = storage.DefaultKey
	}
	if opts.Title == "" {
		opts.Title = "ld-game-engine"
	}

	r, err := newRunner(game, opts)
	if err != nil {
		return fmt.Errorf("failed to load game: %v", err)
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(opts.TPS)

	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("game loop error: %v", err)
	}
	return nil
}

// runner implements ebiten.Game, which has Update, Draw and Layout methods.
type runner struct {
	opts   Options
	ctx    *Context
	stack  *stack
	queue  *input.Queue
	poller *input.Poller

	lastTick time.Time
}

func newRunner(game Game, opts Options) (*runner, error) {
	queue := input.NewQueue()
	audio := sound.NewContext()

	ctx := NewContext(ContextOptions{
		Surface:    surface.New(float64(opts.Width), float64(opts.Height)),
		Audio:      audio,
		Repository: opts.Repository,
		SaveKey:    opts.SaveKey,
	})

	if opts.Repository != nil {
		data, err := opts.Repository.Load(context.Background(), opts.SaveKey)
		switch {
		case err == nil:
			ctx.saveData = data
		case errors.Is(err, storage.ErrNotFound):
			log.Debug("No save data under key %q", opts.SaveKey)
		default:
			return nil, fmt.Errorf("failed to load save data: %v", err)
		}
	}

	initial, err := game.Load(Resources{Audio: audio})
	if err != nil {
		return nil, err
	}

	r := &runner{
		opts:   opts,
		ctx:    ctx,
		stack:  &stack{states: []State{initial}},
		queue:  queue,
		poller: input.NewPoller(queue),
	}
	r.poller.SetViewport(float64(opts.Width), float64(opts.Height))

	if err := r.stack.apply(ctx, initial.OnEnter(ctx)); err != nil {
		return nil, fmt.Errorf("initial state transition failed: %v", err)
	}
	return r, nil
}

func (r *runner) Update() error {
	now := time.Now()
	if r.lastTick.IsZero() {
		r.ctx.deltaTime = 1.0 / float64(r.opts.TPS)
	} else {
		r.ctx.deltaTime = now.Sub(r.lastTick).Seconds()
	}
	r.lastTick = now

	r.ctx.remToPx = baseRemPx * ebiten.Monitor().DeviceScaleFactor()

	r.poller.Poll()

	return r.stack.tick(r.ctx, r.queue)
}

func (r *runner) Draw(screen *ebiten.Image) {
	r.ctx.surface.Begin(screen)
	for _, s := range r.stack.states {
		s.Draw(r.ctx)
	}
	if r.opts.Debug {
		r.drawDebugOverlay(screen)
	}
}

func (r *runner) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   States: %d", len(r.stack.states)))
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return r.opts.Width, r.opts.Height
}
