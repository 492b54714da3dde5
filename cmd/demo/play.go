package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/solarlune/resolv"

	"github.com/cbodonnell/ldengine/pkg/collisions"
	"github.com/cbodonnell/ldengine/pkg/engine"
	"github.com/cbodonnell/ldengine/pkg/input"
	"github.com/cbodonnell/ldengine/pkg/kinematic"
	"github.com/cbodonnell/ldengine/pkg/log"
	"github.com/cbodonnell/ldengine/pkg/noise"
	"github.com/cbodonnell/ldengine/pkg/objects"
	"github.com/cbodonnell/ldengine/pkg/sprites"
	ldui "github.com/cbodonnell/ldengine/pkg/ui"
	"github.com/cbodonnell/ldengine/pkg/vec"
)

const (
	terrainTag      = "terrain"
	terrainColWidth = 8

	playerSpeed = 180.0
	jumpSpeed   = -420.0
)

type playState struct {
	engine.BaseState

	game *DemoGame

	width   float64
	height  float64
	terrain []float64
	space   *resolv.Space
	player  *resolv.Object
	anim    *sprites.Animation
	effects *objects.SortedZIndexObject

	velocity vec.V2
	onGround bool
	flipH    bool
	score    float64

	scoreText *ldui.Text
}

func newPlayState(game *DemoGame) *playState {
	return &playState{
		game:      game,
		scoreText: ldui.NewText("").WithSize(1.5),
	}
}

func (s *playState) OnEnter(ctx *engine.Context) engine.Transition {
	size := ctx.Surface().Size()
	s.width = size.X()
	s.height = size.Y()

	seed := time.Now().UnixNano()
	log.Debug("Generating terrain with seed %d", seed)

	fractal := noise.NewFractal(noise.NewFractalOptions{
		Seed:    seed,
		Octaves: 4,
	})

	cols := int(s.width) / terrainColWidth
	s.terrain = make([]float64, cols)
	for i := range s.terrain {
		h := fractal.Normalized2(float64(i)*0.05, 0)
		s.terrain[i] = 40 + h*160
	}

	s.space = collisions.NewBoundedSpace(collisions.NewSpaceOptions{
		Width:  int(s.width),
		Height: int(s.height),
	})
	for i, h := range s.terrain {
		collisions.AddRect(s.space,
			float64(i*terrainColWidth), s.height-h,
			terrainColWidth, h,
			terrainTag,
		)
	}

	s.player = resolv.NewObject(s.width/2, 64, playerSize, playerSize, "player")
	s.space.Add(s.player)
	s.velocity = vec.Zero()
	s.onGround = false
	s.score = 0

	anim, err := sprites.NewAnimation(sprites.NewAnimationOptions{
		Sheet:      s.game.sheet,
		FrameCount: 4,
		FrameSpeed: 8,
		Loop:       true,
	})
	if err != nil {
		log.Error("Failed to create player animation: %v", err)
		return engine.Pop()
	}
	s.anim = anim

	s.effects = objects.NewSortedZIndexObject("play-effects")
	return engine.None()
}

func (s *playState) OnEvent(ctx *engine.Context, e input.Event) engine.Transition {
	switch e := e.(type) {
	case input.KeyDown:
		if e.Meta.Repeat {
			break
		}
		switch e.Key {
		case "Escape":
			return engine.Set(newGameOverState(s.game, int(s.score)))
		case "Space":
			s.jump(ctx)
		}
	case input.TouchStart:
		s.jump(ctx)
	case input.Wheel:
		// Scroll adjusts the master volume.
		ctx.Audio().SetVolume(ctx.Audio().Volume() - e.Delta.Y()*0.05)
	}
	return engine.None()
}

func (s *playState) jump(ctx *engine.Context) {
	if !s.onGround {
		return
	}
	s.velocity = vec.V(s.velocity.X(), jumpSpeed)
	s.onGround = false
	s.game.jumpSound.Play()

	id := fmt.Sprintf("jump-%d", time.Now().UnixNano())
	effect := objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   "+10",
		Pos:    s.playerPos(),
		Size:   1.0,
		Color:  color.NRGBA{R: 255, G: 220, B: 120, A: 255},
		Scroll: true,
		TTL:    0.6,
	})
	if err := s.effects.AddChild(id, effect); err != nil {
		log.Warn("Failed to add jump effect: %v", err)
	}
	s.score += 10
}

// playerPos returns the player center in surface coordinates.
func (s *playState) playerPos() vec.V2 {
	return vec.V(
		s.player.Position.X+playerSize/2-s.width/2,
		s.player.Position.Y+playerSize/2-s.height/2,
	)
}

func (s *playState) OnUpdate(ctx *engine.Context) engine.Transition {
	dt := ctx.DeltaTime()

	// X-axis
	vx := 0.0
	if input.IsLeftPressed() {
		vx = -playerSpeed
		s.flipH = true
	}
	if input.IsRightPressed() {
		vx = playerSpeed
		s.flipH = false
	}

	dx := vx * dt
	if collision := s.player.Check(dx, 0, terrainTag, collisions.TagWall); collision != nil {
		dx = collision.ContactWithObject(collision.Objects[0]).X
		vx = 0
	}

	// Y-axis
	vy := s.velocity.Y()
	dy := kinematic.Displacement(vy, dt, kinematic.Gravity)
	vy = kinematic.FinalVelocity(vy, dt, kinematic.Gravity)

	onGround := false
	if collision := s.player.Check(0, dy, terrainTag, collisions.TagWall); collision != nil {
		dy = collision.ContactWithObject(collision.Objects[0]).Y
		vy = 0
		onGround = true
	}

	s.player.Position.X += dx
	s.player.Position.Y += dy
	s.player.Update()
	s.velocity = vec.V(vx, vy)
	s.onGround = onGround

	if vx != 0 && onGround {
		s.anim.Update()
		s.score += 2 * dt * playerSpeed / 100
	}

	if err := objects.UpdateTree(ctx, s.effects); err != nil {
		log.Warn("Failed to update effects: %v", err)
	}

	return engine.None()
}

func (s *playState) Draw(ctx *engine.Context) {
	surf := ctx.Surface()

	surf.SetFillColor(color.NRGBA{R: 40, G: 52, B: 76, A: 255})
	surf.Fill()

	// Terrain columns.
	surf.SetFillColor(color.NRGBA{R: 70, G: 140, B: 90, A: 255})
	for i, h := range s.terrain {
		x := float64(i*terrainColWidth) + terrainColWidth/2 - s.width/2
		surf.FillRect(vec.V(x, s.height/2-h/2), vec.V(terrainColWidth, h))
	}

	// Dashed guide at the terrain midline.
	surf.SetStrokeColor(color.NRGBA{R: 255, G: 255, B: 255, A: 60})
	surf.SetLineDash([]float64{6, 6})
	surf.Line(vec.V(-s.width/2, s.height/2-140), vec.V(s.width/2, s.height/2-140))
	surf.SetLineDash(nil)

	if err := s.anim.Draw(surf, sprites.DrawOptions{
		Pos:   s.playerPos(),
		FlipH: s.flipH,
	}); err != nil {
		log.Warn("Failed to draw player: %v", err)
	}

	objects.DrawTree(ctx, s.effects)

	s.scoreText.Text = fmt.Sprintf("SCORE %d", int(s.score))
	size := surf.Size()
	s.scoreText.Draw(ctx, vec.V(0, -size.Y()/2+ctx.Rem(2)), color.White)
}
