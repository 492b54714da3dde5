package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/cbodonnell/ldengine/pkg/engine"
	"github.com/cbodonnell/ldengine/pkg/input"
	"github.com/cbodonnell/ldengine/pkg/log"
	"github.com/cbodonnell/ldengine/pkg/objects"
	"github.com/cbodonnell/ldengine/pkg/storage"
	ldui "github.com/cbodonnell/ldengine/pkg/ui"
	"github.com/cbodonnell/ldengine/pkg/vec"
)

type gameOverState struct {
	objects.SceneState

	game  *DemoGame
	score int

	title     *ldui.Text
	scoreText *ldui.Text
	bestText  *ldui.Text
	hintText  *ldui.Text
}

func newGameOverState(game *DemoGame, score int) *gameOverState {
	return &gameOverState{
		SceneState: *objects.NewSceneState(objects.NewSortedZIndexObject("gameover-root")),
		game:       game,
		score:      score,
		title:      ldui.NewText("GAME OVER").WithSize(3.5),
		scoreText:  ldui.NewText("").WithSize(2),
		bestText:   ldui.NewText("").WithSize(1.5),
		hintText:   ldui.NewText("press any key to continue").WithSize(1),
	}
}

func (s *gameOverState) OnEnter(ctx *engine.Context) engine.Transition {
	var save demoSave
	if err := ctx.LoadData(&save); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Warn("Failed to load save data: %v", err)
	}

	if s.score > save.HighScore {
		save.HighScore = s.score
		if err := ctx.SetData(&save); err != nil {
			log.Error("Failed to persist high score: %v", err)
		}

		effect := objects.NewTextEffect("new-high-score", objects.NewTextEffectOptions{
			Text:   "NEW HIGH SCORE!",
			Pos:    vec.V(0, 80),
			Size:   1.5,
			Color:  color.NRGBA{R: 255, G: 220, B: 120, A: 255},
			Scroll: true,
			TTL:    3,
		})
		if err := s.Root.AddChild("new-high-score", effect); err != nil {
			log.Warn("Failed to add high score effect: %v", err)
		}
	}

	s.scoreText.Text = fmt.Sprintf("SCORE %d", s.score)
	s.bestText.Text = fmt.Sprintf("BEST %d", save.HighScore)
	return s.SceneState.OnEnter(ctx)
}

func (s *gameOverState) OnEvent(ctx *engine.Context, e input.Event) engine.Transition {
	switch e := e.(type) {
	case input.KeyDown:
		if e.Meta.Repeat {
			break
		}
		return engine.Set(newMenuState(s.game))
	case input.MouseUp:
		if e.Button == input.MouseButtonLeft {
			return engine.Set(newMenuState(s.game))
		}
	case input.TouchEnd:
		return engine.Set(newMenuState(s.game))
	}
	return engine.None()
}

func (s *gameOverState) Draw(ctx *engine.Context) {
	surf := ctx.Surface()
	surf.SetFillColor(color.NRGBA{R: 24, G: 28, B: 40, A: 255})
	surf.Fill()

	s.title.Draw(ctx, vec.V(0, -ctx.Rem(6)), color.NRGBA{R: 235, G: 100, B: 100, A: 255})
	s.scoreText.Draw(ctx, vec.V(0, -ctx.Rem(1)), color.White)
	s.bestText.Draw(ctx, vec.V(0, ctx.Rem(2)), color.NRGBA{R: 180, G: 190, B: 210, A: 255})
	s.hintText.Draw(ctx, vec.V(0, ctx.Rem(6)), color.NRGBA{R: 140, G: 148, B: 168, A: 255})

	s.SceneState.Draw(ctx)
}
