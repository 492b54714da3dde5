package main

import (
	"errors"
	"image/color"

	"github.com/ebitenui/ebitenui"

	"github.com/cbodonnell/ldengine/pkg/engine"
	"github.com/cbodonnell/ldengine/pkg/log"
	"github.com/cbodonnell/ldengine/pkg/storage"
	ldui "github.com/cbodonnell/ldengine/pkg/ui"
	"github.com/cbodonnell/ldengine/pkg/vec"
)

type menuState struct {
	engine.BaseState

	game *DemoGame

	ui    *ebitenui.UI
	title *ldui.Text
	name  string

	startRequested bool
	quitRequested  bool
}

func newMenuState(game *DemoGame) *menuState {
	return &menuState{
		game:  game,
		title: ldui.NewText("NOISE RUNNER").WithSize(3.5),
	}
}

func (s *menuState) OnEnter(ctx *engine.Context) engine.Transition {
	var save demoSave
	if err := ctx.LoadData(&save); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Warn("Failed to load save data: %v", err)
	}
	s.name = save.Name

	root := ldui.NewFormContainer()

	nameInput := ldui.NewTextInput("Player name", func(text string) {
		s.name = text
	})
	nameInput.SetText(s.name)
	root.AddChild(nameInput)

	root.AddChild(ldui.NewFormButton("Start", func() {
		s.game.clickSound.Play()
		s.startRequested = true
	}))
	root.AddChild(ldui.NewFormButton("Quit", func() {
		s.game.clickSound.Play()
		s.quitRequested = true
	}))

	nameInput.Focus(true)

	s.ui = &ebitenui.UI{Container: root}
	return engine.None()
}

func (s *menuState) OnUpdate(ctx *engine.Context) engine.Transition {
	s.ui.Update()

	if s.quitRequested {
		return engine.Pop()
	}
	if s.startRequested {
		s.startRequested = false

		var save demoSave
		if err := ctx.LoadData(&save); err != nil && !errors.Is(err, storage.ErrNotFound) {
			log.Warn("Failed to load save data: %v", err)
		}
		save.Name = s.name
		if err := ctx.SetData(save); err != nil {
			log.Error("Failed to save player name: %v", err)
		}

		return engine.Set(newPlayState(s.game))
	}
	return engine.None()
}

func (s *menuState) Draw(ctx *engine.Context) {
	ctx.Surface().SetFillColor(color.NRGBA{R: 24, G: 28, B: 40, A: 255})
	ctx.Surface().Fill()

	size := ctx.Surface().Size()
	s.title.Draw(ctx, vec.V(0, -size.Y()/2+ctx.Rem(5)), color.White)

	s.ui.Draw(ctx.Surface().Screen())
}
