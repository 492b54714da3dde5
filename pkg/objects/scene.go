package objects

import (
	"github.com/cbodonnell/ldengine/pkg/engine"
	"github.com/cbodonnell/ldengine/pkg/log"
)

// SceneState is an engine state backed by an object tree. Embed it and
// override the State methods as needed; the embedded behavior walks the
// tree on enter, update, exit and draw.
type SceneState struct {
	engine.BaseState

	Root GameObject
}

func NewSceneState(root GameObject) *SceneState {
	return &SceneState{Root: root}
}

func (s *SceneState) OnEnter(ctx *engine.Context) engine.Transition {
	if err := InitTree(ctx, s.Root); err != nil {
		log.Error("Failed to initialize scene tree: %v", err)
	}
	return engine.None()
}

func (s *SceneState) OnUpdate(ctx *engine.Context) engine.Transition {
	if err := UpdateTree(ctx, s.Root); err != nil {
		log.Error("Failed to update scene tree: %v", err)
	}
	return engine.None()
}

func (s *SceneState) OnExit(ctx *engine.Context) engine.Transition {
	if err := DestroyTree(ctx, s.Root); err != nil {
		log.Error("Failed to destroy scene tree: %v", err)
	}
	return engine.None()
}

func (s *SceneState) Draw(ctx *engine.Context) {
	DrawTree(ctx, s.Root)
}
