package engine

import "github.com/cbodonnell/ldengine/pkg/input"

// State is one entry on the game's state stack. The top state receives
// events and updates; every state may draw.
type State interface {
	// OnEnter is called when the state becomes the top of the stack,
	// either by Push or Set.
	OnEnter(ctx *Context) Transition
	// OnEvent is called for each queued input event, oldest first, until
	// one returns a non-None transition.
	OnEvent(ctx *Context, e input.Event) Transition
	// OnUpdate is called once per tick after all events are handled.
	OnUpdate(ctx *Context) Transition
	// OnExit is called when the state is popped. Returning Push from
	// OnExit replaces this state even when it was the last one.
	OnExit(ctx *Context) Transition
	// Draw renders the state. States below the top are drawn first.
	Draw(ctx *Context)
}

// BaseState provides no-op implementations of every State method.
type BaseState struct{}

func (BaseState) OnEnter(*Context) Transition {
	return None()
}

func (BaseState) OnEvent(*Context, input.Event) Transition {
	return None()
}

func (BaseState) OnUpdate(*Context) Transition {
	return None()
}

func (BaseState) OnExit(*Context) Transition {
	return None()
}

func (BaseState) Draw(*Context) {}
