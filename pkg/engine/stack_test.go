package engine

import (
	"testing"

	"github.com/cbodonnell/ldengine/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeState records calls and returns scripted transitions.
type fakeState struct {
	BaseState

	name string

	enter  Transition
	update Transition
	exit   Transition
	event  func(e input.Event) Transition

	log *[]string
}

func (s *fakeState) record(call string) {
	if s.log != nil {
		*s.log = append(*s.log, s.name+"."+call)
	}
}

func (s *fakeState) OnEnter(*Context) Transition {
	s.record("enter")
	t := s.enter
	s.enter = None()
	return t
}

func (s *fakeState) OnEvent(_ *Context, e input.Event) Transition {
	s.record("event")
	if s.event != nil {
		return s.event(e)
	}
	return None()
}

func (s *fakeState) OnUpdate(*Context) Transition {
	s.record("update")
	t := s.update
	s.update = None()
	return t
}

func (s *fakeState) OnExit(*Context) Transition {
	s.record("exit")
	return s.exit
}

func TestApplyPush(t *testing.T) {
	ctx := &Context{}
	a := &fakeState{name: "a"}
	b := &fakeState{name: "b"}
	s := &stack{states: []State{a}}

	require.NoError(t, s.apply(ctx, Push(b)))
	assert.Len(t, s.states, 2)
	assert.Same(t, b, s.top().(*fakeState))
}

func TestApplySetReplacesTop(t *testing.T) {
	ctx := &Context{}
	a := &fakeState{name: "a"}
	b := &fakeState{name: "b"}
	s := &stack{states: []State{a}}

	require.NoError(t, s.apply(ctx, Set(b)))
	assert.Len(t, s.states, 1)
	assert.Same(t, b, s.top().(*fakeState))
}

func TestApplyChainedEnterTransitions(t *testing.T) {
	// Entering b immediately pushes c.
	ctx := &Context{}
	var calls []string
	a := &fakeState{name: "a", log: &calls}
	c := &fakeState{name: "c", log: &calls}
	b := &fakeState{name: "b", log: &calls, enter: Push(c)}
	s := &stack{states: []State{a}}

	require.NoError(t, s.apply(ctx, Push(b)))
	assert.Len(t, s.states, 3)
	assert.Same(t, c, s.top().(*fakeState))
	assert.Equal(t, []string{"b.enter", "c.enter"}, calls)
}

func TestApplyPopCallsExit(t *testing.T) {
	ctx := &Context{}
	var calls []string
	a := &fakeState{name: "a", log: &calls}
	b := &fakeState{name: "b", log: &calls}
	s := &stack{states: []State{a, b}}

	require.NoError(t, s.apply(ctx, Pop()))
	assert.Len(t, s.states, 1)
	assert.Same(t, a, s.top().(*fakeState))
	assert.Equal(t, []string{"b.exit"}, calls)
}

func TestApplyPopLastStateTerminates(t *testing.T) {
	ctx := &Context{}
	a := &fakeState{name: "a"}
	s := &stack{states: []State{a}}

	err := s.apply(ctx, Pop())
	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestApplyPopLastStateWithPushFromExit(t *testing.T) {
	// OnExit pushing a replacement keeps the game alive even when the
	// popped state was the last one.
	ctx := &Context{}
	b := &fakeState{name: "b"}
	a := &fakeState{name: "a", exit: Push(b)}
	s := &stack{states: []State{a}}

	require.NoError(t, s.apply(ctx, Pop()))
	require.Len(t, s.states, 1)
	assert.Same(t, b, s.top().(*fakeState))
}

func TestTickDrainsEventsBeforeUpdate(t *testing.T) {
	ctx := &Context{}
	var calls []string
	a := &fakeState{name: "a", log: &calls}
	s := &stack{states: []State{a}}

	q := input.NewQueue()
	q.Push(input.KeyDown{Code: 1})
	q.Push(input.KeyDown{Code: 2})

	require.NoError(t, s.tick(ctx, q))
	assert.Equal(t, []string{"a.event", "a.event", "a.update"}, calls)
	assert.Equal(t, 0, q.Size())
}

func TestTickEventTransitionShortCircuits(t *testing.T) {
	ctx := &Context{}
	var calls []string
	b := &fakeState{name: "b", log: &calls}
	a := &fakeState{name: "a", log: &calls}
	a.event = func(e input.Event) Transition {
		if kd, ok := e.(input.KeyDown); ok && kd.Code == 2 {
			return Push(b)
		}
		return None()
	}
	s := &stack{states: []State{a}}

	q := input.NewQueue()
	q.Push(input.KeyDown{Code: 1})
	q.Push(input.KeyDown{Code: 2})
	q.Push(input.KeyDown{Code: 3})

	require.NoError(t, s.tick(ctx, q))
	// The transition stops event processing; no OnUpdate this tick and
	// the remaining event stays queued.
	assert.Equal(t, []string{"a.event", "a.event", "b.enter"}, calls)
	assert.Equal(t, 1, q.Size())
	assert.Same(t, b, s.top().(*fakeState))
}
