package engine

import (
	"github.com/cbodonnell/ldengine/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// stack holds the game states, bottom first.
type stack struct {
	states []State
}

func (s *stack) top() State {
	return s.states[len(s.states)-1]
}

func (s *stack) empty() bool {
	return len(s.states) == 0
}

// apply runs a transition to completion: the state entered or exited by one
// transition may itself yield the next.
func (s *stack) apply(ctx *Context, t Transition) error {
	for !t.IsNone() {
		switch t.kind {
		case transitionSet:
			s.states[len(s.states)-1] = t.state
			t = t.state.OnEnter(ctx)
		case transitionPush:
			s.states = append(s.states, t.state)
			t = t.state.OnEnter(ctx)
		case transitionPop:
			popped := s.top()
			s.states = s.states[:len(s.states)-1]
			next := popped.OnExit(ctx)
			if s.empty() && next.kind != transitionPush {
				// The last state left without a replacement: quit.
				return ebiten.Termination
			}
			t = next
		}
	}
	return nil
}

// tick feeds queued events to the top state, stopping at the first event
// that yields a transition; with the queue drained, the top state updates.
func (s *stack) tick(ctx *Context, queue *input.Queue) error {
	var t Transition
	for {
		e := queue.Pop()
		if e == nil {
			t = s.top().OnUpdate(ctx)
			break
		}
		if et := s.top().OnEvent(ctx, e); !et.IsNone() {
			t = et
			break
		}
	}
	return s.apply(ctx, t)
}
