package engine

type transitionKind int

const (
	transitionNone transitionKind = iota
	transitionSet
	transitionPush
	transitionPop
)

// Transition tells the engine how to change the state stack. The zero value
// leaves the stack unchanged.
type Transition struct {
	kind  transitionKind
	state State
}

// None leaves the state stack unchanged.
func None() Transition {
	return Transition{}
}

// Set replaces the top of the state stack.
func Set(s State) Transition {
	return Transition{kind: transitionSet, state: s}
}

// Push pushes a state onto the stack.
func Push(s State) Transition {
	return Transition{kind: transitionPush, state: s}
}

// Pop removes the top of the stack. Popping the last state quits the game.
func Pop() Transition {
	return Transition{kind: transitionPop}
}

// IsNone reports whether the transition leaves the stack unchanged.
func (t Transition) IsNone() bool {
	return t.kind == transitionNone
}

func (t Transition) String() string {
	switch t.kind {
	case transitionNone:
		return "None"
	case transitionSet:
		return "Set"
	case transitionPush:
		return "Push"
	case transitionPop:
		return "Pop"
	}
	return "Unknown"
}
