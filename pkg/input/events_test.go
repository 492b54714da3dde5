package input

import (
	"testing"

	"github.com/cbodonnell/ldengine/pkg/vec"
	"github.com/stretchr/testify/assert"
)

func TestMouseButtonFromCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want MouseButton
		ok   bool
	}{
		{name: "left", code: 0, want: MouseButtonLeft, ok: true},
		{name: "middle", code: 1, want: MouseButtonMiddle, ok: true},
		{name: "right", code: 2, want: MouseButtonRight, ok: true},
		{name: "back", code: 3, want: MouseButtonBack, ok: true},
		{name: "forward", code: 4, want: MouseButtonForward, ok: true},
		{name: "out of range", code: 5, ok: false},
		{name: "negative", code: -1, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MouseButtonFromCode(tt.code)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMouseButtonsFromBits(t *testing.T) {
	assert.Empty(t, MouseButtonsFromBits(0))
	assert.Equal(t, []MouseButton{MouseButtonLeft}, MouseButtonsFromBits(1))
	// The buttons bitmap orders right before middle.
	assert.Equal(t, []MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle}, MouseButtonsFromBits(1|2|4))
	assert.Equal(t, []MouseButton{MouseButtonBack, MouseButtonForward}, MouseButtonsFromBits(8|16))
}

func TestEventClassification(t *testing.T) {
	pos := vec.V(1, 2)

	assert.True(t, IsMouse(MouseDown{Pos: pos, Button: MouseButtonLeft}))
	assert.True(t, IsMouse(Wheel{Pos: pos}))
	assert.False(t, IsMouse(KeyDown{}))

	assert.True(t, IsKey(KeyUp{}))
	assert.False(t, IsKey(TouchEnd{}))

	assert.True(t, IsTouch(TouchStart{Touches: []vec.V2{pos}}))
	assert.False(t, IsTouch(MouseMove{Pos: pos}))
}

func TestQueueOrderingAndBounds(t *testing.T) {
	q := NewQueueWithSize(2)
	q.Push(KeyDown{Code: 1})
	q.Push(KeyDown{Code: 2})
	q.Push(KeyDown{Code: 3}) // evicts code 1

	assert.Equal(t, 2, q.Size())
	assert.Equal(t, KeyDown{Code: 2}, q.Pop())
	assert.Equal(t, KeyDown{Code: 3}, q.Pop())
	assert.Nil(t, q.Pop())
}

func TestQueueDrain(t *testing.T) {
	q := NewQueue()
	q.Push(KeyDown{Code: 1})
	q.Push(KeyUp{Code: 1})

	events := q.Drain()
	assert.Len(t, events, 2)
	assert.Equal(t, 0, q.Size())
	assert.Equal(t, KeyDown{Code: 1}, events[0])

	q.Push(KeyDown{Code: 2})
	q.Clear()
	assert.Equal(t, 0, q.Size())
}
