package input

import (
	"github.com/cbodonnell/ldengine/pkg/vec"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// keyRepeatDelayTicks is the number of ticks a key is held before
	// synthetic repeat events start.
	keyRepeatDelayTicks = 30
	// keyRepeatIntervalTicks is the number of ticks between synthetic
	// repeat events.
	keyRepeatIntervalTicks = 4
)

var ebitenMouseButtons = map[MouseButton]ebiten.MouseButton{
	MouseButtonLeft:    ebiten.MouseButtonLeft,
	MouseButtonMiddle:  ebiten.MouseButtonMiddle,
	MouseButtonRight:   ebiten.MouseButtonRight,
	MouseButtonBack:    ebiten.MouseButton3,
	MouseButtonForward: ebiten.MouseButton4,
}

// Poller translates Ebitengine's polled input state into discrete events.
// Positions are reported in surface coordinates (origin at the center of
// the screen, y down). Poll must be called exactly once per tick.
type Poller struct {
	queue *Queue

	halfW, halfH float64

	lastCursor   vec.V2
	cursorKnown  bool
	touchIDs     []ebiten.TouchID
	keys         []ebiten.Key
	lastTouches  []vec.V2
	touchesAlive bool
}

// NewPoller creates a poller feeding the given queue.
func NewPoller(queue *Queue) *Poller {
	return &Poller{queue: queue}
}

// SetViewport sets the logical screen size used to center positions.
func (p *Poller) SetViewport(width, height float64) {
	p.halfW = width / 2
	p.halfH = height / 2
}

// Poll reads the current input state and enqueues events for everything
// that changed since the previous tick.
func (p *Poller) Poll() {
	p.pollMouse()
	p.pollTouches()
	p.pollKeys()
}

func (p *Poller) cursor() vec.V2 {
	x, y := ebiten.CursorPosition()
	return p.toSurface(x, y)
}

func (p *Poller) toSurface(x, y int) vec.V2 {
	return vec.V(float64(x)-p.halfW, float64(y)-p.halfH)
}

func (p *Poller) heldButtons() []MouseButton {
	var held []MouseButton
	for b := MouseButtonLeft; b <= MouseButtonForward; b++ {
		if ebiten.IsMouseButtonPressed(ebitenMouseButtons[b]) {
			held = append(held, b)
		}
	}
	return held
}

func (p *Poller) pollMouse() {
	pos := p.cursor()

	for b := MouseButtonLeft; b <= MouseButtonForward; b++ {
		if inpututil.IsMouseButtonJustPressed(ebitenMouseButtons[b]) {
			p.queue.Push(MouseDown{Pos: pos, Button: b})
		}
		if inpututil.IsMouseButtonJustReleased(ebitenMouseButtons[b]) {
			p.queue.Push(MouseUp{Pos: pos, Button: b})
		}
	}

	if !p.cursorKnown || pos != p.lastCursor {
		p.queue.Push(MouseMove{Pos: pos, Buttons: p.heldButtons()})
		p.lastCursor = pos
		p.cursorKnown = true
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		p.queue.Push(Wheel{Pos: pos, Delta: vec.V(dx, dy), Buttons: p.heldButtons()})
	}
}

func (p *Poller) pollTouches() {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	touches := make([]vec.V2, 0, len(p.touchIDs))
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		touches = append(touches, p.toSurface(x, y))
	}

	switch {
	case len(inpututil.AppendJustPressedTouchIDs(nil)) > 0:
		p.queue.Push(TouchStart{Touches: touches})
	case len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0:
		p.queue.Push(TouchEnd{Touches: touches})
	case p.touchesAlive && len(touches) > 0 && touchesMoved(p.lastTouches, touches):
		p.queue.Push(TouchMove{Touches: touches})
	}

	p.lastTouches = append(p.lastTouches[:0], touches...)
	p.touchesAlive = len(touches) > 0
}

func touchesMoved(prev, cur []vec.V2) bool {
	if len(prev) != len(cur) {
		return true
	}
	for i := range cur {
		if prev[i] != cur[i] {
			return true
		}
	}
	return false
}

func keyMeta(repeat bool) KeyMeta {
	return KeyMeta{
		Repeat: repeat,
		Alt:    ebiten.IsKeyPressed(ebiten.KeyAlt),
		Shift:  ebiten.IsKeyPressed(ebiten.KeyShift),
		Ctrl:   ebiten.IsKeyPressed(ebiten.KeyControl),
		Meta:   ebiten.IsKeyPressed(ebiten.KeyMeta),
	}
}

func (p *Poller) pollKeys() {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		p.queue.Push(KeyDown{Code: int(k), Key: k.String(), Meta: keyMeta(false)})
	}

	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		p.queue.Push(KeyUp{Code: int(k), Key: k.String(), Meta: keyMeta(false)})
	}

	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		d := inpututil.KeyPressDuration(k)
		if d >= keyRepeatDelayTicks && (d-keyRepeatDelayTicks)%keyRepeatIntervalTicks == 0 {
			p.queue.Push(KeyDown{Code: int(k), Key: k.String(), Meta: keyMeta(true)})
		}
	}
}
