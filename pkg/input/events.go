package input

import "github.com/cbodonnell/ldengine/pkg/vec"

// MouseButton identifies a mouse button using browser button codes.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonBack
	MouseButtonForward
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	case MouseButtonBack:
		return "back"
	case MouseButtonForward:
		return "forward"
	}
	return "unknown"
}

// MouseButtonFromCode maps a browser button code to a MouseButton.
func MouseButtonFromCode(code int) (MouseButton, bool) {
	if code < 0 || code > int(MouseButtonForward) {
		return 0, false
	}
	return MouseButton(code), true
}

// MouseButtonsFromBits maps a browser buttons bitmap to the set of held buttons.
func MouseButtonsFromBits(bits uint16) []MouseButton {
	var buttons []MouseButton
	if bits&1 != 0 {
		buttons = append(buttons, MouseButtonLeft)
	}
	if bits&2 != 0 {
		buttons = append(buttons, MouseButtonRight)
	}
	if bits&4 != 0 {
		buttons = append(buttons, MouseButtonMiddle)
	}
	if bits&8 != 0 {
		buttons = append(buttons, MouseButtonBack)
	}
	if bits&16 != 0 {
		buttons = append(buttons, MouseButtonForward)
	}
	return buttons
}

// KeyMeta carries the modifier state of a keyboard event.
type KeyMeta struct {
	Repeat bool
	Alt    bool
	Shift  bool
	Ctrl   bool
	Meta   bool
}

// Event is a discrete input event in surface coordinates.
type Event interface {
	isEvent()
}

type MouseDown struct {
	Pos    vec.V2
	Button MouseButton
}

type MouseUp struct {
	Pos    vec.V2
	Button MouseButton
}

type MouseMove struct {
	Pos     vec.V2
	Buttons []MouseButton
}

type Wheel struct {
	Pos     vec.V2
	Delta   vec.V2
	Buttons []MouseButton
}

type TouchStart struct {
	Touches []vec.V2
}

type TouchMove struct {
	Touches []vec.V2
}

type TouchEnd struct {
	Touches []vec.V2
}

type KeyDown struct {
	Code int
	Key  string
	Meta KeyMeta
}

type KeyUp struct {
	Code int
	Key  string
	Meta KeyMeta
}

func (MouseDown) isEvent()  {}
func (MouseUp) isEvent()    {}
func (MouseMove) isEvent()  {}
func (Wheel) isEvent()      {}
func (TouchStart) isEvent() {}
func (TouchMove) isEvent()  {}
func (TouchEnd) isEvent()   {}
func (KeyDown) isEvent()    {}
func (KeyUp) isEvent()      {}

// IsMouse reports whether e is a mouse event.
func IsMouse(e Event) bool {
	switch e.(type) {
	case MouseDown, MouseUp, MouseMove, Wheel:
		return true
	}
	return false
}

// IsKey reports whether e is a keyboard event.
func IsKey(e Event) bool {
	switch e.(type) {
	case KeyDown, KeyUp:
		return true
	}
	return false
}

// IsTouch reports whether e is a touch event.
func IsTouch(e Event) bool {
	switch e.(type) {
	case TouchStart, TouchMove, TouchEnd:
		return true
	}
	return false
}
