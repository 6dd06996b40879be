package event // import "go-uiohook.org/event"

// The constructors in this file create synthetic events suitable for
// hook.Post. Time, mask and the reserved flag of a posted event are assigned
// by the operating system; anything set here besides the kind and payload is
// ignored on the way out.

// KeyPress returns a synthetic key press event for key k.
func KeyPress(k Key) *Event {
	return newKeyEvent(KeyPressed, k)
}

// KeyRelease returns a synthetic key release event for key k.
func KeyRelease(k Key) *Event {
	return newKeyEvent(KeyReleased, k)
}

// KeyTap returns a press event followed by a release event for key k.
// Posting both in order simulates one key stroke.
func KeyTap(k Key) []*Event {
	return []*Event{KeyPress(k), KeyRelease(k)}
}

func newKeyEvent(kind Kind, k Key) *Event {
	return &Event{
		Kind: kind,
		Mode: Synthetic,
		Keyboard: Keyboard{
			Keycode: k,
			Rawcode: uint16(k),
			Keychar: uint16(k),
		},
	}
}

// MousePress returns a synthetic button press event at the given coordinates.
func MousePress(b MouseButton, x, y int16) *Event {
	return newMouseEvent(MousePressed, b, x, y)
}

// MouseRelease returns a synthetic button release event at the given
// coordinates.
func MouseRelease(b MouseButton, x, y int16) *Event {
	return newMouseEvent(MouseReleased, b, x, y)
}

// MouseClick returns a press event followed by a release event, simulating a
// full click of button b.
func MouseClick(b MouseButton, x, y int16) []*Event {
	return []*Event{MousePress(b, x, y), MouseRelease(b, x, y)}
}

// MouseMove returns a synthetic motion event without any button held.
func MouseMove(x, y int16) *Event {
	return newMouseEvent(MouseMoved, NoButton, x, y)
}

// MouseDrag returns a synthetic drag event. Windows has no native drag event;
// posting a press, a move and a release achieves the same effect there.
func MouseDrag(b MouseButton, x, y int16) *Event {
	return newMouseEvent(MouseDragged, b, x, y)
}

func newMouseEvent(kind Kind, b MouseButton, x, y int16) *Event {
	clicks := uint16(1)
	if b == NoButton {
		clicks = 0
	}
	return &Event{
		Kind: kind,
		Mode: Synthetic,
		Mouse: Mouse{
			Button: b,
			Clicks: clicks,
			X:      x,
			Y:      y,
		},
	}
}

// Scroll returns a synthetic vertical unit scroll event. A negative rotation
// scrolls up, a positive one down.
func Scroll(amount uint16, rotation int16, x, y int16) *Event {
	return &Event{
		Kind: MouseWheel,
		Mode: Synthetic,
		Wheel: Wheel{
			X:         x,
			Y:         y,
			Kind:      UnitScroll,
			Amount:    amount,
			Rotation:  rotation,
			Direction: VerticalScroll,
		},
	}
}
