// Package event defines data types representing the keyboard and mouse
// events captured or posted by the hook.
package event // import "go-uiohook.org/event"

import (
	"fmt"
	"time"
)

// Kind enumerates the event types delivered by the native hook. The numeric
// values match the native event_type enumeration.
type Kind uint8

const (
	HookEnabled Kind = iota + 1
	HookDisabled
	KeyTyped
	KeyPressed
	KeyReleased
	MouseClicked
	MousePressed
	MouseReleased
	MouseMoved
	MouseDragged
	MouseWheel
)

// String returns a human readable name for the event kind.
func (k Kind) String() string {
	switch k {
	case HookEnabled:
		return "hook-enabled"
	case HookDisabled:
		return "hook-disabled"
	case KeyTyped:
		return "key-typed"
	case KeyPressed:
		return "key-pressed"
	case KeyReleased:
		return "key-released"
	case MouseClicked:
		return "mouse-clicked"
	case MousePressed:
		return "mouse-pressed"
	case MouseReleased:
		return "mouse-released"
	case MouseMoved:
		return "mouse-moved"
	case MouseDragged:
		return "mouse-dragged"
	case MouseWheel:
		return "mouse-wheel"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// IsKeyboard reports whether events of this kind carry keyboard data.
func (k Kind) IsKeyboard() bool {
	return k == KeyTyped || k == KeyPressed || k == KeyReleased
}

// IsMouse reports whether events of this kind carry mouse data.
func (k Kind) IsMouse() bool {
	return k >= MouseClicked && k <= MouseDragged
}

// Mask represents the modifier keys and mouse buttons held while an event was
// generated. Two events that are part of one combination, such as Ctrl-C,
// share the same mask. The values match the native MASK_* constants.
type Mask uint16

const (
	MaskLeftShift Mask = 1 << iota
	MaskLeftControl
	MaskLeftMeta
	MaskLeftAlt
	MaskRightShift
	MaskRightControl
	MaskRightMeta
	MaskRightAlt
	MaskButton1
	MaskButton2
	MaskButton3
	MaskButton4
	MaskButton5
	MaskNumLock
	MaskCapsLock
	MaskScrollLock
)

const (
	MaskShift   = MaskLeftShift | MaskRightShift
	MaskControl = MaskLeftControl | MaskRightControl
	MaskMeta    = MaskLeftMeta | MaskRightMeta
	MaskAlt     = MaskLeftAlt | MaskRightAlt
)

// Mode carries the flags stored in the native event's reserved field.
type Mode uint16

const (
	// Reserved marks an event that will not be propagated to the rest of
	// the system. It can only be set through hook.ReserveEvents.
	Reserved Mode = 1 << iota
	// Synthetic marks an event that was created by this process rather
	// than by the user. The flag is assigned with a small synchronization
	// scheme on arrival and is best effort, not a guarantee.
	Synthetic
)

// Keyboard holds the data of key events. Not every field is populated for
// every kind: a KeyPressed event carries Keycode and Rawcode, a KeyTyped
// event carries Rawcode and Keychar, and a KeyReleased event carries all
// three.
type Keyboard struct {
	// Keycode identifies the physical key, labeled after a US layout.
	Keycode Key
	// Rawcode is the platform key code for the same key.
	Rawcode uint16
	// Keychar is the unicode code point the key produced, which depends
	// on the active layout.
	Keychar uint16
}

// Mouse holds the data of mouse button and motion events.
type Mouse struct {
	// Button is NoButton for pure motion events.
	Button MouseButton
	// Clicks counts consecutive clicks, 2 for a double click.
	Clicks uint16
	X      int16
	Y      int16
}

// Wheel holds the data of scroll events.
type Wheel struct {
	Clicks uint16
	X      int16
	Y      int16
	// Kind is set by the platform to unit or block scrolling.
	Kind ScrollKind
	// Amount is the platform's scroll granularity for this event.
	Amount uint16
	// Rotation is negative when scrolling up or left and positive when
	// scrolling down or right.
	Rotation  int16
	Direction ScrollDirection
}

// Event is one captured or synthetic input event. Exactly one of the
// Keyboard, Mouse and Wheel fields carries data, selected by Kind; the other
// two hold their zero values.
type Event struct {
	Kind Kind
	// Time is the moment the event was generated. The native hook reports
	// system uptime; the binding rebases it onto the unix epoch.
	Time time.Time
	Mask Mask
	Mode Mode

	Keyboard Keyboard
	Mouse    Mouse
	Wheel    Wheel
}

// IsSynthetic reports whether the event was created by this process.
func (e *Event) IsSynthetic() bool {
	return e.Mode&Synthetic != 0
}

// IsReserved reports whether the event was withheld from the rest of the
// system.
func (e *Event) IsReserved() bool {
	return e.Mode&Reserved != 0
}

// String returns a short description of the event.
func (e *Event) String() string {
	switch {
	case e.Kind.IsKeyboard():
		return fmt.Sprintf("%v key=%v", e.Kind, e.Keyboard.Keycode)
	case e.Kind.IsMouse():
		return fmt.Sprintf("%v button=%d x=%d y=%d", e.Kind, e.Mouse.Button, e.Mouse.X, e.Mouse.Y)
	case e.Kind == MouseWheel:
		return fmt.Sprintf("%v rotation=%d x=%d y=%d", e.Kind, e.Wheel.Rotation, e.Wheel.X, e.Wheel.Y)
	default:
		return e.Kind.String()
	}
}
