package hook // import "go-uiohook.org/hook"

// #cgo CPPFLAGS: -I${SRCDIR}
// #cgo LDFLAGS: -ldl
// #include "uiohook.h"
//
// void hook_post_event_wrapper(uiohook_event *const ev);
// void event_set_keyboard(uiohook_event *ev, uint16_t keycode, uint16_t rawcode,
//                         uint16_t keychar);
// void event_set_mouse(uiohook_event *ev, uint16_t button, uint16_t clicks,
//                      int16_t x, int16_t y);
// void event_set_wheel(uiohook_event *ev, uint16_t clicks, int16_t x, int16_t y,
//                      uint8_t type, uint16_t amount, int16_t rotation,
//                      uint8_t direction);
import "C"

import (
	"fmt"
	"sync"

	"go-uiohook.org/event"
)

// postMu serializes posts so that each posted event's type is stored for
// synthetic detection before the next post overwrites it.
var postMu sync.Mutex

// Post hands the event to the operating system, simulating the user
// producing the same input with the keyboard or mouse. The event comes back
// through the hook like any other input, marked synthetic on a best effort
// basis.
//
// HookEnabled and HookDisabled are control events internal to the library
// and cannot be posted; use Start and Stop instead.
func Post(ev *event.Event) error {
	if ev.Kind == event.HookEnabled || ev.Kind == event.HookDisabled {
		return fmt.Errorf("%v events are control events and cannot be posted", ev.Kind)
	}

	cev := toNative(ev)

	postMu.Lock()
	defer postMu.Unlock()

	synthetic.Store(uint32(ev.Kind))
	C.hook_post_event_wrapper(&cev)
	return nil
}

func toNative(ev *event.Event) C.uiohook_event {
	var cev C.uiohook_event
	cev._type = C.event_type(ev.Kind)
	cev.mask = C.uint16_t(ev.Mask)
	// time and reserved are ignored on the way out; the operating system
	// assigns its own.

	switch {
	case ev.Kind.IsKeyboard():
		C.event_set_keyboard(&cev,
			C.uint16_t(ev.Keyboard.Keycode),
			C.uint16_t(ev.Keyboard.Rawcode),
			C.uint16_t(ev.Keyboard.Keychar))
	case ev.Kind.IsMouse():
		C.event_set_mouse(&cev,
			C.uint16_t(ev.Mouse.Button),
			C.uint16_t(ev.Mouse.Clicks),
			C.int16_t(ev.Mouse.X),
			C.int16_t(ev.Mouse.Y))
	case ev.Kind == event.MouseWheel:
		C.event_set_wheel(&cev,
			C.uint16_t(ev.Wheel.Clicks),
			C.int16_t(ev.Wheel.X),
			C.int16_t(ev.Wheel.Y),
			C.uint8_t(ev.Wheel.Kind),
			C.uint16_t(ev.Wheel.Amount),
			C.int16_t(ev.Wheel.Rotation),
			C.uint8_t(ev.Wheel.Direction))
	}

	return cev
}
