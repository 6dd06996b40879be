package hook_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"go-uiohook.org/event"
	"go-uiohook.org/hook"
	"go-uiohook.org/hook/fake"
)

// capture collects the events a registered handler receives. Handlers run on
// the control loop; reading the captured events is safe once the hook has
// stopped.
type capture struct {
	mu     sync.Mutex
	events []*event.Event
}

func (c *capture) handle(ev *event.Event) {
	if ev.Kind == event.HookEnabled || ev.Kind == event.HookDisabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *capture) Events() []*event.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*event.Event(nil), c.events...)
}

// ignoreTime makes cmp skip the rebased timestamps; TestEventTime checks
// them separately.
var ignoreTime = cmpopts.IgnoreFields(event.Event{}, "Time")

func TestStartStop(t *testing.T) {
	defer fake.TearDown()

	var c capture
	id := hook.Register(c.handle)
	defer hook.Unregister(id)

	h, err := hook.Start()
	if err != nil {
		t.Fatalf("hook.Start() = %v", err)
	}

	fake.EmitKeyboard(event.KeyPressed, event.MaskLeftControl, event.KeyC, 46, 0)
	fake.EmitMouse(event.MouseMoved, 0, event.NoButton, 0, 10, 20)

	if err := h.Stop(); err != nil {
		t.Fatalf("h.Stop() = %v", err)
	}

	want := []*event.Event{
		{
			Kind: event.KeyPressed,
			Mask: event.MaskLeftControl,
			Keyboard: event.Keyboard{
				Keycode: event.KeyC,
				Rawcode: 46,
			},
		},
		{
			Kind: event.MouseMoved,
			Mouse: event.Mouse{
				Button: event.NoButton,
				X:      10,
				Y:      20,
			},
		},
	}
	if diff := cmp.Diff(want, c.Events(), ignoreTime); diff != "" {
		t.Errorf("captured events differ (+got/-want):\n%s", diff)
	}
}

func TestStartTwice(t *testing.T) {
	defer fake.TearDown()

	h, err := hook.Start()
	if err != nil {
		t.Fatalf("hook.Start() = %v", err)
	}
	defer h.Stop()

	if _, err := hook.Start(); err != hook.ErrAlreadyRunning {
		t.Errorf("second hook.Start() = %v, want ErrAlreadyRunning", err)
	}
	if err := hook.StartBlocking(); err != hook.ErrAlreadyRunning {
		t.Errorf("hook.StartBlocking() = %v, want ErrAlreadyRunning", err)
	}
}

func TestStopNotRunning(t *testing.T) {
	defer fake.TearDown()

	if err := hook.Stop(); err == nil {
		t.Error("hook.Stop() succeeded without a running hook, expected an error")
	}
}

func TestStartBlocking(t *testing.T) {
	defer fake.TearDown()

	var c capture
	id := hook.Register(func(ev *event.Event) {
		switch ev.Kind {
		case event.HookEnabled:
			fake.EmitKeyboard(event.KeyPressed, 0, event.KeyEscape, 1, 0)
		case event.KeyPressed:
			c.handle(ev)
			hook.Stop()
		}
	})
	defer hook.Unregister(id)

	if err := hook.StartBlocking(); err != nil {
		t.Fatalf("hook.StartBlocking() = %v", err)
	}

	events := c.Events()
	if len(events) != 1 || events[0].Keyboard.Keycode != event.KeyEscape {
		t.Errorf("captured %v, want a single escape key press", events)
	}
}

func TestUnregister(t *testing.T) {
	id := hook.Register(func(*event.Event) {})

	if got := hook.Unregister(id); !got {
		t.Errorf("hook.Unregister(%d) = %v, want true", id, got)
	}
	if got := hook.Unregister(id); got {
		t.Errorf("second hook.Unregister(%d) = %v, want false", id, got)
	}
}

func TestPost(t *testing.T) {
	defer fake.TearDown()

	var c capture
	id := hook.Register(c.handle)
	defer hook.Unregister(id)

	h, err := hook.Start()
	if err != nil {
		t.Fatalf("hook.Start() = %v", err)
	}

	if err := hook.Post(event.KeyPress(event.KeyA)); err != nil {
		t.Fatalf("hook.Post() = %v", err)
	}

	// A hardware event of the same kind right after must not inherit the
	// synthetic marker.
	fake.EmitKeyboard(event.KeyPressed, 0, event.KeyB, 48, 0)

	if err := h.Stop(); err != nil {
		t.Fatalf("h.Stop() = %v", err)
	}

	events := c.Events()
	if len(events) != 2 {
		t.Fatalf("captured %d events, want 2", len(events))
	}

	posted := events[0]
	if posted.Keyboard.Keycode != event.KeyA {
		t.Errorf("posted.Keyboard.Keycode = %v, want %v", posted.Keyboard.Keycode, event.KeyA)
	}
	if !posted.IsSynthetic() {
		t.Error("posted.IsSynthetic() = false, want true")
	}

	hardware := events[1]
	if hardware.IsSynthetic() {
		t.Error("hardware.IsSynthetic() = true, want false")
	}
}

func TestPostControlEvent(t *testing.T) {
	defer fake.TearDown()

	for _, kind := range []event.Kind{event.HookEnabled, event.HookDisabled} {
		if err := hook.Post(&event.Event{Kind: kind}); err == nil {
			t.Errorf("hook.Post(%v) succeeded, expected an error", kind)
		}
	}
}

func TestReserveEvents(t *testing.T) {
	defer fake.TearDown()

	hook.ReserveEvents(func(ev *event.Event) bool {
		return ev.Kind == event.KeyPressed
	})
	defer hook.ReserveEvents(nil)

	var c capture
	id := hook.Register(c.handle)
	defer hook.Unregister(id)

	h, err := hook.Start()
	if err != nil {
		t.Fatalf("hook.Start() = %v", err)
	}

	fake.EmitKeyboard(event.KeyPressed, 0, event.KeyA, 30, 0)
	fake.EmitMouse(event.MouseMoved, 0, event.NoButton, 0, 1, 1)

	if err := h.Stop(); err != nil {
		t.Fatalf("h.Stop() = %v", err)
	}

	events := c.Events()
	if len(events) != 2 {
		t.Fatalf("captured %d events, want 2", len(events))
	}
	if !events[0].IsReserved() {
		t.Errorf("key event %v not reserved, want reserved", events[0])
	}
	if events[1].IsReserved() {
		t.Errorf("mouse event %v reserved, want unreserved", events[1])
	}
}

func TestEventTime(t *testing.T) {
	defer fake.TearDown()

	var c capture
	id := hook.Register(c.handle)
	defer hook.Unregister(id)

	h, err := hook.Start()
	if err != nil {
		t.Fatalf("hook.Start() = %v", err)
	}

	fake.EmitKeyboard(event.KeyPressed, 0, event.KeyA, 30, 0)
	fake.EmitKeyboard(event.KeyReleased, 0, event.KeyA, 30, 0)

	if err := h.Stop(); err != nil {
		t.Fatalf("h.Stop() = %v", err)
	}

	events := c.Events()
	if len(events) != 2 {
		t.Fatalf("captured %d events, want 2", len(events))
	}
	if events[0].Time.IsZero() {
		t.Error("events[0].Time is zero, want a rebased wall clock time")
	}
	if events[1].Time.Before(events[0].Time) {
		t.Errorf("events[1].Time = %v is before events[0].Time = %v",
			events[1].Time, events[0].Time)
	}
}

func TestWheelEvent(t *testing.T) {
	defer fake.TearDown()

	var c capture
	id := hook.Register(c.handle)
	defer hook.Unregister(id)

	h, err := hook.Start()
	if err != nil {
		t.Fatalf("hook.Start() = %v", err)
	}

	want := event.Wheel{
		Clicks:    1,
		X:         320,
		Y:         240,
		Kind:      event.UnitScroll,
		Amount:    3,
		Rotation:  -1,
		Direction: event.VerticalScroll,
	}
	fake.EmitWheel(event.MaskShift, want)

	if err := h.Stop(); err != nil {
		t.Fatalf("h.Stop() = %v", err)
	}

	events := c.Events()
	if len(events) != 1 {
		t.Fatalf("captured %d events, want 1", len(events))
	}
	if diff := cmp.Diff(want, events[0].Wheel); diff != "" {
		t.Errorf("wheel data differs (+got/-want):\n%s", diff)
	}
	if events[0].Mask != event.MaskShift {
		t.Errorf("events[0].Mask = %v, want %v", events[0].Mask, event.MaskShift)
	}
}
