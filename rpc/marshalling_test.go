package rpc_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"go-uiohook.org/event"
	"go-uiohook.org/rpc"
)

func TestMarshalEvent(t *testing.T) {
	cases := []struct {
		title string
		event *event.Event
	}{
		{
			title: "keyboard",
			event: &event.Event{
				Kind: event.KeyPressed,
				Time: time.Unix(1500000000, 123000000).UTC(),
				Mask: event.MaskLeftControl | event.MaskLeftShift,
				Keyboard: event.Keyboard{
					Keycode: event.KeyA,
					Rawcode: 30,
				},
			},
		},
		{
			title: "mouse",
			event: &event.Event{
				Kind: event.MousePressed,
				Time: time.Unix(1500000001, 0).UTC(),
				Mode: event.Synthetic,
				Mouse: event.Mouse{
					Button: event.LeftButton,
					Clicks: 2,
					X:      640,
					Y:      -12,
				},
			},
		},
		{
			title: "wheel",
			event: &event.Event{
				Kind: event.MouseWheel,
				Time: time.Unix(1500000002, 500000000).UTC(),
				Wheel: event.Wheel{
					Clicks:    1,
					X:         100,
					Y:         200,
					Kind:      event.UnitScroll,
					Amount:    3,
					Rotation:  -1,
					Direction: event.VerticalScroll,
				},
			},
		},
		{
			title: "control",
			event: &event.Event{
				Kind: event.HookEnabled,
				Time: time.Unix(1500000003, 0).UTC(),
			},
		},
	}

	for _, c := range cases {
		t.Run(c.title, func(t *testing.T) {
			pbEvent, err := rpc.MarshalEvent(c.event)
			if err != nil {
				t.Fatalf("MarshalEvent(%v) = %v", c.event, err)
			}

			got, err := rpc.UnmarshalEvent(pbEvent)
			if err != nil {
				t.Fatalf("UnmarshalEvent(%v) = %v", pbEvent, err)
			}

			if diff := cmp.Diff(c.event, got); diff != "" {
				t.Errorf("event differs after round trip (+got/-want):\n%s", diff)
			}
		})
	}
}

func TestMarshalEvent_Fields(t *testing.T) {
	ev := &event.Event{
		Kind: event.KeyReleased,
		Time: time.Unix(1500000000, 750000000).UTC(),
		Mask: event.MaskLeftAlt,
		Keyboard: event.Keyboard{
			Keycode: event.KeyEscape,
			Rawcode: 1,
			Keychar: 0x1b,
		},
	}

	pbEvent, err := rpc.MarshalEvent(ev)
	if err != nil {
		t.Fatalf("MarshalEvent(%v) = %v", ev, err)
	}

	if got, want := pbEvent.GetKind(), uint32(event.KeyReleased); got != want {
		t.Errorf("pbEvent.GetKind() = %d, want %d", got, want)
	}
	if got, want := pbEvent.GetTime().GetSeconds(), int64(1500000000); got != want {
		t.Errorf("pbEvent.GetTime().GetSeconds() = %d, want %d", got, want)
	}
	if got, want := pbEvent.GetTime().GetNanos(), int32(750000000); got != want {
		t.Errorf("pbEvent.GetTime().GetNanos() = %d, want %d", got, want)
	}
	if got, want := pbEvent.GetKeyboard().GetKeycode(), uint32(event.KeyEscape); got != want {
		t.Errorf("pbEvent.GetKeyboard().GetKeycode() = %d, want %d", got, want)
	}
	if pbEvent.GetMouse() != nil {
		t.Errorf("pbEvent.GetMouse() = %v, want nil", pbEvent.GetMouse())
	}
}

func TestMarshalEvent_Nil(t *testing.T) {
	if _, err := rpc.MarshalEvent(nil); err == nil {
		t.Error("MarshalEvent(nil) succeeded, expected an error")
	}

	if _, err := rpc.UnmarshalEvent(nil); err == nil {
		t.Error("UnmarshalEvent(nil) succeeded, expected an error")
	}
}
