package rpc // import "go-uiohook.org/rpc"

import (
	"github.com/golang/protobuf/ptypes"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"

	"go-uiohook.org/event"
	"go-uiohook.org/rpc/proto/types"
)

// MarshalEvent converts ev to its protobuf representation.
func MarshalEvent(ev *event.Event) (*types.Event, error) {
	if ev == nil {
		return nil, grpc.Errorf(codes.InvalidArgument, "event is nil")
	}

	t, err := ptypes.TimestampProto(ev.Time)
	if err != nil {
		return nil, err
	}

	out := &types.Event{
		Kind: uint32(ev.Kind),
		Time: t,
		Mask: uint32(ev.Mask),
		Mode: uint32(ev.Mode),
	}

	switch {
	case ev.Kind.IsKeyboard():
		out.Data = &types.Event_Keyboard{
			Keyboard: &types.Keyboard{
				Keycode: uint32(ev.Keyboard.Keycode),
				Rawcode: uint32(ev.Keyboard.Rawcode),
				Keychar: uint32(ev.Keyboard.Keychar),
			},
		}
	case ev.Kind.IsMouse():
		out.Data = &types.Event_Mouse{
			Mouse: &types.Mouse{
				Button: uint32(ev.Mouse.Button),
				Clicks: uint32(ev.Mouse.Clicks),
				X:      int32(ev.Mouse.X),
				Y:      int32(ev.Mouse.Y),
			},
		}
	case ev.Kind == event.MouseWheel:
		out.Data = &types.Event_Wheel{
			Wheel: &types.Wheel{
				Clicks:    uint32(ev.Wheel.Clicks),
				X:         int32(ev.Wheel.X),
				Y:         int32(ev.Wheel.Y),
				Kind:      uint32(ev.Wheel.Kind),
				Amount:    uint32(ev.Wheel.Amount),
				Rotation:  int32(ev.Wheel.Rotation),
				Direction: uint32(ev.Wheel.Direction),
			},
		}
	}

	return out, nil
}

// UnmarshalEvent converts in back to an event.Event.
func UnmarshalEvent(in *types.Event) (*event.Event, error) {
	if in == nil {
		return nil, grpc.Errorf(codes.InvalidArgument, "event is nil")
	}

	t, err := ptypes.Timestamp(in.GetTime())
	if err != nil {
		return nil, err
	}

	ev := &event.Event{
		Kind: event.Kind(in.GetKind()),
		Time: t,
		Mask: event.Mask(in.GetMask()),
		Mode: event.Mode(in.GetMode()),
	}

	switch data := in.GetData().(type) {
	case *types.Event_Keyboard:
		ev.Keyboard = event.Keyboard{
			Keycode: event.Key(data.Keyboard.GetKeycode()),
			Rawcode: uint16(data.Keyboard.GetRawcode()),
			Keychar: uint16(data.Keyboard.GetKeychar()),
		}
	case *types.Event_Mouse:
		ev.Mouse = event.Mouse{
			Button: event.MouseButton(data.Mouse.GetButton()),
			Clicks: uint16(data.Mouse.GetClicks()),
			X:      int16(data.Mouse.GetX()),
			Y:      int16(data.Mouse.GetY()),
		}
	case *types.Event_Wheel:
		ev.Wheel = event.Wheel{
			Clicks:    uint16(data.Wheel.GetClicks()),
			X:         int16(data.Wheel.GetX()),
			Y:         int16(data.Wheel.GetY()),
			Kind:      event.ScrollKind(data.Wheel.GetKind()),
			Amount:    uint16(data.Wheel.GetAmount()),
			Rotation:  int16(data.Wheel.GetRotation()),
			Direction: event.ScrollDirection(data.Wheel.GetDirection()),
		}
	case nil:
		// Control events carry no payload.
	default:
		return nil, grpc.Errorf(codes.InvalidArgument, "%T payloads are not supported", data)
	}

	return ev, nil
}
