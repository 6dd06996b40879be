package hook // import "go-uiohook.org/hook"

// #cgo CPPFLAGS: -I${SRCDIR}
// #cgo LDFLAGS: -ldl
// #include <stdlib.h>
// #include "uiohook.h"
//
// screen_data *hook_create_screen_info_wrapper(unsigned char *count);
// long int hook_get_auto_repeat_rate_wrapper(void);
// long int hook_get_auto_repeat_delay_wrapper(void);
// long int hook_get_pointer_acceleration_multiplier_wrapper(void);
// long int hook_get_pointer_acceleration_threshold_wrapper(void);
// long int hook_get_pointer_sensitivity_wrapper(void);
// long int hook_get_multi_click_time_wrapper(void);
import "C"

import "unsafe"

// The functions in this file expose the system's input related settings as
// libuiohook reports them. A negative native return means the platform could
// not provide the value; that is reported as ok == false.

// Screen describes one monitor attached to the system.
type Screen struct {
	Number        uint8
	X, Y          int16
	Width, Height uint16
}

// Screens returns the monitors attached to the system, or nil if they could
// not be determined.
func Screens() []Screen {
	var count C.uchar
	ptr := C.hook_create_screen_info_wrapper(&count)
	if ptr == nil || count == 0 {
		return nil
	}
	defer C.free(unsafe.Pointer(ptr))

	screens := make([]Screen, int(count))
	for i := range screens {
		// The equivalent of C's `ptr[i]`.
		s := (*C.screen_data)(unsafe.Pointer(uintptr(unsafe.Pointer(ptr)) + uintptr(C.sizeof_screen_data)*uintptr(i)))
		screens[i] = Screen{
			Number: uint8(s.number),
			X:      int16(s.x),
			Y:      int16(s.y),
			Width:  uint16(s.width),
			Height: uint16(s.height),
		}
	}
	return screens
}

// AutoRepeatRate returns the keyboard auto repeat rate.
func AutoRepeatRate() (int, bool) {
	return prop(C.hook_get_auto_repeat_rate_wrapper())
}

// AutoRepeatDelay returns the delay before keyboard auto repeat starts.
func AutoRepeatDelay() (int, bool) {
	return prop(C.hook_get_auto_repeat_delay_wrapper())
}

// PointerAccelerationMultiplier returns the pointer acceleration multiplier.
func PointerAccelerationMultiplier() (int, bool) {
	return prop(C.hook_get_pointer_acceleration_multiplier_wrapper())
}

// PointerAccelerationThreshold returns the pointer acceleration threshold.
func PointerAccelerationThreshold() (int, bool) {
	return prop(C.hook_get_pointer_acceleration_threshold_wrapper())
}

// PointerSensitivity returns the pointer sensitivity.
func PointerSensitivity() (int, bool) {
	return prop(C.hook_get_pointer_sensitivity_wrapper())
}

// MultiClickTime returns the maximum interval between the clicks of a double
// click, in milliseconds.
func MultiClickTime() (int, bool) {
	return prop(C.hook_get_multi_click_time_wrapper())
}

func prop(v C.long) (int, bool) {
	if v < 0 {
		return 0, false
	}
	return int(v), true
}
