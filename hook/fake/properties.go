package fake // import "go-uiohook.org/hook/fake"

// #cgo CPPFLAGS: -I${SRCDIR}/..
// #include <stdlib.h>
// #include <string.h>
// #include "uiohook.h"
//
// static long auto_repeat_rate = 40;
// static long auto_repeat_delay = 500;
// static long pointer_acceleration_multiplier = 4;
// static long pointer_acceleration_threshold = 2;
// static long pointer_sensitivity = 96;
// static long multi_click_time = 500;
//
// long int hook_get_auto_repeat_rate(void) { return auto_repeat_rate; }
// long int hook_get_auto_repeat_delay(void) { return auto_repeat_delay; }
// long int hook_get_pointer_acceleration_multiplier(void) {
//   return pointer_acceleration_multiplier;
// }
// long int hook_get_pointer_acceleration_threshold(void) {
//   return pointer_acceleration_threshold;
// }
// long int hook_get_pointer_sensitivity(void) { return pointer_sensitivity; }
// long int hook_get_multi_click_time(void) { return multi_click_time; }
//
// void set_auto_repeat_rate(long v) { auto_repeat_rate = v; }
// void set_auto_repeat_delay(long v) { auto_repeat_delay = v; }
// void set_pointer_acceleration_multiplier(long v) {
//   pointer_acceleration_multiplier = v;
// }
// void set_pointer_acceleration_threshold(long v) {
//   pointer_acceleration_threshold = v;
// }
// void set_pointer_sensitivity(long v) { pointer_sensitivity = v; }
// void set_multi_click_time(long v) { multi_click_time = v; }
//
// static const screen_data fake_screens[] = {
//     {.number = 0, .x = 0, .y = 0, .width = 1920, .height = 1080},
//     {.number = 1, .x = 1920, .y = 0, .width = 1280, .height = 1024},
// };
//
// // The caller frees the returned array, like with the real library.
// screen_data *hook_create_screen_info(unsigned char *count) {
//   screen_data *screens = malloc(sizeof(fake_screens));
//   if (screens == NULL) {
//     *count = 0;
//     return NULL;
//   }
//   memcpy(screens, fake_screens, sizeof(fake_screens));
//   *count = sizeof(fake_screens) / sizeof(fake_screens[0]);
//   return screens;
// }
//
// void reset_properties(void) {
//   auto_repeat_rate = 40;
//   auto_repeat_delay = 500;
//   pointer_acceleration_multiplier = 4;
//   pointer_acceleration_threshold = 2;
//   pointer_sensitivity = 96;
//   multi_click_time = 500;
// }
import "C"

// SetAutoRepeatRate sets the value returned by the fake
// hook_get_auto_repeat_rate(). A negative value marks it unavailable.
func SetAutoRepeatRate(v int) { C.set_auto_repeat_rate(C.long(v)) }

// SetAutoRepeatDelay sets the value returned by the fake
// hook_get_auto_repeat_delay().
func SetAutoRepeatDelay(v int) { C.set_auto_repeat_delay(C.long(v)) }

// SetPointerAccelerationMultiplier sets the value returned by the fake
// hook_get_pointer_acceleration_multiplier().
func SetPointerAccelerationMultiplier(v int) {
	C.set_pointer_acceleration_multiplier(C.long(v))
}

// SetPointerAccelerationThreshold sets the value returned by the fake
// hook_get_pointer_acceleration_threshold().
func SetPointerAccelerationThreshold(v int) {
	C.set_pointer_acceleration_threshold(C.long(v))
}

// SetPointerSensitivity sets the value returned by the fake
// hook_get_pointer_sensitivity().
func SetPointerSensitivity(v int) { C.set_pointer_sensitivity(C.long(v)) }

// SetMultiClickTime sets the value returned by the fake
// hook_get_multi_click_time().
func SetMultiClickTime(v int) { C.set_multi_click_time(C.long(v)) }
