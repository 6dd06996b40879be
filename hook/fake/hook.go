package fake // import "go-uiohook.org/hook/fake"

// #cgo CPPFLAGS: -I${SRCDIR}/..
// #include <pthread.h>
// #include <stddef.h>
// #include <string.h>
// #include "uiohook.h"
//
// static pthread_mutex_t hook_mutex = PTHREAD_MUTEX_INITIALIZER;
// static pthread_cond_t hook_cond = PTHREAD_COND_INITIALIZER;
// static dispatcher_t current_dispatcher = NULL;
// static int hook_running = 0;
// static int stop_requested = 0;
// static uint64_t fake_uptime = 0;
//
// void hook_set_dispatch_proc(dispatcher_t dispatch_proc) {
//   pthread_mutex_lock(&hook_mutex);
//   current_dispatcher = dispatch_proc;
//   pthread_mutex_unlock(&hook_mutex);
// }
//
// static void dispatch(uiohook_event *ev) {
//   pthread_mutex_lock(&hook_mutex);
//   dispatcher_t dispatcher = current_dispatcher;
//   ev->time = ++fake_uptime;
//   pthread_mutex_unlock(&hook_mutex);
//
//   if (dispatcher != NULL) {
//     (*dispatcher)(ev);
//   }
// }
//
// // hook_run blocks like the real library does, delivering the enabled
// // event on the way in and the disabled event on the way out.
// int hook_run(void) {
//   pthread_mutex_lock(&hook_mutex);
//   if (hook_running) {
//     pthread_mutex_unlock(&hook_mutex);
//     return UIOHOOK_FAILURE;
//   }
//   hook_running = 1;
//   stop_requested = 0;
//   pthread_mutex_unlock(&hook_mutex);
//
//   uiohook_event enabled;
//   memset(&enabled, 0, sizeof(enabled));
//   enabled.type = EVENT_HOOK_ENABLED;
//   dispatch(&enabled);
//
//   pthread_mutex_lock(&hook_mutex);
//   while (!stop_requested) {
//     pthread_cond_wait(&hook_cond, &hook_mutex);
//   }
//   hook_running = 0;
//   pthread_mutex_unlock(&hook_mutex);
//
//   uiohook_event disabled;
//   memset(&disabled, 0, sizeof(disabled));
//   disabled.type = EVENT_HOOK_DISABLED;
//   dispatch(&disabled);
//
//   return UIOHOOK_SUCCESS;
// }
//
// int hook_stop(void) {
//   pthread_mutex_lock(&hook_mutex);
//   if (!hook_running) {
//     pthread_mutex_unlock(&hook_mutex);
//     return UIOHOOK_FAILURE;
//   }
//   stop_requested = 1;
//   pthread_cond_broadcast(&hook_cond);
//   pthread_mutex_unlock(&hook_mutex);
//   return UIOHOOK_SUCCESS;
// }
//
// void hook_post_event(uiohook_event *const ev) {
//   // The operating system assigns its own metadata when it echoes a
//   // posted event back to the hook.
//   uiohook_event echoed = *ev;
//   echoed.reserved = 0;
//   dispatch(&echoed);
// }
//
// void emit_keyboard_event(int type, uint16_t mask, uint16_t keycode,
//                          uint16_t rawcode, uint16_t keychar) {
//   uiohook_event ev;
//   memset(&ev, 0, sizeof(ev));
//   ev.type = (event_type)type;
//   ev.mask = mask;
//   ev.data.keyboard = (keyboard_event_data){
//       .keycode = keycode,
//       .rawcode = rawcode,
//       .keychar = keychar,
//   };
//   dispatch(&ev);
// }
//
// void emit_mouse_event(int type, uint16_t mask, uint16_t button,
//                       uint16_t clicks, int16_t x, int16_t y) {
//   uiohook_event ev;
//   memset(&ev, 0, sizeof(ev));
//   ev.type = (event_type)type;
//   ev.mask = mask;
//   ev.data.mouse = (mouse_event_data){
//       .button = button,
//       .clicks = clicks,
//       .x = x,
//       .y = y,
//   };
//   dispatch(&ev);
// }
//
// void emit_wheel_event(uint16_t mask, uint16_t clicks, int16_t x, int16_t y,
//                       uint8_t type, uint16_t amount, int16_t rotation,
//                       uint8_t direction) {
//   uiohook_event ev;
//   memset(&ev, 0, sizeof(ev));
//   ev.type = EVENT_MOUSE_WHEEL;
//   ev.mask = mask;
//   ev.data.wheel = (mouse_wheel_event_data){
//       .clicks = clicks,
//       .x = x,
//       .y = y,
//       .type = type,
//       .amount = amount,
//       .rotation = rotation,
//       .direction = direction,
//   };
//   dispatch(&ev);
// }
//
// void reset_hook(void) {
//   hook_stop();
//   pthread_mutex_lock(&hook_mutex);
//   current_dispatcher = NULL;
//   fake_uptime = 0;
//   pthread_mutex_unlock(&hook_mutex);
// }
import "C"

import "go-uiohook.org/event"

// EmitKeyboard delivers a keyboard event through the registered native
// dispatch callback, as if the user had touched the keyboard.
func EmitKeyboard(kind event.Kind, mask event.Mask, key event.Key, rawcode, keychar uint16) {
	C.emit_keyboard_event(C.int(kind), C.uint16_t(mask),
		C.uint16_t(key), C.uint16_t(rawcode), C.uint16_t(keychar))
}

// EmitMouse delivers a mouse button or motion event through the registered
// native dispatch callback.
func EmitMouse(kind event.Kind, mask event.Mask, button event.MouseButton, clicks uint16, x, y int16) {
	C.emit_mouse_event(C.int(kind), C.uint16_t(mask),
		C.uint16_t(button), C.uint16_t(clicks), C.int16_t(x), C.int16_t(y))
}

// EmitWheel delivers a scroll event through the registered native dispatch
// callback.
func EmitWheel(mask event.Mask, w event.Wheel) {
	C.emit_wheel_event(C.uint16_t(mask), C.uint16_t(w.Clicks),
		C.int16_t(w.X), C.int16_t(w.Y), C.uint8_t(w.Kind),
		C.uint16_t(w.Amount), C.int16_t(w.Rotation), C.uint8_t(w.Direction))
}
