package hook // import "go-uiohook.org/hook"

// #cgo CPPFLAGS: -I${SRCDIR}
// #cgo LDFLAGS: -ldl
// #include "uiohook.h"
// #include <dlfcn.h>
// #include <stdarg.h>
// #include <stdbool.h>
// #include <stddef.h>
// #include <stdio.h>
//
// #define LOAD(f)                                                                \
//   if (f##_ptr == NULL) {                                                       \
//     void *hnd = dlopen(NULL, RTLD_LAZY);                                       \
//     f##_ptr = dlsym(hnd, #f);                                                  \
//     dlclose(hnd);                                                              \
//   }
//
// static void (*hook_set_logger_proc_ptr)(logger_t);
// static void (*hook_set_dispatch_proc_ptr)(dispatcher_t);
// static int (*hook_run_ptr)(void);
// static int (*hook_stop_ptr)(void);
// static void (*hook_post_event_ptr)(uiohook_event *const);
// static screen_data *(*hook_create_screen_info_ptr)(unsigned char *);
// static long int (*hook_get_auto_repeat_rate_ptr)(void);
// static long int (*hook_get_auto_repeat_delay_ptr)(void);
// static long int (*hook_get_pointer_acceleration_multiplier_ptr)(void);
// static long int (*hook_get_pointer_acceleration_threshold_ptr)(void);
// static long int (*hook_get_pointer_sensitivity_ptr)(void);
// static long int (*hook_get_multi_click_time_ptr)(void);
//
// int hook_run_wrapper(void) {
//   LOAD(hook_run);
//   return (*hook_run_ptr)();
// }
//
// int hook_stop_wrapper(void) {
//   LOAD(hook_stop);
//   return (*hook_stop_ptr)();
// }
//
// void hook_post_event_wrapper(uiohook_event *const ev) {
//   LOAD(hook_post_event);
//   (*hook_post_event_ptr)(ev);
// }
//
// screen_data *hook_create_screen_info_wrapper(unsigned char *count) {
//   LOAD(hook_create_screen_info);
//   return (*hook_create_screen_info_ptr)(count);
// }
//
// long int hook_get_auto_repeat_rate_wrapper(void) {
//   LOAD(hook_get_auto_repeat_rate);
//   return (*hook_get_auto_repeat_rate_ptr)();
// }
//
// long int hook_get_auto_repeat_delay_wrapper(void) {
//   LOAD(hook_get_auto_repeat_delay);
//   return (*hook_get_auto_repeat_delay_ptr)();
// }
//
// long int hook_get_pointer_acceleration_multiplier_wrapper(void) {
//   LOAD(hook_get_pointer_acceleration_multiplier);
//   return (*hook_get_pointer_acceleration_multiplier_ptr)();
// }
//
// long int hook_get_pointer_acceleration_threshold_wrapper(void) {
//   LOAD(hook_get_pointer_acceleration_threshold);
//   return (*hook_get_pointer_acceleration_threshold_ptr)();
// }
//
// long int hook_get_pointer_sensitivity_wrapper(void) {
//   LOAD(hook_get_pointer_sensitivity);
//   return (*hook_get_pointer_sensitivity_ptr)();
// }
//
// long int hook_get_multi_click_time_wrapper(void) {
//   LOAD(hook_get_multi_click_time);
//   return (*hook_get_multi_click_time_ptr)();
// }
//
// // Exported from log.go and hook.go respectively.
// int wrap_logger_callback(unsigned int level, char *message);
// void wrap_dispatch_callback(uiohook_event *ev);
//
// #define LOGGER_BUFFER_SIZE 4096
//
// // libuiohook hands its diagnostics to a variadic callback, a shape a Go
// // function cannot take. This bridge renders the message in C, bounded to
// // LOGGER_BUFFER_SIZE bytes, and forwards the result to the exported Go
// // callback with a fixed signature. A negative vsnprintf return means the
// // message could not be rendered; the Go side is not invoked and the event
// // is reported as unhandled.
// static bool logger_bridge(unsigned int level, const char *format, ...) {
//   char message[LOGGER_BUFFER_SIZE];
//   va_list args;
//   va_start(args, format);
//   int status = vsnprintf(message, sizeof(message), format, args);
//   va_end(args);
//   if (status < 0) {
//     return false;
//   }
//   return wrap_logger_callback(level, message) != 0;
// }
//
// void install_logger_bridge(int install) {
//   LOAD(hook_set_logger_proc);
//   (*hook_set_logger_proc_ptr)(install ? logger_bridge : NULL);
// }
//
// static void dispatch_bridge(uiohook_event *const ev) {
//   wrap_dispatch_callback(ev);
// }
//
// void install_dispatch_bridge(int install) {
//   LOAD(hook_set_dispatch_proc);
//   (*hook_set_dispatch_proc_ptr)(install ? dispatch_bridge : NULL);
// }
//
// // Accessors for the uiohook_event data union, which cgo cannot address
// // directly.
// keyboard_event_data *event_keyboard(uiohook_event *ev) {
//   return &ev->data.keyboard;
// }
//
// mouse_event_data *event_mouse(uiohook_event *ev) {
//   return &ev->data.mouse;
// }
//
// mouse_wheel_event_data *event_wheel(uiohook_event *ev) {
//   return &ev->data.wheel;
// }
//
// void event_set_keyboard(uiohook_event *ev, uint16_t keycode, uint16_t rawcode,
//                         uint16_t keychar) {
//   ev->data.keyboard = (keyboard_event_data){
//       .keycode = keycode,
//       .rawcode = rawcode,
//       .keychar = keychar,
//   };
// }
//
// void event_set_mouse(uiohook_event *ev, uint16_t button, uint16_t clicks,
//                      int16_t x, int16_t y) {
//   ev->data.mouse = (mouse_event_data){
//       .button = button,
//       .clicks = clicks,
//       .x = x,
//       .y = y,
//   };
// }
//
// void event_set_wheel(uiohook_event *ev, uint16_t clicks, int16_t x, int16_t y,
//                      uint8_t type, uint16_t amount, int16_t rotation,
//                      uint8_t direction) {
//   ev->data.wheel = (mouse_wheel_event_data){
//       .clicks = clicks,
//       .x = x,
//       .y = y,
//       .type = type,
//       .amount = amount,
//       .rotation = rotation,
//       .direction = direction,
//   };
// }
import "C"
