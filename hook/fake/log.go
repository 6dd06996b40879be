package fake // import "go-uiohook.org/hook/fake"

// #cgo CPPFLAGS: -I${SRCDIR}/..
// #include <pthread.h>
// #include <stdbool.h>
// #include <stddef.h>
// #include <stdlib.h>
// #include "uiohook.h"
//
// static pthread_mutex_t logger_mutex = PTHREAD_MUTEX_INITIALIZER;
// static logger_t current_logger = NULL;
//
// void hook_set_logger_proc(logger_t logger_proc) {
//   pthread_mutex_lock(&logger_mutex);
//   current_logger = logger_proc;
//   pthread_mutex_unlock(&logger_mutex);
// }
//
// static logger_t load_logger(void) {
//   pthread_mutex_lock(&logger_mutex);
//   logger_t logger = current_logger;
//   pthread_mutex_unlock(&logger_mutex);
//   return logger;
// }
//
// // emit_log makes the variadic call the native library makes internally
// // when it emits a diagnostic message. Without a registered logger the
// // library would write to its own console sink and report the message as
// // unhandled.
// bool emit_log(unsigned int level, const char *format, const char *str_arg,
//               int int_arg) {
//   logger_t logger = load_logger();
//   if (logger == NULL) {
//     return false;
//   }
//   return (*logger)(level, format, str_arg, int_arg);
// }
//
// int logger_installed(void) {
//   return load_logger() != NULL;
// }
//
// void reset_logger(void) {
//   hook_set_logger_proc(NULL);
// }
import "C"

import "unsafe"

// EmitLog emits one diagnostic message through the registered variadic log
// callback, the way the native library does internally. The format string is
// expanded in C; it may reference strArg with %s and intArg with %d, in that
// order. EmitLog returns the callback's result, or false if no log callback
// is registered.
func EmitLog(level uint, format, strArg string, intArg int) bool {
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))

	cStr := C.CString(strArg)
	defer C.free(unsafe.Pointer(cStr))

	return bool(C.emit_log(C.uint(level), cFormat, cStr, C.int(intArg)))
}

// LoggerInstalled reports whether a log callback is currently registered
// with the fake native library.
func LoggerInstalled() bool {
	return C.logger_installed() != 0
}
