package hook // import "go-uiohook.org/hook"

// #cgo CPPFLAGS: -I${SRCDIR}
// #cgo LDFLAGS: -ldl
// #include "uiohook.h"
//
// void install_logger_bridge(int install);
import "C"

import (
	"fmt"
	"sync/atomic"
)

// Severity is the severity of libuiohook's diagnostic messages. The values
// are the native log_level constants and are passed through unmodified.
type Severity uint

const (
	SeverityDebug Severity = iota + 1
	SeverityInfo
	SeverityWarn
	SeverityError
)

// String returns the name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", uint(s))
	}
}

// Logger receives libuiohook's diagnostic messages. Log returns true when
// the message was handled, which suppresses the native library's own console
// output for that message.
//
// Log is called from the native hook thread, not from the goroutine that
// installed the logger. Implementations must be safe for concurrent use and
// must return quickly.
type Logger interface {
	Log(s Severity, message string) bool
}

// LoggerFunc adapts an ordinary function to the Logger interface.
type LoggerFunc func(s Severity, message string) bool

// Log calls f.
func (f LoggerFunc) Log(s Severity, message string) bool {
	return f(s, message)
}

// noopLogger leaves every message to the native library's own handling.
var noopLogger Logger = LoggerFunc(func(Severity, string) bool {
	return false
})

// currentLogger always holds a callable Logger. It is swapped atomically so
// that SetLogger may race with message delivery on the hook thread.
var currentLogger atomic.Pointer[Logger]

func init() {
	currentLogger.Store(&noopLogger)
}

// SetLogger installs l as the receiver of libuiohook's diagnostic messages.
// Passing nil uninstalls the current logger and restores the native
// library's default handling. There is a single process-wide logger;
// consecutive calls replace it.
func SetLogger(l Logger) {
	if l == nil {
		currentLogger.Store(&noopLogger)
		C.install_logger_bridge(0)
		return
	}
	currentLogger.Store(&l)
	C.install_logger_bridge(1)
}

//export wrap_logger_callback
func wrap_logger_callback(level C.uint, message *C.char) C.int {
	l := *currentLogger.Load()
	if l.Log(Severity(level), C.GoString(message)) {
		return 1
	}
	return 0
}
