package hook // import "go-uiohook.org/hook"

import (
	"errors"
	"fmt"
)

// ErrAlreadyRunning is returned by Start and StartBlocking when this process
// already runs a hook. libuiohook supports a single hook per process.
var ErrAlreadyRunning = errors.New("hook is already running")

// Error is a non-zero status code returned by the native library. The codes
// mirror the UIOHOOK_ERROR_* constants; which of them can occur depends on
// the platform.
type Error int

var errorMessages = map[Error]string{
	0x01: "unspecified failure",
	0x02: "failed to allocate memory",

	0x20: "failed to open X11 display",
	0x21: "unable to locate the XRecord extension",
	0x22: "unable to allocate XRecord range",
	0x23: "unable to allocate XRecord context",
	0x24: "failed to enable XRecord context",
	0x25: "could not retrieve XRecord context",

	0x30: "failed to register the native Windows hook",
	0x31: "failed to retrieve the module handle for the native Windows hook",

	0x40: "access for assistive devices is disabled",
	0x41: "failed to create the apple event port",
	0x42: "failed to create the apple run loop source",
	0x43: "failed to acquire the apple run loop",
	0x44: "failed to create the apple run loop observer",
}

func (e Error) Error() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}
	return fmt.Sprintf("unknown uiohook error 0x%02x", int(e))
}

// statusError converts a native status code to an error, nil for
// UIOHOOK_SUCCESS.
func statusError(status int) error {
	if status == 0 {
		return nil
	}
	return Error(status)
}
