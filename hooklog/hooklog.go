// Package hooklog connects the hook's diagnostic log callback to common Go
// logging libraries.
//
// The adapters report every message they forward as handled, which keeps the
// native library from also writing it to the console:
//
//	hook.SetLogger(hooklog.Logrus(logrus.StandardLogger()))
package hooklog // import "go-uiohook.org/hooklog"

import (
	"log"

	"github.com/sirupsen/logrus"

	"go-uiohook.org/hook"
)

// Logrus returns a logger that forwards diagnostic messages to l at the
// matching logrus level. Messages with a severity outside the native
// enumeration are reported as unhandled.
func Logrus(l logrus.FieldLogger) hook.Logger {
	return hook.LoggerFunc(func(s hook.Severity, message string) bool {
		switch s {
		case hook.SeverityDebug:
			l.Debug(message)
		case hook.SeverityInfo:
			l.Info(message)
		case hook.SeverityWarn:
			l.Warn(message)
		case hook.SeverityError:
			l.Error(message)
		default:
			return false
		}
		return true
	})
}

// Std returns a logger that writes diagnostic messages to l, one line per
// message, prefixed with the severity name.
func Std(l *log.Logger) hook.Logger {
	return hook.LoggerFunc(func(s hook.Severity, message string) bool {
		l.Printf("[%s] %s", s, message)
		return true
	})
}
