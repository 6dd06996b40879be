package hook_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"go-uiohook.org/hook"
	"go-uiohook.org/hook/fake"
)

// recordingLogger records every message it receives and answers with a fixed
// handled flag.
type recordingLogger struct {
	mu      sync.Mutex
	handled bool
	calls   []logCall
}

type logCall struct {
	Severity hook.Severity
	Message  string
}

func (l *recordingLogger) Log(s hook.Severity, message string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls = append(l.calls, logCall{Severity: s, Message: message})
	return l.handled
}

func (l *recordingLogger) Calls() []logCall {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]logCall(nil), l.calls...)
}

func TestEmitLogWithoutLogger(t *testing.T) {
	defer fake.TearDown()

	if fake.LoggerInstalled() {
		t.Fatal("fake.LoggerInstalled() = true, want false")
	}

	if got := fake.EmitLog(uint(hook.SeverityInfo), "hook: %s (%d)", "startup", 0); got {
		t.Errorf("fake.EmitLog() = %v, want false when no logger is set", got)
	}
}

func TestSetLogger(t *testing.T) {
	cases := []struct {
		title   string
		handled bool
	}{
		{"handled", true},
		{"unhandled", false},
	}

	for _, c := range cases {
		t.Run(c.title, func(t *testing.T) {
			defer fake.TearDown()
			defer hook.SetLogger(nil)

			l := &recordingLogger{handled: c.handled}
			hook.SetLogger(l)

			if !fake.LoggerInstalled() {
				t.Fatal("fake.LoggerInstalled() = false, want true")
			}

			got := fake.EmitLog(uint(hook.SeverityWarn), "hook: %s (%d)", "permission denied", 13)
			if got != c.handled {
				t.Errorf("fake.EmitLog() = %v, want %v", got, c.handled)
			}

			want := []logCall{
				{Severity: hook.SeverityWarn, Message: "hook: permission denied (13)"},
			}
			if calls := l.Calls(); len(calls) != 1 || calls[0] != want[0] {
				t.Errorf("logger received %v, want %v", calls, want)
			}
		})
	}
}

func TestSetLoggerReplaces(t *testing.T) {
	defer fake.TearDown()
	defer hook.SetLogger(nil)

	first := &recordingLogger{handled: true}
	second := &recordingLogger{handled: true}

	hook.SetLogger(first)
	hook.SetLogger(second)

	fake.EmitLog(uint(hook.SeverityInfo), "hook: %s (%d)", "replaced", 0)

	if calls := first.Calls(); len(calls) != 0 {
		t.Errorf("replaced logger received %v, want no messages", calls)
	}
	if calls := second.Calls(); len(calls) != 1 {
		t.Errorf("current logger received %d messages, want 1", len(calls))
	}
}

func TestSetLoggerNil(t *testing.T) {
	defer fake.TearDown()

	l := &recordingLogger{handled: true}
	hook.SetLogger(l)
	hook.SetLogger(nil)

	if fake.LoggerInstalled() {
		t.Error("fake.LoggerInstalled() = true after SetLogger(nil), want false")
	}

	if got := fake.EmitLog(uint(hook.SeverityError), "hook: %s (%d)", "ignored", 0); got {
		t.Errorf("fake.EmitLog() = %v after SetLogger(nil), want false", got)
	}
	if calls := l.Calls(); len(calls) != 0 {
		t.Errorf("uninstalled logger received %v, want no messages", calls)
	}

	// Uninstalling twice is a no-op.
	hook.SetLogger(nil)
	if fake.LoggerInstalled() {
		t.Error("fake.LoggerInstalled() = true after second SetLogger(nil), want false")
	}
}

func TestLoggerSeverityPassThrough(t *testing.T) {
	defer fake.TearDown()
	defer hook.SetLogger(nil)

	l := &recordingLogger{handled: true}
	hook.SetLogger(l)

	// 99 is not an enumerated severity; it still crosses the boundary
	// unmodified.
	severities := []hook.Severity{
		hook.SeverityDebug,
		hook.SeverityInfo,
		hook.SeverityWarn,
		hook.SeverityError,
		hook.Severity(99),
	}
	for _, s := range severities {
		fake.EmitLog(uint(s), "hook: %s (%d)", "level check", int(s))
	}

	calls := l.Calls()
	if len(calls) != len(severities) {
		t.Fatalf("logger received %d messages, want %d", len(calls), len(severities))
	}
	for i, s := range severities {
		if calls[i].Severity != s {
			t.Errorf("calls[%d].Severity = %v, want %v", i, calls[i].Severity, s)
		}
	}
}

func TestLoggerTruncation(t *testing.T) {
	// The bridge formats into a fixed 4096 byte buffer, so 4095 characters
	// plus the terminating NUL is the longest message that survives intact.
	const max = 4095

	cases := []struct {
		length, want int
	}{
		{max - 1, max - 1},
		{max, max},
		{max + 1, max},
		{max + 2, max},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d", c.length), func(t *testing.T) {
			defer fake.TearDown()
			defer hook.SetLogger(nil)

			l := &recordingLogger{handled: true}
			hook.SetLogger(l)

			if got := fake.EmitLog(uint(hook.SeverityDebug), "%s", strings.Repeat("x", c.length), 0); !got {
				t.Errorf("fake.EmitLog() = %v, want true", got)
			}

			calls := l.Calls()
			if len(calls) != 1 {
				t.Fatalf("logger received %d messages, want 1", len(calls))
			}
			if got := len(calls[0].Message); got != c.want {
				t.Errorf("len(message) = %d, want %d", got, c.want)
			}
			if want := strings.Repeat("x", c.want); calls[0].Message != want {
				t.Error("message content differs from the formatted input")
			}
		})
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	defer fake.TearDown()
	defer hook.SetLogger(nil)

	const iterations = 1000

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			fake.EmitLog(uint(hook.SeverityDebug), "hook: %s (%d)", "stress", i)
		}
	}()

	go func() {
		defer wg.Done()
		l := &recordingLogger{handled: true}
		for i := 0; i < iterations; i++ {
			switch i % 3 {
			case 0:
				hook.SetLogger(l)
			case 1:
				hook.SetLogger(&recordingLogger{})
			case 2:
				hook.SetLogger(nil)
			}
		}
	}()

	wg.Wait()
}
