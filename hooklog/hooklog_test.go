package hooklog_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"

	"go-uiohook.org/hook"
	"go-uiohook.org/hooklog"
)

func TestLogrus(t *testing.T) {
	cases := []struct {
		severity hook.Severity
		want     logrus.Level
	}{
		{hook.SeverityDebug, logrus.DebugLevel},
		{hook.SeverityInfo, logrus.InfoLevel},
		{hook.SeverityWarn, logrus.WarnLevel},
		{hook.SeverityError, logrus.ErrorLevel},
	}

	for _, c := range cases {
		t.Run(c.severity.String(), func(t *testing.T) {
			logger, recorded := logrustest.NewNullLogger()
			logger.SetLevel(logrus.DebugLevel)

			l := hooklog.Logrus(logger)

			if got := l.Log(c.severity, "hook: test message"); !got {
				t.Errorf("Log(%v) = %v, want true", c.severity, got)
			}

			entries := recorded.AllEntries()
			if len(entries) != 1 {
				t.Fatalf("recorded %d entries, want 1", len(entries))
			}
			if entries[0].Level != c.want {
				t.Errorf("entries[0].Level = %v, want %v", entries[0].Level, c.want)
			}
			if entries[0].Message != "hook: test message" {
				t.Errorf("entries[0].Message = %q, want %q", entries[0].Message, "hook: test message")
			}
		})
	}
}

func TestLogrusUnknownSeverity(t *testing.T) {
	logger, recorded := logrustest.NewNullLogger()

	l := hooklog.Logrus(logger)

	if got := l.Log(hook.Severity(99), "hook: oddball"); got {
		t.Errorf("Log(99) = %v, want false", got)
	}
	if entries := recorded.AllEntries(); len(entries) != 0 {
		t.Errorf("recorded %d entries, want 0", len(entries))
	}
}

func TestStd(t *testing.T) {
	var buf bytes.Buffer
	l := hooklog.Std(log.New(&buf, "", 0))

	if got := l.Log(hook.SeverityWarn, "hook: low disk space"); !got {
		t.Errorf("Log() = %v, want true", got)
	}

	if got, want := buf.String(), "[warn] hook: low disk space\n"; got != want {
		t.Errorf("log output = %q, want %q", got, want)
	}
}
