package hook_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"go-uiohook.org/hook"
	"go-uiohook.org/hook/fake"
)

func TestProperties(t *testing.T) {
	cases := []struct {
		title string
		set   func(int)
		get   func() (int, bool)
		want  int
	}{
		{"AutoRepeatRate", fake.SetAutoRepeatRate, hook.AutoRepeatRate, 40},
		{"AutoRepeatDelay", fake.SetAutoRepeatDelay, hook.AutoRepeatDelay, 500},
		{"PointerAccelerationMultiplier", fake.SetPointerAccelerationMultiplier, hook.PointerAccelerationMultiplier, 4},
		{"PointerAccelerationThreshold", fake.SetPointerAccelerationThreshold, hook.PointerAccelerationThreshold, 2},
		{"PointerSensitivity", fake.SetPointerSensitivity, hook.PointerSensitivity, 96},
		{"MultiClickTime", fake.SetMultiClickTime, hook.MultiClickTime, 500},
	}

	for _, c := range cases {
		t.Run(c.title, func(t *testing.T) {
			defer fake.TearDown()

			if got, ok := c.get(); !ok || got != c.want {
				t.Errorf("%s() = (%d, %v), want (%d, true)", c.title, got, ok, c.want)
			}

			c.set(123)
			if got, ok := c.get(); !ok || got != 123 {
				t.Errorf("%s() = (%d, %v) after update, want (123, true)", c.title, got, ok)
			}

			// Negative values mean the platform cannot provide the
			// setting.
			c.set(-1)
			if got, ok := c.get(); ok || got != 0 {
				t.Errorf("%s() = (%d, %v) for an unavailable setting, want (0, false)", c.title, got, ok)
			}
		})
	}
}

func TestScreens(t *testing.T) {
	defer fake.TearDown()

	want := []hook.Screen{
		{Number: 0, X: 0, Y: 0, Width: 1920, Height: 1080},
		{Number: 1, X: 1920, Y: 0, Width: 1280, Height: 1024},
	}
	if diff := cmp.Diff(want, hook.Screens()); diff != "" {
		t.Errorf("hook.Screens() differs (+got/-want):\n%s", diff)
	}
}
