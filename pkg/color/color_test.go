package color

import (
	"testing"
)

func restore(t *testing.T) {
	enabled, overridden := state.enabled.Load(), state.overridden.Load()
	t.Cleanup(func() {
		state.enabled.Store(enabled)
		state.overridden.Store(overridden)
	})
}

func TestEnableDisable(t *testing.T) {
	restore(t)

	Enable()
	if !Enabled() {
		t.Error("expected colors to be enabled")
	}
	Disable()
	if Enabled() {
		t.Error("expected colors to be disabled")
	}
}

func TestFormatters_Disabled(t *testing.T) {
	restore(t)
	Disable()

	for _, got := range []string{Success("ok"), Error("ok"), Type("ok"), Header("ok"), Dim("ok")} {
		if got != "ok" {
			t.Errorf("expected plain text when disabled, got %q", got)
		}
	}
	if got := Errorf("%d errors", 2); got != "2 errors" {
		t.Errorf("unexpected Errorf output %q", got)
	}
}

func TestFormatters_Enabled(t *testing.T) {
	restore(t)
	Enable()

	if got := Error("bad"); got != red+"bad"+reset {
		t.Errorf("unexpected colored output %q", got)
	}
	if got := Type("spin"); got != cyan+"spin"+reset {
		t.Errorf("unexpected colored output %q", got)
	}
}

func TestInit_FlagDisables(t *testing.T) {
	restore(t)
	Enable()

	Init(true)
	if Enabled() {
		t.Error("expected --no-color to disable colors")
	}
}
