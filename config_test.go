package ariatabs

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestConfigDefaults(t *testing.T) {
	rc := Config{}.resolve()

	if rc.strict {
		t.Error("default should be forgiving mode")
	}
	if rc.activation != ActivationManual {
		t.Errorf("activation = %q, want %q", rc.activation, ActivationManual)
	}
	if rc.orientation != OrientationHorizontal {
		t.Errorf("orientation = %q, want %q", rc.orientation, OrientationHorizontal)
	}
	if !rc.loop {
		t.Error("loop should default to true")
	}
	if rc.idPrefix != "tab" {
		t.Errorf("idPrefix = %q, want %q", rc.idPrefix, "tab")
	}
	if !rc.announce {
		t.Error("announcements should default to on")
	}
	if rc.logger == nil {
		t.Error("logger should never be nil after resolution")
	}
	if rc.onChange == nil {
		t.Error("onChange should never be nil after resolution")
	}
	rc.onChange(0, nil) // default must be a safe no-op
}

func TestConfigLoopNormalization(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"garbage", true},
	}

	for _, tt := range tests {
		t.Run("loop="+tt.in, func(t *testing.T) {
			rc := Config{Loop: tt.in}.resolve()
			if rc.loop != tt.want {
				t.Errorf("Loop %q resolved to %v, want %v", tt.in, rc.loop, tt.want)
			}
		})
	}
}

func TestConfigOverrides(t *testing.T) {
	called := false
	rc := Config{
		Strict:               true,
		Activation:           ActivationAuto,
		Orientation:          OrientationVertical,
		Loop:                 "false",
		IDPrefix:             "settings",
		DisableAnnouncements: true,
		OnChange:             func(int, *goquery.Selection) { called = true },
	}.resolve()

	if !rc.strict || rc.activation != ActivationAuto || rc.orientation != OrientationVertical {
		t.Errorf("resolved = %+v, overrides not applied", rc)
	}
	if rc.loop {
		t.Error("loop = true, want false")
	}
	if rc.idPrefix != "settings" {
		t.Errorf("idPrefix = %q, want %q", rc.idPrefix, "settings")
	}
	if rc.announce {
		t.Error("announce = true, want false")
	}
	rc.onChange(0, nil)
	if !called {
		t.Error("custom OnChange was not kept")
	}
}

func TestConfigUnrecognizedEnumsFallBack(t *testing.T) {
	rc := Config{Activation: "eager", Orientation: "diagonal"}.resolve()
	if rc.activation != ActivationManual {
		t.Errorf("activation = %q, want fallback %q", rc.activation, ActivationManual)
	}
	if rc.orientation != OrientationHorizontal {
		t.Errorf("orientation = %q, want fallback %q", rc.orientation, OrientationHorizontal)
	}
}

func TestConfigFromAttrs(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div id="w" data-tabs-activation="auto" data-tabs-orientation="vertical" data-tabs-loop="false"></div>`))
	if err != nil {
		t.Fatal(err)
	}

	cfg := ConfigFromAttrs(doc.Find("#w"))
	if cfg.Activation != ActivationAuto {
		t.Errorf("Activation = %q, want %q", cfg.Activation, ActivationAuto)
	}
	if cfg.Orientation != OrientationVertical {
		t.Errorf("Orientation = %q, want %q", cfg.Orientation, OrientationVertical)
	}
	if cfg.Loop != "false" {
		t.Errorf("Loop = %q, want %q", cfg.Loop, "false")
	}
}

func TestConfigFromAttrsAbsent(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<div id="w"></div>`))
	if err != nil {
		t.Fatal(err)
	}

	cfg := ConfigFromAttrs(doc.Find("#w"))
	if cfg.Activation != "" || cfg.Orientation != "" || cfg.Loop != "" {
		t.Errorf("absent attributes should leave Config zero, got %+v", cfg)
	}
}
