package ariatabs

import (
	"log/slog"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// Activation modes: whether arrow-key movement changes the selection
// or only moves focus.
const (
	// ActivationAuto selects the tab that receives keyboard focus.
	ActivationAuto = "auto"

	// ActivationManual moves focus only; the previously selected panel
	// stays visible until a separate activation gesture (click, or an
	// Enter/Space binding wired by the caller). This is the default.
	ActivationManual = "manual"
)

// Tablist orientations, controlling which arrow keys navigate.
const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
)

const defaultIDPrefix = "tab"

// verticalClass is the styling hook added to vertical tablists in
// forgiving mode.
const verticalClass = "ariatabs-vertical"

// Config controls one widget instance. The zero value is usable: every
// field has a concrete default filled in at construction time, so the
// resolved configuration never carries absent values.
type Config struct {
	// Strict selects validate-only reconciliation. Instead of
	// repairing missing ARIA structure, construction fails when a
	// paired tab or panel lacks its role or id.
	Strict bool

	// Activation is ActivationAuto or ActivationManual (default
	// manual). Unrecognized values fall back to manual.
	Activation string

	// Orientation is OrientationHorizontal (default) or
	// OrientationVertical.
	Orientation string

	// Loop keeps the markup-level string form ("true"/"false", default
	// "true"). It is normalized to a native bool during resolution and
	// never compared as a string past that point.
	Loop string

	// OnChange is invoked after every actual selection change with the
	// new index and its tab element. Never called for the initial
	// selection or for reselecting the current tab.
	OnChange func(index int, tab *goquery.Selection)

	// IDPrefix seeds identifiers generated in forgiving mode.
	// Defaults to "tab".
	IDPrefix string

	// DisableAnnouncements turns off the live-region side effect.
	// Announcements are on by default.
	DisableAnnouncements bool

	// Logger receives setup errors and runtime warnings. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Announcer delivers selection-change messages to assistive
	// technology. Defaults to a LiveRegionAnnouncer over the
	// container's document.
	Announcer Announcer
}

// resolvedConfig is the immutable form held by a controller. String
// flags are normalized, callbacks are never nil.
type resolvedConfig struct {
	strict      bool
	activation  string
	orientation string
	loop        bool
	onChange    func(int, *goquery.Selection)
	idPrefix    string
	announce    bool
	logger      *slog.Logger
	announcer   Announcer
}

func (c Config) resolve() resolvedConfig {
	rc := resolvedConfig{
		strict:      c.Strict,
		activation:  ActivationManual,
		orientation: OrientationHorizontal,
		loop:        true,
		onChange:    func(int, *goquery.Selection) {},
		idPrefix:    defaultIDPrefix,
		announce:    !c.DisableAnnouncements,
		logger:      c.Logger,
		announcer:   c.Announcer,
	}
	if c.Activation == ActivationAuto {
		rc.activation = ActivationAuto
	}
	if c.Orientation == OrientationVertical {
		rc.orientation = OrientationVertical
	}
	if c.Loop != "" {
		if v, err := strconv.ParseBool(c.Loop); err == nil {
			rc.loop = v
		}
	}
	if c.OnChange != nil {
		rc.onChange = c.OnChange
	}
	if c.IDPrefix != "" {
		rc.idPrefix = c.IDPrefix
	}
	if rc.logger == nil {
		rc.logger = slog.Default()
	}
	return rc
}

// ConfigFromAttrs reads element-level configuration overrides from a
// container: data-tabs-activation, data-tabs-orientation, and
// data-tabs-loop. Used by the Registry bootstrap; direct Init callers
// can use it to honor the same markup contract.
func ConfigFromAttrs(sel *goquery.Selection) Config {
	return mergeAttrConfig(Config{}, sel)
}

// mergeAttrConfig overlays element-level attribute overrides onto base.
func mergeAttrConfig(base Config, sel *goquery.Selection) Config {
	if v := attrValue(sel, "data-tabs-activation"); v != "" {
		base.Activation = v
	}
	if v := attrValue(sel, "data-tabs-orientation"); v != "" {
		base.Orientation = v
	}
	if v := attrValue(sel, "data-tabs-loop"); v != "" {
		base.Loop = v
	}
	return base
}
