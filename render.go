package ariatabs

import (
	"context"
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// SkeletonTab describes one trigger/panel pair for Skeleton.
type SkeletonTab struct {
	// Label is the trigger text, HTML-escaped on output.
	Label string

	// Content renders the panel body. Nil leaves the panel empty.
	Content templ.Component
}

// SkeletonConfig configures Skeleton output.
type SkeletonConfig struct {
	// IDPrefix seeds tab and panel ids (default "tab").
	IDPrefix string

	// Orientation is horizontal (default) or vertical.
	Orientation string

	// Selected is the initially selected index. Out-of-range values
	// fall back to 0.
	Selected int

	Tabs []SkeletonTab
}

// Skeleton returns a templ component emitting a fully-marked-up tabs
// widget: container, tablist, one trigger button per tab, and one
// panel per tab, with ids, relations, and dynamic state in place.
//
// The emitted markup passes strict-mode validation unchanged, and the
// container carries data-component="tabs" so Registry.Mount picks it
// up. Use it from layouts the same way as any templ component:
//
//	@ariatabs.Skeleton(ariatabs.SkeletonConfig{
//	    IDPrefix: "settings",
//	    Tabs: []ariatabs.SkeletonTab{{Label: "General"}, {Label: "Billing"}},
//	})
func Skeleton(cfg SkeletonConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		prefix := cfg.IDPrefix
		if prefix == "" {
			prefix = defaultIDPrefix
		}
		orientation := cfg.Orientation
		if orientation != OrientationVertical {
			orientation = OrientationHorizontal
		}
		selected := cfg.Selected
		if selected < 0 || selected >= len(cfg.Tabs) {
			selected = 0
		}

		if _, err := fmt.Fprintf(w,
			`<div data-component="tabs" data-tabs-orientation=%q>`, orientation); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<div role="tablist" aria-orientation=%q>`, orientation); err != nil {
			return err
		}
		for i, tab := range cfg.Tabs {
			sel := i == selected
			if _, err := fmt.Fprintf(w,
				`<button type="button" role="tab" id="%s-%d" aria-controls="%s-panel-%d" aria-selected="%t" tabindex="%s">%s</button>`,
				prefix, i, prefix, i, sel, tabIndexValue(sel), html.EscapeString(tab.Label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		for i, tab := range cfg.Tabs {
			sel := i == selected
			hidden := ""
			if !sel {
				hidden = " hidden"
			}
			if _, err := fmt.Fprintf(w,
				`<div role="tabpanel" id="%s-panel-%d" aria-labelledby="%s-%d"%s>`,
				prefix, i, prefix, i, hidden); err != nil {
				return err
			}
			if tab.Content != nil {
				if err := tab.Content.Render(ctx, w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</div>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// TablistAttrs returns the attributes for a hand-written tablist
// element. Authors wiring their own markup spread these into their
// templates instead of using Skeleton:
//
//	<nav { ariatabs.TablistAttrs(ariatabs.OrientationVertical)... }>
func TablistAttrs(orientation string) templ.Attributes {
	if orientation != OrientationVertical {
		orientation = OrientationHorizontal
	}
	return templ.Attributes{
		"role":             "tablist",
		"aria-orientation": orientation,
	}
}

// TabAttrs returns the attributes for the index-th hand-written tab
// trigger, paired by id convention with PanelAttrs.
func TabAttrs(idPrefix string, index int, selected bool) templ.Attributes {
	if idPrefix == "" {
		idPrefix = defaultIDPrefix
	}
	return templ.Attributes{
		"role":          "tab",
		"id":            fmt.Sprintf("%s-%d", idPrefix, index),
		"aria-controls": fmt.Sprintf("%s-panel-%d", idPrefix, index),
		"aria-selected": strconv.FormatBool(selected),
		"tabindex":      tabIndexValue(selected),
	}
}

// PanelAttrs returns the attributes for the index-th hand-written
// panel, paired by id convention with TabAttrs.
func PanelAttrs(idPrefix string, index int, selected bool) templ.Attributes {
	if idPrefix == "" {
		idPrefix = defaultIDPrefix
	}
	attrs := templ.Attributes{
		"role":            "tabpanel",
		"id":              fmt.Sprintf("%s-panel-%d", idPrefix, index),
		"aria-labelledby": fmt.Sprintf("%s-%d", idPrefix, index),
	}
	if !selected {
		attrs["hidden"] = true
	}
	return attrs
}

func tabIndexValue(selected bool) string {
	if selected {
		return "0"
	}
	return "-1"
}
