package ariatabs

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// reconcile is the forgiving setup path: it repairs missing ARIA
// structure on every tab/panel pair and writes the dynamic initial
// state. Roles are written only when absent; identifiers are generated
// only when absent; the controls/labelledby relations are always
// rewritten.
func (c *Controller) reconcile() {
	if attrValue(c.tablist, "role") == "" {
		c.tablist.SetAttr("role", "tablist")
	}
	c.tablist.SetAttr("aria-orientation", c.cfg.orientation)
	if c.cfg.orientation == OrientationVertical {
		c.tablist.AddClass(verticalClass)
	}

	pairs := c.pairCount()
	for i := 0; i < pairs; i++ {
		tab, panel := c.tabs[i], c.panels[i]

		tabID := c.ensureID(tab, i, "")
		panelID := c.ensureID(panel, i, "panel")

		if attrValue(tab, "role") == "" {
			tab.SetAttr("role", "tab")
		}
		tab.SetAttr("aria-controls", panelID)
		if attrValue(panel, "role") == "" {
			panel.SetAttr("role", "tabpanel")
		}
		panel.SetAttr("aria-labelledby", tabID)

		// A panel with nothing focusable inside becomes a tab stop
		// itself; otherwise focus lands on its focusable children.
		if !hasFocusableContent(panel) {
			panel.SetAttr("tabindex", "0")
		}

		initPairState(tab, panel)
	}
}

// validateStrict is the strict setup path: no repair. Every paired tab
// and panel must already carry its role and id. All pairs are checked
// before any dynamic state is written, so a violation leaves the tree
// untouched.
func (c *Controller) validateStrict() error {
	pairs := c.pairCount()
	for i := 0; i < pairs; i++ {
		tab, panel := c.tabs[i], c.panels[i]
		if attrValue(tab, "role") != "tab" {
			return fmt.Errorf("%w: tab %d has no tab role", ErrMissingRole, i)
		}
		if attrValue(tab, "id") == "" {
			return fmt.Errorf("%w: tab %d has no id", ErrMissingID, i)
		}
		if attrValue(panel, "role") != "tabpanel" {
			return fmt.Errorf("%w: panel %d has no tabpanel role", ErrMissingRole, i)
		}
		if attrValue(panel, "id") == "" {
			return fmt.Errorf("%w: panel %d has no id", ErrMissingID, i)
		}
	}
	return nil
}

// applyInitialState writes the dynamic initial state in strict mode,
// identical to the last reconciliation step of forgiving mode.
func (c *Controller) applyInitialState() {
	pairs := c.pairCount()
	for i := 0; i < pairs; i++ {
		initPairState(c.tabs[i], c.panels[i])
	}
}

// initPairState marks a pair unselected and hidden. The initial
// selection pass flips exactly one pair afterwards.
func initPairState(tab, panel *goquery.Selection) {
	tab.SetAttr("aria-selected", "false")
	tab.SetAttr("tabindex", "-1")
	panel.SetAttr("hidden", "")
}

// ensureID returns the element's id, generating and assigning one when
// absent. Generated ids carry the configured prefix, the pair index,
// and a random suffix for document-wide uniqueness. Assigned once,
// never changed after.
func (c *Controller) ensureID(sel *goquery.Selection, index int, kind string) string {
	if id := attrValue(sel, "id"); id != "" {
		return id
	}
	parts := []string{c.cfg.idPrefix}
	if kind != "" {
		parts = append(parts, kind)
	}
	parts = append(parts, fmt.Sprintf("%d", index), idSuffix())
	id := strings.Join(parts, "-")
	sel.SetAttr("id", id)
	return id
}

// idSuffix returns the first group of a random UUID (8 hex chars).
func idSuffix() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
