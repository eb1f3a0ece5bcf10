package ariatabs

import (
	"github.com/PuerkitoBio/goquery"
)

// Discovery selectors. Forgiving mode assigns missing roles, so
// discovery also accepts the structural data markers; role-complete
// markup needs no markers.
const (
	tablistSelector = `[role="tablist"], [data-tabs-list]`
	tabSelector     = `[role="tab"], [data-tabs-tab]`
	panelSelector   = `[role="tabpanel"], [data-tabs-panel]`
)

// Controller owns the accessibility behavior of one tabs widget: the
// ARIA attribute state of its elements, the selection state machine,
// and keyboard/click dispatch.
//
// A controller is bound to a container element it does not own. Tabs
// and panels are matched strictly by position at discovery time; there
// is no re-discovery after construction. Controllers are not safe for
// concurrent use - like the DOM they mutate, they belong to a single
// event-dispatch flow.
type Controller struct {
	container *goquery.Selection
	tablist   *goquery.Selection
	tabs      []*goquery.Selection
	panels    []*goquery.Selection

	cfg       resolvedConfig
	current   int
	focused   int
	inert     bool
	destroyed bool
}

// Init constructs a controller over the widget markup under container.
//
// Construction discovers the tablist, tabs, and panels; reconciles
// (forgiving mode) or validates (strict mode) their ARIA structure;
// and selects the initial tab - the one pre-marked
// aria-selected="true" in the source markup, or index 0. The initial
// selection fires no announcement and no OnChange.
//
// Structural discovery failures (missing tablist, zero tabs, zero
// panels) never propagate: they are logged and the returned controller
// is inert - it ignores all further calls so one broken widget cannot
// break the page. Strict-mode marker violations are different: they
// are programmer errors and Init returns them.
func Init(container *goquery.Selection, cfg Config) (*Controller, error) {
	c := &Controller{
		container: container,
		cfg:       cfg.resolve(),
		current:   -1,
		focused:   -1,
	}
	if c.cfg.announcer == nil {
		if firstNode(container) != nil {
			c.cfg.announcer = NewLiveRegionAnnouncer(container)
		} else {
			c.cfg.announcer = noopAnnouncer{}
		}
	}

	if err := c.discover(); err != nil {
		c.inert = true
		c.cfg.logger.Error("tabs setup failed", "err", err)
		return c, nil
	}

	initial := c.preselectedIndex()
	if c.cfg.strict {
		if err := c.validateStrict(); err != nil {
			return nil, err
		}
		c.applyInitialState()
	} else {
		c.reconcile()
	}
	c.selectTab(initial, false, false)
	return c, nil
}

// discover locates the tablist, tabs, and panels in document order
// anywhere under the container.
func (c *Controller) discover() error {
	lists := c.container.Find(tablistSelector)
	if lists.Length() == 0 {
		return ErrNoTablist
	}
	c.tablist = lists.First()
	c.tabs = splitSelection(c.container.Find(tabSelector))
	c.panels = splitSelection(c.container.Find(panelSelector))
	if len(c.tabs) == 0 {
		return ErrNoTabs
	}
	if len(c.panels) == 0 {
		return ErrNoPanels
	}
	if len(c.tabs) != len(c.panels) {
		c.cfg.logger.Warn("tab/panel count mismatch, reconciling the overlapping prefix",
			"tabs", len(c.tabs), "panels", len(c.panels))
	}
	return nil
}

// pairCount is the number of positions where both a tab and a panel
// exist. Only these pairs are reconciled; a tab past the last panel
// still gets selection-state updates but controls no panel.
func (c *Controller) pairCount() int {
	if len(c.tabs) < len(c.panels) {
		return len(c.tabs)
	}
	return len(c.panels)
}

// preselectedIndex returns the index of the tab pre-marked selected in
// the source markup, or 0. Read before reconciliation wipes the
// attribute.
func (c *Controller) preselectedIndex() int {
	for i, tab := range c.tabs {
		if attrValue(tab, "aria-selected") == "true" {
			return i
		}
	}
	return 0
}

// SelectTab selects the tab at index, announcing the change to
// assistive technology when the selection actually changes.
//
// Out-of-range indexes are reported as a warning and change nothing:
// no transition, no callback, no DOM mutation. Reselecting the current
// tab re-runs the idempotent attribute pass but fires no side effects.
func (c *Controller) SelectTab(index int) {
	c.selectTab(index, true, true)
}

// SelectTabSilent selects the tab at index without the live-region
// announcement. OnChange still fires on a real change.
func (c *Controller) SelectTabSilent(index int) {
	c.selectTab(index, false, true)
}

func (c *Controller) selectTab(index int, announce, fireEvents bool) {
	if c.inert {
		return
	}
	if index < 0 || index >= len(c.tabs) {
		c.cfg.logger.Warn("tab index out of range", "index", index, "tabs", len(c.tabs))
		return
	}

	prev := c.current
	c.current = index
	c.applySelection()

	if prev == index || !fireEvents {
		return
	}
	tab := c.tabs[index]
	if announce && c.cfg.announce {
		c.cfg.announcer.Announce(selectionMessage(index, tab))
	}
	c.cfg.onChange(index, tab)
}

// applySelection writes selection state onto every tab and every
// paired panel, not only the changed ones, so one call restores
// consistency regardless of prior external mutation.
func (c *Controller) applySelection() {
	pairs := c.pairCount()
	for i, tab := range c.tabs {
		selected := i == c.current
		if selected {
			tab.SetAttr("aria-selected", "true")
			tab.SetAttr("tabindex", "0")
		} else {
			tab.SetAttr("aria-selected", "false")
			tab.SetAttr("tabindex", "-1")
		}
		if i >= pairs {
			continue
		}
		if selected {
			c.panels[i].RemoveAttr("hidden")
		} else {
			c.panels[i].SetAttr("hidden", "")
		}
	}
}

// HandleKey processes a keyboard event on the tab at tabIndex. key is
// the KeyboardEvent.key value (see the Key constants).
//
// Actionable keys move focus to the target tab, always. Arrow keys
// select the target only under auto activation; Home and End select
// regardless of activation mode, matching click behavior. The return
// value reports whether the event was consumed - consumed events
// should have their default browser behavior suppressed.
func (c *Controller) HandleKey(tabIndex int, key string) bool {
	if c.inert || c.destroyed {
		return false
	}
	if tabIndex < 0 || tabIndex >= len(c.tabs) {
		return false
	}

	var target int
	arrows := false
	switch key {
	case KeyHome:
		target = 0
	case KeyEnd:
		target = len(c.tabs) - 1
	case KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown:
		dir, ok := c.arrowDirection(key)
		if !ok {
			return false
		}
		target = NextIndex(len(c.tabs), tabIndex, dir, c.cfg.loop)
		arrows = true
	default:
		return false
	}

	c.focused = target
	if !arrows || c.cfg.activation == ActivationAuto {
		c.selectTab(target, true, true)
	}
	return true
}

// arrowDirection maps an arrow key to a navigation direction, honoring
// the configured orientation. Cross-orientation arrows are not
// actionable.
func (c *Controller) arrowDirection(key string) (int, bool) {
	horizontal := c.cfg.orientation == OrientationHorizontal
	switch key {
	case KeyArrowLeft:
		if horizontal {
			return -1, true
		}
	case KeyArrowRight:
		if horizontal {
			return +1, true
		}
	case KeyArrowUp:
		if !horizontal {
			return -1, true
		}
	case KeyArrowDown:
		if !horizontal {
			return +1, true
		}
	}
	return 0, false
}

// HandleClick processes a click on the tab at tabIndex. Clicking
// always selects, regardless of activation mode. Returns whether the
// event was consumed.
func (c *Controller) HandleClick(tabIndex int) bool {
	if c.inert || c.destroyed {
		return false
	}
	if tabIndex < 0 || tabIndex >= len(c.tabs) {
		return false
	}
	c.focused = tabIndex
	c.selectTab(tabIndex, true, true)
	return true
}

// Destroy detaches input handling: HandleKey and HandleClick become
// no-ops. Panel visibility and attribute state are left as-is, and
// programmatic SelectTab keeps working.
func (c *Controller) Destroy() {
	c.destroyed = true
}

// SelectedIndex returns the current selection, or -1 for an inert
// controller.
func (c *Controller) SelectedIndex() int {
	return c.current
}

// FocusedIndex returns the tab holding keyboard focus, or -1 when no
// key or click event has moved focus yet. Focus is modeled as
// controller state; integration code moves real browser focus to
// Tabs()[FocusedIndex()].
func (c *Controller) FocusedIndex() int {
	return c.focused
}

// Inert checks if setup failed and the controller ignores all calls.
func (c *Controller) Inert() bool {
	return c.inert
}

// Container returns the container element the controller is bound to.
func (c *Controller) Container() *goquery.Selection {
	return c.container
}

// Tablist returns the tablist element, or nil for an inert controller.
func (c *Controller) Tablist() *goquery.Selection {
	return c.tablist
}

// Tabs returns the tab elements in document order.
func (c *Controller) Tabs() []*goquery.Selection {
	out := make([]*goquery.Selection, len(c.tabs))
	copy(out, c.tabs)
	return out
}

// Panels returns the panel elements in document order.
func (c *Controller) Panels() []*goquery.Selection {
	out := make([]*goquery.Selection, len(c.panels))
	copy(out, c.panels)
	return out
}
