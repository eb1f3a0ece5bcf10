package ariatabs

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
)

// TestWidget wraps a controller built from an HTML fixture, for tests.
//
// It records announcements and OnChange notifications and exposes
// assertion helpers over the mutated tree, so behavior tests read as
// interactions instead of goquery plumbing:
//
//	tw, err := ariatabs.NewTestWidget(fixture, ariatabs.Config{})
//	tw.Press(0, ariatabs.KeyArrowRight)
//	if tw.SelectedIndex() != 0 { ... }
type TestWidget struct {
	Doc        *goquery.Document
	Controller *Controller

	recorder *RecorderAnnouncer
	changes  []ChangeEvent
}

// ChangeEvent records one OnChange notification.
type ChangeEvent struct {
	Index int
	Label string
}

// NewTestWidget parses fixture HTML and constructs a controller on the
// first [data-component="tabs"] container, falling back to the first
// element under <body> when the fixture has no component marker.
//
// A RecorderAnnouncer replaces the configured announcer unless the
// config sets one explicitly, and OnChange notifications are captured
// (chaining to the config's own OnChange when present). The error is
// non-nil only for strict-mode setup failures; forgiving-mode failures
// produce an inert controller, same as Init.
func NewTestWidget(fixture string, cfg Config) (*TestWidget, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fixture))
	if err != nil {
		return nil, err
	}

	container := doc.Find(`[data-component="tabs"]`).First()
	if container.Length() == 0 {
		container = doc.Find("body").Children().First()
	}

	tw := &TestWidget{Doc: doc, recorder: &RecorderAnnouncer{}}
	if cfg.Announcer == nil {
		cfg.Announcer = tw.recorder
	}
	userChange := cfg.OnChange
	cfg.OnChange = func(index int, tab *goquery.Selection) {
		tw.changes = append(tw.changes, ChangeEvent{Index: index, Label: elementText(tab)})
		if userChange != nil {
			userChange(index, tab)
		}
	}

	ctrl, err := Init(container, cfg)
	if err != nil {
		return nil, err
	}
	tw.Controller = ctrl
	return tw, nil
}

// Press simulates a keyboard event on the tab at tabIndex. Returns
// whether the controller consumed the event.
func (tw *TestWidget) Press(tabIndex int, key string) bool {
	return tw.Controller.HandleKey(tabIndex, key)
}

// Click simulates a click on the tab at tabIndex.
func (tw *TestWidget) Click(tabIndex int) bool {
	return tw.Controller.HandleClick(tabIndex)
}

// SelectedIndex returns the controller's current selection.
func (tw *TestWidget) SelectedIndex() int {
	return tw.Controller.SelectedIndex()
}

// FocusedIndex returns the tab holding modeled keyboard focus.
func (tw *TestWidget) FocusedIndex() int {
	return tw.Controller.FocusedIndex()
}

// TabCount returns the number of discovered tabs.
func (tw *TestWidget) TabCount() int {
	return len(tw.Controller.tabs)
}

// TabAttr returns an attribute of the i-th tab ("" when absent).
func (tw *TestWidget) TabAttr(i int, name string) string {
	return attrValue(tw.Controller.tabs[i], name)
}

// PanelAttr returns an attribute of the i-th panel ("" when absent).
func (tw *TestWidget) PanelAttr(i int, name string) string {
	return attrValue(tw.Controller.panels[i], name)
}

// PanelHidden checks if the i-th panel carries the hidden attribute.
func (tw *TestWidget) PanelHidden(i int) bool {
	return hasAttr(tw.Controller.panels[i], "hidden")
}

// HTML returns the document serialized back to markup.
func (tw *TestWidget) HTML() string {
	out, err := tw.Doc.Html()
	if err != nil {
		return ""
	}
	return out
}

// HTMLContains checks if the serialized document contains substr.
func (tw *TestWidget) HTMLContains(substr string) bool {
	return strings.Contains(tw.HTML(), substr)
}

// Announced returns every message the controller announced so far.
// Empty when the config installed its own announcer.
func (tw *TestWidget) Announced() []string {
	return tw.recorder.Messages()
}

// Changes returns every OnChange notification so far.
func (tw *TestWidget) Changes() []ChangeEvent {
	out := make([]ChangeEvent, len(tw.changes))
	copy(out, tw.changes)
	return out
}

// LastChange returns the most recent OnChange notification.
func (tw *TestWidget) LastChange() (ChangeEvent, bool) {
	if len(tw.changes) == 0 {
		return ChangeEvent{}, false
	}
	return tw.changes[len(tw.changes)-1], true
}

// RenderHTML renders a templ component to a string. Handy for building
// fixtures from Skeleton:
//
//	fixture, _ := ariatabs.RenderHTML(ariatabs.Skeleton(cfg))
func RenderHTML(component templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
