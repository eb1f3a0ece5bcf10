package ariatabs

import (
	"strings"
	"testing"
	"time"
)

func TestSelectionMessage(t *testing.T) {
	doc := parseDoc(t, `<div><button id="labeled">  Billing
	  details </button><button id="empty"></button></div>`)

	if got := selectionMessage(0, doc.Find("#labeled")); got != "Billing details selected" {
		t.Errorf("selectionMessage = %q, want %q", got, "Billing details selected")
	}
	if got := selectionMessage(1, doc.Find("#empty")); got != "Tab 2 selected" {
		t.Errorf("selectionMessage = %q, want %q", got, "Tab 2 selected")
	}
}

func TestRecorderAnnouncer(t *testing.T) {
	rec := &RecorderAnnouncer{}
	rec.Announce("one")
	rec.Announce("two")

	got := rec.Messages()
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("Messages() = %v, want [one two]", got)
	}

	got[0] = "mutated"
	if rec.Messages()[0] != "one" {
		t.Error("Messages() must return a copy")
	}
}

func TestLiveRegionAnnouncer(t *testing.T) {
	doc := parseDoc(t, `<html><body><div id="app"></div></body></html>`)

	a := NewLiveRegionAnnouncer(doc.Find("#app"))
	a.TTL = 10 * time.Millisecond
	a.Announce("General selected")

	region := doc.Find("." + liveRegionClass)
	if region.Length() != 1 {
		t.Fatalf("found %d live-region nodes, want 1", region.Length())
	}
	if got := region.Text(); got != "General selected" {
		t.Errorf("live region text = %q, want %q", got, "General selected")
	}
	if got := attrValue(region, "role"); got != "status" {
		t.Errorf("live region role = %q, want %q", got, "status")
	}
	if got := attrValue(region, "aria-live"); got != "assertive" {
		t.Errorf("aria-live = %q, want %q", got, "assertive")
	}

	// The transient node is removed after TTL. Synchronize on the
	// announcer's mutex so the check observes the cleanup.
	time.Sleep(500 * time.Millisecond)
	a.mu.Lock()
	remaining := doc.Find("." + liveRegionClass).Length()
	a.mu.Unlock()
	if remaining != 0 {
		t.Fatal("live-region node was not removed after TTL")
	}
}

func TestLiveRegionAnnouncerNoDocument(t *testing.T) {
	doc := parseDoc(t, `<div></div>`)
	a := NewLiveRegionAnnouncer(doc.Find("#missing"))
	a.Announce("dropped") // must not panic with nothing to write into
}

func TestLiveRegionComponent(t *testing.T) {
	out, err := RenderHTML(LiveRegion())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{liveRegionClass, `role="status"`, `aria-live="assertive"`} {
		if !strings.Contains(out, want) {
			t.Errorf("LiveRegion() output %q missing %q", out, want)
		}
	}
}
