package ariatabs

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Announcer receives human-readable messages describing selection
// changes, for delivery to assistive technology. The controller calls
// Announce on every real selection change unless announcements are
// disabled in the configuration or suppressed per call.
type Announcer interface {
	Announce(message string)
}

// selectionMessage builds the announcement for a newly selected tab:
// the tab's text plus "selected", or "Tab <n>" when the tab has no
// text (n is 1-based).
func selectionMessage(index int, tab *goquery.Selection) string {
	label := elementText(tab)
	if label == "" {
		label = fmt.Sprintf("Tab %d", index+1)
	}
	return label + " selected"
}

const liveRegionTTL = 2 * time.Second

// liveRegionClass marks transient announcement nodes so stylesheets
// can visually hide them.
const liveRegionClass = "ariatabs-live-region"

// LiveRegionAnnouncer is the default Announcer. It appends a transient
// status node under the document body and removes it again after TTL,
// mirroring how in-browser live-region helpers announce.
//
// The delayed cleanup is fire-and-forget: if the body or the node is
// gone by the time it runs, the removal is silently dropped.
type LiveRegionAnnouncer struct {
	mu   sync.Mutex
	root *html.Node

	// TTL is how long a transient node stays in the tree.
	TTL time.Duration
}

// NewLiveRegionAnnouncer returns an announcer writing into the
// document tree that contains sel.
func NewLiveRegionAnnouncer(sel *goquery.Selection) *LiveRegionAnnouncer {
	root := firstNode(sel)
	for root != nil && root.Parent != nil {
		root = root.Parent
	}
	return &LiveRegionAnnouncer{root: root, TTL: liveRegionTTL}
}

// Announce appends a transient live-region node carrying message.
func (a *LiveRegionAnnouncer) Announce(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	parent := findBody(a.root)
	if parent == nil {
		parent = a.root
	}
	if parent == nil {
		return
	}

	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr: []html.Attribute{
			{Key: "class", Val: liveRegionClass},
			{Key: "role", Val: "status"},
			{Key: "aria-live", Val: "assertive"},
		},
	}
	node.AppendChild(&html.Node{Type: html.TextNode, Data: message})
	parent.AppendChild(node)

	ttl := a.TTL
	if ttl <= 0 {
		ttl = liveRegionTTL
	}
	time.AfterFunc(ttl, func() {
		defer func() { _ = recover() }()
		a.mu.Lock()
		defer a.mu.Unlock()
		if node.Parent != nil {
			node.Parent.RemoveChild(node)
		}
	})
}

// findBody locates the body element under n, if any.
func findBody(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

// RecorderAnnouncer captures announcements for assertions in tests.
type RecorderAnnouncer struct {
	mu       sync.Mutex
	messages []string
}

// Announce records the message.
func (r *RecorderAnnouncer) Announce(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns a copy of everything announced so far.
func (r *RecorderAnnouncer) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// noopAnnouncer is used when no document is available to write into.
type noopAnnouncer struct{}

func (noopAnnouncer) Announce(string) {}

// LiveRegion returns a templ component for a persistent, empty live
// region. Pages that prefer a pre-allocated region over transient
// nodes can add this near the end of <body> and point a custom
// Announcer at it:
//
//	@ariatabs.LiveRegion()
func LiveRegion() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="`+liveRegionClass+`" role="status" aria-live="assertive"></div>`)
		return err
	})
}
