// Package ariatabs implements the accessibility behavior of the tabs
// widget pattern over a parsed HTML tree: ARIA attribute state,
// keyboard navigation semantics, and focus/selection bookkeeping.
//
// The package does not talk to a live browser. It operates on a
// goquery document - the same tree a server-rendered application
// already holds - mutating attributes in place so the emitted markup
// carries correct ARIA structure and the widget's behavior can be
// driven (and tested) entirely in Go.
//
// # Core Concepts
//
// One Controller owns one widget instance: a container element holding
// a tablist, N tab triggers, and N panels matched strictly by position.
// Construction discovers these elements, reconciles or validates their
// ARIA structure, and selects an initial tab. After construction the
// controller reacts only to HandleKey and HandleClick, each resolving
// to SelectTab.
//
//	doc, _ := goquery.NewDocumentFromReader(r)
//	ctrl, err := ariatabs.Init(doc.Find("#settings"), ariatabs.Config{
//	    Activation: ariatabs.ActivationAuto,
//	})
//
// # Reconciliation Modes
//
// Forgiving mode (the default) repairs missing structure: it generates
// unique identifiers, assigns missing roles, and writes the
// aria-controls / aria-labelledby relations for every tab/panel pair.
// Strict mode repairs nothing - it verifies that roles and identifiers
// are already present and fails construction when they are not, so
// contract violations surface during development instead of degrading
// silently.
//
// # Keyboard Interaction
//
// Arrow keys move between tabs along the configured orientation,
// wrapping or clamping at the edges per the Loop setting. Home and End
// jump to the first and last tab. Under manual activation (the
// default) arrow movement only moves focus; auto activation also
// selects the focused tab. Home, End, and click always select.
//
// # Announcements
//
// Every real selection change produces a human-readable message
// ("Billing selected") delivered through the Announcer interface. The
// default announcer appends a transient live-region node to the
// document body for assistive technology to pick up.
//
// # Registry
//
// A Registry bootstraps a whole document: it scans for
// [data-component] containers, constructs a controller per recognized
// pattern, merges element-level attribute overrides
// (data-tabs-activation, data-tabs-orientation, data-tabs-loop), and
// enforces one controller per container.
//
// # State Round-Tripping
//
// The Codec persists a signed (or encrypted) snapshot of the selection
// into a container attribute, so the selected tab survives a round
// trip through the client and back into the next server render.
//
// # Testing
//
// TestWidget builds a controller from an HTML fixture string, records
// announcements and change notifications, and exposes assertion
// helpers over the mutated tree. See testing.go.
package ariatabs
