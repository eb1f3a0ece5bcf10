package ariatabs

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// PatternTabs is the widget pattern name recognized by Mount.
const PatternTabs = "tabs"

// componentAttr marks a container as a widget root for the bootstrap.
const componentAttr = "data-component"

// Registry constructs and tracks controllers across a document. It
// enforces the one-controller-per-container contract through a side
// table keyed by the container node, so bootstrapping the same
// document twice cannot double-wire a widget.
type Registry struct {
	mu          sync.Mutex
	controllers map[*html.Node]*Controller
	logger      *slog.Logger

	// OnError is called for containers that cannot be mounted: unknown
	// pattern names, duplicate containers, strict-mode violations.
	// Customize this to surface bootstrap problems appropriately; the
	// default logs and moves on so one bad container cannot take down
	// the rest of the page.
	OnError func(container *goquery.Selection, err error)
}

// NewRegistry creates an empty registry logging through slog.Default().
func NewRegistry() *Registry {
	reg := &Registry{
		controllers: make(map[*html.Node]*Controller),
		logger:      slog.Default(),
	}
	reg.OnError = func(container *goquery.Selection, err error) {
		reg.logger.Error("widget mount failed", "err", err)
	}
	return reg
}

// Mount scans doc for [data-component] containers and constructs a
// controller for each one carrying a recognized pattern name.
//
// Element-level overrides (data-tabs-activation, data-tabs-orientation,
// data-tabs-loop) are merged over base. Containers with an unknown
// pattern, containers that already have a controller, and strict-mode
// failures are reported through OnError and skipped. Returns the
// controllers mounted by this call.
func (r *Registry) Mount(doc *goquery.Document, base Config) []*Controller {
	var mounted []*Controller
	doc.Find("[" + componentAttr + "]").Each(func(_ int, sel *goquery.Selection) {
		pattern := attrValue(sel, componentAttr)
		if pattern != PatternTabs {
			r.OnError(sel, fmt.Errorf("%w: %q", ErrUnknownPattern, pattern))
			return
		}
		ctrl, err := r.Register(sel, mergeAttrConfig(base, sel))
		if err != nil {
			r.OnError(sel, err)
			return
		}
		mounted = append(mounted, ctrl)
	})
	return mounted
}

// Register constructs a controller over a single container, enforcing
// one controller per container. Use Mount for attribute-driven
// bootstrap; Register is the direct path when the caller already holds
// the container and config.
func (r *Registry) Register(container *goquery.Selection, cfg Config) (*Controller, error) {
	node := firstNode(container)
	if node == nil {
		return nil, errors.New("ariatabs: container selection is empty")
	}

	r.mu.Lock()
	_, exists := r.controllers[node]
	r.mu.Unlock()
	if exists {
		return nil, ErrDuplicateContainer
	}

	ctrl, err := Init(container, cfg)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.controllers[node] = ctrl
	r.mu.Unlock()
	return ctrl, nil
}

// ControllerFor returns the controller mounted on container, if any.
func (r *Registry) ControllerFor(container *goquery.Selection) (*Controller, bool) {
	node := firstNode(container)
	if node == nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ctrl, ok := r.controllers[node]
	return ctrl, ok
}

// Len returns the number of mounted controllers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.controllers)
}

// DestroyAll destroys every mounted controller and clears the side
// table, allowing containers to be mounted again.
func (r *Registry) DestroyAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for node, ctrl := range r.controllers {
		ctrl.Destroy()
		delete(r.controllers, node)
	}
}
