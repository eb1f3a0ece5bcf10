package ariatabs

import (
	"errors"
	"fmt"

	"github.com/heinvv/ariatabs/lib/encoding"
)

// StateAttr is the container attribute carrying the encoded snapshot.
const StateAttr = "data-tabs-state"

// State is a serializable snapshot of a controller's selection,
// suitable for round-tripping through the client.
type State struct {
	Selected    int      `msgpack:"s"`
	Orientation string   `msgpack:"o"`
	TabIDs      []string `msgpack:"t"`
	PanelIDs    []string `msgpack:"p"`
}

// Snapshot captures the controller's current state. Returns an error
// for inert controllers, which have nothing meaningful to capture.
func Snapshot(c *Controller) (State, error) {
	if c.Inert() {
		return State{}, errors.New("ariatabs: cannot snapshot an inert controller")
	}
	st := State{
		Selected:    c.SelectedIndex(),
		Orientation: c.cfg.orientation,
	}
	for _, tab := range c.tabs {
		st.TabIDs = append(st.TabIDs, attrValue(tab, "id"))
	}
	for _, panel := range c.panels {
		st.PanelIDs = append(st.PanelIDs, attrValue(panel, "id"))
	}
	return st, nil
}

// Codec persists controller state into the container's state attribute
// so the selection survives a round trip through the client and back
// into the next server render.
//
// Snapshots are HMAC-signed by default: visible in markup but
// tamper-proof. Set Sensitive for full encryption when the selection
// itself should be opaque.
type Codec struct {
	enc *encoding.Encoder

	// Sensitive switches from signing to AES-GCM encryption.
	Sensitive bool
}

// NewCodec creates a codec with the given key.
func NewCodec(key []byte) (*Codec, error) {
	enc, err := encoding.NewEncoder(key)
	if err != nil {
		return nil, err
	}
	return &Codec{enc: enc}, nil
}

// Save writes the encoded snapshot onto the controller's container.
func (cd *Codec) Save(c *Controller) error {
	st, err := Snapshot(c)
	if err != nil {
		return err
	}
	encoded, err := cd.enc.Encode(st, cd.Sensitive)
	if err != nil {
		return err
	}
	c.Container().SetAttr(StateAttr, encoded)
	return nil
}

// Restore reads the snapshot from the container attribute and
// reapplies its selection without firing announcements or OnChange -
// a restored selection is starting state, not a transition.
//
// A missing attribute is not an error; the controller keeps its
// initial selection. Tampered or malformed attributes return an error
// wrapping ErrStateInvalid and leave the controller untouched.
func (cd *Codec) Restore(c *Controller) error {
	if c.Inert() {
		return nil
	}
	encoded := attrValue(c.Container(), StateAttr)
	if encoded == "" {
		return nil
	}
	var st State
	if err := cd.enc.Decode(encoded, cd.Sensitive, &st); err != nil {
		return fmt.Errorf("%w: %v", ErrStateInvalid, err)
	}
	if st.Selected < 0 || st.Selected >= len(c.tabs) {
		return fmt.Errorf("%w: selected index %d out of range", ErrStateInvalid, st.Selected)
	}
	c.selectTab(st.Selected, false, false)
	return nil
}
