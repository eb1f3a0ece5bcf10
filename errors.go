package ariatabs

import "errors"

// Sentinel errors for widget setup and state handling.
var (
	ErrNoTablist          = errors.New("ariatabs: no tablist found in container")
	ErrNoTabs             = errors.New("ariatabs: no tab elements found")
	ErrNoPanels           = errors.New("ariatabs: no panel elements found")
	ErrMissingRole        = errors.New("ariatabs: required role missing")
	ErrMissingID          = errors.New("ariatabs: required id missing")
	ErrUnknownPattern     = errors.New("ariatabs: unknown widget pattern")
	ErrDuplicateContainer = errors.New("ariatabs: container already has a controller")
	ErrStateInvalid       = errors.New("ariatabs: state attribute invalid")
)

// IsSetupError checks if err is a structural setup failure: missing
// tablist, tabs, or panels, or a strict-mode marker violation.
func IsSetupError(err error) bool {
	return errors.Is(err, ErrNoTablist) ||
		errors.Is(err, ErrNoTabs) ||
		errors.Is(err, ErrNoPanels) ||
		errors.Is(err, ErrMissingRole) ||
		errors.Is(err, ErrMissingID)
}

// IsStateError checks if err came from decoding a state attribute.
func IsStateError(err error) bool {
	return errors.Is(err, ErrStateInvalid)
}
