package ariatabs

// Key values recognized by HandleKey. They match the KeyboardEvent.key
// names browsers produce, so integration code can forward key events
// without translation.
//
// Arrow keys are actionable only along the configured orientation:
// left/right for horizontal tablists, up/down for vertical ones.
const (
	// KeyArrowLeft moves to the previous tab (horizontal orientation).
	KeyArrowLeft = "ArrowLeft"

	// KeyArrowRight moves to the next tab (horizontal orientation).
	KeyArrowRight = "ArrowRight"

	// KeyArrowUp moves to the previous tab (vertical orientation).
	KeyArrowUp = "ArrowUp"

	// KeyArrowDown moves to the next tab (vertical orientation).
	KeyArrowDown = "ArrowDown"

	// KeyHome jumps to the first tab regardless of orientation.
	// Home always selects, even under manual activation.
	KeyHome = "Home"

	// KeyEnd jumps to the last tab regardless of orientation.
	// End always selects, even under manual activation.
	KeyEnd = "End"
)
