package study

// wrongFlashClearMsg clears the wrong-answer marker after its display period.
type wrongFlashClearMsg struct{}
