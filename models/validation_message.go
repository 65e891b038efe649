package models

// ValidationMessage describes a single problem found by a check.
//
// ValidationMessage is a comparable value: two messages are equal when both
// severity and text are equal, so it can be used with == and as a map key.
type ValidationMessage struct {
	// Severity tells whether the problem is a warning or an error.
	Severity Severity `json:"severity"`

	// Text is the human readable description shown to the user.
	Text string `json:"text"`
}

// NewWarning returns a message with Warning severity.
func NewWarning(text string) ValidationMessage {
	return ValidationMessage{Severity: Warning, Text: text}
}

// NewError returns a message with Error severity.
func NewError(text string) ValidationMessage {
	return ValidationMessage{Severity: Error, Text: text}
}
