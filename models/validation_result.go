package models

import "strings"

// ValidationResult is an ordered list of validation messages.
//
// Messages keep the order in which they were produced. A result is built with
// the Add* methods and treated as a value once it has been published: callers
// must not mutate a result they received from a check or a validator, use
// Messages to obtain a copy instead.
type ValidationResult struct {
	messages []ValidationMessage
}

// NewValidationResult returns a result holding the given messages in order.
func NewValidationResult(messages ...ValidationMessage) ValidationResult {
	r := ValidationResult{}
	r.AddAll(messages)
	return r
}

// Messages returns a copy of the messages in production order.
func (r ValidationResult) Messages() []ValidationMessage {
	out := make([]ValidationMessage, len(r.messages))
	copy(out, r.messages)
	return out
}

// Len returns the number of messages.
func (r ValidationResult) Len() int {
	return len(r.messages)
}

// IsEmpty reports whether the result holds no messages.
func (r ValidationResult) IsEmpty() bool {
	return len(r.messages) == 0
}

// AddWarning appends a message with Warning severity.
func (r *ValidationResult) AddWarning(text string) {
	r.messages = append(r.messages, NewWarning(text))
}

// AddError appends a message with Error severity.
func (r *ValidationResult) AddError(text string) {
	r.messages = append(r.messages, NewError(text))
}

// AddAll appends messages keeping their order.
func (r *ValidationResult) AddAll(messages []ValidationMessage) {
	r.messages = append(r.messages, messages...)
}

// Equal reports whether both results hold the same messages in the same order.
func (r ValidationResult) Equal(other ValidationResult) bool {
	if len(r.messages) != len(other.messages) {
		return false
	}
	for i := range r.messages {
		if r.messages[i] != other.messages[i] {
			return false
		}
	}
	return true
}

// HasSeverity reports whether at least one message has severity s.
func (r ValidationResult) HasSeverity(s Severity) bool {
	for _, m := range r.messages {
		if m.Severity == s {
			return true
		}
	}
	return false
}

// Summary joins the text of every message whose severity is in severities.
// Each text is prefixed with prefix; consecutive texts are joined with
// separator.
func (r ValidationResult) Summary(prefix, separator string, severities Severities) string {
	var b strings.Builder
	written := 0
	for _, m := range r.messages {
		if !severities.Contains(m.Severity) {
			continue
		}
		if written > 0 {
			b.WriteString(separator)
		}
		written++
		b.WriteString(prefix)
		b.WriteString(m.Text)
	}
	return b.String()
}
