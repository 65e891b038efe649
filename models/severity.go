package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSeverity is returned by ParseSeverity.
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity classifies a validation message.
// Only equality matters; severities carry no order.
type Severity int

const (
	// Warning marks a message the user should notice but that does not
	// prevent the form from being submitted.
	Warning Severity = 1

	// Error marks a message that makes the form invalid.
	Error Severity = 2
)

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity is the inverse of Severity.String, ignoring case and
// surrounding spaces.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning":
		return Warning, nil
	case "error":
		return Error, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
}

// Severities is a set of severities used to filter messages.
type Severities map[Severity]struct{}

// NewSeverities builds a set from the given values. An empty argument list
// yields a set containing only Error.
func NewSeverities(severities ...Severity) Severities {
	set := make(Severities, len(severities))
	for _, s := range severities {
		set[s] = struct{}{}
	}
	if len(set) == 0 {
		set[Error] = struct{}{}
	}
	return set
}

// Contains reports whether s is in the set.
func (set Severities) Contains(s Severity) bool {
	_, ok := set[s]
	return ok
}
