package checks

import "errors"

var (
	// ErrInvalidRegex is returned by MatchesRegex for a pattern that does not
	// compile.
	ErrInvalidRegex = errors.New("invalid regular expression")

	// ErrInvalidBounds is returned by IsNumberWithinBounds when minimum is
	// greater than maximum.
	ErrInvalidBounds = errors.New("minimum is greater than maximum")
)
