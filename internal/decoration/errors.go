package decoration

import "errors"

var (
	// ErrNoStyleClasses is returned when a style class decoration is created
	// without any class.
	ErrNoStyleClasses = errors.New("at least one style class is required")

	// ErrUnsupportedTarget is returned when a decoration is applied to a
	// target lacking the capability the decoration needs.
	ErrUnsupportedTarget = errors.New("target does not support this decoration")
)
