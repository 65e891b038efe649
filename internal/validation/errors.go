package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCheckMethod is returned by Recheck on a check without methods.
	ErrNoCheckMethod = errors.New("check has no check method")

	// ErrMissingDependency is reported when a check method reads a key that
	// was never registered with DependsOn.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrDependencyType is reported when a dependency value does not have
	// the type requested by Value.
	ErrDependencyType = errors.New("unexpected dependency type")

	// ErrReentrancyLimit is returned when evaluations keep triggering each
	// other through dependency changes.
	ErrReentrancyLimit = errors.New("too many reentrant evaluations")

	// ErrDecoration wraps failures of the decoration factory or of applying
	// and removing decorations.
	ErrDecoration = errors.New("decoration failed")

	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("unknown validation mode")
)

// DependencyError describes a failed dependency lookup inside a check method.
type DependencyError struct {
	// Key is the dependency key the method asked for.
	Key string

	// Err is ErrMissingDependency or ErrDependencyType.
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency %q: %v", e.Key, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
