package validation

import (
	"sort"

	"github.com/MKhiriev/go-form-check/models"
)

// Context is handed to check methods during one evaluation. Messages emitted
// through it go into a result that is fresh for every evaluation.
type Context struct {
	check  *Check
	result models.ValidationResult
}

// dependencyPanic carries a lookup failure out of a check method. Recheck
// recovers it and returns the wrapped error.
type dependencyPanic struct {
	err *DependencyError
}

// Get returns the current value of the dependency registered under key. The
// value is read from the observable on every call.
//
// Reading an unregistered key is a programming error: the check method is
// stopped and Recheck returns a *DependencyError wrapping
// ErrMissingDependency.
func (c *Context) Get(key string) any {
	dep, ok := c.check.deps[key]
	if !ok {
		panic(dependencyPanic{&DependencyError{Key: key, Err: ErrMissingDependency}})
	}
	return dep.Value()
}

// Keys returns the registered dependency keys in sorted order.
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.check.deps))
	for k := range c.check.deps {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Warn emits a warning.
func (c *Context) Warn(text string) {
	c.result.AddWarning(text)
}

// Error emits an error.
func (c *Context) Error(text string) {
	c.result.AddError(text)
}

// Value returns the dependency under key converted to T. A nil value yields
// the zero T. A value of another type stops the check method like a missing
// key does, with ErrDependencyType.
func Value[T any](c *Context, key string) T {
	var zero T
	raw := c.Get(key)
	if raw == nil {
		return zero
	}
	v, ok := raw.(T)
	if !ok {
		panic(dependencyPanic{&DependencyError{Key: key, Err: ErrDependencyType}})
	}
	return v
}
