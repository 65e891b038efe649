// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package observable provides the reactive values that form fields expose
// and that checks depend on.
//
// Core concepts:
//   - Observable: anything with a current value that can notify listeners
//     when the value changes.
//   - Property: a writable observable holding a typed value.
//   - Binding: a read-only observable derived from other observables and
//     recomputed whenever one of them changes.
//
// All types in this package are meant to be used from a single goroutine,
// the one running the UI event loop. None of them is safe for concurrent use.
package observable

// Listener is invoked after an observable changed its value.
type Listener func(oldValue, newValue any)

// Subscription is the token returned by Subscribe. Unsubscribe detaches the
// listener; calling it more than once is a no-op.
type Subscription interface {
	Unsubscribe()
}

// Observable is the capability a check needs from its dependencies: read the
// current value and get told when it changes.
type Observable interface {
	// Value returns the current value, type-erased.
	Value() any

	// Subscribe registers l to be called on every change.
	Subscribe(l Listener) Subscription
}

// ReadOnly is a typed, read-only view of an observable value.
type ReadOnly[T any] interface {
	Observable

	// Get returns the current value.
	Get() T
}
