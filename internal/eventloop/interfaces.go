// Package eventloop models the turns of the UI event loop.
//
// Code running inside an Update call can Post work that must run on a later
// turn, after the current message has been fully handled and the view
// rebuilt. Posted work is a one-shot Task that can be cancelled until it
// runs.
package eventloop

// Loop accepts work for a later turn of the UI event loop.
type Loop interface {
	// Post schedules fn to run once on a later turn.
	Post(fn func()) Task
}

// Task is a handle to posted work.
type Task interface {
	// Cancel prevents the task from running. It reports whether the task
	// was still pending.
	Cancel() bool

	// Done reports whether the task has run or was cancelled.
	Done() bool
}
