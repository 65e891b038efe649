// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package eventloop

import tea "github.com/charmbracelet/bubbletea"

// TurnMsg tells a bubbletea model that a new loop turn started and pending
// tasks should run.
type TurnMsg struct{}

// Queue is a FIFO Loop drained explicitly by the owner of the event loop.
//
// Inside a bubbletea program the owning model returns Queue.Turn from its
// Update and calls RunPending when it receives a TurnMsg. Tests call
// RunPending directly to simulate the next turn.
//
// Queue is not safe for concurrent use.
type Queue struct {
	pending []*task
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

type task struct {
	fn   func()
	done bool
}

func (t *task) Cancel() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

func (t *task) Done() bool {
	return t.done
}

// Post appends fn to the queue.
func (q *Queue) Post(fn func()) Task {
	t := &task{fn: fn}
	q.pending = append(q.pending, t)
	return t
}

// Len returns the number of tasks that are still pending.
func (q *Queue) Len() int {
	n := 0
	for _, t := range q.pending {
		if !t.done {
			n++
		}
	}
	return n
}

// RunPending runs the tasks queued before the call, in posting order, and
// returns how many ran. Tasks posted while draining wait for the next turn.
func (q *Queue) RunPending() int {
	batch := q.pending
	q.pending = nil

	ran := 0
	for _, t := range batch {
		if t.done {
			continue
		}
		t.done = true
		t.fn()
		ran++
	}
	return ran
}

// Turn returns a command that starts a new turn if work is pending, or nil.
func (q *Queue) Turn() tea.Cmd {
	if q.Len() == 0 {
		return nil
	}
	return func() tea.Msg {
		return TurnMsg{}
	}
}
