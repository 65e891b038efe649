package validation

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-check/internal/eventloop"
	"github.com/MKhiriev/go-form-check/internal/observable"
)

// Mode tells how a check reacts to changes of its dependencies.
type Mode int

const (
	// Explicit checks ignore dependency changes; only Recheck evaluates.
	Explicit Mode = iota

	// Immediate checks recheck on every dependency change.
	Immediate

	// ImmediateClearing checks clear their result and decorations on every
	// dependency change without evaluating.
	ImmediateClearing
)

func (m Mode) String() string {
	switch m {
	case Explicit:
		return "explicit"
	case Immediate:
		return "immediate"
	case ImmediateClearing:
		return "immediate_clearing"
	default:
		return "unknown"
	}
}

// ParseMode is the inverse of Mode.String. Case and surrounding spaces are
// ignored; "-" is accepted in place of "_".
func ParseMode(s string) (Mode, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, m := range []Mode{Explicit, Immediate, ImmediateClearing} {
		if m.String() == norm {
			return m, nil
		}
	}
	return Explicit, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// modeState is the active mode together with the resources it owns. Leaving
// a mode releases all of them in one step.
type modeState struct {
	mode    Mode
	subs    map[string]observable.Subscription
	initial eventloop.Task
}

func (s *modeState) release() {
	for key, sub := range s.subs {
		sub.Unsubscribe()
		delete(s.subs, key)
	}
	if s.initial != nil {
		s.initial.Cancel()
		s.initial = nil
	}
}
