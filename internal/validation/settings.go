package validation

import (
	"github.com/MKhiriev/go-form-check/internal/decoration"
	"github.com/MKhiriev/go-form-check/internal/eventloop"
	"github.com/MKhiriev/go-form-check/internal/logger"
)

// Settings carries the collaborators of checks and validators. It is passed
// explicitly at construction; zero fields are replaced by defaults.
type Settings struct {
	// DecorationFactory maps messages to decorations.
	// Default: decoration.DefaultFactory.
	DecorationFactory decoration.Factory

	// Loop receives the deferred first evaluation of Immediate checks.
	// Default: a new eventloop.Queue, which the caller cannot drain, so real
	// applications should always pass their own loop.
	Loop eventloop.Loop

	// Logger receives diagnostics. Default: logger.Nop().
	Logger *logger.Logger
}

// DefaultSettings returns settings with every field set to its default.
func DefaultSettings() Settings {
	return Settings{}.withDefaults()
}

func (s Settings) withDefaults() Settings {
	if s.DecorationFactory == nil {
		s.DecorationFactory = decoration.DefaultFactory
	}
	if s.Loop == nil {
		s.Loop = eventloop.NewQueue()
	}
	if s.Logger == nil {
		s.Logger = logger.Nop()
	}
	return s
}
