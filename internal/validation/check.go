// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-check/internal/decoration"
	"github.com/MKhiriev/go-form-check/internal/eventloop"
	"github.com/MKhiriev/go-form-check/internal/logger"
	"github.com/MKhiriev/go-form-check/internal/observable"
	"github.com/MKhiriev/go-form-check/models"
	"github.com/google/uuid"
)

// maxPasses bounds how many evaluations one Recheck or Clear call may run
// when evaluations keep requesting further evaluations.
const maxPasses = 16

// Method is one piece of validation logic. It reads dependencies and emits
// messages through the context.
type Method func(c *Context)

type request int

const (
	requestNone request = iota
	requestRecheck
	requestClear
)

type appliedDecoration struct {
	decoration decoration.Decoration
	target     decoration.Target
}

// Check is a single validation rule bound to observable inputs.
//
// A Check is configured with builder methods that return the check itself:
//
//	check := validation.NewCheck(settings).
//		DependsOn("username", username).
//		WithMethod(func(c *validation.Context) {
//			if validation.Value[string](c, "username") == "" {
//				c.Error("user name is required")
//			}
//		}).
//		Decorates(usernameField).
//		Immediate()
type Check struct {
	id      string
	deps    map[string]observable.Observable
	methods []Method
	targets []decoration.Target
	applied []appliedDecoration
	factory decoration.Factory
	loop    eventloop.Loop
	log     *logger.Logger
	result  *observable.Property[models.ValidationResult]
	state   modeState

	running bool
	queued  request
}

// NewCheck returns an explicit check without dependencies, methods or
// targets.
func NewCheck(settings Settings) *Check {
	settings = settings.withDefaults()
	id := uuid.NewString()
	return &Check{
		id:      id,
		deps:    make(map[string]observable.Observable, 1),
		factory: settings.DecorationFactory,
		loop:    settings.Loop,
		log:     &logger.Logger{Logger: settings.Logger.With().Str("check", id).Logger()},
		result:  observable.NewPropertyFunc("result", models.ValidationResult{}, models.ValidationResult.Equal),
		state:   modeState{mode: Explicit, subs: map[string]observable.Subscription{}},
	}
}

// ID returns the identifier the check logs with.
func (c *Check) ID() string {
	return c.id
}

// DependsOn registers dep under key. Registering a key again replaces the
// previous observable; when a reactive mode is active, the subscription
// moves to the new observable.
func (c *Check) DependsOn(key string, dep observable.Observable) *Check {
	if sub, ok := c.state.subs[key]; ok {
		sub.Unsubscribe()
		delete(c.state.subs, key)
	}
	c.deps[key] = dep
	c.subscribe(key, dep)
	return c
}

// WithMethod adds a check method. All methods run on every evaluation, in
// the order they were added.
func (c *Check) WithMethod(m Method) *Check {
	c.methods = append(c.methods, m)
	return c
}

// Decorates adds a target that receives one decoration per message.
func (c *Check) Decorates(target decoration.Target) *Check {
	c.targets = append(c.targets, target)
	return c
}

// DecoratingWith replaces the decoration factory.
func (c *Check) DecoratingWith(f decoration.Factory) *Check {
	c.factory = f
	return c
}

// Explicit switches the check to Explicit mode, dropping all subscriptions
// and any pending first evaluation.
func (c *Check) Explicit() *Check {
	c.switchMode(Explicit)
	return c
}

// Immediate switches the check to Immediate mode: every dependency change
// triggers Recheck. The first evaluation is posted to the event loop so it
// runs after the current turn, once the UI around the targets exists.
func (c *Check) Immediate() *Check {
	c.switchMode(Immediate)
	c.state.initial = c.loop.Post(func() {
		c.state.initial = nil
		c.runFromListener(requestRecheck)
	})
	return c
}

// ImmediateClearing switches the check to ImmediateClearing mode: every
// dependency change clears result and decorations without evaluating.
func (c *Check) ImmediateClearing() *Check {
	c.switchMode(ImmediateClearing)
	return c
}

// Mode returns the active mode.
func (c *Check) Mode() Mode {
	return c.state.mode
}

// Result returns the published result.
func (c *Check) Result() models.ValidationResult {
	return c.result.Get()
}

// ResultProperty exposes the published result for observation. Listeners
// fire only when a new result differs from the previous one.
func (c *Check) ResultProperty() observable.ReadOnly[models.ValidationResult] {
	return c.result.ReadOnly()
}

// Recheck evaluates all methods, replaces the decorations of every target
// and publishes the new result if it differs from the current one.
//
// Configuration errors (no method, unknown dependency) and decoration
// failures are returned; nothing is published in that case.
func (c *Check) Recheck() error {
	return c.run(requestRecheck)
}

// Clear removes all decorations and publishes an empty result without
// running the check methods.
func (c *Check) Clear() error {
	return c.run(requestClear)
}

func (c *Check) switchMode(m Mode) {
	prev := c.state.mode
	c.state.release()
	c.state.mode = m
	for key, dep := range c.deps {
		c.subscribe(key, dep)
	}
	c.log.Debug().Stringer("from", prev).Stringer("to", m).Msg("check mode switched")
}

func (c *Check) subscribe(key string, dep observable.Observable) {
	var req request
	switch c.state.mode {
	case Immediate:
		req = requestRecheck
	case ImmediateClearing:
		req = requestClear
	default:
		return
	}
	c.state.subs[key] = dep.Subscribe(func(_, _ any) {
		c.runFromListener(req)
	})
}

// runFromListener runs a request that has no caller to report to.
func (c *Check) runFromListener(req request) {
	if err := c.run(req); err != nil {
		c.log.Error().Err(err).Msg("evaluation triggered by dependency change failed")
	}
}

func (c *Check) run(req request) error {
	if c.running {
		c.queued = req
		return nil
	}
	c.running = true
	defer func() {
		c.running = false
		c.queued = requestNone
	}()

	for pass := 0; ; pass++ {
		if pass == maxPasses {
			return ErrReentrancyLimit
		}

		var err error
		if req == requestClear {
			err = c.clear()
		} else {
			err = c.recheck()
		}
		if err != nil {
			return err
		}

		if c.queued == requestNone {
			return nil
		}
		req, c.queued = c.queued, requestNone
	}
}

func (c *Check) recheck() error {
	if len(c.methods) == 0 {
		return ErrNoCheckMethod
	}

	next, err := c.evaluate()
	if err != nil {
		return err
	}

	if err := c.removeDecorations(); err != nil {
		return err
	}
	if err := c.applyDecorations(next); err != nil {
		return err
	}
	c.publish(next)
	return nil
}

func (c *Check) clear() error {
	if err := c.removeDecorations(); err != nil {
		return err
	}
	c.publish(models.ValidationResult{})
	return nil
}

func (c *Check) evaluate() (result models.ValidationResult, err error) {
	ctx := &Context{check: c}
	defer func() {
		if r := recover(); r != nil {
			dp, ok := r.(dependencyPanic)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("evaluate check: %w", dp.err)
		}
	}()

	for _, m := range c.methods {
		m(ctx)
	}
	return ctx.result, nil
}

// removeDecorations takes every tracked decoration off its target. The ones
// whose Remove fails stay tracked and are retried on the next pass.
func (c *Check) removeDecorations() error {
	var errs []error
	kept := c.applied[:0]
	for _, a := range c.applied {
		if err := a.decoration.Remove(a.target); err != nil {
			errs = append(errs, err)
			kept = append(kept, a)
		}
	}
	clear(c.applied[len(kept):])
	c.applied = kept
	if len(errs) > 0 {
		return fmt.Errorf("%w: remove: %w", ErrDecoration, errors.Join(errs...))
	}
	return nil
}

func (c *Check) applyDecorations(result models.ValidationResult) error {
	if len(c.targets) == 0 {
		return nil
	}
	for _, msg := range result.Messages() {
		d, err := c.factory(msg)
		if err != nil {
			return fmt.Errorf("%w: create for %q: %w", ErrDecoration, msg.Text, err)
		}
		for _, target := range c.targets {
			if err := d.Apply(target); err != nil {
				return fmt.Errorf("%w: apply %q: %w", ErrDecoration, msg.Text, err)
			}
			c.applied = append(c.applied, appliedDecoration{decoration: d, target: target})
		}
	}
	return nil
}

func (c *Check) publish(next models.ValidationResult) {
	if c.result.Set(next) {
		c.log.Debug().Int("messages", next.Len()).Msg("check result published")
	}
}
