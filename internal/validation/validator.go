// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-form-check/internal/logger"
	"github.com/MKhiriev/go-form-check/internal/observable"
	"github.com/MKhiriev/go-form-check/models"
)

// Validator aggregates the results of several checks.
//
// The aggregate result is the concatenation of the member results in the
// order the checks were added. It is rebuilt whenever a member publishes a
// new result and whenever membership changes.
type Validator struct {
	settings Settings
	log      *logger.Logger

	checks []*Check
	subs   map[*Check]observable.Subscription

	result           *observable.Property[models.ValidationResult]
	containsErrors   *observable.Property[bool]
	containsWarnings *observable.Property[bool]
}

// NewValidator returns an empty validator. Checks created through it share
// settings.
func NewValidator(settings Settings) *Validator {
	settings = settings.withDefaults()
	return &Validator{
		settings:         settings,
		log:              settings.Logger.WithComponent("validator"),
		subs:             make(map[*Check]observable.Subscription),
		result:           observable.NewPropertyFunc("result", models.ValidationResult{}, models.ValidationResult.Equal),
		containsErrors:   observable.NewProperty("containsErrors", false),
		containsWarnings: observable.NewProperty("containsWarnings", false),
	}
}

// CreateCheck returns a new check that is already added to v.
func (v *Validator) CreateCheck() *Check {
	c := NewCheck(v.settings)
	v.Add(c)
	return c
}

// Add makes c part of the aggregate. Adding a check twice is a no-op.
func (v *Validator) Add(c *Check) {
	if _, ok := v.subs[c]; ok {
		v.log.Debug().Str("check", c.ID()).Msg("check already added")
		return
	}
	v.checks = append(v.checks, c)
	v.subs[c] = c.ResultProperty().Subscribe(func(_, _ any) {
		v.refresh()
	})
	v.refresh()
}

// Remove detaches c from the aggregate. Removing a check that was not added
// is a no-op. The check keeps its mode and subscriptions to its own
// dependencies.
func (v *Validator) Remove(c *Check) {
	sub, ok := v.subs[c]
	if !ok {
		v.log.Debug().Str("check", c.ID()).Msg("remove of unknown check ignored")
		return
	}
	sub.Unsubscribe()
	delete(v.subs, c)
	v.checks = slices.DeleteFunc(v.checks, func(cur *Check) bool { return cur == c })
	v.refresh()
}

// Checks returns the member checks in insertion order.
func (v *Validator) Checks() []*Check {
	return slices.Clone(v.checks)
}

// Result returns the aggregate result.
func (v *Validator) Result() models.ValidationResult {
	return v.result.Get()
}

// ResultProperty exposes the aggregate result for observation.
func (v *Validator) ResultProperty() observable.ReadOnly[models.ValidationResult] {
	return v.result.ReadOnly()
}

// ContainsErrors reports whether any member emitted an error.
func (v *Validator) ContainsErrors() bool {
	return v.containsErrors.Get()
}

// ContainsErrorsProperty exposes ContainsErrors for observation.
func (v *Validator) ContainsErrorsProperty() observable.ReadOnly[bool] {
	return v.containsErrors.ReadOnly()
}

// ContainsWarnings reports whether any member emitted a warning.
func (v *Validator) ContainsWarnings() bool {
	return v.containsWarnings.Get()
}

// ContainsWarningsProperty exposes ContainsWarnings for observation.
func (v *Validator) ContainsWarningsProperty() observable.ReadOnly[bool] {
	return v.containsWarnings.ReadOnly()
}

// Validate rechecks every member in insertion order, whatever its mode, and
// reports whether the aggregate is free of errors afterwards. Members that
// fail to evaluate do not stop the others; their errors are joined.
func (v *Validator) Validate() (bool, error) {
	var errs []error
	for i, c := range v.Checks() {
		if err := c.Recheck(); err != nil {
			errs = append(errs, fmt.Errorf("check #%d (%s): %w", i, c.ID(), err))
		}
	}
	if len(errs) > 0 {
		return false, errors.Join(errs...)
	}
	return !v.ContainsErrors(), nil
}

// Clear clears every member.
func (v *Validator) Clear() error {
	var errs []error
	for i, c := range v.Checks() {
		if err := c.Clear(); err != nil {
			errs = append(errs, fmt.Errorf("check #%d (%s): %w", i, c.ID(), err))
		}
	}
	return errors.Join(errs...)
}

// Immediate switches every current member to Immediate mode. Checks added
// later keep their own mode.
func (v *Validator) Immediate() {
	for _, c := range v.Checks() {
		c.Immediate()
	}
}

// ImmediateClear switches every current member to ImmediateClearing mode.
func (v *Validator) ImmediateClear() {
	for _, c := range v.Checks() {
		c.ImmediateClearing()
	}
}

// Explicit switches every current member to Explicit mode.
func (v *Validator) Explicit() {
	for _, c := range v.Checks() {
		c.Explicit()
	}
}

// SetMode switches every current member to m.
func (v *Validator) SetMode(m Mode) {
	switch m {
	case Immediate:
		v.Immediate()
	case ImmediateClearing:
		v.ImmediateClear()
	default:
		v.Explicit()
	}
}

func (v *Validator) refresh() {
	var next models.ValidationResult
	for _, c := range v.checks {
		next.AddAll(c.Result().Messages())
	}

	hasErrors, hasWarnings := false, false
	for _, m := range next.Messages() {
		switch m.Severity {
		case models.Error:
			hasErrors = true
		case models.Warning:
			hasWarnings = true
		}
	}

	v.result.Set(next)
	v.containsErrors.Set(hasErrors)
	v.containsWarnings.Set(hasWarnings)
}
