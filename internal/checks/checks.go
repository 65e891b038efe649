// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package checks builds ready-made checks for common field rules: required
// values, text length, numbers, number ranges and regular expressions.
//
// Every constructor creates the check through a validator, so the check is
// already part of its aggregate, and returns it in explicit mode. Chain a
// mode switch to make it react to input:
//
//	f := checks.NewFactory(v, nil)
//	f.NonBlank(username, "user name", models.Error, usernameField).Immediate()
//
// Dependencies are registered under generated keys; check methods never see
// them, so several convenience checks may share the same observable.
package checks

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-form-check/internal/decoration"
	"github.com/MKhiriev/go-form-check/internal/observable"
	"github.com/MKhiriev/go-form-check/internal/validation"
	"github.com/MKhiriev/go-form-check/models"
	"github.com/google/uuid"
)

// Factory creates convenience checks on one validator.
type Factory struct {
	validator *validation.Validator
	messages  Messages
}

// NewFactory returns a factory adding checks to v. A nil messages uses
// DefaultMessages.
func NewFactory(v *validation.Validator, messages Messages) *Factory {
	if messages == nil {
		messages = DefaultMessages{}
	}
	return &Factory{validator: v, messages: messages}
}

// NonNil fails when dep holds nil, including typed nil pointers, maps,
// slices, channels, funcs and interfaces.
func (f *Factory) NonNil(dep observable.Observable, field string, severity models.Severity, decorated ...decoration.Target) *validation.Check {
	return f.create(dep, severity, decorated, func(c *validation.Context, key string) (string, bool) {
		if isNil(c.Get(key)) {
			return f.messages.NotNil(field), true
		}
		return "", false
	})
}

// NonBlank fails when the text in dep is empty or only white space.
func (f *Factory) NonBlank(dep observable.Observable, field string, severity models.Severity, decorated ...decoration.Target) *validation.Check {
	return f.create(dep, severity, decorated, func(c *validation.Context, key string) (string, bool) {
		if strings.TrimSpace(validation.Value[string](c, key)) == "" {
			return f.messages.NotBlank(field), true
		}
		return "", false
	})
}

// MinLength fails when the text in dep has fewer than minLength characters.
func (f *Factory) MinLength(dep observable.Observable, field string, severity models.Severity, minLength int, decorated ...decoration.Target) *validation.Check {
	return f.create(dep, severity, decorated, func(c *validation.Context, key string) (string, bool) {
		text := validation.Value[string](c, key)
		if utf8.RuneCountInString(text) < minLength {
			return f.messages.MinLength(field, text, minLength), true
		}
		return "", false
	})
}

// MaxLength fails when the text in dep has more than maxLength characters.
func (f *Factory) MaxLength(dep observable.Observable, field string, severity models.Severity, maxLength int, decorated ...decoration.Target) *validation.Check {
	return f.create(dep, severity, decorated, func(c *validation.Context, key string) (string, bool) {
		text := validation.Value[string](c, key)
		if utf8.RuneCountInString(text) > maxLength {
			return f.messages.MaxLength(field, text, maxLength), true
		}
		return "", false
	})
}

// IsMappable fails when parse rejects the text in dep. Any parser with the
// usual (value, error) shape works, e.g. strconv.Atoi or time.ParseDuration.
func IsMappable[T any](f *Factory, dep observable.Observable, field string, severity models.Severity, parse func(string) (T, error), decorated ...decoration.Target) *validation.Check {
	return f.create(dep, severity, decorated, func(c *validation.Context, key string) (string, bool) {
		if _, err := parse(validation.Value[string](c, key)); err != nil {
			return f.messages.NotMappable(field), true
		}
		return "", false
	})
}

// IsNumber fails when the text in dep is not a decimal number.
func (f *Factory) IsNumber(dep observable.Observable, field string, severity models.Severity, decorated ...decoration.Target) *validation.Check {
	return f.create(dep, severity, decorated, func(c *validation.Context, key string) (string, bool) {
		if _, ok := asNumber(validation.Value[string](c, key)); !ok {
			return f.messages.NotANumber(field), true
		}
		return "", false
	})
}

// IsNumberWithinBounds fails when the text in dep is not a number in
// [minimum, maximum].
func (f *Factory) IsNumberWithinBounds(dep observable.Observable, field string, severity models.Severity, minimum, maximum float64, decorated ...decoration.Target) (*validation.Check, error) {
	if minimum > maximum {
		return nil, fmt.Errorf("bounds [%g, %g]: %w", minimum, maximum, ErrInvalidBounds)
	}
	return f.create(dep, severity, decorated, func(c *validation.Context, key string) (string, bool) {
		text := validation.Value[string](c, key)
		n, ok := asNumber(text)
		if !ok {
			return f.messages.NotWithinBounds(field, "NAN", minimum, maximum), true
		}
		if n < minimum || n > maximum {
			return f.messages.NotWithinBounds(field, strings.TrimSpace(text), minimum, maximum), true
		}
		return "", false
	}), nil
}

// MatchesRegex fails when the whole text in dep does not match regex.
func (f *Factory) MatchesRegex(dep observable.Observable, field string, severity models.Severity, regex string, decorated ...decoration.Target) (*validation.Check, error) {
	re, err := regexp.Compile(`^(?:` + regex + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidRegex, regex, err)
	}
	return f.create(dep, severity, decorated, func(c *validation.Context, key string) (string, bool) {
		text := validation.Value[string](c, key)
		if !re.MatchString(text) {
			return f.messages.NoRegexMatch(field, text, regex), true
		}
		return "", false
	}), nil
}

// rule returns the message to emit and whether the rule failed.
type rule func(c *validation.Context, key string) (string, bool)

func (f *Factory) create(dep observable.Observable, severity models.Severity, decorated []decoration.Target, r rule) *validation.Check {
	key := uuid.NewString()
	check := f.validator.CreateCheck().
		DependsOn(key, dep).
		WithMethod(func(c *validation.Context) {
			text, failed := r(c, key)
			if !failed {
				return
			}
			if severity == models.Warning {
				c.Warn(text)
				return
			}
			c.Error(text)
		})
	for _, target := range decorated {
		check.Decorates(target)
	}
	return check
}

func asNumber(text string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
