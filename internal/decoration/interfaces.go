// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/decoration_mock.go -package=mock

// Package decoration provides the visual feedback strategies applied to form
// fields that failed validation.
//
// Core concepts:
//   - Decoration: something that can be applied to and removed from a target.
//     A check creates one decoration per message and applies it to each of
//     its targets.
//   - Target: an opaque UI element. Strategies type-assert it to the
//     capability they need (StyleClassTarget, OverlayTarget) and fail with
//     ErrUnsupportedTarget otherwise.
//   - Factory: maps a validation message to a fresh decoration.
//
// Strategies shipped with the package:
//   - StyleClass toggles style classes on the target.
//   - Graphic attaches a rendered marker overlay next to the target.
package decoration

import "github.com/MKhiriev/go-form-check/models"

// Target is an opaque UI element handed to decorations.
type Target = any

// Decoration is the pluggable visual feedback for one validation message.
type Decoration interface {
	// Apply decorates target.
	Apply(target Target) error

	// Remove takes the decoration off target.
	Remove(target Target) error
}

// Factory creates the decoration for a message.
type Factory func(message models.ValidationMessage) (Decoration, error)

// StyleClassTarget is implemented by elements whose look is driven by a list
// of style classes.
type StyleClassTarget interface {
	StyleClasses() []string
	AddStyleClasses(classes ...string)
	RemoveStyleClasses(classes ...string)
}

// OverlayTarget is implemented by elements that can render overlays around
// themselves.
type OverlayTarget interface {
	AddOverlay(o *Overlay)
	RemoveOverlay(o *Overlay)
}
