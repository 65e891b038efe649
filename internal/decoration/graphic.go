// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoration

import (
	"fmt"

	"github.com/MKhiriev/go-form-check/models"
	"github.com/charmbracelet/lipgloss"
)

// Position places an overlay relative to the decorated element.
type Position int

const (
	TopLeft Position = iota
	TopRight
	Left
	Right
	BottomLeft
	BottomRight
)

// Marker is the small rendered graphic shown next to a decorated element.
type Marker struct {
	// Glyph is the text drawn, usually a single symbol.
	Glyph string

	// Style is applied to Glyph when rendering.
	Style lipgloss.Style

	// Tooltip is the explanation shown when the element has focus.
	Tooltip string
}

// Render returns the styled glyph.
func (m Marker) Render() string {
	return m.Style.Render(m.Glyph)
}

// Overlay is a marker attached to a target at a position. XOffset adds
// horizontal padding between marker and element, YOffset adds blank lines
// for top and bottom positions. Negative offsets render like zero.
type Overlay struct {
	Marker   Marker
	Position Position
	XOffset  int
	YOffset  int
}

// Graphic decorates targets by overlaying them with a marker.
type Graphic struct {
	overlay *Overlay
}

// NewGraphic returns a graphic decoration at pos without offsets.
func NewGraphic(marker Marker, pos Position) *Graphic {
	return NewGraphicWithOffset(marker, pos, 0, 0)
}

// NewGraphicWithOffset returns a graphic decoration at pos shifted by the
// given offsets.
func NewGraphicWithOffset(marker Marker, pos Position, xOffset, yOffset int) *Graphic {
	return &Graphic{overlay: &Overlay{
		Marker:   marker,
		Position: pos,
		XOffset:  xOffset,
		YOffset:  yOffset,
	}}
}

// Overlay returns the overlay this decoration attaches.
func (g *Graphic) Overlay() *Overlay {
	return g.overlay
}

// Apply attaches the overlay to target.
func (g *Graphic) Apply(target Target) error {
	t, ok := target.(OverlayTarget)
	if !ok {
		return fmt.Errorf("graphic on %T: %w", target, ErrUnsupportedTarget)
	}
	t.AddOverlay(g.overlay)
	return nil
}

// Remove detaches the overlay from target.
func (g *Graphic) Remove(target Target) error {
	t, ok := target.(OverlayTarget)
	if !ok {
		return fmt.Errorf("graphic on %T: %w", target, ErrUnsupportedTarget)
	}
	t.RemoveOverlay(g.overlay)
	return nil
}

var (
	errorMarkerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CC0033"))
	warningMarkerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CC9900"))
)

// ErrorMarker returns the marker used for error messages.
func ErrorMarker(tooltip string) Marker {
	return Marker{Glyph: "✖", Style: errorMarkerStyle, Tooltip: tooltip}
}

// WarningMarker returns the marker used for warning messages.
func WarningMarker(tooltip string) Marker {
	return Marker{Glyph: "⚠", Style: warningMarkerStyle, Tooltip: tooltip}
}

// DefaultFactory is the factory used when a check is not given another one:
// a red cross for errors and a yellow sign for warnings, both at the top-left
// corner and carrying the message text as tooltip.
func DefaultFactory(message models.ValidationMessage) (Decoration, error) {
	marker := ErrorMarker(message.Text)
	if message.Severity == models.Warning {
		marker = WarningMarker(message.Text)
	}
	return NewGraphic(marker, TopLeft), nil
}
