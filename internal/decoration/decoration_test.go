// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoration

import (
	"slices"
	"testing"

	"github.com/MKhiriev/go-form-check/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type fakeStyled struct {
	classes []string
	adds    int
}

func (f *fakeStyled) StyleClasses() []string { return slices.Clone(f.classes) }

func (f *fakeStyled) AddStyleClasses(classes ...string) {
	f.adds++
	f.classes = append(f.classes, classes...)
}

func (f *fakeStyled) RemoveStyleClasses(classes ...string) {
	f.classes = slices.DeleteFunc(f.classes, func(c string) bool { return slices.Contains(classes, c) })
}

type fakeOverlaid struct {
	overlays []*Overlay
}

func (f *fakeOverlaid) AddOverlay(o *Overlay) { f.overlays = append(f.overlays, o) }

func (f *fakeOverlaid) RemoveOverlay(o *Overlay) {
	f.overlays = slices.DeleteFunc(f.overlays, func(cur *Overlay) bool { return cur == o })
}

func plain(glyph string) Marker {
	return Marker{Glyph: glyph, Style: lipgloss.NewStyle()}
}

// ---------------------------------------------------------------------------
// StyleClass
// ---------------------------------------------------------------------------

func TestNewStyleClass_RequiresClass(t *testing.T) {
	_, err := NewStyleClass()
	require.ErrorIs(t, err, ErrNoStyleClasses)
}

func TestStyleClass_ApplyAndRemove(t *testing.T) {
	d, err := NewStyleClass("invalid", "red", "invalid")
	require.NoError(t, err)
	assert.Equal(t, []string{"invalid", "red"}, d.Classes())

	target := &fakeStyled{classes: []string{"text-field"}}
	require.NoError(t, d.Apply(target))
	assert.Equal(t, []string{"text-field", "invalid", "red"}, target.classes)

	require.NoError(t, d.Remove(target))
	assert.Equal(t, []string{"text-field"}, target.classes)
}

func TestStyleClass_ApplyDoesNotDuplicate(t *testing.T) {
	d, err := NewStyleClass("invalid")
	require.NoError(t, err)

	target := &fakeStyled{classes: []string{"invalid"}}
	require.NoError(t, d.Apply(target))

	assert.Equal(t, []string{"invalid"}, target.classes)
	assert.Equal(t, 0, target.adds)
}

func TestStyleClass_UnsupportedTarget(t *testing.T) {
	d, err := NewStyleClass("invalid")
	require.NoError(t, err)

	assert.ErrorIs(t, d.Apply("not a widget"), ErrUnsupportedTarget)
	assert.ErrorIs(t, d.Remove(42), ErrUnsupportedTarget)
}

func TestStyleClassFactory(t *testing.T) {
	f := StyleClassFactory("has-error", "has-warning")

	d, err := f(models.NewError("x"))
	require.NoError(t, err)
	assert.Equal(t, []string{"has-error"}, d.(*StyleClass).Classes())

	d, err = f(models.NewWarning("x"))
	require.NoError(t, err)
	assert.Equal(t, []string{"has-warning"}, d.(*StyleClass).Classes())
}

// ---------------------------------------------------------------------------
// Graphic
// ---------------------------------------------------------------------------

func TestGraphic_ApplyAndRemove(t *testing.T) {
	g := NewGraphicWithOffset(plain("!"), Right, 2, 0)
	target := &fakeOverlaid{}

	require.NoError(t, g.Apply(target))
	require.Len(t, target.overlays, 1)
	assert.Same(t, g.Overlay(), target.overlays[0])
	assert.Equal(t, 2, target.overlays[0].XOffset)

	require.NoError(t, g.Remove(target))
	assert.Empty(t, target.overlays)
}

func TestGraphic_UnsupportedTarget(t *testing.T) {
	g := NewGraphic(plain("!"), TopLeft)
	assert.ErrorIs(t, g.Apply(struct{}{}), ErrUnsupportedTarget)
	assert.ErrorIs(t, g.Remove(struct{}{}), ErrUnsupportedTarget)
}

func TestDefaultFactory(t *testing.T) {
	d, err := DefaultFactory(models.NewError("Too long"))
	require.NoError(t, err)
	g := d.(*Graphic)
	assert.Equal(t, "✖", g.Overlay().Marker.Glyph)
	assert.Equal(t, "Too long", g.Overlay().Marker.Tooltip)
	assert.Equal(t, TopLeft, g.Overlay().Position)

	d, err = DefaultFactory(models.NewWarning("Careful"))
	require.NoError(t, err)
	assert.Equal(t, "⚠", d.(*Graphic).Overlay().Marker.Glyph)
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

func TestLayout(t *testing.T) {
	view := "[hello]"

	tests := []struct {
		name     string
		overlays []*Overlay
		want     string
	}{
		{"no overlays", nil, "[hello]"},
		{"left", []*Overlay{{Marker: plain("x"), Position: Left}}, "x [hello]"},
		{"right with offset", []*Overlay{{Marker: plain("x"), Position: Right, XOffset: 1}}, "[hello]  x"},
		{"top left", []*Overlay{{Marker: plain("x"), Position: TopLeft}}, "x\n[hello]"},
		{"top right", []*Overlay{{Marker: plain("x"), Position: TopRight}}, "      x\n[hello]"},
		{"top both", []*Overlay{
			{Marker: plain("a"), Position: TopLeft},
			{Marker: plain("b"), Position: TopRight},
		}, "a     b\n[hello]"},
		{"bottom left with y offset", []*Overlay{{Marker: plain("x"), Position: BottomLeft, YOffset: 1}}, "[hello]\n\nx"},
		{"two at same position", []*Overlay{
			{Marker: plain("a"), Position: TopLeft},
			{Marker: plain("b"), Position: TopLeft},
		}, "ab\n[hello]"},
		{"right with negative offset", []*Overlay{{Marker: plain("x"), Position: Right, XOffset: -2}}, "[hello] x"},
		{"left with negative offset", []*Overlay{{Marker: plain("x"), Position: Left, XOffset: -1}}, "x [hello]"},
		{"top left with negative offset", []*Overlay{{Marker: plain("x"), Position: TopLeft, XOffset: -3}}, "x\n[hello]"},
		{"top right with negative offsets", []*Overlay{{Marker: plain("x"), Position: TopRight, XOffset: -3, YOffset: -1}}, "      x\n[hello]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Layout(view, tt.overlays))
		})
	}
}

func TestLayout_GraphicWithNegativeOffset(t *testing.T) {
	for _, pos := range []Position{TopLeft, TopRight, Left, Right, BottomLeft, BottomRight} {
		g := NewGraphicWithOffset(ErrorMarker("x"), pos, -2, -2)
		assert.NotPanics(t, func() {
			out := Layout("field", []*Overlay{g.Overlay()})
			assert.Contains(t, out, "field")
		})
	}
}
