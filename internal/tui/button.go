package tui

import (
	"github.com/MKhiriev/go-form-check/internal/observable"
	"github.com/charmbracelet/lipgloss"
)

// TooltipButton is a button that is disabled while a condition holds and
// then explains why through a tooltip. The tooltip is visible only while the
// button is disabled and focused.
type TooltipButton struct {
	label    string
	disabled observable.ReadOnly[bool]
	tooltip  observable.ReadOnly[string]
	focused  bool

	showTooltip bool
	sub         observable.Subscription
}

// NewTooltipButton binds the button state to disabled and the tooltip text
// to tooltip.
func NewTooltipButton(label string, disabled observable.ReadOnly[bool], tooltip observable.ReadOnly[string]) *TooltipButton {
	b := &TooltipButton{
		label:       label,
		disabled:    disabled,
		tooltip:     tooltip,
		showTooltip: disabled.Get(),
	}
	b.sub = disabled.Subscribe(func(_, newValue any) {
		b.showTooltip, _ = newValue.(bool)
	})
	return b
}

// Disabled reports whether presses are currently ignored.
func (b *TooltipButton) Disabled() bool {
	return b.disabled.Get()
}

// Tooltip returns the current tooltip text.
func (b *TooltipButton) Tooltip() string {
	return b.tooltip.Get()
}

// TooltipVisible reports whether View renders the tooltip.
func (b *TooltipButton) TooltipVisible() bool {
	return b.showTooltip && b.focused
}

func (b *TooltipButton) Focus() {
	b.focused = true
}

func (b *TooltipButton) Blur() {
	b.focused = false
}

func (b *TooltipButton) Focused() bool {
	return b.focused
}

// Press reports whether a press went through.
func (b *TooltipButton) Press() bool {
	return !b.Disabled()
}

// Close stops following the disabled state.
func (b *TooltipButton) Close() {
	if b.sub != nil {
		b.sub.Unsubscribe()
		b.sub = nil
	}
}

func (b *TooltipButton) View() string {
	style := buttonStyle
	switch {
	case b.Disabled():
		style = disabledButtonStyle
	case b.focused:
		style = focusedButtonStyle
	}
	view := style.Render(b.label)
	if b.TooltipVisible() && b.Tooltip() != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, tooltipStyle.Render(b.Tooltip()))
	}
	return view
}
