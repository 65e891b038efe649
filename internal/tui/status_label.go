package tui

import (
	"fmt"

	"github.com/MKhiriev/go-form-check/internal/decoration"
	"github.com/MKhiriev/go-form-check/models"
)

// StatusLabel is a one-line text element that checks can decorate with
// StatusDecoration.
type StatusLabel struct {
	text string
}

func NewStatusLabel(text string) *StatusLabel {
	return &StatusLabel{text: text}
}

func (l *StatusLabel) SetText(text string) {
	l.text = text
}

func (l *StatusLabel) Text() string {
	return l.text
}

func (l *StatusLabel) View() string {
	return helpStyle.Render(l.text)
}

// statusDecoration writes its message into a StatusLabel and resets the
// label on removal.
type statusDecoration struct {
	message models.ValidationMessage
	okText  string
}

// StatusDecoration returns a factory whose decorations show "ERR - <text>"
// (or "WARN - <text>") on a StatusLabel and okText once removed.
func StatusDecoration(okText string) decoration.Factory {
	return func(m models.ValidationMessage) (decoration.Decoration, error) {
		return &statusDecoration{message: m, okText: okText}, nil
	}
}

func (d *statusDecoration) Apply(target decoration.Target) error {
	l, ok := target.(*StatusLabel)
	if !ok {
		return fmt.Errorf("status on %T: %w", target, decoration.ErrUnsupportedTarget)
	}
	prefix := "ERR"
	if d.message.Severity == models.Warning {
		prefix = "WARN"
	}
	l.SetText(prefix + " - " + d.message.Text)
	return nil
}

func (d *statusDecoration) Remove(target decoration.Target) error {
	l, ok := target.(*StatusLabel)
	if !ok {
		return fmt.Errorf("status on %T: %w", target, decoration.ErrUnsupportedTarget)
	}
	l.SetText(d.okText)
	return nil
}
