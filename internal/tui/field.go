package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-form-check/internal/decoration"
	"github.com/MKhiriev/go-form-check/internal/observable"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	_ decoration.StyleClassTarget = (*Field)(nil)
	_ decoration.OverlayTarget    = (*Field)(nil)
)

// Field is a labelled single-line text input that checks can depend on and
// decorate. Its text is published through Text(); the frame colour follows
// the style classes and overlays are drawn around the input.
type Field struct {
	label    string
	input    textinput.Model
	text     *observable.Property[string]
	classes  []string
	overlays []*decoration.Overlay
}

// NewField creates an empty, unfocused field.
func NewField(label, placeholder string) *Field {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Width = 32
	input.Prompt = ""

	return &Field{
		label: label,
		input: input,
		text:  observable.NewProperty(label, ""),
	}
}

// Masked switches the field to password echo.
func (f *Field) Masked() *Field {
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Text is the observable content of the field.
func (f *Field) Text() *observable.Property[string] {
	return f.text
}

// SetValue replaces the content and notifies observers.
func (f *Field) SetValue(v string) {
	f.input.SetValue(v)
	f.text.Set(f.input.Value())
}

func (f *Field) Focus() tea.Cmd {
	return f.input.Focus()
}

func (f *Field) Blur() {
	f.input.Blur()
}

func (f *Field) Focused() bool {
	return f.input.Focused()
}

// Update forwards msg to the input and publishes the resulting text.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.text.Set(f.input.Value())
	return cmd
}

func (f *Field) StyleClasses() []string {
	return slices.Clone(f.classes)
}

func (f *Field) AddStyleClasses(classes ...string) {
	f.classes = append(f.classes, classes...)
}

// RemoveStyleClasses removes one occurrence of each given class.
func (f *Field) RemoveStyleClasses(classes ...string) {
	for _, c := range classes {
		if i := slices.Index(f.classes, c); i >= 0 {
			f.classes = slices.Delete(f.classes, i, i+1)
		}
	}
}

func (f *Field) AddOverlay(o *decoration.Overlay) {
	f.overlays = append(f.overlays, o)
}

func (f *Field) RemoveOverlay(o *decoration.Overlay) {
	f.overlays = slices.DeleteFunc(f.overlays, func(x *decoration.Overlay) bool { return x == o })
}

// Overlays returns the overlays currently attached.
func (f *Field) Overlays() []*decoration.Overlay {
	return slices.Clone(f.overlays)
}

// Tooltips returns the tooltip texts of the attached overlays.
func (f *Field) Tooltips() []string {
	var out []string
	for _, o := range f.overlays {
		if o.Marker.Tooltip != "" {
			out = append(out, o.Marker.Tooltip)
		}
	}
	return out
}

// View renders label, framed input and overlays. The tooltips are shown
// below the field while it has focus.
func (f *Field) View() string {
	frame := fieldStyle
	if f.Focused() {
		frame = frame.BorderForeground(colorFocus)
	}
	for _, cs := range classStyles {
		if slices.Contains(f.classes, cs.class) {
			frame = cs.style(frame)
		}
	}

	label := labelStyle.Render(f.label)
	if f.Focused() {
		label = focusedLabelStyle.Render(f.label)
	}

	view := lipgloss.JoinHorizontal(lipgloss.Center, label, decoration.Layout(frame.Render(f.input.View()), f.overlays))
	if tips := f.Tooltips(); f.Focused() && len(tips) > 0 {
		view += "\n" + indent(helpStyle.Render(strings.Join(tips, "\n")), labelStyle.GetWidth())
	}
	return view
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
