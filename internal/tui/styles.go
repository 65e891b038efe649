package tui

import "github.com/charmbracelet/lipgloss"

// Style classes understood by Field.
const (
	ClassError   = "error"
	ClassWarning = "warning"
)

var (
	colorError   = lipgloss.Color("#CC0033")
	colorWarning = lipgloss.Color("#CC9900")
	colorFocus   = lipgloss.Color("#3366CC")
	colorMuted   = lipgloss.Color("#777777")
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	labelStyle        = lipgloss.NewStyle().Width(18)
	focusedLabelStyle = labelStyle.Bold(true).Foreground(colorFocus)
	fieldStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorMuted).Padding(0, 1)

	buttonStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	focusedButtonStyle  = buttonStyle.BorderForeground(colorFocus).Bold(true)
	disabledButtonStyle = buttonStyle.Faint(true).BorderForeground(colorMuted)
	tooltipStyle        = overlayBoxStyle.BorderForeground(colorError)
)

// classStyles decorates the field frame per style class. Later entries win.
var classStyles = []struct {
	class string
	style func(lipgloss.Style) lipgloss.Style
}{
	{class: ClassWarning, style: func(s lipgloss.Style) lipgloss.Style { return s.BorderForeground(colorWarning) }},
	{class: ClassError, style: func(s lipgloss.Style) lipgloss.Style { return s.BorderForeground(colorError) }},
}
