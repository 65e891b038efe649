package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-check/internal/app"
	"github.com/MKhiriev/go-form-check/internal/checks"
	"github.com/MKhiriev/go-form-check/internal/decoration"
	"github.com/MKhiriev/go-form-check/internal/eventloop"
	"github.com/MKhiriev/go-form-check/internal/logger"
	"github.com/MKhiriev/go-form-check/internal/observable"
	"github.com/MKhiriev/go-form-check/internal/validation"
	"github.com/MKhiriev/go-form-check/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FormOptions configures the sign-up form.
type FormOptions struct {
	Mode              validation.Mode
	MaxUsernameLength int
	MinPasswordLength int
	MinAge            float64
	MaxAge            float64

	SummaryPrefix     string
	SummarySeparator  string
	SummarySeverities []models.Severity

	// DecorationFactory decorates the input fields. Default:
	// decoration.DefaultFactory.
	DecorationFactory decoration.Factory
}

// FormModel is the Bubble Tea model of the sign-up form. Every field is
// covered by checks; a cross-field check compares the passwords and reports
// into a status line below them. The sign-up button stays disabled while
// the form contains errors.
type FormModel struct {
	log       *logger.Logger
	queue     *eventloop.Queue
	validator *validation.Validator
	summary   *observable.Binding[string]
	tooltip   *observable.Binding[string]

	username   *Field
	password   *Field
	repeat     *Field
	age        *Field
	fields     []*Field
	matchState *StatusLabel
	submit     *TooltipButton
	help       help.Model

	focus      int
	status     string
	errMsg     string
	signedUp   bool
	quitByUser bool

	copyToClipboard func(string) error
}

// NewFormModel builds the form, registers its checks and switches them to
// opts.Mode. Immediate checks run their first evaluation on the first turn
// of the program.
func NewFormModel(opts FormOptions, log *logger.Logger) (*FormModel, error) {
	if log == nil {
		log = logger.Nop()
	}
	queue := eventloop.NewQueue()
	settings := validation.Settings{
		DecorationFactory: opts.DecorationFactory,
		Loop:              queue,
		Logger:            log.WithComponent("validation"),
	}

	m := &FormModel{
		log:             log.WithComponent("form"),
		queue:           queue,
		validator:       validation.NewValidator(settings),
		username:        NewField("User name", "lowercase only"),
		password:        NewField("Password", "password").Masked(),
		repeat:          NewField("Repeat password", "password").Masked(),
		age:             NewField("Age", "years"),
		matchState:      NewStatusLabel(app.MsgPasswordsMatch),
		help:            help.New(),
		copyToClipboard: clipboard.WriteAll,
	}
	m.fields = []*Field{m.username, m.password, m.repeat, m.age}

	if err := m.registerChecks(opts); err != nil {
		return nil, err
	}
	m.validator.SetMode(opts.Mode)

	m.summary = m.validator.Summary(opts.SummaryPrefix, opts.SummarySeparator, opts.SummarySeverities...)
	m.tooltip = observable.NewBinding(func() string {
		return app.MsgCannotSignUpTooltip + m.summary.Get()
	}, m.summary)
	m.submit = NewTooltipButton("Sign up", m.validator.ContainsErrorsProperty(), m.tooltip)

	m.username.Focus()
	return m, nil
}

func (m *FormModel) registerChecks(opts FormOptions) error {
	f := checks.NewFactory(m.validator, nil)

	f.NonBlank(m.username.Text(), m.username.Label(), models.Error, m.username)
	f.MaxLength(m.username.Text(), m.username.Label(), models.Error, opts.MaxUsernameLength, m.username)
	m.validator.CreateCheck().
		DependsOn("username", m.username.Text()).
		WithMethod(func(c *validation.Context) {
			name := validation.Value[string](c, "username")
			if strings.ToLower(name) != name {
				c.Error(app.MsgLowercaseOnly)
			}
		}).
		Decorates(m.username)

	f.MinLength(m.password.Text(), m.password.Label(), models.Warning, opts.MinPasswordLength, m.password)
	m.validator.CreateCheck().
		DependsOn("password", m.password.Text()).
		DependsOn("passwordConfirmation", m.repeat.Text()).
		WithMethod(func(c *validation.Context) {
			if c.Get("password") != c.Get("passwordConfirmation") {
				c.Error(app.MsgPasswordsDoNotMatch)
			}
		}).
		DecoratingWith(StatusDecoration(app.MsgPasswordsMatch)).
		Decorates(m.matchState)

	if _, err := f.IsNumberWithinBounds(m.age.Text(), m.age.Label(), models.Error, opts.MinAge, opts.MaxAge, m.age); err != nil {
		return fmt.Errorf("age check: %w", err)
	}

	return nil
}

// Init implements [tea.Model]. Starts the cursor blink and drains the
// initial evaluations posted by Immediate checks.
func (m *FormModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.queue.Turn())
}

// Update implements [tea.Model]. Handled messages:
//   - [eventloop.TurnMsg] runs the pending validation tasks.
//   - tab / shift+tab move the focus; enter moves on or presses the button.
//   - ctrl+y copies the problem summary to the clipboard.
//   - ctrl+r clears every check.
//   - esc / ctrl+c quit.
//
// All other messages are forwarded to the focused field.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(eventloop.TurnMsg); ok {
		m.queue.RunPending()
		return m, m.queue.Turn()
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			return m, m.moveFocus(1)
		case key.Matches(keyMsg, keys.backtab):
			return m, m.moveFocus(-1)
		case key.Matches(keyMsg, keys.copy):
			m.copySummary()
			return m, nil
		case key.Matches(keyMsg, keys.clear):
			if err := m.validator.Clear(); err != nil {
				m.fail("clear", err)
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.buttonFocused() {
				return m, m.signUp()
			}
			return m, m.moveFocus(1)
		}
	}

	if m.buttonFocused() {
		return m, nil
	}
	cmd := m.fields[m.focus].Update(msg)
	return m, tea.Batch(cmd, m.queue.Turn())
}

// View implements [tea.Model].
func (m *FormModel) View() string {
	if m.signedUp {
		return renderPage("SIGN UP", app.MsgSignedUp, "esc: quit")
	}

	var b strings.Builder
	for _, f := range m.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
		if f == m.repeat {
			b.WriteString(labelStyle.Render("") + m.matchState.View())
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.submit.View())

	if problems := m.problems(); problems != "" {
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Problems"), problems)))
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("SIGN UP", b.String(), m.help.View(keys))
}

// Validator exposes the validator behind the form.
func (m *FormModel) Validator() *validation.Validator {
	return m.validator
}

// SignedUp reports whether the form was submitted without errors.
func (m *FormModel) SignedUp() bool {
	return m.signedUp
}

// QuitByUser reports whether the user left the form.
func (m *FormModel) QuitByUser() bool {
	return m.quitByUser
}

// Close detaches the bindings from the validator.
func (m *FormModel) Close() {
	m.submit.Close()
	m.tooltip.Dispose()
	m.summary.Dispose()
}

func (m *FormModel) problems() string {
	msgs := m.validator.Result().Messages()
	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		style := errorStyle
		if msg.Severity == models.Warning {
			style = style.Foreground(colorWarning)
		}
		lines = append(lines, style.Render(msg.Severity.String()+": ")+fitText(msg.Text, 60))
	}
	return strings.Join(lines, "\n")
}

func (m *FormModel) signUp() tea.Cmd {
	ok, err := m.validator.Validate()
	if err != nil {
		m.fail("validate", err)
		return m.queue.Turn()
	}
	if !ok || !m.submit.Press() {
		m.status = app.MsgCannotSignUp
		return m.queue.Turn()
	}
	m.signedUp = true
	m.log.Info().Str("username", m.username.Text().Get()).Msg("signed up")
	return tea.Quit
}

func (m *FormModel) copySummary() {
	text := m.summary.Get()
	if text == "" {
		m.status = app.MsgNothingToCopy
		return
	}
	if err := m.copyToClipboard(text); err != nil {
		m.fail("copy", err)
		return
	}
	m.status = app.MsgCopied
}

func (m *FormModel) fail(op string, err error) {
	m.log.Err(err).Str("op", op).Msg("form operation failed")
	var depErr *validation.DependencyError
	if errors.As(err, &depErr) {
		m.errMsg = fmt.Sprintf("%s: dependency %q", op, depErr.Key)
		return
	}
	m.errMsg = fmt.Sprintf("%s: %v", op, err)
}

// moveFocus cycles through the fields and the button.
func (m *FormModel) moveFocus(delta int) tea.Cmd {
	n := len(m.fields) + 1
	if m.buttonFocused() {
		m.submit.Blur()
	} else {
		m.fields[m.focus].Blur()
	}
	m.focus = (m.focus + delta + n) % n
	if m.buttonFocused() {
		m.submit.Focus()
		return nil
	}
	return m.fields[m.focus].Focus()
}

func (m *FormModel) buttonFocused() bool {
	return m.focus == len(m.fields)
}
