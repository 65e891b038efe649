package tui

import (
	"context"

	"github.com/MKhiriev/go-form-check/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type TUI struct {
	opts        FormOptions
	log         *logger.Logger
	programOpts []tea.ProgramOption
}

func New(opts FormOptions, log *logger.Logger, programOpts ...tea.ProgramOption) *TUI {
	if len(programOpts) == 0 {
		programOpts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{opts: opts, log: log, programOpts: programOpts}
}

// SignUpFlow runs the sign-up form until the user signs up or quits and
// returns the chosen user name.
func (t *TUI) SignUpFlow(ctx context.Context) (username string, err error) {
	log := flowLogger(ctx, t.log)
	model, err := NewFormModel(t.opts, log)
	if err != nil {
		return "", err
	}
	defer model.Close()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOpts...)
	finalModel, runErr := tea.NewProgram(model, opts...).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(*FormModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.QuitByUser() || !result.SignedUp() {
		return "", ErrUserQuit
	}
	return result.username.Text().Get(), nil
}

// flowLogger returns a child of log, or of the logger stored in ctx, tagged
// with a fresh flow id so the lines of one form run can be told apart.
func flowLogger(ctx context.Context, log *logger.Logger) *logger.Logger {
	if log == nil {
		log = logger.FromContext(ctx)
	}
	l := log.GetChildLogger()
	flowID := uuid.NewString()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("flow_id", flowID)
	})
	return l
}
