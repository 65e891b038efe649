package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-form-check/internal/config"
	"github.com/MKhiriev/go-form-check/internal/decoration"
	"github.com/MKhiriev/go-form-check/internal/logger"
	"github.com/MKhiriev/go-form-check/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// The terminal is still ours until the form starts.
	boot := logger.NewLogger("go-form-demo")
	cfg, err := config.GetFormConfig(os.Args[1:])
	if err != nil {
		boot.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("go-form-demo", cfg.LogPath)
	log.Info().
		Str("version", orNA(buildVersion)).
		Str("date", orNA(buildDate)).
		Str("commit", orNA(buildCommit)).
		Stringer("mode", cfg.Mode).
		Str("decoration", cfg.Decoration).
		Msg("starting form demo")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	ui := tui.New(formOptions(cfg), log)
	username, err := ui.SignUpFlow(ctx)
	switch {
	case errors.Is(err, tui.ErrUserQuit):
		log.Info().Msg("user quit")
		return
	case err != nil:
		log.Error().Err(err).Msg("form demo run error")
		stop()
		os.Exit(1)
	}

	fmt.Printf("Signed up as %s\n", username)
}

func formOptions(cfg *config.FormConfig) tui.FormOptions {
	opts := tui.FormOptions{
		Mode:              cfg.Mode,
		MaxUsernameLength: cfg.MaxUsernameLength,
		MinPasswordLength: cfg.MinPasswordLength,
		MinAge:            cfg.MinAge,
		MaxAge:            cfg.MaxAge,
		SummaryPrefix:     cfg.Summary.Prefix,
		SummarySeparator:  cfg.Summary.Separator,
		SummarySeverities: cfg.Summary.Severities,
	}
	if cfg.Decoration == config.DecorationStyleClass {
		opts.DecorationFactory = decoration.StyleClassFactory(tui.ClassError, tui.ClassWarning)
	}
	return opts
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
