package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SeverityList collects a comma separated list of severity names. It
// implements the flag.Value interface.
type SeverityList []string

// String returns the list joined with commas.
func (l *SeverityList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set splits s on commas, dropping blank entries. Names are checked later by
// the form config validation.
func (l *SeverityList) Set(s string) error {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fmt.Errorf("need at least one severity, got %q", s)
	}
	*l = out
	return nil
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-mode validation mode: explicit, immediate or immediate_clearing
//	-max-username-length longest accepted user name
//	-min-password-length password length below which a warning is shown
//	-min-age / -max-age accepted age range
//	-decoration field decoration: graphic or style_class
//	-css shortcut for -decoration style_class
//	-summary-prefix prefix of every summary line
//	-summary-separator separator between summary lines
//	-summary-severities comma separated severities listed in the summary
//	-log log file path
//	-c/-config config file path (.json, .yaml, .yml, .toml)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var severities SeverityList
	var css bool

	fs := flag.NewFlagSet("formdemo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Form.Mode, "mode", "", "Validation mode (explicit, immediate, immediate_clearing)")
	fs.Func("max-username-length", "Longest accepted user name", optional(&cfg.Form.MaxUsernameLength, strconv.Atoi))
	fs.Func("min-password-length", "Password length below which a warning is shown", optional(&cfg.Form.MinPasswordLength, strconv.Atoi))
	fs.Func("min-age", "Minimum accepted age", optional(&cfg.Form.MinAge, parseFloat))
	fs.Func("max-age", "Maximum accepted age", optional(&cfg.Form.MaxAge, parseFloat))
	fs.StringVar(&cfg.Form.Decoration, "decoration", "", "Field decoration (graphic, style_class)")
	fs.BoolVar(&css, "css", false, "Decorate fields with style classes")
	fs.StringVar(&cfg.Summary.Prefix, "summary-prefix", "", "Prefix of every summary line")
	fs.StringVar(&cfg.Summary.Separator, "summary-separator", "", "Separator between summary lines")
	fs.Var(&severities, "summary-severities", "Comma separated severities listed in the summary")
	fs.StringVar(&cfg.Log.Path, "log", "", "Log file path")
	fs.StringVar(&cfg.FilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if css && cfg.Form.Decoration == "" {
		cfg.Form.Decoration = DecorationStyleClass
	}
	cfg.Summary.Severities = severities
	return &cfg, nil
}

// optional returns a flag.Func callback that sets *dst only when the flag is
// given, leaving it nil otherwise.
func optional[T any](dst **T, parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		v, err := parse(s)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
