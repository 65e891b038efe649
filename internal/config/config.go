// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// DotEnvFile is the .env file read by GetStructuredConfig.
const DotEnvFile = ".env"

// StructuredConfig is the raw configuration of the form demo. It is
// populated by merging values from a .env file, environment variables,
// command-line flags and an optional JSON, YAML or TOML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Form holds the rules of the sign-up form.
	Form Form `envPrefix:"FORM_"`

	// Summary controls how the problem summary is rendered.
	Summary Summary `envPrefix:"SUMMARY_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a configuration file; the format
	// follows the extension (.json, .yaml, .yml, .toml).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// Form holds the rules of the sign-up form.
type Form struct {
	// Mode is the validation mode of every check: explicit, immediate or
	// immediate_clearing.
	// Env: FORM_MODE
	Mode string `env:"MODE"`

	// The numeric rules are pointers: nil means "not set by this source",
	// so an explicit 0 survives the merge with the defaults.

	// MaxUsernameLength is the longest accepted user name.
	// Env: FORM_MAX_USERNAME_LENGTH
	MaxUsernameLength *int `env:"MAX_USERNAME_LENGTH"`

	// MinPasswordLength is the password length below which a warning is
	// shown.
	// Env: FORM_MIN_PASSWORD_LENGTH
	MinPasswordLength *int `env:"MIN_PASSWORD_LENGTH"`

	// MinAge and MaxAge bound the accepted age.
	// Env: FORM_MIN_AGE, FORM_MAX_AGE
	MinAge *float64 `env:"MIN_AGE"`
	MaxAge *float64 `env:"MAX_AGE"`

	// Decoration selects how fields are decorated: graphic or style_class.
	// Env: FORM_DECORATION
	Decoration string `env:"DECORATION"`
}

// Summary controls how the problem summary is rendered.
type Summary struct {
	// Env: SUMMARY_PREFIX
	Prefix string `env:"PREFIX"`

	// Env: SUMMARY_SEPARATOR
	Separator string `env:"SEPARATOR"`

	// Severities lists the severities included, e.g. "error,warning".
	// Env: SUMMARY_SEVERITIES
	Severities []string `env:"SEVERITIES" envSeparator:","`
}

// Log holds logging settings.
type Log struct {
	// Path is the file the demo logs to, so that log lines do not mix with
	// the terminal UI. Default: formdemo.log in the XDG state directory.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

// Decoration kinds accepted in Form.Decoration.
const (
	DecorationGraphic    = "graphic"
	DecorationStyleClass = "style_class"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Form: Form{
			Mode:              "immediate",
			MaxUsernameLength: ptr(16),
			MinPasswordLength: ptr(8),
			MinAge:            ptr(18.0),
			MaxAge:            ptr(130.0),
			Decoration:        DecorationGraphic,
		},
		Summary: Summary{
			Prefix:     "• ",
			Separator:  "\n",
			Severities: []string{"error"},
		},
		Log: Log{
			Path: defaultLogPath(),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func defaultLogPath() string {
	return filepath.Join(xdg.StateHome, "go-form-check", "formdemo.log")
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. .env file in the working directory
//  2. Environment variables
//  3. Command-line flags
//  4. Config file (path resolved from sources 1 to 3)
//
// Fields left empty by every source take their default value.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DotEnvFile).
		withEnv().
		withFlags(args).
		withFile().
		build()
}
