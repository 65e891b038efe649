// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"FORM_MODE":                "immediate_clearing",
		"FORM_MAX_USERNAME_LENGTH": "12",
		"FORM_MIN_PASSWORD_LENGTH": "10",
		"FORM_MIN_AGE":             "21",
		"FORM_MAX_AGE":             "99.5",
		"FORM_DECORATION":          "style_class",

		"SUMMARY_PREFIX":     "- ",
		"SUMMARY_SEPARATOR":  "; ",
		"SUMMARY_SEVERITIES": "error,warning",

		"LOG_PATH": "/tmp/formdemo.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.FilePath)

	assert.Equal(t, "immediate_clearing", cfg.Form.Mode)
	assert.Equal(t, ptr(12), cfg.Form.MaxUsernameLength)
	assert.Equal(t, ptr(10), cfg.Form.MinPasswordLength)
	assert.Equal(t, ptr(21.0), cfg.Form.MinAge)
	assert.Equal(t, ptr(99.5), cfg.Form.MaxAge)
	assert.Equal(t, DecorationStyleClass, cfg.Form.Decoration)

	assert.Equal(t, "- ", cfg.Summary.Prefix)
	assert.Equal(t, "; ", cfg.Summary.Separator)
	assert.Equal(t, []string{"error", "warning"}, cfg.Summary.Severities)

	assert.Equal(t, "/tmp/formdemo.log", cfg.Log.Path)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"FORM_MODE": "explicit",
		"LOG_PATH":  "demo.log",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.Form.Mode)
	assert.Equal(t, "demo.log", cfg.Log.Path)
	assert.Nil(t, cfg.Form.MaxUsernameLength)
	assert.Nil(t, cfg.Form.MinAge)
	assert.Empty(t, cfg.Summary.Severities)
	assert.Empty(t, cfg.FilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	setEnvVars(t, nil)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidNumber(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"FORM_MAX_USERNAME_LENGTH": "sixteen",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"FORM_MODE",
		"FORM_MAX_USERNAME_LENGTH",
		"FORM_MIN_PASSWORD_LENGTH",
		"FORM_MIN_AGE",
		"FORM_MAX_AGE",
		"FORM_DECORATION",

		"SUMMARY_PREFIX",
		"SUMMARY_SEPARATOR",
		"SUMMARY_SEVERITIES",

		"LOG_PATH",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
