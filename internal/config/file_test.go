package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"form": {
			"mode": "explicit",
			"max_username_length": 20,
			"min_password_length": 6,
			"min_age": 13,
			"max_age": 99,
			"decoration": "style_class"
		},
		"summary": {
			"prefix": "- ",
			"separator": "\n",
			"severities": ["error", "warning"]
		},
		"log": { "path": "/var/log/formdemo.log" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "explicit", cfg.Form.Mode)
	assert.Equal(t, ptr(20), cfg.Form.MaxUsernameLength)
	assert.Equal(t, ptr(6), cfg.Form.MinPasswordLength)
	assert.Equal(t, ptr(13.0), cfg.Form.MinAge)
	assert.Equal(t, ptr(99.0), cfg.Form.MaxAge)
	assert.Equal(t, DecorationStyleClass, cfg.Form.Decoration)

	assert.Equal(t, "- ", cfg.Summary.Prefix)
	assert.Equal(t, "\n", cfg.Summary.Separator)
	assert.Equal(t, []string{"error", "warning"}, cfg.Summary.Severities)

	assert.Equal(t, "/var/log/formdemo.log", cfg.Log.Path)
	assert.Empty(t, cfg.FilePath, "a json file never points to another one")
}

func TestParseFile_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseFile("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a config file")
}

func TestParseFile_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding config file")
}

func TestParseFile_WrongType(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_type.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ "form": { "max_username_length": "ten" } }`), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding config file")
}

func TestParseFile_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFile_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ "form": { "mode": "immediate" } }`), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "immediate", cfg.Form.Mode)
	assert.Nil(t, cfg.Form.MaxUsernameLength)

	// Others remain zero
	assert.Equal(t, Summary{}, cfg.Summary)
	assert.Equal(t, Log{}, cfg.Log)
}

func TestParseFile_YAML(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yml")
	body := "form:\n  mode: immediate_clearing\n  max_age: 77\nsummary:\n  severities: [warning]\nlog:\n  path: y.log\n"
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "immediate_clearing", cfg.Form.Mode)
	assert.Equal(t, ptr(77.0), cfg.Form.MaxAge)
	assert.Equal(t, []string{"warning"}, cfg.Summary.Severities)
	assert.Equal(t, "y.log", cfg.Log.Path)
}

func TestParseFile_TOML(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.toml")
	body := "[form]\nmode = \"explicit\"\nmax_username_length = 9\n\n[summary]\nprefix = \"> \"\nseverities = [\"error\", \"warning\"]\n"
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.Form.Mode)
	assert.Equal(t, ptr(9), cfg.Form.MaxUsernameLength)
	assert.Equal(t, "> ", cfg.Summary.Prefix)
	assert.Equal(t, []string{"error", "warning"}, cfg.Summary.Severities)
}

func TestParseFile_EmptyYAML(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(p, nil, 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFile_UnknownExtension(t *testing.T) {
	// Act
	cfg, err := parseFile("config.ini")

	// Assert
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnknownFileFormat)
}

func TestParseFile_BadTOML(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(p, []byte("[form\nmode = "), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding config file")
}

func TestParseFile_ExplicitZero(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"form": {"min_password_length": 0, "min_age": 0}}`), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, ptr(0), cfg.Form.MinPasswordLength)
	assert.Equal(t, ptr(0.0), cfg.Form.MinAge)
	assert.Nil(t, cfg.Form.MaxAge)
}
