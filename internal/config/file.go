package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileFormat is returned for config files whose extension is not
// .json, .yaml, .yml or .toml.
var ErrUnknownFileFormat = errors.New("unknown config file format")

// StructuredFileConfig is the layout of the optional config file. The same
// keys are used in JSON, YAML and TOML.
type StructuredFileConfig struct {
	Form struct {
		Mode              string   `json:"mode" yaml:"mode" toml:"mode"`
		MaxUsernameLength *int     `json:"max_username_length" yaml:"max_username_length" toml:"max_username_length"`
		MinPasswordLength *int     `json:"min_password_length" yaml:"min_password_length" toml:"min_password_length"`
		MinAge            *float64 `json:"min_age" yaml:"min_age" toml:"min_age"`
		MaxAge            *float64 `json:"max_age" yaml:"max_age" toml:"max_age"`
		Decoration        string   `json:"decoration" yaml:"decoration" toml:"decoration"`
	} `json:"form,omitempty" yaml:"form,omitempty" toml:"form,omitempty"`

	Summary struct {
		Prefix     string   `json:"prefix" yaml:"prefix" toml:"prefix"`
		Separator  string   `json:"separator" yaml:"separator" toml:"separator"`
		Severities []string `json:"severities" yaml:"severities" toml:"severities"`
	} `json:"summary,omitempty" yaml:"summary,omitempty" toml:"summary,omitempty"`

	Log struct {
		Path string `json:"path" yaml:"path" toml:"path"`
	} `json:"log,omitempty" yaml:"log,omitempty" toml:"log,omitempty"`
}

type decodeFunc func(r io.Reader, v any) error

func decoderFor(path string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		return func(r io.Reader, v any) error { return json.NewDecoder(r).Decode(v) }, nil
	case ".yaml", ".yml":
		return func(r io.Reader, v any) error { return yaml.NewDecoder(r).Decode(v) }, nil
	case ".toml":
		return func(r io.Reader, v any) error { return toml.NewDecoder(r).Decode(v) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFileFormat, path)
	}
}

// parseFile reads the config file at path. The format follows the
// extension; files without one are read as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer f.Close()

	var fileCfg StructuredFileConfig
	if err := decode(f, &fileCfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	cfg := &StructuredConfig{
		Form: Form{
			Mode:              fileCfg.Form.Mode,
			MaxUsernameLength: fileCfg.Form.MaxUsernameLength,
			MinPasswordLength: fileCfg.Form.MinPasswordLength,
			MinAge:            fileCfg.Form.MinAge,
			MaxAge:            fileCfg.Form.MaxAge,
			Decoration:        fileCfg.Form.Decoration,
		},
		Summary: Summary{
			Prefix:     fileCfg.Summary.Prefix,
			Separator:  fileCfg.Summary.Separator,
			Severities: fileCfg.Summary.Severities,
		},
		Log: Log{
			Path: fileCfg.Log.Path,
		},
		FilePath: "",
	}

	return cfg, nil
}
