package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-check/internal/validation"
	"github.com/MKhiriev/go-form-check/models"
)

// FormSummary holds the typed summary settings.
type FormSummary struct {
	Prefix     string
	Separator  string
	Severities []models.Severity
}

// FormConfig is the typed configuration of the form demo assembled from
// [StructuredConfig].
type FormConfig struct {
	Mode              validation.Mode
	MaxUsernameLength int
	MinPasswordLength int
	MinAge            float64
	MaxAge            float64
	Decoration        string
	Summary           FormSummary
	LogPath           string
}

// GetFormConfig builds and validates the demo configuration from the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetFormConfig(args []string) (*FormConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return newFormConfig(cfg)
}

func newFormConfig(cfg *StructuredConfig) (*FormConfig, error) {
	mode, err := validation.ParseMode(cfg.Form.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormConfigs, err)
	}

	severities := make([]models.Severity, 0, len(cfg.Summary.Severities))
	for _, name := range cfg.Summary.Severities {
		s, err := models.ParseSeverity(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSummaryConfigs, err)
		}
		severities = append(severities, s)
	}

	formCfg := &FormConfig{
		Mode:              mode,
		MaxUsernameLength: deref(cfg.Form.MaxUsernameLength),
		MinPasswordLength: deref(cfg.Form.MinPasswordLength),
		MinAge:            deref(cfg.Form.MinAge),
		MaxAge:            deref(cfg.Form.MaxAge),
		Decoration:        cfg.Form.Decoration,
		Summary: FormSummary{
			Prefix:     cfg.Summary.Prefix,
			Separator:  unescape(cfg.Summary.Separator),
			Severities: severities,
		},
		LogPath: cfg.Log.Path,
	}

	return formCfg, formCfg.validate()
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// unescape turns the two-character sequences \n and \t, as typed in a shell
// or an env file, into the characters they name.
func unescape(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}
