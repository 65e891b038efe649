package config

import (
	"testing"

	"github.com/MKhiriev/go-form-check/internal/validation"
	"github.com/MKhiriev/go-form-check/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFormConfig_Defaults(t *testing.T) {
	setEnvVars(t, nil)

	cfg, err := GetFormConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, &FormConfig{
		Mode:              validation.Immediate,
		MaxUsernameLength: 16,
		MinPasswordLength: 8,
		MinAge:            18,
		MaxAge:            130,
		Decoration:        DecorationGraphic,
		Summary: FormSummary{
			Prefix:     "• ",
			Separator:  "\n",
			Severities: []models.Severity{models.Error},
		},
		LogPath: defaultLogPath(),
	}, cfg)
}

func TestGetFormConfig_EscapedSeparator(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SUMMARY_SEPARATOR":  `\n\t`,
		"SUMMARY_SEVERITIES": "warning,error",
	})

	cfg, err := GetFormConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "\n\t", cfg.Summary.Separator)
	assert.Equal(t, []models.Severity{models.Warning, models.Error}, cfg.Summary.Severities)
}

func TestGetFormConfig_ExplicitZeros(t *testing.T) {
	setEnvVars(t, map[string]string{
		"FORM_MIN_PASSWORD_LENGTH": "0",
		"FORM_MIN_AGE":             "0",
	})

	cfg, err := GetFormConfig([]string{"-max-age", "0"})
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.MinPasswordLength)
	assert.Equal(t, 0.0, cfg.MinAge)
	assert.Equal(t, 0.0, cfg.MaxAge)
	assert.Equal(t, 16, cfg.MaxUsernameLength)
}

func TestNewFormConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "unknown mode",
			mutate:  func(cfg *StructuredConfig) { cfg.Form.Mode = "lazy" },
			wantErr: ErrInvalidFormConfigs,
		},
		{
			name:    "zero username length",
			mutate:  func(cfg *StructuredConfig) { cfg.Form.MaxUsernameLength = ptr(0) },
			wantErr: ErrInvalidFormConfigs,
		},
		{
			name:    "negative password length",
			mutate:  func(cfg *StructuredConfig) { cfg.Form.MinPasswordLength = ptr(-1) },
			wantErr: ErrInvalidFormConfigs,
		},
		{
			name:    "age range reversed",
			mutate:  func(cfg *StructuredConfig) { cfg.Form.MinAge, cfg.Form.MaxAge = ptr(50.0), ptr(40.0) },
			wantErr: ErrInvalidFormConfigs,
		},
		{
			name:    "unknown decoration",
			mutate:  func(cfg *StructuredConfig) { cfg.Form.Decoration = "sparkles" },
			wantErr: ErrInvalidFormConfigs,
		},
		{
			name:    "unknown severity",
			mutate:  func(cfg *StructuredConfig) { cfg.Summary.Severities = []string{"fatal"} },
			wantErr: ErrInvalidSummaryConfigs,
		},
		{
			name:    "no severities",
			mutate:  func(cfg *StructuredConfig) { cfg.Summary.Severities = nil },
			wantErr: ErrInvalidSummaryConfigs,
		},
		{
			name:    "empty separator",
			mutate:  func(cfg *StructuredConfig) { cfg.Summary.Separator = "" },
			wantErr: ErrInvalidSummaryConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			_, err := newFormConfig(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
