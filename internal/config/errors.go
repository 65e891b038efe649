package config

import "errors"

// Validation errors returned by [FormConfig.validate].
var (
	// ErrInvalidFormConfigs indicates invalid form rules (for example, an
	// unknown mode or a minimum age above the maximum).
	ErrInvalidFormConfigs = errors.New("invalid form configuration")
	// ErrInvalidSummaryConfigs indicates invalid summary settings (for
	// example, an unknown severity).
	ErrInvalidSummaryConfigs = errors.New("invalid summary configuration")
)
