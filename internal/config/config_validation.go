// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final [FormConfig] can drive the form.
func (cfg *FormConfig) validate() error {
	if cfg.MaxUsernameLength < 1 {
		return fmt.Errorf("%w: max username length %d", ErrInvalidFormConfigs, cfg.MaxUsernameLength)
	}
	if cfg.MinPasswordLength < 0 {
		return fmt.Errorf("%w: min password length %d", ErrInvalidFormConfigs, cfg.MinPasswordLength)
	}
	if cfg.MinAge > cfg.MaxAge {
		return fmt.Errorf("%w: age range [%g, %g]", ErrInvalidFormConfigs, cfg.MinAge, cfg.MaxAge)
	}
	if cfg.Decoration != DecorationGraphic && cfg.Decoration != DecorationStyleClass {
		return fmt.Errorf("%w: decoration %q", ErrInvalidFormConfigs, cfg.Decoration)
	}

	if len(cfg.Summary.Severities) == 0 {
		return fmt.Errorf("%w: no severities", ErrInvalidSummaryConfigs)
	}
	if cfg.Summary.Separator == "" {
		return fmt.Errorf("%w: empty separator", ErrInvalidSummaryConfigs)
	}

	return nil
}
