package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	// WithoutDereference: a set pointer counts as a value even when it
	// points to zero.
	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	if err := mergo.Merge(config, defaultConfig(), mergo.WithoutDereference); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	return config, nil
}

// withDotEnv reads variables from the .env file at path. A missing file is
// not an error.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	dotEnvCfg, err := parseDotEnv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if dotEnvCfg != nil {
		b.configs = append(b.configs, dotEnvCfg)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var filePath string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			filePath = cfg.FilePath
		}
	}

	if filePath != "" {
		fileCfg, err := parseFile(filePath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, fileCfg)
	}

	return b
}
