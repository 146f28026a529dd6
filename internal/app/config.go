package app

import (
	"github.com/go-faster/errors"
	"github.com/vk/prodcat/internal/validator"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl settings file or directory
	ImportPath string // csv file with products to preload

	LogFormat string `validate:"oneof=text json"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	NoClear   bool
}

var validateConfig = validator.New().Struct

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// settingsPaths lists the paths handed to the settings loader.
func (c *Config) settingsPaths() []string {
	if c.ConfigPath == "" {
		return nil
	}
	return []string{c.ConfigPath}
}
