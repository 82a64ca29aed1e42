package app

import "errors"

// Config holds everything an App instance needs to run one generation.
type Config struct {
	ModelPath   string // model description file, or a directory holding one
	TemplateDir string // directory holding the two templates
	OutputDir   string // directory the generated files are written into

	LogFormat string
	LogLevel  string
}

// NewConfig validates a configuration and fills in directory defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("ModelPath is a required configuration field and cannot be empty")
	}
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "templates"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return &cfg, nil
}
