package app

import (
	"io"
	"log/slog"

	"github.com/john-livingston/DNest4/internal/hcl"
)

// App encapsulates one generation run's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader *hcl.Loader
}

// New constructs a fully initialized App with its own isolated logger.
func New(outW io.Writer, config *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(config.LogLevel, config.LogFormat, outW),
		config: config,
		loader: hcl.NewLoader(),
	}
}
