package app

import (
	"context"
	"fmt"

	"github.com/john-livingston/DNest4/internal/ctxlog"
	"github.com/john-livingston/DNest4/internal/emitter"
	"github.com/john-livingston/DNest4/internal/fsutil"
)

// Run performs one complete, stateless generation: locate the model file,
// load and translate it, and emit both generated source files.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	modelPath, err := fsutil.FindModelFile(a.config.ModelPath)
	if err != nil {
		return fmt.Errorf("failed to locate model file: %w", err)
	}
	a.logger.Debug("Model file located.", "path", modelPath)

	result, err := a.loader.Load(ctx, modelPath)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}
	a.logger.Info("Model loaded.", "nodes", result.Model.Len(), "data_entries", len(result.Data))

	em := emitter.New(a.config.TemplateDir, a.config.OutputDir)
	if result.HeaderName != "" {
		em.HeaderName = result.HeaderName
	}
	if result.SourceName != "" {
		em.SourceName = result.SourceName
	}

	if err := em.Emit(ctx, result.Model, result.Data); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	a.logger.Info("Generation finished.", "header", em.HeaderName, "source", em.SourceName)
	return nil
}
