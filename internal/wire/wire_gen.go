// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/sevigo/code-sage/internal/app"
	"github.com/sevigo/code-sage/internal/config"
	"github.com/sevigo/code-sage/internal/llm"
	"github.com/sevigo/code-sage/internal/logger"
	"github.com/sevigo/code-sage/internal/server"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	slogLogger := logger.NewLogger(cfg.Logging, logger.Writer(cfg.Logging))

	promptManager, err := llm.NewPromptManager()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create prompt manager: %w", err)
	}

	generator, err := llm.NewGenerator(ctx, cfg, promptManager, slogLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create generator LLM: %w", err)
	}

	reviewService, err := llm.NewReviewService(cfg, promptManager, generator, slogLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create review service: %w", err)
	}

	srv := server.NewServer(cfg, reviewService, slogLogger)
	application := app.NewApp(cfg, reviewService, srv, slogLogger)

	return application, func() {}, nil
}
