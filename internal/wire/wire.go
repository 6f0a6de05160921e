//go:build wireinject
// +build wireinject

package wire

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/code-sage/internal/app"
	"github.com/sevigo/code-sage/internal/config"
	"github.com/sevigo/code-sage/internal/core"
	"github.com/sevigo/code-sage/internal/llm"
	"github.com/sevigo/code-sage/internal/logger"
	"github.com/sevigo/code-sage/internal/server"
)

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		server.NewServer,
		config.LoadConfig,
		llm.NewPromptManager,
		llm.NewGenerator,
		llm.NewReviewService,
		wire.Bind(new(core.Reviewer), new(*llm.ReviewService)),
		provideLoggerConfig,
		provideLogWriter,
		provideSlogLogger,
	)
	return &app.App{}, nil, nil
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg *config.Config) io.Writer {
	return logger.Writer(cfg.Logging)
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}
