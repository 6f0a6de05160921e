// Package app initializes and orchestrates the main components of the CodeSage service.
// It wires together the configuration, the review pipeline and the HTTP server.
package app

import (
	"log/slog"

	"github.com/sevigo/code-sage/internal/config"
	"github.com/sevigo/code-sage/internal/core"
	"github.com/sevigo/code-sage/internal/server"
)

// App holds the main application components.
type App struct {
	Cfg      *config.Config
	Reviewer core.Reviewer
	Logger   *slog.Logger
	server   *server.Server
}

// NewApp assembles the application from already constructed dependencies.
func NewApp(cfg *config.Config, reviewer core.Reviewer, srv *server.Server, logger *slog.Logger) *App {
	return &App{
		Cfg:      cfg,
		Reviewer: reviewer,
		Logger:   logger,
		server:   srv,
	}
}

// Start runs the HTTP server.
func (a *App) Start() error {
	a.Logger.Info("starting CodeSage",
		"server_port", a.Cfg.ServerPort,
		"llm_provider", a.Cfg.LLMProvider,
		"model", a.Cfg.GeneratorModelName)

	if err := a.server.Start(); err != nil {
		a.Logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.Logger.Info("shutting down CodeSage services")

	if err := a.server.Stop(); err != nil {
		a.Logger.Error("CodeSage stopped with errors", "error", err)
		return err
	}

	a.Logger.Info("CodeSage stopped successfully")
	return nil
}
