package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/code-sage/internal/config"
	"github.com/sevigo/code-sage/internal/core"
)

// NewGenerator creates the model client for the configured provider.
func NewGenerator(ctx context.Context, cfg *config.Config, prompts *PromptManager, logger *slog.Logger) (core.Generator, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		logger.Info("using Gemini LLM provider", "model", cfg.GeneratorModelName)
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set in environment for gemini provider")
		}
		return NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeneratorModelName, WithTemperature(cfg.Temperature))

	case config.ProviderOllama:
		logger.Info("using Ollama LLM provider", "model", cfg.GeneratorModelName, "host", cfg.OllamaHost)
		return NewOllamaGenerator(cfg.OllamaHost, cfg.GeneratorModelName, prompts, logger)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}
