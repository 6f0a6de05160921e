package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/ollama"
)

// ChatGenerator adapts a goframe model, which accepts a single prompt, to the
// system-plus-prompt contract by rendering InlineReviewPrompt.
type ChatGenerator struct {
	call     func(ctx context.Context, prompt string) (string, error)
	name     string
	provider ModelProvider
	prompts  *PromptManager
}

// NewChatGenerator wraps model.
func NewChatGenerator(model llms.Model, name string, provider ModelProvider, prompts *PromptManager) *ChatGenerator {
	return &ChatGenerator{
		call: func(ctx context.Context, prompt string) (string, error) {
			return model.Call(ctx, prompt)
		},
		name:     name,
		provider: provider,
		prompts:  prompts,
	}
}

// NewOllamaGenerator connects to an Ollama server through goframe.
func NewOllamaGenerator(host, model string, prompts *PromptManager, logger *slog.Logger) (*ChatGenerator, error) {
	m, err := ollama.New(
		ollama.WithServerURL(host),
		ollama.WithModel(model),
		ollama.WithHTTPClient(newOllamaHTTPClient()),
		ollama.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama model: %w", err)
	}
	return NewChatGenerator(m, string(OllamaProvider)+"/"+model, OllamaProvider, prompts), nil
}

func (g *ChatGenerator) Name() string { return g.name }

func (g *ChatGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	full, err := g.prompts.Render(InlineReviewPrompt, g.provider, InlineReviewData{
		System: system,
		Code:   prompt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render inline prompt: %w", err)
	}

	resp, err := g.call(ctx, full)
	if err != nil {
		return "", fmt.Errorf("%s call: %w", g.name, err)
	}
	return resp, nil
}

// newOllamaHTTPClient creates an HTTP client for local model servers.
// The overall deadline comes from the review timeout on the request context.
func newOllamaHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxConnsPerHost:     10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
