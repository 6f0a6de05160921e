package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevigo/code-sage/internal/config"
	"github.com/sevigo/code-sage/internal/core"
)

// ReviewService runs one model call per review and parses the reply.
// It holds no per-request state and is shared across requests.
type ReviewService struct {
	generator core.Generator
	system    string
	timeout   time.Duration
	logger    *slog.Logger
}

// NewReviewService renders the system instruction once and binds it to generator.
func NewReviewService(cfg *config.Config, prompts *PromptManager, generator core.Generator, logger *slog.Logger) (*ReviewService, error) {
	system, err := prompts.SystemInstruction(ModelProvider(cfg.LLMProvider))
	if err != nil {
		return nil, fmt.Errorf("failed to render system instruction: %w", err)
	}

	logger.Info("review service ready",
		"generator", generator.Name(),
		"instruction_version", SystemInstructionVersion,
		"timeout", cfg.ReviewTimeout)

	return &ReviewService{
		generator: generator,
		system:    system,
		timeout:   cfg.ReviewTimeout,
		logger:    logger,
	}, nil
}

// Review implements core.Reviewer.
func (s *ReviewService) Review(ctx context.Context, code string) (*core.ReviewResult, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", core.ErrValidation)
	}

	start := time.Now()
	raw, err := s.generateWithTimeout(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrUpstream, s.generator.Name(), err)
	}

	if !hasSections(raw) {
		s.logger.Debug("model reply is missing a section label", "reply_bytes", len(raw))
	}
	result := ParseReview(raw)

	s.logger.Info("review generated",
		"generator", s.generator.Name(),
		"code_bytes", len(code),
		"reply_bytes", len(raw),
		"suggestions", len(result.Suggestions),
		"elapsed", time.Since(start).Round(time.Millisecond))

	return result, nil
}

// generateWithTimeout wraps the model call with a hard timeout.
func (s *ReviewService) generateWithTimeout(ctx context.Context, code string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		resp string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		resp, err := s.generator.Generate(ctx, s.system, code)
		resultCh <- result{resp, err}
	}()

	select {
	case res := <-resultCh:
		return res.resp, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
