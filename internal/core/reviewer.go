package core

//go:generate mockgen -destination=../../mocks/mock_reviewer.go -package=mocks github.com/sevigo/code-sage/internal/core Reviewer,Generator

import (
	"context"
)

// Reviewer turns a code snippet into a structured review. Implementations must
// be safe for concurrent use; one instance is shared by every request.
type Reviewer interface {
	// Review sends code to the model and parses its reply. It returns an error
	// wrapping ErrValidation for empty input and ErrUpstream for any model failure.
	Review(ctx context.Context, code string) (*ReviewResult, error)
}

// Generator performs exactly one text-generation call against an external model.
type Generator interface {
	// Generate sends the system instruction and prompt and returns the model's
	// raw text reply, unmodified.
	Generate(ctx context.Context, system, prompt string) (string, error)
	// Name identifies the provider in logs.
	Name() string
}
