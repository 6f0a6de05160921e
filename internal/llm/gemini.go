package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

var (
	errEmptyResponse   = errors.New("model returned no candidates")
	errBlockedResponse = errors.New("model returned no text")
)

// GeminiGenerator calls the Gemini API with a native system instruction.
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

type geminiOptions struct {
	baseURL     string
	httpClient  *http.Client
	temperature float32
}

// GeminiOption configures a GeminiGenerator.
type GeminiOption func(*geminiOptions)

// WithGeminiBaseURL points the client at a different API endpoint.
func WithGeminiBaseURL(url string) GeminiOption {
	return func(o *geminiOptions) { o.baseURL = url }
}

// WithGeminiHTTPClient sets the HTTP client used for API calls.
func WithGeminiHTTPClient(c *http.Client) GeminiOption {
	return func(o *geminiOptions) { o.httpClient = c }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) GeminiOption {
	return func(o *geminiOptions) { o.temperature = t }
}

// NewGeminiGenerator creates a Gemini-backed generator. It is built once at
// startup and shared by all requests.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, opts ...GeminiOption) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is empty")
	}
	if model == "" {
		return nil, errors.New("gemini model name is empty")
	}

	o := &geminiOptions{temperature: 0.2}
	for _, opt := range opts {
		opt(o)
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: o.httpClient,
	}
	if o.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: o.baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client:      client,
		model:       model,
		temperature: o.temperature,
	}, nil
}

func (g *GeminiGenerator) Name() string { return string(GeminiProvider) + "/" + g.model }

// Generate sends prompt as the only user turn with system as the system instruction.
func (g *GeminiGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errEmptyResponse
	}

	candidate := resp.Candidates[0]
	if !hasTextPart(candidate) && !finishedNormally(candidate.FinishReason) {
		return "", fmt.Errorf("%w: finish reason %q", errBlockedResponse, candidate.FinishReason)
	}

	return resp.Text(), nil
}

// finishedNormally reports whether generation stopped on its own or at the token limit.
// Safety, recitation and other reasons mean the reply was withheld.
func finishedNormally(reason genai.FinishReason) bool {
	return reason == genai.FinishReasonStop || reason == genai.FinishReasonMaxTokens
}

func hasTextPart(c *genai.Candidate) bool {
	if c == nil || c.Content == nil {
		return false
	}
	for _, part := range c.Content.Parts {
		if part != nil && part.Text != "" {
			return true
		}
	}
	return false
}
