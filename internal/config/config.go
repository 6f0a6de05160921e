package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/code-sage/internal/logger"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"

	defaultGeminiModel = "gemini-2.5-flash"
	defaultOllamaModel = "gemma3:latest"
)

// Config holds the application's configuration values.
type Config struct {
	ServerPort           string
	ServerRequestTimeout time.Duration
	MaxRequestBytes      int64
	CORSAllowedOrigins   []string

	LLMProvider        string
	GeneratorModelName string
	GeminiAPIKey       string
	OllamaHost         string
	Temperature        float32
	ReviewTimeout      time.Duration

	Logging logger.Config
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "90s")
	viper.SetDefault("MAX_REQUEST_BYTES", 1<<20)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")
	viper.SetDefault("LLM_PROVIDER", ProviderGemini)
	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("TEMPERATURE", 0.2)
	viper.SetDefault("REVIEW_TIMEOUT", "60s")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	provider := strings.ToLower(strings.TrimSpace(viper.GetString("LLM_PROVIDER")))

	generatorModel := viper.GetString("GENERATOR_MODEL_NAME")
	if generatorModel == "" {
		switch provider {
		case ProviderOllama:
			generatorModel = defaultOllamaModel
		default:
			generatorModel = defaultGeminiModel
		}
	}

	// GOOGLE_GEMINI_KEY is accepted for deployments configured for the original service.
	apiKey := viper.GetString("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = viper.GetString("GOOGLE_GEMINI_KEY")
	}

	cfg := &Config{
		ServerPort:           viper.GetString("SERVER_PORT"),
		ServerRequestTimeout: viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
		MaxRequestBytes:      viper.GetInt64("MAX_REQUEST_BYTES"),
		CORSAllowedOrigins:   splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		LLMProvider:          provider,
		GeneratorModelName:   generatorModel,
		GeminiAPIKey:         apiKey,
		OllamaHost:           viper.GetString("OLLAMA_HOST"),
		Temperature:          float32(viper.GetFloat64("TEMPERATURE")),
		ReviewTimeout:        viper.GetDuration("REVIEW_TIMEOUT"),
		Logging: logger.Config{
			Level:  strings.ToLower(viper.GetString("LOG_LEVEL")),
			Format: strings.ToLower(viper.GetString("LOG_FORMAT")),
			Output: strings.ToLower(viper.GetString("LOG_OUTPUT")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used to start the service.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY must be set for the %s provider", ProviderGemini)
		}
	case ProviderOllama:
		if c.OllamaHost == "" {
			return fmt.Errorf("OLLAMA_HOST must be set for the %s provider", ProviderOllama)
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %q", c.LLMProvider)
	}

	if c.GeneratorModelName == "" {
		return errors.New("GENERATOR_MODEL_NAME must not be empty")
	}
	if c.ReviewTimeout <= 0 {
		return fmt.Errorf("REVIEW_TIMEOUT must be positive, got %s", c.ReviewTimeout)
	}
	if c.ServerRequestTimeout <= 0 {
		return fmt.Errorf("SERVER_REQUEST_TIMEOUT must be positive, got %s", c.ServerRequestTimeout)
	}
	// The handler must answer before the router's timeout middleware does.
	if c.ReviewTimeout >= c.ServerRequestTimeout {
		return fmt.Errorf("REVIEW_TIMEOUT (%s) must be shorter than SERVER_REQUEST_TIMEOUT (%s)", c.ReviewTimeout, c.ServerRequestTimeout)
	}
	if c.MaxRequestBytes <= 0 {
		return fmt.Errorf("MAX_REQUEST_BYTES must be positive, got %d", c.MaxRequestBytes)
	}
	if len(c.CORSAllowedOrigins) == 0 {
		return errors.New("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
