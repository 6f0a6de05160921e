package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "codesage-cli",
	Short: "codesage-cli reviews source files with the CodeSage reviewer.",
	Long: `A CLI for running CodeSage reviews from a terminal. It uses the same
configuration (.env file and environment) and review pipeline as the HTTP service.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("provider", "", "LLM provider (gemini or ollama)")
	flags.String("model", "", "Generator model name")
	flags.Duration("timeout", 0, "Timeout for a single review, e.g. 45s")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")

	bindings := map[string]string{
		"LLM_PROVIDER":         "provider",
		"GENERATOR_MODEL_NAME": "model",
		"REVIEW_TIMEOUT":       "timeout",
		"LOG_LEVEL":            "log-level",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig keeps stdout free for review output. The CLI runs no HTTP
// server, so the request bound only has to stay above the review timeout.
func initConfig() {
	viper.Set("LOG_OUTPUT", "stderr")
	if rootCmd.PersistentFlags().Changed("timeout") {
		viper.Set("SERVER_REQUEST_TIMEOUT", viper.GetDuration("REVIEW_TIMEOUT")+time.Minute)
	}
}
