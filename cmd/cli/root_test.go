package main

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/code-sage/internal/config"
)

func TestInitConfig_TimeoutFlag(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("GEMINI_API_KEY", "secret")

	flag := rootCmd.PersistentFlags().Lookup("timeout")
	require.NoError(t, rootCmd.PersistentFlags().Set("timeout", "3m"))
	t.Cleanup(func() {
		_ = flag.Value.Set("0s")
		flag.Changed = false
	})
	require.NoError(t, viper.BindPFlag("REVIEW_TIMEOUT", flag))

	initConfig()

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Minute, cfg.ReviewTimeout)
	assert.Equal(t, 4*time.Minute, cfg.ServerRequestTimeout)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}
