package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default configuration", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Check server defaults
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8000, cfg.Server.Port)
		assert.Equal(t, "release", cfg.Server.Mode)

		// Check UI defaults
		assert.True(t, cfg.UI.Enabled)
		assert.Equal(t, 7860, cfg.UI.Port)

		// Check model defaults
		assert.Equal(t, "distilbert-base-uncased-finetuned-sst-2-english", cfg.Model.ID)
		assert.Equal(t, "http://localhost:8080", cfg.Model.InferenceURL)
		assert.Equal(t, "", cfg.Model.Token)
		assert.Equal(t, 30*time.Second, cfg.Model.Timeout)
		assert.Equal(t, 60*time.Second, cfg.Model.StartupWait)

		// Check log defaults
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("reads from environment variables", func(t *testing.T) {
		t.Setenv("SENTIMENT_SERVER_PORT", "9090")
		t.Setenv("SENTIMENT_UI_ENABLED", "false")
		t.Setenv("SENTIMENT_MODEL_INFERENCE_URL", "http://tei.internal:3000")
		t.Setenv("SENTIMENT_MODEL_TIMEOUT", "5s")
		t.Setenv("SENTIMENT_LOG_LEVEL", "debug")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.False(t, cfg.UI.Enabled)
		assert.Equal(t, "http://tei.internal:3000", cfg.Model.InferenceURL)
		assert.Equal(t, 5*time.Second, cfg.Model.Timeout)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("SENTIMENT_SERVER_PORT", "not-a-port")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Setenv("SENTIMENT_LOG_FORMAT", "xml")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Nil(t, cfg)
	})

	t.Run("rejects an inference url that is not a url", func(t *testing.T) {
		t.Setenv("SENTIMENT_MODEL_INFERENCE_URL", "localhost")

		_, err := Load()

		assert.Error(t, err)
	})
}

func TestAddr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8000", ServerConfig{Host: "127.0.0.1", Port: 8000}.Addr())
	assert.Equal(t, "0.0.0.0:7860", UIConfig{Host: "0.0.0.0", Port: 7860}.Addr())
}
