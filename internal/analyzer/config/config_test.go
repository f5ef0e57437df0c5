package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 82.0, cfg.ConversionRate)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, 5, cfg.News.MaxArticles)
	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Model)
	assert.Equal(t, "https://api.groq.com/openai/v1/chat/completions", cfg.LLM.BaseURL)
	assert.Equal(t, 8000, cfg.API.Port)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SYMBOL_SEARCH_API_KEY", "finnhub-key")
	t.Setenv("NEWS_API_KEY", "tavily-key")
	t.Setenv("LLM_API_KEY", "groq-key")
	t.Setenv("CONVERSION_RATE", "83.25")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "finnhub-key", cfg.SymbolSearch.APIKey)
	assert.Equal(t, "tavily-key", cfg.News.APIKey)
	assert.Equal(t, "groq-key", cfg.LLM.APIKey)
	assert.Equal(t, 83.25, cfg.ConversionRate)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, map[string]bool{"finnhub": true, "tavily": true, "groq": true}, cfg.APIsConfigured())
}

func TestLoadLegacyEnvironmentNames(t *testing.T) {
	t.Setenv("FINNHUB_API_KEY", "legacy-finnhub")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "legacy-finnhub", cfg.SymbolSearch.APIKey)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
llm:
  provider: gemini
news:
  provider: google_rss
conversion_rate: 84
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, "google_rss", cfg.News.Provider)
	assert.Equal(t, 84.0, cfg.ConversionRate)
}

func TestLoadOpenRouterDefaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openrouter")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://openrouter.ai/api/v1/chat/completions", cfg.LLM.BaseURL)
	assert.Equal(t, "meta-llama/llama-3.1-8b-instruct", cfg.LLM.Model)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{name: "zero conversion rate", mutate: func(c *Config) { c.ConversionRate = 0 }, errMsg: "conversion_rate"},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTP.Timeout = 0 }, errMsg: "http.timeout"},
		{name: "unknown llm provider", mutate: func(c *Config) { c.LLM.Provider = "claude" }, errMsg: "llm.provider"},
		{name: "unknown news provider", mutate: func(c *Config) { c.News.Provider = "bing" }, errMsg: "news.provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAPIsConfiguredReportsPresenceOnly(t *testing.T) {
	cfg := &Config{}
	cfg.LLM.APIKey = "anything"

	assert.Equal(t, map[string]bool{"finnhub": false, "tavily": false, "groq": true}, cfg.APIsConfigured())
}
