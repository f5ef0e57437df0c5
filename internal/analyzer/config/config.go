package config

import (
	"fmt"
	"time"

	"golang-stock-analyzer/pkg/common"
	"golang-stock-analyzer/pkg/config"
)

// SymbolSearch holds the configuration for the ticker search and quote provider (Finnhub).
type SymbolSearch struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// News holds the configuration for the news provider.
type News struct {
	Provider    string `mapstructure:"provider"`
	BaseURL     string `mapstructure:"base_url"`
	APIKey      string `mapstructure:"api_key"`
	RSSBaseURL  string `mapstructure:"rss_base_url"`
	MaxArticles int    `mapstructure:"max_articles"`
}

// LLM holds the configuration for the completion provider used by the summarizer.
type LLM struct {
	Provider      string  `mapstructure:"provider"`
	BaseURL       string  `mapstructure:"base_url"`
	APIKey        string  `mapstructure:"api_key"`
	Model         string  `mapstructure:"model"`
	Temperature   float64 `mapstructure:"temperature"`
	MaxTokens     int     `mapstructure:"max_tokens"`
	MaxConcurrent int     `mapstructure:"max_concurrent"`
}

// Config holds the full configuration for the analyzer service.
type Config struct {
	App            config.App     `mapstructure:"app"`
	Logger         config.Logger  `mapstructure:"logger"`
	API            config.API     `mapstructure:"api"`
	HTTP           config.HTTP    `mapstructure:"http"`
	Tracing        config.Tracing `mapstructure:"tracing"`
	SymbolSearch   SymbolSearch   `mapstructure:"symbol_search"`
	News           News           `mapstructure:"news"`
	LLM            LLM            `mapstructure:"llm"`
	ConversionRate float64        `mapstructure:"conversion_rate"`
}

// Load loads the analyzer configuration from the given path.
// Every key has a default so the service also runs from environment variables alone
// (SYMBOL_SEARCH_API_KEY, NEWS_API_KEY, LLM_API_KEY, CONVERSION_RATE, ...).
func Load(path string) (*Config, error) {
	var cfg Config
	err := config.Load(path, &cfg,
		config.WithDefault("app.name", "stock-analyzer"),
		config.WithDefault("app.env", "development"),
		config.WithDefault("app.version", "1.0.0"),
		config.WithDefault("logger.level", "info"),
		config.WithDefault("logger.encoding", "console"),
		config.WithDefault("api.host", "0.0.0.0"),
		config.WithDefault("api.port", 8000),
		config.WithDefault("http.timeout", "10s"),
		config.WithDefault("tracing.enabled", false),
		config.WithDefault("tracing.service_name", "stock-analyzer"),
		config.WithDefault("symbol_search.base_url", "https://finnhub.io/api/v1"),
		config.WithDefault("symbol_search.api_key", ""),
		config.WithDefault("news.provider", common.NewsProviderTavily),
		config.WithDefault("news.base_url", "https://api.tavily.com"),
		config.WithDefault("news.api_key", ""),
		config.WithDefault("news.rss_base_url", "https://news.google.com/rss/search"),
		config.WithDefault("news.max_articles", common.DefaultNewsLimit),
		config.WithDefault("llm.provider", common.LLMProviderGroq),
		config.WithDefault("llm.base_url", ""),
		config.WithDefault("llm.api_key", ""),
		config.WithDefault("llm.model", ""),
		config.WithDefault("llm.temperature", 0.3),
		config.WithDefault("llm.max_tokens", 1024),
		config.WithDefault("llm.max_concurrent", 4),
		config.WithDefault("conversion_rate", common.DefaultConversionRate),
		config.WithEnv("symbol_search.api_key", "SYMBOL_SEARCH_API_KEY", "FINNHUB_API_KEY"),
		config.WithEnv("news.api_key", "NEWS_API_KEY", "TAVILY_API_KEY"),
		config.WithEnv("llm.api_key", "LLM_API_KEY", "GROQ_API_KEY"),
		config.WithEnv("api.port", "API_PORT", "PORT"),
	)
	if err != nil {
		return nil, err
	}

	cfg.applyProviderDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyProviderDefaults() {
	if c.LLM.BaseURL == "" {
		switch c.LLM.Provider {
		case common.LLMProviderGroq:
			c.LLM.BaseURL = "https://api.groq.com/openai/v1/chat/completions"
		case common.LLMProviderOpenAI:
			c.LLM.BaseURL = "https://api.openai.com/v1/chat/completions"
		case common.LLMProviderOpenRouter:
			c.LLM.BaseURL = "https://openrouter.ai/api/v1/chat/completions"
		}
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case common.LLMProviderGroq:
			c.LLM.Model = "llama-3.1-8b-instant"
		case common.LLMProviderOpenAI:
			c.LLM.Model = "gpt-4o-mini"
		case common.LLMProviderOpenRouter:
			c.LLM.Model = "meta-llama/llama-3.1-8b-instruct"
		case common.LLMProviderGemini:
			c.LLM.Model = "gemini-2.0-flash"
		}
	}
}

// Validate checks values that would otherwise fail deep inside a request.
func (c *Config) Validate() error {
	if c.ConversionRate <= 0 {
		return fmt.Errorf("conversion_rate must be positive, got %v", c.ConversionRate)
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %s", c.HTTP.Timeout)
	}
	if c.News.MaxArticles <= 0 {
		return fmt.Errorf("news.max_articles must be positive, got %d", c.News.MaxArticles)
	}
	if c.LLM.MaxConcurrent <= 0 {
		return fmt.Errorf("llm.max_concurrent must be positive, got %d", c.LLM.MaxConcurrent)
	}
	switch c.LLM.Provider {
	case common.LLMProviderGroq, common.LLMProviderOpenAI, common.LLMProviderOpenRouter, common.LLMProviderGemini:
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	switch c.News.Provider {
	case common.NewsProviderTavily, common.NewsProviderGoogleRSS:
	default:
		return fmt.Errorf("unsupported news.provider %q", c.News.Provider)
	}
	return nil
}

// Timeout returns the per-call timeout applied to every provider.
func (c *Config) Timeout() time.Duration {
	return c.HTTP.Timeout
}

// APIsConfigured reports whether each provider credential is present. It says nothing about validity.
func (c *Config) APIsConfigured() map[string]bool {
	return map[string]bool{
		"finnhub": c.SymbolSearch.APIKey != "",
		"tavily":  c.News.APIKey != "",
		"groq":    c.LLM.APIKey != "",
	}
}
