package repository

import (
	"time"

	"golang-stock-analyzer/internal/analyzer/config"
	pkgconfig "golang-stock-analyzer/pkg/config"
)

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		HTTP: pkgconfig.HTTP{Timeout: 2 * time.Second},
		SymbolSearch: config.SymbolSearch{
			BaseURL: baseURL,
			APIKey:  "finnhub-secret",
		},
		News: config.News{
			Provider:    "tavily",
			BaseURL:     baseURL,
			APIKey:      "tavily-secret",
			RSSBaseURL:  baseURL + "/rss/search",
			MaxArticles: 5,
		},
		LLM: config.LLM{
			Provider:      "groq",
			BaseURL:       baseURL + "/openai/v1/chat/completions",
			APIKey:        "groq-secret",
			Model:         "llama-3.1-8b-instant",
			Temperature:   0.3,
			MaxTokens:     512,
			MaxConcurrent: 2,
		},
		ConversionRate: 82,
	}
}
