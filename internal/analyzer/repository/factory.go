package repository

import (
	"context"
	"fmt"
	"net/http"

	"golang-stock-analyzer/internal/analyzer/config"
	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/pkg/common"
	"golang-stock-analyzer/pkg/logger"

	"google.golang.org/genai"
)

// NewAIRepository builds the completion repository selected by llm.provider.
func NewAIRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	switch cfg.LLM.Provider {
	case common.LLMProviderGroq, common.LLMProviderOpenAI, common.LLMProviderOpenRouter:
		return NewGroqAIRepository(cfg, log), nil
	case common.LLMProviderGemini:
		clientConfig := &genai.ClientConfig{
			APIKey:     cfg.LLM.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: cfg.Timeout()},
		}
		if cfg.LLM.BaseURL != "" {
			clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.LLM.BaseURL}
		}
		genAiClient, err := genai.NewClient(ctx, clientConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini AI client: %w", err)
		}
		return NewGeminiAIRepository(cfg, log, genAiClient)
	default:
		return nil, fmt.Errorf("%w: llm provider %q", dto.ErrUnsupportedProvider, cfg.LLM.Provider)
	}
}

// NewNewsRepository builds the news repository selected by news.provider.
func NewNewsRepository(cfg *config.Config, log *logger.Logger) (NewsRepository, error) {
	switch cfg.News.Provider {
	case common.NewsProviderTavily:
		return NewTavilyNewsRepository(cfg, log), nil
	case common.NewsProviderGoogleRSS:
		return NewGoogleNewsRepository(cfg, log), nil
	default:
		return nil, fmt.Errorf("%w: news provider %q", dto.ErrUnsupportedProvider, cfg.News.Provider)
	}
}
