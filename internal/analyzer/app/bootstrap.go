package app

import (
	"context"
	"fmt"

	"golang-stock-analyzer/internal/analyzer/config"
	"golang-stock-analyzer/internal/analyzer/repository"
	"golang-stock-analyzer/internal/analyzer/service"
	"golang-stock-analyzer/pkg/logger"
	"golang-stock-analyzer/pkg/tracing"
)

// NewAnalyzerService wires repositories, pipeline stages and tracing from cfg.
func NewAnalyzerService(ctx context.Context, cfg *config.Config, log *logger.Logger, tp *tracing.Provider) (service.AnalyzerService, error) {
	finnhubRepo := repository.NewFinnhubRepository(cfg, log)

	newsRepo, err := repository.NewNewsRepository(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize news repository: %w", err)
	}

	aiRepo, err := repository.NewAIRepository(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize completion repository: %w", err)
	}

	resolver := service.TraceTickerResolver(service.NewTickerResolver(finnhubRepo, log), tp)
	quotes := service.TraceQuoteFetcher(service.NewQuoteFetcher(finnhubRepo, log), tp)
	news := service.TraceNewsFetcher(service.NewNewsFetcher(newsRepo, cfg.News.MaxArticles, log), tp)
	summarizer := service.TraceSummarizer(service.NewSummarizer(aiRepo, cfg.LLM.MaxConcurrent, cfg.Timeout(), log), tp)

	analyzer := service.NewAnalyzerService(resolver, quotes, news, summarizer, service.NewConverter(cfg.ConversionRate), log)
	return service.WithTracing(analyzer, tp), nil
}

// Setup loads configuration and builds the logger, tracer and analyzer service.
// Callers own the returned cleanup func.
func Setup(ctx context.Context, configPath string) (*config.Config, *logger.Logger, service.AnalyzerService, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	tp, err := tracing.New(ctx, cfg.Tracing, cfg.App.Version, nil)
	if err != nil {
		appLogger.Warn("Failed to initialize tracing, continuing without it", logger.ErrorField(err))
		tp = tracing.NewNop()
	}

	analyzer, err := NewAnalyzerService(ctx, cfg, appLogger, tp)
	if err != nil {
		_ = appLogger.Sync()
		return nil, nil, nil, nil, err
	}

	cleanup := func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			appLogger.Warn("Failed to flush traces", logger.ErrorField(err))
		}
		_ = appLogger.Sync()
	}
	return cfg, appLogger, analyzer, cleanup, nil
}
