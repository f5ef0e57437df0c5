package service

import (
	"context"
	"strings"
	"time"

	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/internal/analyzer/repository"
	"golang-stock-analyzer/pkg/logger"
	"golang-stock-analyzer/pkg/utils"

	"golang.org/x/sync/semaphore"
)

// Summarizer turns the price change and news context into a narrative analysis.
// It never fails; any fault yields dto.FallbackAnalysis.
type Summarizer interface {
	Summarize(ctx context.Context, identity dto.TickerIdentity, change dto.ChangeResult, newsText string) string
}

// NewSummarizer creates a Summarizer that runs at most maxConcurrent completions at once,
// each bounded by timeout.
func NewSummarizer(aiRepo repository.AIRepository, maxConcurrent int, timeout time.Duration, log *logger.Logger) Summarizer {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &summarizer{
		aiRepo:  aiRepo,
		workers: semaphore.NewWeighted(int64(maxConcurrent)),
		timeout: timeout,
		logger:  log,
	}
}

type summarizer struct {
	aiRepo  repository.AIRepository
	workers *semaphore.Weighted
	timeout time.Duration
	logger  *logger.Logger
}

type completion struct {
	text string
	err  error
}

func (s *summarizer) Summarize(ctx context.Context, identity dto.TickerIdentity, change dto.ChangeResult, newsText string) string {
	prompt := repository.BuildStockAnalysisPrompt(repository.BuildPriceChangeInfo(identity, change), newsText)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.workers.Acquire(callCtx, 1); err != nil {
		s.logger.WarnContext(ctx, "No completion worker available", logger.ErrorField(err), logger.StringField("symbol", identity.Symbol))
		return dto.FallbackAnalysis
	}

	// closed without a value if the completion panics
	done := make(chan completion, 1)
	utils.GoSafe(ctx, s.logger, func() {
		defer close(done)
		defer s.workers.Release(1)
		text, err := s.aiRepo.Complete(callCtx, prompt)
		done <- completion{text: text, err: err}
	})

	select {
	case <-callCtx.Done():
		s.logger.WarnContext(ctx, "Completion timed out", logger.ErrorField(callCtx.Err()), logger.StringField("symbol", identity.Symbol))
		return dto.FallbackAnalysis
	case res, ok := <-done:
		if !ok {
			s.logger.ErrorContext(ctx, "Completion worker panicked", logger.StringField("symbol", identity.Symbol))
			return dto.FallbackAnalysis
		}
		if res.err != nil {
			s.logger.ErrorContext(ctx, "Completion failed", logger.ErrorField(res.err), logger.StringField("symbol", identity.Symbol))
			return dto.FallbackAnalysis
		}
		if strings.TrimSpace(res.text) == "" {
			s.logger.WarnContext(ctx, "Completion returned no text", logger.StringField("symbol", identity.Symbol))
			return dto.FallbackAnalysis
		}
		return res.text
	}
}
