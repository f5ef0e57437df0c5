package service

import (
	"context"
	"strings"
	"time"

	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/pkg/logger"
	"golang-stock-analyzer/pkg/utils"
)

// AnalyzerService runs the stock analysis pipeline.
type AnalyzerService interface {
	Analyze(ctx context.Context, query string) dto.PipelineOutcome
}

// NewAnalyzerService creates a new AnalyzerService.
func NewAnalyzerService(
	resolver TickerResolver,
	quotes QuoteFetcher,
	news NewsFetcher,
	summarizer Summarizer,
	converter Converter,
	log *logger.Logger,
) AnalyzerService {
	return &analyzerService{
		resolver:   resolver,
		quotes:     quotes,
		news:       news,
		summarizer: summarizer,
		converter:  converter,
		logger:     log,
		now:        utils.TimeNowUTC,
	}
}

type analyzerService struct {
	resolver   TickerResolver
	quotes     QuoteFetcher
	news       NewsFetcher
	summarizer Summarizer
	converter  Converter
	logger     *logger.Logger
	now        func() time.Time
}

// Analyze resolves the ticker, fetches the quote, computes the change, then enriches
// the result with news and an analysis. Only the first three stages can fail the run.
func (s *analyzerService) Analyze(ctx context.Context, query string) dto.PipelineOutcome {
	query = strings.TrimSpace(query)
	if query == "" {
		s.logger.InfoContext(ctx, "Rejected empty query")
		return dto.Failed(dto.FailureInvalidInput, dto.MsgInvalidQuery)
	}

	identity, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "Ticker resolution failed", logger.ErrorField(err), logger.StringField("query", query))
		return dto.Failed(dto.FailureNotFound, dto.MsgTickerNotFound)
	}
	s.logger.InfoContext(ctx, "Identified ticker", logger.StringField("ticker", identity.Symbol), logger.StringField("company", identity.CompanyName))

	quote, err := s.quotes.Fetch(ctx, identity.Symbol)
	if err != nil {
		s.logger.WarnContext(ctx, "Price fetch failed", logger.ErrorField(err), logger.StringField("ticker", identity.Symbol))
		return dto.Failed(dto.FailureUpstreamUnavailable, dto.MsgPriceUnavailable)
	}
	s.logger.InfoContext(ctx, "Current price", logger.StringField("ticker", identity.Symbol), logger.Float64Field("price", quote.CurrentPrice))

	if quote.PreviousClose == nil {
		s.logger.WarnContext(ctx, "Quote has no previous close", logger.StringField("ticker", identity.Symbol))
		return dto.Failed(dto.FailureUpstreamUnavailable, dto.MsgChangeUnavailable)
	}
	change, err := CalculateChange(quote.CurrentPrice, *quote.PreviousClose)
	if err != nil {
		s.logger.WarnContext(ctx, "Price change computation failed", logger.ErrorField(err), logger.StringField("ticker", identity.Symbol))
		return dto.Failed(dto.FailureUpstreamUnavailable, dto.MsgChangeUnavailable)
	}
	s.logger.InfoContext(ctx, "Price change",
		logger.StringField("ticker", identity.Symbol),
		logger.Float64Field("change", change.AbsoluteChange),
		logger.Float64Field("percent", change.PercentChange),
	)

	news := s.news.Fetch(ctx, identity.CompanyName)
	analysis := s.summarizer.Summarize(ctx, *identity, change, news.CombinedText)
	s.logger.InfoContext(ctx, "Analysis generated", logger.StringField("ticker", identity.Symbol), logger.IntField("news_articles", news.ArticleCount))

	return dto.Succeeded(dto.AnalysisResult{
		Company:      identity.CompanyName,
		Ticker:       identity.Symbol,
		Price:        Round2(quote.CurrentPrice),
		PriceINR:     s.converter.ToLocal(quote.CurrentPrice),
		Change:       change.AbsoluteChange,
		ChangeINR:    s.converter.ToLocal(change.AbsoluteChange),
		Percent:      change.PercentChange,
		Analysis:     analysis,
		NewsArticles: news.ArticleCount,
		Timestamp:    utils.FormatISO8601(s.now()),
	})
}
