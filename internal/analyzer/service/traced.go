package service

import (
	"context"

	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// Stage decorators that open one span per pipeline stage. Wiring happens in the app package.

type tracedAnalyzer struct {
	next   AnalyzerService
	tracer *tracing.Provider
}

var _ AnalyzerService = (*tracedAnalyzer)(nil)

// WithTracing wraps an AnalyzerService so every run is a root span.
func WithTracing(next AnalyzerService, tracer *tracing.Provider) AnalyzerService {
	return &tracedAnalyzer{next: next, tracer: tracer}
}

func (t *tracedAnalyzer) Analyze(ctx context.Context, query string) dto.PipelineOutcome {
	ctx, span := t.tracer.StartSpan(ctx, "analyzer.Analyze", attribute.String("query", query))
	defer span.End()

	outcome := t.next.Analyze(ctx, query)
	span.SetAttributes(attribute.Bool("success", outcome.Success))
	if !outcome.Success {
		span.SetAttributes(attribute.String("failure_kind", string(outcome.Kind)))
	}
	return outcome
}

type tracedResolver struct {
	next   TickerResolver
	tracer *tracing.Provider
}

// TraceTickerResolver wraps a TickerResolver with a span.
func TraceTickerResolver(next TickerResolver, tracer *tracing.Provider) TickerResolver {
	return &tracedResolver{next: next, tracer: tracer}
}

func (t *tracedResolver) Resolve(ctx context.Context, query string) (*dto.TickerIdentity, error) {
	ctx, span := t.tracer.StartSpan(ctx, "analyzer.ResolveTicker", attribute.String("query", query))
	defer span.End()

	identity, err := t.next.Resolve(ctx, query)
	tracing.RecordError(span, err)
	if identity != nil {
		span.SetAttributes(attribute.String("ticker", identity.Symbol))
	}
	return identity, err
}

type tracedQuoteFetcher struct {
	next   QuoteFetcher
	tracer *tracing.Provider
}

// TraceQuoteFetcher wraps a QuoteFetcher with a span.
func TraceQuoteFetcher(next QuoteFetcher, tracer *tracing.Provider) QuoteFetcher {
	return &tracedQuoteFetcher{next: next, tracer: tracer}
}

func (t *tracedQuoteFetcher) Fetch(ctx context.Context, symbol string) (*dto.Quote, error) {
	ctx, span := t.tracer.StartSpan(ctx, "analyzer.FetchQuote", attribute.String("ticker", symbol))
	defer span.End()

	quote, err := t.next.Fetch(ctx, symbol)
	tracing.RecordError(span, err)
	return quote, err
}

type tracedNewsFetcher struct {
	next   NewsFetcher
	tracer *tracing.Provider
}

// TraceNewsFetcher wraps a NewsFetcher with a span.
func TraceNewsFetcher(next NewsFetcher, tracer *tracing.Provider) NewsFetcher {
	return &tracedNewsFetcher{next: next, tracer: tracer}
}

func (t *tracedNewsFetcher) Fetch(ctx context.Context, companyName string) dto.NewsBundle {
	ctx, span := t.tracer.StartSpan(ctx, "analyzer.FetchNews", attribute.String("company", companyName))
	defer span.End()

	bundle := t.next.Fetch(ctx, companyName)
	span.SetAttributes(attribute.Int("news_articles", bundle.ArticleCount))
	return bundle
}

type tracedSummarizer struct {
	next   Summarizer
	tracer *tracing.Provider
}

// TraceSummarizer wraps a Summarizer with a span.
func TraceSummarizer(next Summarizer, tracer *tracing.Provider) Summarizer {
	return &tracedSummarizer{next: next, tracer: tracer}
}

func (t *tracedSummarizer) Summarize(ctx context.Context, identity dto.TickerIdentity, change dto.ChangeResult, newsText string) string {
	ctx, span := t.tracer.StartSpan(ctx, "analyzer.Summarize", attribute.String("ticker", identity.Symbol))
	defer span.End()

	text := t.next.Summarize(ctx, identity, change, newsText)
	span.SetAttributes(attribute.Bool("fallback", text == dto.FallbackAnalysis))
	return text
}
