package service

import (
	"context"
	"testing"
	"time"

	"golang-stock-analyzer/pkg/logger"
	"golang-stock-analyzer/pkg/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracedPipelineRecordsStageSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := tracing.NewWithTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	fakes := appleFakes()
	log := logger.NewNop()

	svc := WithTracing(NewAnalyzerService(
		TraceTickerResolver(NewTickerResolver(fakes.search, log), tp),
		TraceQuoteFetcher(NewQuoteFetcher(fakes.quote, log), tp),
		TraceNewsFetcher(NewNewsFetcher(fakes.news, 5, log), tp),
		TraceSummarizer(NewSummarizer(fakes.ai, 1, time.Second, log), tp),
		NewConverter(82),
		log,
	), tp)

	outcome := svc.Analyze(context.Background(), "Apple")
	require.True(t, outcome.Success)

	var names []string
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{
		"analyzer.ResolveTicker",
		"analyzer.FetchQuote",
		"analyzer.FetchNews",
		"analyzer.Summarize",
		"analyzer.Analyze",
	}, names)

	root := recorder.Ended()[4]
	for _, span := range recorder.Ended()[:4] {
		assert.Equal(t, root.SpanContext().SpanID(), span.Parent().SpanID())
	}
}

func TestTracedResolverMarksFailure(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := tracing.NewWithTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	fakes := appleFakes()
	fakes.search.resp.Count = 0
	fakes.search.resp.Result = nil

	_, err := TraceTickerResolver(NewTickerResolver(fakes.search, logger.NewNop()), tp).Resolve(context.Background(), "zzz")
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}
