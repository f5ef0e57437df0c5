package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"golang-stock-analyzer/internal/analyzer/config"
	"golang-stock-analyzer/pkg/logger"
	"golang-stock-analyzer/pkg/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProviderServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":1,"result":[{"symbol":"AAPL","description":"Apple Inc"}]}`))
	})
	mux.HandleFunc("/quote", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"c":150,"pc":148}`))
	})
	mux.HandleFunc("/v1/news", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"title":"Apple beats estimates","description":"Strong sales"}]}`))
	})
	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Apple rose on earnings."}}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewAnalyzerServiceEndToEnd(t *testing.T) {
	srv := newProviderServer(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "symbol_search:\n  base_url: " + srv.URL + "\n" +
		"news:\n  base_url: " + srv.URL + "\n" +
		"llm:\n  base_url: " + srv.URL + "/chat/completions\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	analyzer, err := NewAnalyzerService(context.Background(), cfg, logger.NewNop(), tracing.NewNop())
	require.NoError(t, err)

	outcome := analyzer.Analyze(context.Background(), "Apple")
	require.True(t, outcome.Success, outcome.Error)
	assert.Equal(t, "AAPL", outcome.Data.Ticker)
	assert.Equal(t, "Apple Inc", outcome.Data.Company)
	assert.Equal(t, 12300.0, outcome.Data.PriceINR)
	assert.Equal(t, 164.0, outcome.Data.ChangeINR)
	assert.Equal(t, 1, outcome.Data.NewsArticles)
	assert.Equal(t, "Apple rose on earnings.", outcome.Data.Analysis)
}

func TestSetupRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  provider: claude\n"), 0o600))

	_, _, _, _, err := Setup(context.Background(), path)
	assert.Error(t, err)
}
