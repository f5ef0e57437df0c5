package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	outcome    dto.PipelineOutcome
	panic      bool
	queries    []string
	requestIDs []string
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, query string) dto.PipelineOutcome {
	f.queries = append(f.queries, query)
	f.requestIDs = append(f.requestIDs, logger.RequestID(ctx))
	if f.panic {
		panic("boom")
	}
	return f.outcome
}

var appleResult = dto.AnalysisResult{
	Company:      "Apple Inc",
	Ticker:       "AAPL",
	Price:        150,
	PriceINR:     12300,
	Change:       2,
	ChangeINR:    164,
	Percent:      1.35,
	Analysis:     "Apple rose on strong earnings.",
	NewsArticles: 2,
	Timestamp:    "2024-03-15T09:00:00Z",
}

func newTestServer(analyzer *fakeAnalyzer) *echo.Echo {
	static := fstest.MapFS{"index.html": {Data: []byte("<html><body>Stock Analyzer</body></html>")}}
	apis := map[string]bool{"finnhub": true, "tavily": false, "groq": true}
	return NewServer(analyzer, apis, static, logger.NewNop())
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeSuccess(t *testing.T) {
	for _, path := range []string{"/analyze", "/api/v1/analyze"} {
		t.Run(path, func(t *testing.T) {
			analyzer := &fakeAnalyzer{outcome: dto.Succeeded(appleResult)}
			e := newTestServer(analyzer)

			rec := doRequest(e, http.MethodPost, path, `{"query":"  Apple "}`)

			require.Equal(t, http.StatusOK, rec.Code)
			var body struct {
				Success bool               `json:"success"`
				Data    dto.AnalysisResult `json:"data"`
				Error   *string            `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, body.Success)
			assert.Nil(t, body.Error)
			assert.Equal(t, appleResult, body.Data)
			assert.Equal(t, []string{"Apple"}, analyzer.queries)
		})
	}
}

func TestAnalyzeResponseFieldNames(t *testing.T) {
	e := newTestServer(&fakeAnalyzer{outcome: dto.Succeeded(appleResult)})

	rec := doRequest(e, http.MethodPost, "/analyze", `{"query":"Apple"}`)

	var raw struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"company", "ticker", "price", "price_inr", "change", "change_inr", "percent", "analysis", "news_articles", "timestamp"} {
		assert.Contains(t, raw.Data, key)
	}
	assert.Len(t, raw.Data, 10)
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "blank query", body: `{"query":"   "}`, wantErr: MsgEmptyQuery},
		{name: "missing query", body: `{}`, wantErr: MsgEmptyQuery},
		{name: "malformed json", body: `{"query":`, wantErr: "Invalid request payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := &fakeAnalyzer{}
			e := newTestServer(analyzer)

			rec := doRequest(e, http.MethodPost, "/analyze", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantErr, body.Error)
			assert.Empty(t, analyzer.queries)
		})
	}
}

func TestAnalyzePipelineFailure(t *testing.T) {
	analyzer := &fakeAnalyzer{outcome: dto.Failed(dto.FailureNotFound, dto.MsgTickerNotFound)}
	e := newTestServer(analyzer)

	rec := doRequest(e, http.MethodPost, "/analyze", `{"query":"zzznonexistent"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, dto.MsgTickerNotFound, body["error"])
	assert.NotContains(t, body, "data")
	assert.NotContains(t, body, "Kind")
}

func TestAnalyzePanicIsHidden(t *testing.T) {
	e := newTestServer(&fakeAnalyzer{panic: true})

	rec := doRequest(e, http.MethodPost, "/analyze", `{"query":"Apple"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestAnalyzeCarriesRequestID(t *testing.T) {
	analyzer := &fakeAnalyzer{outcome: dto.Succeeded(appleResult)}
	e := newTestServer(analyzer)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"query":"Apple"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, []string{"req-123"}, analyzer.requestIDs)
}

func TestHealth(t *testing.T) {
	for _, path := range []string{"/health", "/api/v1/health"} {
		t.Run(path, func(t *testing.T) {
			e := newTestServer(&fakeAnalyzer{})

			rec := doRequest(e, http.MethodGet, path, "")

			require.Equal(t, http.StatusOK, rec.Code)
			var body dto.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "healthy", body.Status)
			assert.Equal(t, map[string]bool{"finnhub": true, "tavily": false, "groq": true}, body.APIsConfigured)
			_, err := time.Parse(time.RFC3339, body.Timestamp)
			assert.NoError(t, err)
		})
	}
}

func TestIndexPage(t *testing.T) {
	e := newTestServer(&fakeAnalyzer{})

	rec := doRequest(e, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	assert.Contains(t, rec.Body.String(), "Stock Analyzer")
}

func TestUnknownRouteUsesErrorShape(t *testing.T) {
	e := newTestServer(&fakeAnalyzer{})

	rec := doRequest(e, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
}
