package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang-stock-analyzer/internal/analyzer/config"
	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/pkg/logger"

	"go.uber.org/zap"
)

// FinnhubRepository serves both symbol search and quotes from Finnhub.
type FinnhubRepository interface {
	SymbolSearchRepository
	QuoteRepository
}

type finnhubRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
}

// NewFinnhubRepository creates a new Finnhub repository.
func NewFinnhubRepository(cfg *config.Config, log *logger.Logger) FinnhubRepository {
	return &finnhubRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

func (r *finnhubRepository) SearchSymbol(ctx context.Context, query string) (*dto.SymbolSearchResponse, error) {
	body, err := r.sendRequest(ctx, "/search", url.Values{"q": {query}})
	if err != nil {
		return nil, err
	}

	var response dto.SymbolSearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		r.log.ErrorContext(ctx, "Failed to decode Finnhub search response", logger.ErrorField(err), logger.StringField("query", query))
		return nil, fmt.Errorf("%w: decode search response: %v", dto.ErrProviderUnavailable, err)
	}

	r.log.DebugContext(ctx, "Finnhub search completed", logger.StringField("query", query), logger.IntField("count", response.Count))
	return &response, nil
}

func (r *finnhubRepository) GetQuote(ctx context.Context, symbol string) (*dto.QuoteResponse, error) {
	body, err := r.sendRequest(ctx, "/quote", url.Values{"symbol": {symbol}})
	if err != nil {
		return nil, err
	}

	var response dto.QuoteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		r.log.ErrorContext(ctx, "Failed to decode Finnhub quote response", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return nil, fmt.Errorf("%w: decode quote response: %v", dto.ErrProviderUnavailable, err)
	}

	return &response, nil
}

func (r *finnhubRepository) sendRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := strings.TrimRight(r.cfg.SymbolSearch.BaseURL, "/") + path
	fields := []zap.Field{
		zap.String("url", endpoint),
		zap.String("params", params.Encode()),
	}

	// the token is added after the log fields are built so it never ends up in logs
	params = cloneValues(params)
	params.Set("token", r.cfg.SymbolSearch.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, fmt.Errorf("%w: %v", dto.ErrProviderUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		err = stripURL(err)
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request to Finnhub API", fields...)
		return nil, fmt.Errorf("%w: %v", dto.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		r.log.ErrorContext(ctx, "Received non-OK response from Finnhub API", fields...)
		return nil, fmt.Errorf("%w: finnhub status %d", dto.ErrProviderUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read response body from Finnhub API", fields...)
		return nil, fmt.Errorf("%w: %v", dto.ErrProviderUnavailable, err)
	}

	return body, nil
}

// stripURL drops the request URL from transport errors; Finnhub carries the token in the query string.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+1)
	for key, values := range v {
		out[key] = append([]string(nil), values...)
	}
	return out
}
