package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang-stock-analyzer/internal/analyzer/config"
	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/pkg/logger"
)

type tavilyNewsRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
}

// NewTavilyNewsRepository creates a news repository backed by the Tavily news endpoint.
func NewTavilyNewsRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	return &tavilyNewsRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// SearchNews queries the news endpoint. The endpoint has been seen to answer with either an
// "articles" or a "results" list; "articles" wins when both are present and non-empty.
func (r *tavilyNewsRepository) SearchNews(ctx context.Context, companyName string, limit int) (*dto.NewsSearchResponse, error) {
	params := url.Values{}
	params.Set("query", companyName)
	params.Set("limit", strconv.Itoa(limit))
	endpoint := strings.TrimRight(r.cfg.News.BaseURL, "/") + "/v1/news?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.cfg.News.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.WarnContext(ctx, "Failed to send request to news API", logger.ErrorField(err), logger.StringField("company", companyName))
		return nil, fmt.Errorf("%w: %v", dto.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read news response: %v", dto.ErrProviderUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.log.WarnContext(ctx, "Received non-OK response from news API", logger.IntField("status_code", resp.StatusCode), logger.StringField("company", companyName))
		return nil, fmt.Errorf("%w: news status %d", dto.ErrProviderUnavailable, resp.StatusCode)
	}

	var raw dto.TavilyNewsResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		r.log.WarnContext(ctx, "Failed to parse news API response", logger.ErrorField(err), logger.StringField("body", truncate(string(body), 256)))
		return nil, fmt.Errorf("%w: decode news response: %v", dto.ErrProviderUnavailable, err)
	}

	articles := raw.Articles
	if len(articles) == 0 {
		articles = raw.Results
	}
	return &dto.NewsSearchResponse{Articles: articles}, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
