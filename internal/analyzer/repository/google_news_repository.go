package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang-stock-analyzer/internal/analyzer/config"
	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

type googleNewsRepository struct {
	cfg    *config.Config
	log    *logger.Logger
	parser *gofeed.Parser
}

// NewGoogleNewsRepository creates a news repository backed by the Google News RSS search feed.
// It needs no API key.
func NewGoogleNewsRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: cfg.Timeout()}
	parser.UserAgent = "Mozilla/5.0 (compatible; golang-stock-analyzer/1.0)"

	return &googleNewsRepository{
		cfg:    cfg,
		log:    log,
		parser: parser,
	}
}

func (r *googleNewsRepository) SearchNews(ctx context.Context, companyName string, limit int) (*dto.NewsSearchResponse, error) {
	params := url.Values{}
	params.Set("q", companyName+" stock")
	params.Set("hl", "en-US")
	params.Set("gl", "US")
	params.Set("ceid", "US:en")
	feedURL := r.cfg.News.RSSBaseURL + "?" + params.Encode()

	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		r.log.WarnContext(ctx, "Failed to fetch Google News RSS", logger.ErrorField(err), logger.StringField("company", companyName))
		return nil, fmt.Errorf("%w: %v", dto.ErrProviderUnavailable, err)
	}

	articles := make([]dto.NewsArticle, 0, limit)
	for _, item := range feed.Items {
		if len(articles) >= limit {
			break
		}
		if item == nil || strings.TrimSpace(item.Title) == "" {
			continue
		}
		articles = append(articles, dto.NewsArticle{
			Title:       strings.TrimSpace(item.Title),
			Description: htmlToText(item.Description),
			URL:         item.Link,
		})
	}

	return &dto.NewsSearchResponse{Articles: articles}, nil
}

// htmlToText flattens the HTML snippet Google puts in RSS descriptions.
func htmlToText(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
