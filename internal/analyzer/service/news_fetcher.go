package service

import (
	"context"
	"strings"

	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/internal/analyzer/repository"
	"golang-stock-analyzer/pkg/logger"
)

// NewsFetcher builds the news context for a company. It never fails.
type NewsFetcher interface {
	Fetch(ctx context.Context, companyName string) dto.NewsBundle
}

// NewNewsFetcher creates a new NewsFetcher requesting at most limit articles.
func NewNewsFetcher(newsRepo repository.NewsRepository, limit int, log *logger.Logger) NewsFetcher {
	return &newsFetcher{
		newsRepo: newsRepo,
		limit:    limit,
		logger:   log,
	}
}

type newsFetcher struct {
	newsRepo repository.NewsRepository
	limit    int
	logger   *logger.Logger
}

func (f *newsFetcher) Fetch(ctx context.Context, companyName string) dto.NewsBundle {
	resp, err := f.newsRepo.SearchNews(ctx, companyName, f.limit)
	if err != nil {
		f.logger.WarnContext(ctx, "News fetch failed, continuing without news", logger.ErrorField(err), logger.StringField("company", companyName))
		return dto.NewsBundle{CombinedText: dto.NoNewsAvailable}
	}

	if resp == nil || len(resp.Articles) == 0 {
		f.logger.InfoContext(ctx, "No recent news found", logger.StringField("company", companyName))
		return dto.NewsBundle{CombinedText: dto.NoRecentNews}
	}

	parts := make([]string, 0, len(resp.Articles))
	for _, article := range resp.Articles {
		if strings.TrimSpace(article.Title) == "" {
			continue
		}
		parts = append(parts, article.Title+". "+article.Description)
	}

	if len(parts) == 0 {
		f.logger.InfoContext(ctx, "No titled news articles found", logger.StringField("company", companyName),
			logger.IntField("dropped", len(resp.Articles)))
		return dto.NewsBundle{CombinedText: dto.NoRecentNews}
	}

	return dto.NewsBundle{
		CombinedText: strings.Join(parts, " "),
		ArticleCount: len(parts),
	}
}
