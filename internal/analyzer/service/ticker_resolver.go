package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/internal/analyzer/repository"
	"golang-stock-analyzer/pkg/logger"
)

// TickerResolver maps a free-text query to a ticker symbol and company name.
type TickerResolver interface {
	Resolve(ctx context.Context, query string) (*dto.TickerIdentity, error)
}

// NewTickerResolver creates a new TickerResolver.
func NewTickerResolver(searchRepo repository.SymbolSearchRepository, log *logger.Logger) TickerResolver {
	return &tickerResolver{
		searchRepo: searchRepo,
		logger:     log,
	}
}

type tickerResolver struct {
	searchRepo repository.SymbolSearchRepository
	logger     *logger.Logger
}

// Resolve returns the first ranked match. Zero matches yields ErrTickerNotFound,
// provider faults yield ErrProviderUnavailable.
func (r *tickerResolver) Resolve(ctx context.Context, query string) (*dto.TickerIdentity, error) {
	resp, err := r.searchRepo.SearchSymbol(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Symbol search failed", logger.ErrorField(err), logger.StringField("query", query))
		if !errors.Is(err, dto.ErrProviderUnavailable) {
			err = fmt.Errorf("%w: %v", dto.ErrProviderUnavailable, err)
		}
		return nil, err
	}

	if resp == nil || resp.Count == 0 || len(resp.Result) == 0 {
		r.logger.InfoContext(ctx, "No ticker matches the query", logger.StringField("query", query))
		return nil, dto.ErrTickerNotFound
	}

	match := resp.Result[0]
	symbol := strings.TrimSpace(match.Symbol)
	if symbol == "" {
		r.logger.WarnContext(ctx, "First search match has no symbol", logger.StringField("query", query))
		return nil, dto.ErrTickerNotFound
	}

	return &dto.TickerIdentity{
		Symbol:      symbol,
		CompanyName: match.Description,
	}, nil
}
