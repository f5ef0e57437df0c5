package service

import (
	"context"
	"errors"
	"fmt"

	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/internal/analyzer/repository"
	"golang-stock-analyzer/pkg/logger"
)

// QuoteFetcher retrieves the current price and previous close for a symbol.
type QuoteFetcher interface {
	Fetch(ctx context.Context, symbol string) (*dto.Quote, error)
}

// NewQuoteFetcher creates a new QuoteFetcher.
func NewQuoteFetcher(quoteRepo repository.QuoteRepository, log *logger.Logger) QuoteFetcher {
	return &quoteFetcher{
		quoteRepo: quoteRepo,
		logger:    log,
	}
}

type quoteFetcher struct {
	quoteRepo repository.QuoteRepository
	logger    *logger.Logger
}

// Fetch fails with ErrQuoteIncomplete when the provider omits the current price.
// A missing previous close is left for the change stage to reject.
func (f *quoteFetcher) Fetch(ctx context.Context, symbol string) (*dto.Quote, error) {
	resp, err := f.quoteRepo.GetQuote(ctx, symbol)
	if err != nil {
		f.logger.ErrorContext(ctx, "Quote request failed", logger.ErrorField(err), logger.StringField("symbol", symbol))
		if !errors.Is(err, dto.ErrProviderUnavailable) {
			err = fmt.Errorf("%w: %v", dto.ErrProviderUnavailable, err)
		}
		return nil, err
	}

	if resp == nil || resp.Current == nil {
		f.logger.WarnContext(ctx, "Quote has no current price", logger.StringField("symbol", symbol))
		return nil, fmt.Errorf("%w: current price missing for %s", dto.ErrQuoteIncomplete, symbol)
	}

	return &dto.Quote{
		CurrentPrice:  *resp.Current,
		PreviousClose: resp.PreviousClose,
	}, nil
}
