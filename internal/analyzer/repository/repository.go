package repository

import (
	"context"

	"golang-stock-analyzer/internal/analyzer/dto"
)

// SymbolSearchRepository maps a free-text query to ranked ticker matches.
type SymbolSearchRepository interface {
	SearchSymbol(ctx context.Context, query string) (*dto.SymbolSearchResponse, error)
}

// QuoteRepository returns the latest quote for a ticker.
type QuoteRepository interface {
	GetQuote(ctx context.Context, symbol string) (*dto.QuoteResponse, error)
}

// NewsRepository searches recent news about a company.
type NewsRepository interface {
	SearchNews(ctx context.Context, companyName string, limit int) (*dto.NewsSearchResponse, error)
}

// AIRepository sends a prompt to a language model and returns the generated text.
type AIRepository interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
