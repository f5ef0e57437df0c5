package service

import (
	"context"
	"sync"

	"golang-stock-analyzer/internal/analyzer/dto"
)

type fakeSearchRepo struct {
	mu    sync.Mutex
	resp  *dto.SymbolSearchResponse
	err   error
	calls []string
}

func (f *fakeSearchRepo) SearchSymbol(_ context.Context, query string) (*dto.SymbolSearchResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, query)
	return f.resp, f.err
}

type fakeQuoteRepo struct {
	mu    sync.Mutex
	resp  *dto.QuoteResponse
	err   error
	calls []string
}

func (f *fakeQuoteRepo) GetQuote(_ context.Context, symbol string) (*dto.QuoteResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, symbol)
	return f.resp, f.err
}

type fakeNewsRepo struct {
	mu     sync.Mutex
	resp   *dto.NewsSearchResponse
	err    error
	calls  []string
	limits []int
}

func (f *fakeNewsRepo) SearchNews(_ context.Context, companyName string, limit int) (*dto.NewsSearchResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, companyName)
	f.limits = append(f.limits, limit)
	return f.resp, f.err
}

type fakeAIRepo struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
	// block, when set, makes Complete wait for it or for ctx.
	block chan struct{}
	panic bool
}

func (f *fakeAIRepo) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	block := f.block
	f.mu.Unlock()

	if f.panic {
		panic("completion exploded")
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func (f *fakeAIRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func float(v float64) *float64 { return &v }
