package service

import (
	"context"
	"errors"
	"testing"

	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerResolverResolve(t *testing.T) {
	repo := &fakeSearchRepo{resp: &dto.SymbolSearchResponse{
		Count: 2,
		Result: []dto.SymbolMatch{
			{Symbol: "AAPL", Description: "APPLE INC"},
			{Symbol: "APLE", Description: "APPLE HOSPITALITY REIT INC"},
		},
	}}

	identity, err := NewTickerResolver(repo, logger.NewNop()).Resolve(context.Background(), "Apple")
	require.NoError(t, err)
	assert.Equal(t, dto.TickerIdentity{Symbol: "AAPL", CompanyName: "APPLE INC"}, *identity)
	assert.Equal(t, []string{"Apple"}, repo.calls)
}

func TestTickerResolverFailures(t *testing.T) {
	tests := []struct {
		name    string
		repo    *fakeSearchRepo
		wantErr error
	}{
		{
			name:    "zero matches",
			repo:    &fakeSearchRepo{resp: &dto.SymbolSearchResponse{Count: 0}},
			wantErr: dto.ErrTickerNotFound,
		},
		{
			name:    "count without results",
			repo:    &fakeSearchRepo{resp: &dto.SymbolSearchResponse{Count: 3}},
			wantErr: dto.ErrTickerNotFound,
		},
		{
			name:    "blank symbol",
			repo:    &fakeSearchRepo{resp: &dto.SymbolSearchResponse{Count: 1, Result: []dto.SymbolMatch{{Symbol: " "}}}},
			wantErr: dto.ErrTickerNotFound,
		},
		{
			name:    "provider fault",
			repo:    &fakeSearchRepo{err: dto.ErrProviderUnavailable},
			wantErr: dto.ErrProviderUnavailable,
		},
		{
			name:    "unclassified fault",
			repo:    &fakeSearchRepo{err: errors.New("boom")},
			wantErr: dto.ErrProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := NewTickerResolver(tt.repo, logger.NewNop()).Resolve(context.Background(), "zzz")
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
