package cache

import (
	"context"

	"github.com/rs/zerolog/log"

	"CoinScout/internal/market"
	"CoinScout/internal/model"
)

// CachedSource wraps a market.Source with the candle cache. Symbol
// listings and tickers always pass through; only candle history is
// cached.
type CachedSource struct {
	next  market.Source
	cache *CandleCache
}

// NewCachedSource wraps next with the given cache.
func NewCachedSource(next market.Source, cache *CandleCache) *CachedSource {
	return &CachedSource{next: next, cache: cache}
}

func (s *CachedSource) Name() string { return s.next.Name() + "+cache" }

func (s *CachedSource) ListSymbols(ctx context.Context) ([]string, error) {
	return s.next.ListSymbols(ctx)
}

func (s *CachedSource) GetTicker(ctx context.Context, symbol string) (*model.Ticker, error) {
	return s.next.GetTicker(ctx, symbol)
}

func (s *CachedSource) GetCandles(ctx context.Context, symbol, interval string, limit int) (*model.Series, error) {
	if series, ok := s.cache.Get(symbol, interval, limit); ok {
		return series, nil
	}
	series, err := s.next.GetCandles(ctx, symbol, interval, limit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(series, limit); err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("candle cache write failed")
	}
	return series, nil
}
