package market

import (
	"context"

	"CoinScout/internal/model"
)

// Source defines the market data collaborator: symbol discovery, 24h
// tickers and historical candles. Implementations are configured with a
// quote asset and expose base-asset symbols (e.g. "BTC" for BTCUSDT).
type Source interface {
	ListSymbols(ctx context.Context) ([]string, error)
	GetTicker(ctx context.Context, symbol string) (*model.Ticker, error)
	GetCandles(ctx context.Context, symbol, interval string, limit int) (*model.Series, error)
	Name() string
}
