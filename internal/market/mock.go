package market

import (
	"context"
	"fmt"
	"time"

	"CoinScout/internal/model"
)

// MockSource returns controllable fixed data for development and tests.
type MockSource struct {
	Symbols    []string
	Tickers    map[string]*model.Ticker
	Series     map[string]*model.Series
	ListErr    error
	TickerErr  map[string]error
	CandlesErr map[string]error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) ListSymbols(_ context.Context) ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Symbols, nil
}

func (m *MockSource) GetTicker(_ context.Context, symbol string) (*model.Ticker, error) {
	if err := m.TickerErr[symbol]; err != nil {
		return nil, err
	}
	t, ok := m.Tickers[symbol]
	if !ok {
		return nil, fmt.Errorf("mock: no ticker for %s", symbol)
	}
	return t, nil
}

func (m *MockSource) GetCandles(_ context.Context, symbol, interval string, limit int) (*model.Series, error) {
	if err := m.CandlesErr[symbol]; err != nil {
		return nil, err
	}
	s, ok := m.Series[symbol]
	if !ok {
		return nil, fmt.Errorf("mock: no series for %s", symbol)
	}
	return s, nil
}

// GenerateSeries builds a synthetic series with a constant relative
// drift per candle. Useful for tests and offline runs.
func GenerateSeries(symbol string, count int, basePrice, drift, volume float64) *model.Series {
	candles := make([]model.Candle, count)
	price := basePrice
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		price *= 1 + drift
		candles[i] = model.Candle{
			Time:   start.AddDate(0, 0, i),
			Open:   price * 0.999,
			High:   price * 1.005,
			Low:    price * 0.995,
			Close:  price,
			Volume: volume,
		}
	}
	return &model.Series{
		Symbol:    symbol,
		Interval:  "1d",
		Candles:   candles,
		FetchedAt: start.AddDate(0, 0, count),
	}
}
