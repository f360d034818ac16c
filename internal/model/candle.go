package model

import "time"

// Candle represents a single OHLCV bar.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series holds a chronological window of candles for one symbol.
type Series struct {
	Symbol    string
	Interval  string
	Candles   []Candle
	FetchedAt time.Time
}

// Len returns the number of candles in the series.
func (s *Series) Len() int { return len(s.Candles) }

// Closes extracts the close prices in chronological order.
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.Candles))
	for i, c := range s.Candles {
		closes[i] = c.Close
	}
	return closes
}

// Volumes extracts the volumes in chronological order.
func (s *Series) Volumes() []float64 {
	volumes := make([]float64, len(s.Candles))
	for i, c := range s.Candles {
		volumes[i] = c.Volume
	}
	return volumes
}

// Ticker holds the latest 24h quote for a symbol.
type Ticker struct {
	Symbol      string
	Last        float64
	Open        float64
	QuoteVolume float64
}
