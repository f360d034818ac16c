package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"CoinScout/internal/model"
)

// BinanceSource implements Source against the Binance public REST API.
// Requests are rate limited client-side to stay well inside the public
// API weight limits during a full-universe screen.
type BinanceSource struct {
	Client     *http.Client
	BaseURL    string
	QuoteAsset string
	limiter    *rate.Limiter
}

// NewBinanceSource creates a Binance source for pairs quoted in
// quoteAsset (typically "USDT").
func NewBinanceSource(quoteAsset string) *BinanceSource {
	if quoteAsset == "" {
		quoteAsset = "USDT"
	}
	return &BinanceSource{
		Client:     &http.Client{Timeout: 30 * time.Second},
		BaseURL:    "https://api.binance.com",
		QuoteAsset: quoteAsset,
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
	}
}

func (b *BinanceSource) Name() string { return "binance" }

func (b *BinanceSource) pair(symbol string) string { return symbol + b.QuoteAsset }

func (b *BinanceSource) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return err
	}

	u := b.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return fmt.Errorf("binance fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("binance read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("binance: %s status %d, body: %s", path, resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("binance decode %s: %w", path, err)
	}
	return nil
}

type exchangeInfo struct {
	Symbols []struct {
		Symbol     string `json:"symbol"`
		Status     string `json:"status"`
		BaseAsset  string `json:"baseAsset"`
		QuoteAsset string `json:"quoteAsset"`
	} `json:"symbols"`
}

// ListSymbols returns the base assets of all actively trading pairs
// quoted in the configured quote asset.
func (b *BinanceSource) ListSymbols(ctx context.Context) ([]string, error) {
	var info exchangeInfo
	if err := b.get(ctx, "/api/v3/exchangeInfo", nil, &info); err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(info.Symbols))
	for _, s := range info.Symbols {
		if s.Status == "TRADING" && s.QuoteAsset == b.QuoteAsset {
			symbols = append(symbols, s.BaseAsset)
		}
	}
	return symbols, nil
}

type ticker24h struct {
	LastPrice   string `json:"lastPrice"`
	OpenPrice   string `json:"openPrice"`
	QuoteVolume string `json:"quoteVolume"`
}

// GetTicker returns the rolling 24h quote for a symbol.
func (b *BinanceSource) GetTicker(ctx context.Context, symbol string) (*model.Ticker, error) {
	query := url.Values{"symbol": {b.pair(symbol)}}
	var t ticker24h
	if err := b.get(ctx, "/api/v3/ticker/24hr", query, &t); err != nil {
		return nil, err
	}

	last, err := strconv.ParseFloat(t.LastPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("binance ticker %s: parse lastPrice: %w", symbol, err)
	}
	open, err := strconv.ParseFloat(t.OpenPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("binance ticker %s: parse openPrice: %w", symbol, err)
	}
	quoteVolume, err := strconv.ParseFloat(t.QuoteVolume, 64)
	if err != nil {
		return nil, fmt.Errorf("binance ticker %s: parse quoteVolume: %w", symbol, err)
	}

	return &model.Ticker{
		Symbol:      symbol,
		Last:        last,
		Open:        open,
		QuoteVolume: quoteVolume,
	}, nil
}

// GetCandles returns up to limit historical candles, oldest first.
func (b *BinanceSource) GetCandles(ctx context.Context, symbol, interval string, limit int) (*model.Series, error) {
	query := url.Values{
		"symbol":   {b.pair(symbol)},
		"interval": {interval},
		"limit":    {strconv.Itoa(limit)},
	}
	var raw [][]json.RawMessage
	if err := b.get(ctx, "/api/v3/klines", query, &raw); err != nil {
		return nil, err
	}

	candles := make([]model.Candle, 0, len(raw))
	for _, k := range raw {
		if len(k) < 6 {
			continue
		}
		candle, err := parseKline(k)
		if err != nil {
			return nil, fmt.Errorf("binance klines %s: %w", symbol, err)
		}
		candles = append(candles, candle)
	}

	return &model.Series{
		Symbol:    symbol,
		Interval:  interval,
		Candles:   candles,
		FetchedAt: time.Now(),
	}, nil
}

// parseKline decodes one kline row: open time, then OHLCV as strings.
func parseKline(k []json.RawMessage) (model.Candle, error) {
	var openTime int64
	if err := json.Unmarshal(k[0], &openTime); err != nil {
		return model.Candle{}, fmt.Errorf("open time: %w", err)
	}

	fields := make([]float64, 5)
	for i := 0; i < 5; i++ {
		var s string
		if err := json.Unmarshal(k[i+1], &s); err != nil {
			return model.Candle{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.Candle{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		fields[i] = v
	}

	return model.Candle{
		Time:   time.UnixMilli(openTime),
		Open:   fields[0],
		High:   fields[1],
		Low:    fields[2],
		Close:  fields[3],
		Volume: fields[4],
	}, nil
}
