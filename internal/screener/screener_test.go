package screener

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CoinScout/internal/market"
	"CoinScout/internal/model"
	"CoinScout/internal/sentiment"
)

type stubSentimentSource struct{}

func (stubSentimentSource) Platform() model.Platform { return model.PlatformTwitter }
func (stubSentimentSource) Weight() float64          { return 1.0 }
func (stubSentimentSource) Structured() bool         { return false }

func (stubSentimentSource) Search(context.Context, string, time.Duration) ([]sentiment.Post, error) {
	return []sentiment.Post{{Title: "community chatter"}}, nil
}

type fixedScorer struct{ v float64 }

func (s fixedScorer) Score(string) float64 { return s.v }

// zigzagSeries builds a steady uptrend that gains two points then gives
// one back on alternating candles, with gently rising volume. The RSI
// settles in the upper-60s instead of pinning at 100 like a monotonic
// series would.
func zigzagSeries(symbol string, count int) *model.Series {
	candles := make([]model.Candle, count)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	close := 100.0
	for i := 0; i < count; i++ {
		if i > 0 {
			if i%2 == 1 {
				close += 2
			} else {
				close -= 1
			}
		}
		candles[i] = model.Candle{
			Time:   start.AddDate(0, 0, i),
			Open:   close,
			High:   close + 1,
			Low:    close - 1,
			Close:  close,
			Volume: 1000 + 10*float64(i),
		}
	}
	return &model.Series{Symbol: symbol, Interval: "1d", Candles: candles}
}

func liquidTicker(last float64) *model.Ticker {
	return &model.Ticker{Last: last, Open: last / 1.02, QuoteVolume: 500000}
}

func TestRun_BullishEndToEnd(t *testing.T) {
	src := &market.MockSource{
		Symbols: []string{"BTC"},
		Tickers: map[string]*model.Ticker{"BTC": liquidTicker(201)},
		Series:  map[string]*model.Series{"BTC": zigzagSeries("BTC", 200)},
	}
	agg := sentiment.NewAggregator(
		[]sentiment.Source{stubSentimentSource{}}, fixedScorer{v: 0.6},
		time.Hour, time.Second,
	)

	result, err := New(src, agg, DefaultOptions()).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.Empty(t, result.Skipped)
	assert.NotEmpty(t, result.RunID)

	c := result.Candidates[0]
	assert.Equal(t, "BTC", c.Symbol)
	assert.Equal(t, 201.0, c.CurrentPrice)

	trend := c.Technical.Trend
	assert.Equal(t, model.TrendBullish, trend.MACDTrend)
	assert.Equal(t, model.TrendBullish, trend.SMATrend)
	assert.Equal(t, model.TrendBullish, trend.LongTermTrend)
	assert.Contains(t, c.Technical.Signals, "Strong uptrend confirmed by multiple indicators")

	require.NotNil(t, c.Sentiment)
	require.True(t, c.Sentiment.CombinedScore.Valid)
	assert.InDelta(t, 0.6, c.Sentiment.CombinedScore.Value, 1e-9)

	assert.LessOrEqual(t, c.RiskScore, 3)
	assert.GreaterOrEqual(t, c.PotentialScore, 7.0)
	assert.GreaterOrEqual(t, c.CombinedScore, 6.0)

	require.NotEmpty(t, c.Recommendation)
	headline := c.Recommendation[0]
	assert.True(t,
		strings.HasPrefix(headline, "Strong Buy") || strings.HasPrefix(headline, "Buy"),
		"headline %q", headline)
	assert.Contains(t, c.Recommendation, "Market Sentiment: Very Positive - Strong community enthusiasm and support")
}

func TestRun_Deterministic(t *testing.T) {
	newSource := func() *market.MockSource {
		return &market.MockSource{
			Symbols: []string{"BTC"},
			Tickers: map[string]*model.Ticker{"BTC": liquidTicker(201)},
			Series:  map[string]*model.Series{"BTC": zigzagSeries("BTC", 200)},
		}
	}
	a, err := New(newSource(), nil, DefaultOptions()).Run(context.Background())
	require.NoError(t, err)
	b, err := New(newSource(), nil, DefaultOptions()).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, a.Candidates, 1)
	require.Len(t, b.Candidates, 1)
	assert.Equal(t, a.Candidates[0].CombinedScore, b.Candidates[0].CombinedScore)
	assert.Equal(t, a.Candidates[0].Recommendation, b.Candidates[0].Recommendation)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRun_RanksByCombinedScoreDescending(t *testing.T) {
	src := &market.MockSource{
		Symbols: []string{"LOW", "HIGH", "MID"},
		Tickers: map[string]*model.Ticker{
			"LOW":  liquidTicker(100),
			"HIGH": liquidTicker(201),
			"MID":  liquidTicker(140),
		},
		Series: map[string]*model.Series{
			// A flat series, the strong zigzag uptrend, and a mild drift.
			"LOW":  market.GenerateSeries("LOW", 200, 100, 0, 1000),
			"HIGH": zigzagSeries("HIGH", 200),
			"MID":  market.GenerateSeries("MID", 200, 100, 0.0015, 1000),
		},
	}
	opts := DefaultOptions()
	opts.Params.InclusionThreshold = 0

	result, err := New(src, nil, opts).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Candidates, 3)

	for i := 1; i < len(result.Candidates); i++ {
		assert.GreaterOrEqual(t,
			result.Candidates[i-1].CombinedScore, result.Candidates[i].CombinedScore,
			"candidates must be ordered by combined score descending")
	}
	assert.Equal(t, "HIGH", result.Candidates[0].Symbol)
}

func TestRun_TiesKeepListingOrder(t *testing.T) {
	src := &market.MockSource{
		Symbols: []string{"ZZZ", "AAA"},
		Tickers: map[string]*model.Ticker{
			"ZZZ": liquidTicker(201),
			"AAA": liquidTicker(201),
		},
		Series: map[string]*model.Series{
			"ZZZ": zigzagSeries("ZZZ", 200),
			"AAA": zigzagSeries("AAA", 200),
		},
	}
	result, err := New(src, nil, DefaultOptions()).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Candidates, 2)
	assert.Equal(t, "ZZZ", result.Candidates[0].Symbol)
	assert.Equal(t, "AAA", result.Candidates[1].Symbol)
}

func TestRun_InclusionThresholdIsInclusive(t *testing.T) {
	newSource := func() *market.MockSource {
		return &market.MockSource{
			Symbols: []string{"BTC"},
			Tickers: map[string]*model.Ticker{"BTC": liquidTicker(201)},
			Series:  map[string]*model.Series{"BTC": zigzagSeries("BTC", 200)},
		}
	}
	opts := DefaultOptions()
	opts.Params.InclusionThreshold = 0
	result, err := New(newSource(), nil, opts).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	score := result.Candidates[0].CombinedScore

	// A threshold exactly equal to the score keeps the candidate.
	opts.Params.InclusionThreshold = score
	result, err = New(newSource(), nil, opts).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1, "score equal to the threshold must be retained")

	// Anything above it drops the symbol with the threshold cause.
	opts.Params.InclusionThreshold = score + 0.01
	result, err = New(newSource(), nil, opts).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, SkipBelowThreshold, result.Skipped[0].Cause)
}

func TestRun_FailuresAreIsolated(t *testing.T) {
	src := &market.MockSource{
		Symbols: []string{"GOOD", "NOTICKER", "NOCANDLES", "ILLIQUID", "SHORT"},
		Tickers: map[string]*model.Ticker{
			"GOOD":      liquidTicker(201),
			"NOCANDLES": liquidTicker(50),
			"ILLIQUID":  {Last: 50, Open: 49, QuoteVolume: 10},
			"SHORT":     liquidTicker(50),
		},
		Series: map[string]*model.Series{
			"GOOD": zigzagSeries("GOOD", 200),
			"SHORT": {Symbol: "SHORT", Interval: "1d", Candles: []model.Candle{
				{Close: 50, Volume: 1000},
			}},
		},
		TickerErr:  map[string]error{"NOTICKER": errors.New("503 from exchange")},
		CandlesErr: map[string]error{"NOCANDLES": errors.New("timeout")},
	}

	result, err := New(src, nil, DefaultOptions()).Run(context.Background())
	require.NoError(t, err, "individual symbol failures must not abort the batch")

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "GOOD", result.Candidates[0].Symbol)

	causes := make(map[string]SkipCause, len(result.Skipped))
	for _, s := range result.Skipped {
		causes[s.Symbol] = s.Cause
	}
	assert.Equal(t, SkipCollaboratorFailure, causes["NOTICKER"])
	assert.Equal(t, SkipCollaboratorFailure, causes["NOCANDLES"])
	assert.Equal(t, SkipLowVolume, causes["ILLIQUID"])
	assert.Equal(t, SkipInsufficientData, causes["SHORT"])
}

func TestRun_ShortHistoryStillScores(t *testing.T) {
	// Five candles: the long-lookback indicators are absent and take
	// their defined defaults, but the pipeline completes without error.
	short := &model.Series{Symbol: "NEW", Interval: "1d", Candles: []model.Candle{
		{Close: 10, Volume: 1000},
		{Close: 11, Volume: 1100},
		{Close: 12, Volume: 1200},
		{Close: 11, Volume: 1000},
		{Close: 13, Volume: 1300},
	}}
	src := &market.MockSource{
		Symbols: []string{"NEW"},
		Tickers: map[string]*model.Ticker{"NEW": liquidTicker(13)},
		Series:  map[string]*model.Series{"NEW": short},
	}
	opts := DefaultOptions()
	opts.Params.InclusionThreshold = 0

	result, err := New(src, nil, opts).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)

	c := result.Candidates[0]
	assert.Equal(t, model.TrendBearish, c.Technical.Trend.MACDTrend)
	assert.Equal(t, model.RSINeutral, c.Technical.Momentum.RSICondition)
	assert.False(t, c.Technical.PriceAction.Above200SMA)
	assert.GreaterOrEqual(t, c.CombinedScore, 0.0)
	assert.LessOrEqual(t, c.CombinedScore, 10.0)
}

func TestRun_NilAggregatorOmitsSentiment(t *testing.T) {
	src := &market.MockSource{
		Symbols: []string{"BTC"},
		Tickers: map[string]*model.Ticker{"BTC": liquidTicker(201)},
		Series:  map[string]*model.Series{"BTC": zigzagSeries("BTC", 200)},
	}
	result, err := New(src, nil, DefaultOptions()).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)

	c := result.Candidates[0]
	assert.Nil(t, c.Sentiment)
	for _, line := range c.Recommendation {
		assert.False(t, strings.HasPrefix(line, "Market Sentiment"),
			"no sentiment line expected without an aggregator, got %q", line)
	}
}

func TestRun_ListFailureAbortsRun(t *testing.T) {
	src := &market.MockSource{ListErr: errors.New("exchange unreachable")}
	result, err := New(src, nil, DefaultOptions()).Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)
}
