package screener

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"CoinScout/internal/indicator"
	"CoinScout/internal/market"
	"CoinScout/internal/model"
	"CoinScout/internal/sentiment"
	"CoinScout/internal/strategy"
)

// Options configure a screening pass.
type Options struct {
	MinDailyVolume float64 // liquidity filter on 24h quote volume
	CandleInterval string
	CandleCount    int
	Concurrency    int
	SymbolTimeout  time.Duration
	Params         strategy.Params
}

// DefaultOptions returns the production screening configuration.
func DefaultOptions() Options {
	return Options{
		MinDailyVolume: 100000,
		CandleInterval: "1d",
		CandleCount:    200,
		Concurrency:    4,
		SymbolTimeout:  60 * time.Second,
		Params:         strategy.DefaultParams(),
	}
}

// Screener runs the full analysis pipeline over the symbol universe and
// ranks the surviving candidates.
type Screener struct {
	source    market.Source
	sentiment *sentiment.Aggregator
	opts      Options
}

// New creates a Screener. The sentiment aggregator may be nil, in which
// case every candidate is scored without a sentiment term.
func New(source market.Source, agg *sentiment.Aggregator, opts Options) *Screener {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.CandleCount < 2 {
		opts.CandleCount = 200
	}
	if opts.CandleInterval == "" {
		opts.CandleInterval = "1d"
	}
	return &Screener{source: source, sentiment: agg, opts: opts}
}

// Run screens every listed symbol. Per-symbol analyses proceed on a
// bounded worker pool; a failure on one symbol is recorded as a Skip and
// never aborts the batch. Candidates are stable-sorted by combined score
// descending, ties resolved by listing order.
func (s *Screener) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	runID := uuid.NewString()

	symbols, err := s.source.ListSymbols(ctx)
	if err != nil {
		return nil, fmt.Errorf("list symbols: %w", err)
	}
	log.Info().Str("run_id", runID).Int("symbols", len(symbols)).
		Str("source", s.source.Name()).Msg("screening started")

	type outcome struct {
		candidate *model.ScoredCandidate
		skip      *Skip
	}
	outcomes := make([]outcome, len(symbols))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < s.opts.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				candidate, skip := s.analyzeSymbol(ctx, symbols[i])
				outcomes[i] = outcome{candidate: candidate, skip: skip}
			}
		}()
	}
	for i := range symbols {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	result := &Result{RunID: runID, StartedAt: started, FinishedAt: time.Now()}
	for _, o := range outcomes {
		if o.candidate != nil {
			result.Candidates = append(result.Candidates, o.candidate)
		} else if o.skip != nil {
			result.Skipped = append(result.Skipped, *o.skip)
		}
	}

	// Stable: ties keep listing order.
	sort.SliceStable(result.Candidates, func(i, j int) bool {
		return result.Candidates[i].CombinedScore > result.Candidates[j].CombinedScore
	})

	log.Info().Str("run_id", runID).
		Int("candidates", len(result.Candidates)).
		Int("skipped", len(result.Skipped)).
		Dur("elapsed", result.FinishedAt.Sub(started)).
		Msg("screening finished")
	return result, nil
}

// analyzeSymbol runs the per-symbol pipeline. Exactly one of the return
// values is non-nil.
func (s *Screener) analyzeSymbol(ctx context.Context, symbol string) (candidate *model.ScoredCandidate, skip *Skip) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("symbol", symbol).Interface("panic", r).Msg("analysis panicked")
			candidate = nil
			skip = &Skip{Symbol: symbol, Cause: SkipComputationError, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.opts.SymbolTimeout)
	defer cancel()

	ticker, err := s.source.GetTicker(ctx, symbol)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("ticker fetch failed, skipping")
		return nil, &Skip{Symbol: symbol, Cause: SkipCollaboratorFailure, Err: err}
	}
	if ticker.QuoteVolume < s.opts.MinDailyVolume {
		return nil, &Skip{Symbol: symbol, Cause: SkipLowVolume}
	}

	series, err := s.source.GetCandles(ctx, symbol, s.opts.CandleInterval, s.opts.CandleCount)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("candle fetch failed, skipping")
		return nil, &Skip{Symbol: symbol, Cause: SkipCollaboratorFailure, Err: err}
	}

	snap, err := indicator.Compute(series)
	if err != nil {
		return nil, &Skip{Symbol: symbol, Cause: SkipInsufficientData, Err: err}
	}
	technical := strategy.AnalyzeTechnical(snap, s.opts.Params)

	var sent *model.SentimentAnalysis
	if s.sentiment != nil {
		sent = s.sentiment.Analyze(ctx, symbol)
	}

	metrics := strategy.MarketMetrics{
		Volatility:     indicator.Volatility(series),
		VolumeChange24: ticker.QuoteVolume - indicator.MeanVolume(series),
		PriceChange24h: priceChange24h(ticker),
		MeanPctChange:  indicator.MeanPctChange(series),
	}

	risk := strategy.RiskScore(metrics, technical, sent)
	potential := strategy.PotentialScore(metrics, technical, sent, s.opts.Params)
	combined := strategy.CombinedScore(risk, potential, technical, sent, s.opts.Params)

	if combined < s.opts.Params.InclusionThreshold {
		return nil, &Skip{Symbol: symbol, Cause: SkipBelowThreshold}
	}

	return &model.ScoredCandidate{
		Symbol:         symbol,
		CurrentPrice:   ticker.Last,
		PriceChange24h: metrics.PriceChange24h,
		DailyVolume:    ticker.QuoteVolume,
		RiskScore:      risk,
		PotentialScore: potential,
		CombinedScore:  combined,
		Technical:      technical,
		Sentiment:      sent,
		Recommendation: strategy.Recommend(combined, risk, potential, technical, sent),
		Timestamp:      time.Now(),
	}, nil
}

// priceChange24h derives the 24h percent change from the ticker,
// guarding the zero-open case.
func priceChange24h(t *model.Ticker) float64 {
	if t.Open == 0 {
		return 0
	}
	return (t.Last - t.Open) / t.Open * 100
}
