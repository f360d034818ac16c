package sentiment

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"CoinScout/internal/model"
)

const (
	titleWeight = 0.6
	bodyWeight  = 0.4
)

// Aggregator queries each configured platform, scores the returned
// posts, and merges the per-platform polarities into one weighted
// combined score. A platform with no data contributes nothing; it is
// never zero-filled.
type Aggregator struct {
	sources       []Source
	scorer        PolarityScorer
	window        time.Duration
	sourceTimeout time.Duration
}

// NewAggregator creates an Aggregator over the given sources.
func NewAggregator(sources []Source, scorer PolarityScorer, window, sourceTimeout time.Duration) *Aggregator {
	if window <= 0 {
		window = 24 * time.Hour
	}
	if sourceTimeout <= 0 {
		sourceTimeout = 10 * time.Second
	}
	return &Aggregator{
		sources:       sources,
		scorer:        scorer,
		window:        window,
		sourceTimeout: sourceTimeout,
	}
}

// Analyze fetches and scores social sentiment for a symbol. Sources are
// queried in parallel, each under its own timeout; a failed or empty
// source yields an absent sample, not an error.
func (a *Aggregator) Analyze(ctx context.Context, symbol string) *model.SentimentAnalysis {
	details := make(map[model.Platform]model.SentimentSample, len(a.sources))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, src := range a.sources {
		wg.Add(1)
		go func(src Source) {
			defer wg.Done()
			sample := a.sampleSource(ctx, src, symbol)
			mu.Lock()
			details[src.Platform()] = sample
			mu.Unlock()
		}(src)
	}
	wg.Wait()

	totalSentiment, totalWeight := 0.0, 0.0
	for _, src := range a.sources {
		sample := details[src.Platform()]
		if sample.Score.Valid {
			totalSentiment += sample.Score.Value * src.Weight()
			totalWeight += src.Weight()
		}
	}

	analysis := &model.SentimentAnalysis{Details: details}
	if totalWeight > 0 {
		analysis.CombinedScore = model.Float(totalSentiment / totalWeight)
	}
	return analysis
}

func (a *Aggregator) sampleSource(ctx context.Context, src Source, symbol string) model.SentimentSample {
	ctx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
	defer cancel()

	posts, err := src.Search(ctx, symbol, a.window)
	if err != nil {
		log.Warn().Err(err).Str("platform", string(src.Platform())).Str("symbol", symbol).
			Msg("sentiment source unavailable")
		return model.SentimentSample{Source: src.Platform(), Message: err.Error()}
	}
	if len(posts) == 0 {
		return model.SentimentSample{Source: src.Platform(), Message: "no posts found"}
	}

	sum := 0.0
	for _, post := range posts {
		sum += a.scorePost(post, src.Structured())
	}
	return model.SentimentSample{
		Source:     src.Platform(),
		Score:      model.Float(sum / float64(len(posts))),
		SampleSize: len(posts),
		Message:    "analysis successful",
	}
}

// scorePost scores one post. Structured posts weight the title polarity
// at 0.6 and the body, when present, at 0.4.
func (a *Aggregator) scorePost(post Post, structured bool) float64 {
	if !structured {
		return a.scorer.Score(post.Title)
	}
	polarity := a.scorer.Score(post.Title) * titleWeight
	if post.Body != "" {
		polarity += a.scorer.Score(post.Body) * bodyWeight
	}
	return polarity
}
