package model

// Platform identifies a social media source.
type Platform string

const (
	PlatformTwitter Platform = "twitter"
	PlatformReddit  Platform = "reddit"
)

// SentimentSample is the polarity result from a single platform.
// Score is absent when the platform returned no items or was unavailable;
// that state carries no weight downstream and is not an error.
type SentimentSample struct {
	Source     Platform
	Score      OptFloat // polarity in [-1,1]
	SampleSize int
	Message    string
}

// SentimentAnalysis merges the per-platform samples into one weighted
// combined score. CombinedScore is absent when no platform contributed.
type SentimentAnalysis struct {
	CombinedScore OptFloat // [-1,1]
	Details       map[Platform]SentimentSample
}
