package model

import "time"

// ScoredCandidate is the final per-symbol output of a screening pass.
// Immutable after construction; candidates below the inclusion threshold
// are never built.
type ScoredCandidate struct {
	Symbol         string
	CurrentPrice   float64
	PriceChange24h float64 // percent
	DailyVolume    float64 // quote volume
	RiskScore      int     // [0,10]
	PotentialScore float64 // [1,10]
	CombinedScore  float64 // [0,10], rounded to 2 decimals
	Technical      *TechnicalAnalysis
	Sentiment      *SentimentAnalysis
	Recommendation []string // ordered lines, headline first
	Timestamp      time.Time
}
