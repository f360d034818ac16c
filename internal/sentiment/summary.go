package sentiment

import "CoinScout/internal/model"

// Summary maps a combined sentiment score to one of five qualitative
// bands.
func Summary(sa *model.SentimentAnalysis) string {
	if sa == nil || !sa.CombinedScore.Valid {
		return "Sentiment analysis unavailable"
	}
	score := sa.CombinedScore.Value
	switch {
	case score >= 0.5:
		return "Very Positive - Strong community enthusiasm and support"
	case score >= 0.2:
		return "Positive - Generally favorable community sentiment"
	case score >= -0.2:
		return "Neutral - Mixed or balanced community sentiment"
	case score >= -0.5:
		return "Negative - Significant community concerns"
	default:
		return "Very Negative - Strong community skepticism or criticism"
	}
}
