package strategy

import (
	"fmt"

	"CoinScout/internal/model"
	"CoinScout/internal/sentiment"
)

// Recommend synthesizes the ordered recommendation lines for a scored
// symbol: headline, technical signals, risk level, potential level and,
// when available, the sentiment summary. The order is fixed and the
// output is fully determined by its inputs.
func Recommend(combined float64, risk int, potential float64, ta *model.TechnicalAnalysis, sent *model.SentimentAnalysis) []string {
	var lines []string

	switch {
	case combined >= 8:
		lines = append(lines, "Strong Buy - Exceptional opportunity with high potential and managed risk")
	case combined >= 7:
		lines = append(lines, "Buy - Favorable conditions for investment")
	case combined >= 6:
		lines = append(lines, "Consider - Positive indicators with some caution")
	default:
		lines = append(lines, "Hold - Monitor for better entry points")
	}

	if ta != nil {
		for _, signal := range ta.Signals {
			lines = append(lines, "Technical: "+signal)
		}
	}

	riskLevel := "High"
	if risk <= 3 {
		riskLevel = "Low"
	} else if risk <= 6 {
		riskLevel = "Moderate"
	}
	lines = append(lines, fmt.Sprintf("Risk Level: %s (Score: %d/10)", riskLevel, risk))

	potentialLevel := "Low"
	if potential >= 7 {
		potentialLevel = "High"
	} else if potential >= 5 {
		potentialLevel = "Moderate"
	}
	lines = append(lines, fmt.Sprintf("Potential: %s (Score: %.1f/10)", potentialLevel, potential))

	if sent != nil && sent.CombinedScore.Valid {
		lines = append(lines, "Market Sentiment: "+sentiment.Summary(sent))
	}

	return lines
}
