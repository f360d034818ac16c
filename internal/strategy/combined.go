package strategy

import (
	"math"

	"CoinScout/internal/model"
)

// CombinedScore blends potential, inverted risk, technical score and
// sentiment into the final ranking score on the 1-10 scale. When no
// platform contributed a sentiment sample the sentiment term is omitted
// entirely; the remaining weights are not renormalized. Rounded to two
// decimals and clamped to [0,10].
func CombinedScore(risk int, potential float64, ta *model.TechnicalAnalysis, sent *model.SentimentAnalysis, p Params) float64 {
	combined := potential*p.PotentialWeight + (10-float64(risk))*p.RiskWeight

	if ta != nil {
		combined += ta.TechnicalScore * p.TechnicalWeight
	}
	if sent != nil && sent.CombinedScore.Valid {
		sentimentScore := (sent.CombinedScore.Value + 1) / 2 * 10
		combined += sentimentScore * p.SentimentWeight
	}

	combined = math.Round(combined*100) / 100
	return clamp(combined, 0, 10)
}
