package strategy

import (
	"math"

	"CoinScout/internal/model"
)

// MarketMetrics are the raw per-symbol inputs to the risk and potential
// scorers, derived from the ticker and the candle series.
type MarketMetrics struct {
	Volatility     float64 // sample std of closes over mean, percent
	VolumeChange24 float64 // ticker quote volume minus mean candle volume
	PriceChange24h float64 // percent
	MeanPctChange  float64 // mean one-period percent change of closes
}

// RiskScore accumulates risk points from volatility, volume and price
// instability, technical extremes and strongly negative sentiment.
// Bounded to [0,10].
func RiskScore(m MarketMetrics, ta *model.TechnicalAnalysis, sent *model.SentimentAnalysis) int {
	risk := 0

	switch {
	case m.Volatility > 50:
		risk += 3
	case m.Volatility > 30:
		risk += 2
	case m.Volatility > 10:
		risk += 1
	}

	switch {
	case m.VolumeChange24 < -50000:
		risk += 2
	case m.VolumeChange24 < -20000:
		risk += 1
	}

	switch {
	case math.Abs(m.PriceChange24h) > 30:
		risk += 2
	case math.Abs(m.PriceChange24h) > 15:
		risk += 1
	}

	if ta != nil {
		if ta.Volatility.BBPosition == model.BBUpper || ta.Volatility.BBPosition == model.BBLower {
			risk++
		}
		if ta.Momentum.RSICondition == model.RSIOverbought || ta.Momentum.RSICondition == model.RSIOversold {
			risk++
		}
	}

	if sent != nil && sent.CombinedScore.LessThan(-0.5) {
		risk++
	}

	if risk > 10 {
		risk = 10
	}
	return risk
}

// PotentialScore starts from a 5.0 baseline and rewards aligned trends,
// volume confirmation, momentum, positive sentiment and sustained price
// performance. Clamped to [1,10].
func PotentialScore(m MarketMetrics, ta *model.TechnicalAnalysis, sent *model.SentimentAnalysis, p Params) float64 {
	score := 5.0

	if ta != nil {
		if ta.Trend.MACDTrend == model.TrendBullish && ta.Trend.SMATrend == model.TrendBullish {
			score += p.TrendAlignBonus
		}
		if ta.Volume.VolumeTrend == model.VolumeIncreasing {
			score += p.VolumeConfirmBonus
		}
		if ta.Momentum.RSIValue.GreaterThan(50) {
			score += p.RSIMomentumBonus
		}
	}

	if sent != nil && sent.CombinedScore.GreaterThan(0) {
		score += math.Min(p.SentimentBoostCap, sent.CombinedScore.Value*2)
	}

	switch {
	case m.MeanPctChange > 5:
		score += 1
	case m.MeanPctChange > 2:
		score += 0.5
	}

	return clamp(score, 1, 10)
}
