package strategy

import "CoinScout/internal/model"

// Fixed classification thresholds.
const (
	rsiOverbought    = 70.0
	rsiOversold      = 30.0
	rsiHealthyLow    = 40.0
	rsiHealthyHigh   = 60.0
	volumeSurgeRatio = 0.5
)

// AnalyzeTechnical classifies the indicator snapshot, scores it, and
// generates the advisory signal strings. Comparisons against absent
// indicator values always take the neutral branch.
func AnalyzeTechnical(snap *model.IndicatorSnapshot, p Params) *model.TechnicalAnalysis {
	row := snap.Latest

	ta := &model.TechnicalAnalysis{
		Trend: model.TrendAnalysis{
			MACDTrend:     trendOf(row.MACD.Valid && row.MACDSignal.Valid && row.MACD.Value > row.MACDSignal.Value),
			SMATrend:      trendOf(row.SMA20.Valid && row.SMA50.Valid && row.SMA20.Value > row.SMA50.Value),
			LongTermTrend: trendOf(row.SMA200.Valid && row.Close > row.SMA200.Value),
		},
		Momentum: model.MomentumAnalysis{
			RSIValue:     row.RSI,
			RSICondition: rsiCondition(row.RSI),
		},
		Volatility: model.VolatilityAnalysis{
			BBPosition: bbPosition(row),
			BBWidth:    bbWidth(row),
		},
		Volume: model.VolumeAnalysis{
			VolumeTrend:  volumeTrend(row),
			VolumeChange: volumeChange(row),
		},
		PriceAction: model.PriceActionAnalysis{
			PriceChange24h: row.PriceChange1,
			PriceChange7d:  row.PriceChange7,
			Above200SMA:    row.SMA200.Valid && row.Close > row.SMA200.Value,
		},
	}

	ta.TechnicalScore = technicalScore(ta, p)
	ta.Signals = generateSignals(ta)
	return ta
}

func trendOf(bullish bool) model.TrendDirection {
	if bullish {
		return model.TrendBullish
	}
	return model.TrendBearish
}

func rsiCondition(rsi model.OptFloat) model.RSICondition {
	switch {
	case rsi.GreaterThan(rsiOverbought):
		return model.RSIOverbought
	case rsi.LessThan(rsiOversold):
		return model.RSIOversold
	default:
		return model.RSINeutral
	}
}

func bbPosition(row model.IndicatorRow) model.BBPosition {
	switch {
	case row.BBUpper.Valid && row.Close > row.BBUpper.Value:
		return model.BBUpper
	case row.BBLower.Valid && row.Close < row.BBLower.Value:
		return model.BBLower
	default:
		return model.BBMiddle
	}
}

func bbWidth(row model.IndicatorRow) model.OptFloat {
	if !row.BBUpper.Valid || !row.BBLower.Valid || !row.BBMiddle.Valid || row.BBMiddle.Value == 0 {
		return model.NoFloat()
	}
	return model.Float((row.BBUpper.Value - row.BBLower.Value) / row.BBMiddle.Value)
}

func volumeTrend(row model.IndicatorRow) model.VolumeTrend {
	if row.VolumeSMA.Valid && row.Volume > row.VolumeSMA.Value {
		return model.VolumeIncreasing
	}
	return model.VolumeDecreasing
}

func volumeChange(row model.IndicatorRow) model.OptFloat {
	if !row.VolumeSMA.Valid || row.VolumeSMA.Value == 0 {
		return model.NoFloat()
	}
	return model.Float((row.Volume - row.VolumeSMA.Value) / row.VolumeSMA.Value)
}

// technicalScore starts from a 5.0 baseline, applies the additive
// adjustments, and clamps to [1,10].
func technicalScore(ta *model.TechnicalAnalysis, p Params) float64 {
	score := 5.0

	if ta.Trend.MACDTrend == model.TrendBullish {
		score += p.MACDBullishBonus
	}
	if ta.Trend.SMATrend == model.TrendBullish {
		score += p.SMABullishBonus
	}
	if ta.Trend.LongTermTrend == model.TrendBullish {
		score += p.LongTermBonus
	}

	if rsi := ta.Momentum.RSIValue; rsi.Valid {
		switch {
		case rsi.Value >= rsiHealthyLow && rsi.Value <= rsiHealthyHigh:
			score += p.RSIHealthyBonus
		case rsi.Value > rsiOverbought || rsi.Value < rsiOversold:
			score -= p.RSIExtremePenalty
		}
	}

	if ta.Volatility.BBPosition == model.BBMiddle {
		score += p.BBMiddleBonus
	}
	if ta.Volume.VolumeTrend == model.VolumeIncreasing {
		score += p.VolumeBonus
	}
	if ta.PriceAction.PriceChange24h.GreaterThan(0) {
		score += p.PriceChangeBonus
	}
	if ta.PriceAction.PriceChange7d.GreaterThan(0) {
		score += p.PriceChangeBonus
	}

	return clamp(score, 1, 10)
}

// generateSignals emits the qualitative signal strings. Order is fixed:
// trend, momentum, volume, price action.
func generateSignals(ta *model.TechnicalAnalysis) []string {
	var signals []string

	allBullish := ta.Trend.MACDTrend == model.TrendBullish &&
		ta.Trend.SMATrend == model.TrendBullish &&
		ta.Trend.LongTermTrend == model.TrendBullish
	allBearish := ta.Trend.MACDTrend == model.TrendBearish &&
		ta.Trend.SMATrend == model.TrendBearish &&
		ta.Trend.LongTermTrend == model.TrendBearish
	if allBullish {
		signals = append(signals, "Strong uptrend confirmed by multiple indicators")
	} else if allBearish {
		signals = append(signals, "Strong downtrend confirmed by multiple indicators")
	}

	switch {
	case ta.Momentum.RSIValue.GreaterThan(rsiOverbought):
		signals = append(signals, "Overbought conditions - potential reversal point")
	case ta.Momentum.RSIValue.LessThan(rsiOversold):
		signals = append(signals, "Oversold conditions - potential reversal point")
	}

	if ta.Volume.VolumeTrend == model.VolumeIncreasing && ta.Volume.VolumeChange.GreaterThan(volumeSurgeRatio) {
		signals = append(signals, "Significant volume increase - strong trend confirmation")
	}

	if ta.PriceAction.Above200SMA {
		signals = append(signals, "Price above 200 SMA - long-term uptrend")
	}

	return signals
}
