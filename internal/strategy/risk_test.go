package strategy

import (
	"testing"

	"CoinScout/internal/model"
)

func sentimentOf(score float64) *model.SentimentAnalysis {
	return &model.SentimentAnalysis{CombinedScore: model.Float(score)}
}

func TestRiskScore_VolatilityTiers(t *testing.T) {
	tests := []struct {
		volatility float64
		want       int
	}{
		{5, 0},
		{10, 0}, // boundary excluded
		{10.1, 1},
		{30, 1},
		{30.1, 2},
		{50, 2},
		{50.1, 3},
	}
	for _, tt := range tests {
		got := RiskScore(MarketMetrics{Volatility: tt.volatility}, nil, nil)
		if got != tt.want {
			t.Errorf("volatility %v: risk = %d, want %d", tt.volatility, got, tt.want)
		}
	}
}

func TestRiskScore_VolumeAndPriceTiers(t *testing.T) {
	tests := []struct {
		name string
		m    MarketMetrics
		want int
	}{
		{"mild volume drop", MarketMetrics{VolumeChange24: -30000}, 1},
		{"heavy volume drop", MarketMetrics{VolumeChange24: -60000}, 2},
		{"volume gain", MarketMetrics{VolumeChange24: 60000}, 0},
		{"moderate price move", MarketMetrics{PriceChange24h: 20}, 1},
		{"violent price move", MarketMetrics{PriceChange24h: 40}, 2},
		{"violent drop counts too", MarketMetrics{PriceChange24h: -40}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RiskScore(tt.m, nil, nil); got != tt.want {
				t.Errorf("risk = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRiskScore_TechnicalAndSentimentPoints(t *testing.T) {
	ta := &model.TechnicalAnalysis{
		Momentum:   model.MomentumAnalysis{RSICondition: model.RSIOverbought},
		Volatility: model.VolatilityAnalysis{BBPosition: model.BBUpper},
	}
	if got := RiskScore(MarketMetrics{}, ta, nil); got != 2 {
		t.Errorf("extreme technicals risk = %d, want 2", got)
	}
	if got := RiskScore(MarketMetrics{}, nil, sentimentOf(-0.6)); got != 1 {
		t.Errorf("strongly negative sentiment risk = %d, want 1", got)
	}
	// Exactly -0.5 does not trip the strict comparison.
	if got := RiskScore(MarketMetrics{}, nil, sentimentOf(-0.5)); got != 0 {
		t.Errorf("sentiment -0.5 risk = %d, want 0", got)
	}
	// Absent combined score contributes nothing either.
	if got := RiskScore(MarketMetrics{}, nil, &model.SentimentAnalysis{}); got != 0 {
		t.Errorf("absent sentiment risk = %d, want 0", got)
	}
}

func TestRiskScore_CapsAtTen(t *testing.T) {
	m := MarketMetrics{Volatility: 80, VolumeChange24: -90000, PriceChange24h: 45}
	ta := &model.TechnicalAnalysis{
		Momentum:   model.MomentumAnalysis{RSICondition: model.RSIOversold},
		Volatility: model.VolatilityAnalysis{BBPosition: model.BBLower},
	}
	if got := RiskScore(m, ta, sentimentOf(-0.9)); got != 10 {
		t.Errorf("max-risk accumulation = %d, want 10", got)
	}
}

func TestPotentialScore_Bonuses(t *testing.T) {
	p := DefaultParams()
	bullish := &model.TechnicalAnalysis{
		Trend: model.TrendAnalysis{
			MACDTrend: model.TrendBullish,
			SMATrend:  model.TrendBullish,
		},
		Momentum: model.MomentumAnalysis{RSIValue: model.Float(55)},
		Volume:   model.VolumeAnalysis{VolumeTrend: model.VolumeIncreasing},
	}

	tests := []struct {
		name string
		m    MarketMetrics
		ta   *model.TechnicalAnalysis
		sent *model.SentimentAnalysis
		want float64
	}{
		{"baseline with nothing", MarketMetrics{}, nil, nil, 5.0},
		{"all technical bonuses", MarketMetrics{}, bullish, nil, 7.5},
		{"sentiment boost", MarketMetrics{}, nil, sentimentOf(0.5), 6.0},
		{"sentiment boost capped", MarketMetrics{}, nil, sentimentOf(1.0), 7.0},
		{"negative sentiment ignored", MarketMetrics{}, nil, sentimentOf(-0.8), 5.0},
		{"strong mean performance", MarketMetrics{MeanPctChange: 6}, nil, nil, 6.0},
		{"mild mean performance", MarketMetrics{MeanPctChange: 3}, nil, nil, 5.5},
		{"boundary 2 percent excluded", MarketMetrics{MeanPctChange: 2}, nil, nil, 5.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PotentialScore(tt.m, tt.ta, tt.sent, p); got != tt.want {
				t.Errorf("potential = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPotentialScore_ClampsToUpperBound(t *testing.T) {
	bullish := &model.TechnicalAnalysis{
		Trend: model.TrendAnalysis{
			MACDTrend: model.TrendBullish,
			SMATrend:  model.TrendBullish,
		},
		Momentum: model.MomentumAnalysis{RSIValue: model.Float(65)},
		Volume:   model.VolumeAnalysis{VolumeTrend: model.VolumeIncreasing},
	}
	// 5 + 1 + 1 + 0.5 + 2 + 1 = 10.5, clamped.
	got := PotentialScore(MarketMetrics{MeanPctChange: 8}, bullish, sentimentOf(1.0), DefaultParams())
	if got != 10 {
		t.Errorf("potential = %v, want clamped to 10", got)
	}
}
