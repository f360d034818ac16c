package model

// TrendDirection classifies a trend indicator.
type TrendDirection string

const (
	TrendBullish TrendDirection = "bullish"
	TrendBearish TrendDirection = "bearish"
)

// RSICondition classifies the RSI reading.
type RSICondition string

const (
	RSIOverbought RSICondition = "overbought"
	RSIOversold   RSICondition = "oversold"
	RSINeutral    RSICondition = "neutral"
)

// BBPosition classifies the close relative to the Bollinger bands.
type BBPosition string

const (
	BBUpper  BBPosition = "upper"
	BBLower  BBPosition = "lower"
	BBMiddle BBPosition = "middle"
)

// VolumeTrend classifies volume relative to its moving average.
type VolumeTrend string

const (
	VolumeIncreasing VolumeTrend = "increasing"
	VolumeDecreasing VolumeTrend = "decreasing"
)

// TrendAnalysis holds the three trend classifications.
type TrendAnalysis struct {
	MACDTrend     TrendDirection
	SMATrend      TrendDirection
	LongTermTrend TrendDirection
}

// MomentumAnalysis holds the RSI reading and its classification.
type MomentumAnalysis struct {
	RSIValue     OptFloat
	RSICondition RSICondition
}

// VolatilityAnalysis holds the Bollinger band classification.
type VolatilityAnalysis struct {
	BBPosition BBPosition
	BBWidth    OptFloat
}

// VolumeAnalysis holds the volume trend classification.
type VolumeAnalysis struct {
	VolumeTrend  VolumeTrend
	VolumeChange OptFloat // relative deviation from the 20-period average
}

// PriceActionAnalysis holds recent price behaviour.
type PriceActionAnalysis struct {
	PriceChange24h OptFloat
	PriceChange7d  OptFloat
	Above200SMA    bool
}

// TechnicalAnalysis is the full technical picture for one symbol,
// rebuilt on every analysis request.
type TechnicalAnalysis struct {
	Trend          TrendAnalysis
	Momentum       MomentumAnalysis
	Volatility     VolatilityAnalysis
	Volume         VolumeAnalysis
	PriceAction    PriceActionAnalysis
	TechnicalScore float64  // bounded to [1,10]
	Signals        []string // advisory, order-preserving
}
