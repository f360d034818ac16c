package model

// IndicatorRow holds all computed indicator values for one candle.
// Fields are absent when the lookback window is not yet full.
type IndicatorRow struct {
	Close        float64
	Volume       float64
	MACD         OptFloat
	MACDSignal   OptFloat
	RSI          OptFloat
	BBUpper      OptFloat
	BBMiddle     OptFloat
	BBLower      OptFloat
	SMA20        OptFloat
	SMA50        OptFloat
	SMA200       OptFloat
	VolumeSMA    OptFloat
	PriceChange1 OptFloat // percent change over 1 period
	PriceChange7 OptFloat // percent change over 7 periods
}

// IndicatorSnapshot holds the indicator rows for the most recent candle
// and the one preceding it. Recomputed on every analysis call.
type IndicatorSnapshot struct {
	Latest IndicatorRow
	Prev   IndicatorRow
}
