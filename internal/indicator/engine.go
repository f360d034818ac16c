package indicator

import (
	"errors"

	"CoinScout/internal/model"
)

// Standard lookback periods.
const (
	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9
	RSIPeriod  = 14
	BBPeriod   = 20
	BBStdDevs  = 2.0
)

// ErrInsufficientData is returned when a series is too short to analyze
// at all. Individual indicators with longer lookbacks simply come back
// absent instead.
var ErrInsufficientData = errors.New("indicator: series needs at least 2 candles")

// Compute derives all indicators from the series and returns the rows
// for the most recent candle and the one preceding it.
func Compute(series *model.Series) (*model.IndicatorSnapshot, error) {
	n := series.Len()
	if n < 2 {
		return nil, ErrInsufficientData
	}

	closes := series.Closes()
	volumes := series.Volumes()

	macd, macdSignal := macdSeries(closes, MACDFast, MACDSlow, MACDSignal)
	rsi := rsiSeries(closes, RSIPeriod)
	bbUpper, bbMiddle, bbLower := bollingerSeries(closes, BBPeriod, BBStdDevs)
	sma20 := smaSeries(closes, 20)
	sma50 := smaSeries(closes, 50)
	sma200 := smaSeries(closes, 200)
	volumeSMA := smaSeries(volumes, 20)

	rowAt := func(i int) model.IndicatorRow {
		return model.IndicatorRow{
			Close:        closes[i],
			Volume:       volumes[i],
			MACD:         macd[i],
			MACDSignal:   macdSignal[i],
			RSI:          rsi[i],
			BBUpper:      bbUpper[i],
			BBMiddle:     bbMiddle[i],
			BBLower:      bbLower[i],
			SMA20:        sma20[i],
			SMA50:        sma50[i],
			SMA200:       sma200[i],
			VolumeSMA:    volumeSMA[i],
			PriceChange1: pctChange(closes, 1, i),
			PriceChange7: pctChange(closes, 7, i),
		}
	}

	return &model.IndicatorSnapshot{
		Latest: rowAt(n - 1),
		Prev:   rowAt(n - 2),
	}, nil
}

// pctChange returns the percent change of values[i] against the value
// periods earlier, absent when out of range or the base is zero.
func pctChange(values []float64, periods, i int) model.OptFloat {
	j := i - periods
	if j < 0 || values[j] == 0 {
		return model.NoFloat()
	}
	return model.Float((values[i] - values[j]) / values[j] * 100)
}

// Volatility returns the relative dispersion of closes as a percentage
// (sample standard deviation over the mean). Used by the risk scorer.
func Volatility(series *model.Series) float64 {
	closes := series.Closes()
	if len(closes) == 0 {
		return 0
	}
	mean := 0.0
	for _, c := range closes {
		mean += c
	}
	mean /= float64(len(closes))
	if mean == 0 {
		return 0
	}
	return stdDev(closes, true) / mean * 100
}

// MeanVolume returns the average candle volume, zero for an empty series.
func MeanVolume(series *model.Series) float64 {
	volumes := series.Volumes()
	if len(volumes) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range volumes {
		sum += v
	}
	return sum / float64(len(volumes))
}

// MeanPctChange returns the average one-period percent change of closes.
// Used by the potential scorer as the market-performance term.
func MeanPctChange(series *model.Series) float64 {
	closes := series.Closes()
	if len(closes) < 2 {
		return 0
	}
	sum, count := 0.0, 0
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		sum += (closes[i] - closes[i-1]) / closes[i-1] * 100
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
