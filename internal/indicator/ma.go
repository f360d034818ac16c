package indicator

import (
	"math"

	"CoinScout/internal/model"
)

// smaSeries computes the simple moving average at every index.
// Indexes where the window is not yet full hold an absent value.
func smaSeries(values []float64, period int) []model.OptFloat {
	out := make([]model.OptFloat, len(values))
	if period <= 0 {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = model.Float(sum / float64(period))
		}
	}
	return out
}

// emaSeries computes the exponential moving average at every index,
// seeded with the simple average of the first period values.
func emaSeries(values []float64, period int) []model.OptFloat {
	out := make([]model.OptFloat, len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	seed /= float64(period)
	out[period-1] = model.Float(seed)

	k := 2.0 / float64(period+1)
	prev := seed
	for i := period; i < len(values); i++ {
		prev = values[i]*k + prev*(1-k)
		out[i] = model.Float(prev)
	}
	return out
}

// stdDev computes the standard deviation of values. Population form
// (sample=false) is used for Bollinger bands, sample form for the
// volatility risk metric.
func stdDev(values []float64, sample bool) float64 {
	n := len(values)
	if n == 0 || (sample && n < 2) {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	div := float64(n)
	if sample {
		div = float64(n - 1)
	}
	return math.Sqrt(sumSq / div)
}
