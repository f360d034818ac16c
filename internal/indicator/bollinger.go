package indicator

import "CoinScout/internal/model"

// bollingerSeries computes the Bollinger bands at every index:
// a simple moving average plus/minus k population standard deviations
// over the same window.
func bollingerSeries(closes []float64, period int, k float64) (upper, middle, lower []model.OptFloat) {
	upper = make([]model.OptFloat, len(closes))
	lower = make([]model.OptFloat, len(closes))
	middle = smaSeries(closes, period)

	for i := period - 1; i < len(closes); i++ {
		window := closes[i-period+1 : i+1]
		sd := stdDev(window, false)
		upper[i] = model.Float(middle[i].Value + k*sd)
		lower[i] = model.Float(middle[i].Value - k*sd)
	}
	return upper, middle, lower
}
