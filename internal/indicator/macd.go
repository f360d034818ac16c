package indicator

import "CoinScout/internal/model"

// macdSeries computes the MACD line (fast EMA minus slow EMA) and its
// signal line (EMA of the MACD line) at every index.
func macdSeries(closes []float64, fast, slow, signal int) (macd, signalLine []model.OptFloat) {
	macd = make([]model.OptFloat, len(closes))
	signalLine = make([]model.OptFloat, len(closes))

	emaFast := emaSeries(closes, fast)
	emaSlow := emaSeries(closes, slow)
	for i := range closes {
		if emaFast[i].Valid && emaSlow[i].Valid {
			macd[i] = model.Float(emaFast[i].Value - emaSlow[i].Value)
		}
	}

	// Signal line: EMA over the valid portion of the MACD line.
	first := -1
	for i, m := range macd {
		if m.Valid {
			first = i
			break
		}
	}
	if first < 0 || len(closes)-first < signal {
		return macd, signalLine
	}
	valid := make([]float64, 0, len(closes)-first)
	for i := first; i < len(closes); i++ {
		valid = append(valid, macd[i].Value)
	}
	sig := emaSeries(valid, signal)
	for i, s := range sig {
		signalLine[first+i] = s
	}
	return macd, signalLine
}
