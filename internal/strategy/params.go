package strategy

// Params holds the tunable scoring policy. The additive bonuses and the
// combination weights are heuristics, not invariants, so they live here
// rather than as hard-coded literals.
type Params struct {
	// Technical score adjustments, applied to a 5.0 baseline.
	MACDBullishBonus  float64
	SMABullishBonus   float64
	LongTermBonus     float64
	RSIHealthyBonus   float64
	RSIExtremePenalty float64
	BBMiddleBonus     float64
	VolumeBonus       float64
	PriceChangeBonus  float64

	// Potential score adjustments, applied to a 5.0 baseline.
	TrendAlignBonus    float64
	VolumeConfirmBonus float64
	RSIMomentumBonus   float64
	SentimentBoostCap  float64

	// Combined score weights. The sentiment term is dropped, not
	// redistributed, when no platform contributed a sample.
	PotentialWeight float64
	RiskWeight      float64
	TechnicalWeight float64
	SentimentWeight float64

	// Candidates below this combined score are dropped silently.
	InclusionThreshold float64
}

// DefaultParams returns the production scoring policy.
func DefaultParams() Params {
	return Params{
		MACDBullishBonus:  0.5,
		SMABullishBonus:   0.5,
		LongTermBonus:     1.0,
		RSIHealthyBonus:   1.0,
		RSIExtremePenalty: 1.0,
		BBMiddleBonus:     0.5,
		VolumeBonus:       0.5,
		PriceChangeBonus:  0.5,

		TrendAlignBonus:    1.0,
		VolumeConfirmBonus: 1.0,
		RSIMomentumBonus:   0.5,
		SentimentBoostCap:  2.0,

		PotentialWeight: 0.4,
		RiskWeight:      0.3,
		TechnicalWeight: 0.2,
		SentimentWeight: 0.1,

		InclusionThreshold: 6.0,
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
