package model

// OptFloat is a float64 that may be absent. Indicators whose lookback
// window is not yet full, and sentiment scores with no contributing
// platform, propagate as absent rather than zero.
type OptFloat struct {
	Value float64
	Valid bool
}

// Float returns a present OptFloat.
func Float(v float64) OptFloat { return OptFloat{Value: v, Valid: true} }

// NoFloat returns an absent OptFloat.
func NoFloat() OptFloat { return OptFloat{} }

// Or returns the value, or def when absent.
func (o OptFloat) Or(def float64) float64 {
	if o.Valid {
		return o.Value
	}
	return def
}

// GreaterThan reports whether the value is present and strictly greater
// than x. Absent values compare false, mirroring the neutral branch the
// scoring rules require.
func (o OptFloat) GreaterThan(x float64) bool { return o.Valid && o.Value > x }

// LessThan reports whether the value is present and strictly less than x.
func (o OptFloat) LessThan(x float64) bool { return o.Valid && o.Value < x }
