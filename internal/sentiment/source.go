package sentiment

import (
	"context"
	"time"

	"CoinScout/internal/model"
)

// Post is a single text item returned by a social platform search.
// Unstructured platforms put the whole text in Title and leave Body empty.
type Post struct {
	Title string
	Body  string
}

// Source searches one social platform for recent posts about a symbol.
type Source interface {
	Platform() model.Platform
	// Weight is the platform's reliability weight in the combined score.
	Weight() float64
	// Structured reports whether posts carry a separate title and body,
	// in which case the body polarity contributes at a lower weight.
	Structured() bool
	Search(ctx context.Context, symbol string, window time.Duration) ([]Post, error)
}
