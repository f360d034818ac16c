package screener

import (
	"time"

	"CoinScout/internal/model"
)

// SkipCause classifies why a symbol produced no candidate.
type SkipCause string

const (
	// SkipLowVolume: the symbol failed the liquidity filter.
	SkipLowVolume SkipCause = "low_volume"
	// SkipInsufficientData: not enough candle history to analyze.
	SkipInsufficientData SkipCause = "insufficient_data"
	// SkipCollaboratorFailure: a market or social API call failed.
	SkipCollaboratorFailure SkipCause = "collaborator_failure"
	// SkipBelowThreshold: scored fine but under the inclusion threshold.
	SkipBelowThreshold SkipCause = "below_threshold"
	// SkipComputationError: unexpected failure inside the pipeline.
	SkipComputationError SkipCause = "computation_error"
)

// Skip records one excluded symbol with its diagnostic cause. Skips are
// collected, not raised; a failing symbol never aborts the batch.
type Skip struct {
	Symbol string
	Cause  SkipCause
	Err    error
}

// Result is the outcome of one full screening pass.
type Result struct {
	RunID      string
	Candidates []*model.ScoredCandidate // ranked by combined score, descending
	Skipped    []Skip
	StartedAt  time.Time
	FinishedAt time.Time
}
