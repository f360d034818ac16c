package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"CoinScout/internal/model"
	"CoinScout/internal/screener"
)

func sampleResult() *screener.Result {
	return &screener.Result{
		RunID: "run-1",
		Candidates: []*model.ScoredCandidate{
			{
				Symbol:         "BTC",
				CurrentPrice:   65000.1234,
				PriceChange24h: 3.21,
				DailyVolume:    1234567.89,
				RiskScore:      2,
				PotentialScore: 8.5,
				CombinedScore:  8.78,
				Recommendation: []string{
					"Strong Buy - Exceptional opportunity with high potential and managed risk",
					"Risk Level: Low (Score: 2/10)",
				},
			},
			{
				Symbol:         "SOL",
				CurrentPrice:   150.5,
				PriceChange24h: -1.2,
				DailyVolume:    765432.1,
				RiskScore:      5,
				PotentialScore: 6.5,
				CombinedScore:  6.4,
				Recommendation: []string{"Consider - Positive indicators with some caution"},
			},
		},
		Skipped:    []screener.Skip{{Symbol: "DOGE", Cause: screener.SkipLowVolume}},
		StartedAt:  time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2025, 6, 1, 8, 5, 0, 0, time.UTC),
	}
}

func TestFormatConsoleReport(t *testing.T) {
	out := FormatConsoleReport(sampleResult())

	assert.Contains(t, out, "Crypto Investment Analysis Report")
	assert.Contains(t, out, "Symbol: BTC")
	assert.Contains(t, out, "Current Price: $65000.1234")
	assert.Contains(t, out, "24h Price Change: 3.21%")
	assert.Contains(t, out, "Daily Volume: $1,234,567.89")
	assert.Contains(t, out, "Combined Score: 8.78/10")
	assert.Contains(t, out, "Risk Score: 2/10")
	assert.Contains(t, out, "Strong Buy - Exceptional opportunity with high potential and managed risk")
	// Candidates appear in ranked order.
	assert.Less(t, strings.Index(out, "Symbol: BTC"), strings.Index(out, "Symbol: SOL"))
}

func TestFormatConsoleReport_Empty(t *testing.T) {
	out := FormatConsoleReport(&screener.Result{})
	assert.Contains(t, out, "No promising investment opportunities found at this time.")
	assert.NotContains(t, out, "Symbol:")
}

func TestFormatTelegramReport(t *testing.T) {
	out := FormatTelegramReport(sampleResult(), 5)

	assert.Contains(t, out, "<b>CoinScout Screening Report</b>")
	assert.Contains(t, out, "2025-06-01 08:05")
	assert.Contains(t, out, "Analyzed 3 symbols, 2 opportunities found")
	assert.Contains(t, out, "1. <b>BTC</b> — 8.78/10")
	assert.Contains(t, out, "2. <b>SOL</b> — 6.40/10")
	assert.NotContains(t, out, "more above the threshold")
}

func TestFormatTelegramReport_TruncatesToTop(t *testing.T) {
	out := FormatTelegramReport(sampleResult(), 1)

	assert.Contains(t, out, "1. <b>BTC</b>")
	assert.NotContains(t, out, "<b>SOL</b>")
	assert.Contains(t, out, "…and 1 more above the threshold")
}

func TestFormatTelegramReport_Empty(t *testing.T) {
	out := FormatTelegramReport(&screener.Result{FinishedAt: time.Now()}, 5)
	assert.Contains(t, out, "No promising investment opportunities found at this time.")
}

func TestFormatCandidateDetail(t *testing.T) {
	c := sampleResult().Candidates[0]
	out := FormatCandidateDetail(c)

	assert.Contains(t, out, "<b>BTC</b> — 8.78/10")
	assert.Contains(t, out, "Price: $65000.1234 | 24h: +3.21%")
	assert.Contains(t, out, "Volume: $1,234,567")
	assert.Contains(t, out, "Risk Level: Low (Score: 2/10)")
}
