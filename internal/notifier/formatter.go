package notifier

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"CoinScout/internal/model"
	"CoinScout/internal/screener"
)

// FormatConsoleReport renders the full ranked report for terminal output.
func FormatConsoleReport(result *screener.Result) string {
	var b strings.Builder

	b.WriteString("\nCrypto Investment Analysis Report\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")

	if len(result.Candidates) == 0 {
		b.WriteString("No promising investment opportunities found at this time.\n")
		return b.String()
	}

	for _, c := range result.Candidates {
		b.WriteString(fmt.Sprintf("\nSymbol: %s\n", c.Symbol))
		b.WriteString(fmt.Sprintf("Current Price: $%.4f\n", c.CurrentPrice))
		b.WriteString(fmt.Sprintf("24h Price Change: %.2f%%\n", c.PriceChange24h))
		b.WriteString(fmt.Sprintf("Daily Volume: $%s\n", humanize.CommafWithDigits(c.DailyVolume, 2)))
		b.WriteString(fmt.Sprintf("Combined Score: %.2f/10\n", c.CombinedScore))
		b.WriteString(fmt.Sprintf("Risk Score: %d/10\n", c.RiskScore))
		b.WriteString(fmt.Sprintf("Potential Score: %.1f/10\n", c.PotentialScore))
		b.WriteString("\nRecommendation:\n")
		for _, line := range c.Recommendation {
			b.WriteString(line + "\n")
		}
		b.WriteString(strings.Repeat("-", 50) + "\n")
	}
	return b.String()
}

// FormatTelegramReport renders a compact HTML report with the top
// candidates, sized to stay inside Telegram's message limit.
func FormatTelegramReport(result *screener.Result, top int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🔎 <b>CoinScout Screening Report</b> | %s\n",
		result.FinishedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Analyzed %d symbols, %d opportunities found\n\n",
		len(result.Candidates)+len(result.Skipped), len(result.Candidates)))

	if len(result.Candidates) == 0 {
		b.WriteString("No promising investment opportunities found at this time.\n")
		return b.String()
	}

	shown := result.Candidates
	if top > 0 && len(shown) > top {
		shown = shown[:top]
	}
	for i, c := range shown {
		b.WriteString(fmt.Sprintf("%d. <b>%s</b> — %.2f/10\n", i+1, c.Symbol, c.CombinedScore))
		b.WriteString(fmt.Sprintf("   $%.4f | 24h %+.2f%% | vol $%s\n",
			c.CurrentPrice, c.PriceChange24h, humanize.CommafWithDigits(c.DailyVolume, 0)))
		b.WriteString(fmt.Sprintf("   risk %d/10, potential %.1f/10\n", c.RiskScore, c.PotentialScore))
		if len(c.Recommendation) > 0 {
			b.WriteString(fmt.Sprintf("   %s\n", c.Recommendation[0]))
		}
		b.WriteString("\n")
	}
	if len(result.Candidates) > len(shown) {
		b.WriteString(fmt.Sprintf("…and %d more above the threshold\n", len(result.Candidates)-len(shown)))
	}
	return b.String()
}

// FormatCandidateDetail renders one candidate with its full
// recommendation block, for the /top command.
func FormatCandidateDetail(c *model.ScoredCandidate) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>%s</b> — %.2f/10\n", c.Symbol, c.CombinedScore))
	b.WriteString(fmt.Sprintf("Price: $%.4f | 24h: %+.2f%%\n", c.CurrentPrice, c.PriceChange24h))
	b.WriteString(fmt.Sprintf("Volume: $%s\n\n", humanize.CommafWithDigits(c.DailyVolume, 0)))
	for _, line := range c.Recommendation {
		b.WriteString(line + "\n")
	}
	return b.String()
}
