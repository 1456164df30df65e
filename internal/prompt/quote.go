package prompt

import (
	"fmt"
	"math"
	"strings"

	"stockwise/internal/dto"

	"github.com/dustin/go-humanize"
)

// FormatQuote renders q as the live-quote enrichment block.
func FormatQuote(q dto.Quote) string {
	lines := []string{
		fmt.Sprintf("[Live Quote] %s: $%.2f (%.2f%%)", q.Ticker, q.Price, q.ChangePercent*100),
	}

	if v, ok := number(q.Volume); ok {
		lines = append(lines, "- Volume: "+humanize.Comma(int64(math.Round(v))))
	}
	if v, ok := number(q.AverageVolume); ok {
		lines = append(lines, "- Average Volume (3mo): "+humanize.Comma(int64(math.Round(v))))
	}
	if v, ok := number(q.PERatio); ok {
		lines = append(lines, fmt.Sprintf("- P/E Ratio: %.2f", v))
	}
	if v, ok := number(q.MarketCap); ok {
		lines = append(lines, fmt.Sprintf("- Market Cap: $%.2fB", v/1e9))
	}
	low, lowOK := number(q.Week52Low)
	high, highOK := number(q.Week52High)
	if lowOK && highOK {
		lines = append(lines, fmt.Sprintf("- 52-Week Range: $%.2f - $%.2f", low, high))
	}

	consensus := "N/A"
	if q.AnalystConsensus != nil && strings.TrimSpace(*q.AnalystConsensus) != "" {
		consensus = strings.TrimSpace(*q.AnalystConsensus)
	}
	lines = append(lines, "- Analyst Consensus: "+consensus)

	return strings.Join(lines, "\n")
}

// QuoteUnavailable is the enrichment used when the quote lookup fails.
func QuoteUnavailable(symbol string) string {
	return fmt.Sprintf("[Live Quote] Could not fetch data for %s.", symbol)
}

func number(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}
