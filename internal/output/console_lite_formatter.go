package output

import (
	"bytes"
	"fmt"

	"github.com/apeftrust/investment-calculator/internal/domain"
)

// ConsoleLiteFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	cur := results.Currency
	fmt.Fprintln(&buf, "INVESTMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		s := sc.Result.Summary
		fmt.Fprintf(&buf, "%s: Final=%s Net=%s Fees=%s Days=%d\n",
			sc.Name,
			FormatCurrency(s.FinalClosingValue, cur),
			FormatCurrency(s.FinalNetValue, cur),
			FormatCurrency(s.TotalFees, cur),
			s.Days,
		)
		fmt.Fprintf(&buf, "  Growth=%s FeeDrag=%s\n", FormatCurrency(s.GrowthEarned, cur), FormatPercentage(s.FeeDragPercent))
	}
	if rec := AnalyzeScenarios(results); rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.Advantage, cur), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
