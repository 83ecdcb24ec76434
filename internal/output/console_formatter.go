package output

import (
	"bytes"
	"fmt"

	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
)

const consoleWidth = 100

// ConsoleFormatter renders the full terminal report: headline cards, fee
// breakdown and a period table for each scenario.
type ConsoleFormatter struct {
	Period dateutil.Period
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) WithPeriod(p dateutil.Period) Formatter { return ConsoleFormatter{Period: p} }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	cur := results.Currency

	fmt.Fprintln(&buf, renderTitle("APEF TRUST INVESTMENT PROJECTION", consoleWidth-4))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, headerStyle.Render("KEY ASSUMPTIONS"))
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "  • %s\n", mutedStyle.Render(a))
	}
	fmt.Fprintln(&buf)

	for _, v := range buildViews(results, c.Period) {
		heading := fmt.Sprintf("SCENARIO %d: %s", v.Index, v.Name)
		if v.Best && len(results.Scenarios) > 1 {
			heading += " " + bestStyle.Render("★ best")
		}
		fmt.Fprintln(&buf, headerStyle.Render(heading))
		fmt.Fprintf(&buf, "%s\n", dimStyle.Render(fmt.Sprintf("%s to %s, %d days, principal %s, growth %s a year (%s a day), fees from %s",
			v.Request.StartDate, v.Request.EndDate, v.Summary.Days,
			FormatCurrency(v.Request.Principal, cur),
			FormatRate(v.Request.AnnualGrowthRate, 2), FormatRate(v.Summary.DailyGrowthRate, 4),
			feeStart(v.Request.FeeTiming))))

		fmt.Fprintln(&buf, metricRow([]metric{
			{"Final value", FormatCurrency(v.Summary.FinalClosingValue, cur), "before fees"},
			{"Net value", FormatCurrency(v.Summary.FinalNetValue, cur), "after fees"},
			{"Total fees", FormatCurrency(v.Summary.TotalFees, cur), FormatRate(v.Request.TotalFeeRate(), 2) + " a year"},
			{"Growth earned", FormatCurrency(v.Summary.GrowthEarned, cur), "fee drag " + FormatPercentage(v.Summary.FeeDragPercent)},
		}, consoleWidth))

		fees := table{Title: "Fee breakdown", Headers: []string{"Fee", "Annual rate", "Total charged"}}
		for i, f := range v.Request.Fees {
			fees.Rows = append(fees.Rows, []string{f.Name, FormatRate(f.AnnualRate, 2), feeStyle.Render(FormatAmount(v.Summary.FeeTotals[i].Amount))})
		}
		fees.Rows = append(fees.Rows, []string{"total", FormatRate(v.Request.TotalFeeRate(), 2), feeStyle.Render(FormatAmount(v.Summary.TotalFees))})
		fmt.Fprint(&buf, renderTable(fees))

		series := table{
			Title:   periodLabel(c.Period) + " values",
			Headers: []string{"Date", "Opening", "Closing", "Fees", "Cumulative fees", "Net value"},
		}
		for _, r := range v.Rows {
			series.Rows = append(series.Rows, []string{
				r.Date.String(),
				FormatAmount(r.OpeningValue),
				FormatAmount(r.ClosingValue),
				FormatAmount(r.TotalDailyFee),
				FormatAmount(r.CumulativeFee),
				FormatAmount(r.NetValue),
			})
		}
		fmt.Fprint(&buf, renderTable(series))
		fmt.Fprintln(&buf)
	}

	if rec := AnalyzeScenarios(results); rec.RunnerUp != "" {
		fmt.Fprintf(&buf, "%s %s (net %s, %s ahead of %s, %s)\n",
			bestStyle.Render("Recommended:"), rec.ScenarioName,
			FormatCurrency(rec.FinalNetValue, cur), FormatCurrency(rec.Advantage, cur),
			rec.RunnerUp, FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}

func feeStart(ft domain.FeeTiming) string {
	if ft == domain.FeeTimingNextDay {
		return "day two"
	}
	return "day one"
}
