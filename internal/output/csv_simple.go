package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/apeftrust/investment-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "summary-csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "StartDate", "EndDate", "Days", "Principal", "AnnualGrowthRate", "DailyGrowthRate", "TotalFeeRate", "FeeTiming", "FinalClosingValue", "TotalFees", "FinalNetValue", "GrowthEarned", "FeeDragPercent", "Best"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		req, s := sc.Result.Request, sc.Result.Summary
		row := []string{
			sc.Name,
			req.StartDate.String(),
			req.EndDate.String(),
			intToString(s.Days),
			req.Principal.StringFixed(2),
			req.AnnualGrowthRate.String(),
			s.DailyGrowthRate.StringFixed(10),
			req.TotalFeeRate().String(),
			req.FeeTiming.String(),
			s.FinalClosingValue.StringFixed(2),
			s.TotalFees.StringFixed(2),
			s.FinalNetValue.StringFixed(2),
			s.GrowthEarned.StringFixed(2),
			s.FeeDragPercent.StringFixed(2),
			strconv.FormatBool(sc.Name == results.Best),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
