package output

import (
	"bytes"
	"encoding/csv"

	"github.com/apeftrust/investment-calculator/internal/domain"
)

// CSVDailyExporter dumps every daily record of every scenario, one fee per column.
// Amounts are rounded to 2 decimals; the engine's full precision stays in JSON.
type CSVDailyExporter struct{}

func (c CSVDailyExporter) Name() string { return "csv" }

func (c CSVDailyExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	feeNames := feeColumns(results)

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Day", "Date", "OpeningValue", "ClosingValue"}
	for _, name := range feeNames {
		header = append(header, "Fee:"+name)
	}
	header = append(header, "TotalDailyFee", "CumulativeFee", "NetValue")
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		for day, rec := range sc.Result.Records {
			row := []string{
				sc.Name,
				intToString(day),
				rec.Date.String(),
				rec.OpeningValue.StringFixed(2),
				rec.ClosingValue.StringFixed(2),
			}
			for _, name := range feeNames {
				if amt, ok := rec.Fee(name); ok {
					row = append(row, amt.StringFixed(2))
				} else {
					row = append(row, "")
				}
			}
			row = append(row, rec.TotalDailyFee.StringFixed(2), rec.CumulativeFee.StringFixed(2), rec.NetValue.StringFixed(2))
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// feeColumns lists fee names across all scenarios in order of first appearance.
func feeColumns(results *domain.ScenarioComparison) []string {
	var names []string
	seen := map[string]bool{}
	for _, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		for _, f := range sc.Result.Request.Fees {
			if !seen[f.Name] {
				seen[f.Name] = true
				names = append(names, f.Name)
			}
		}
	}
	return names
}
