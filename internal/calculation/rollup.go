package calculation

import (
	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Rollup condenses a daily series into one record per period. Each rolled record
// opens with the first day's opening value, closes with the last day's closing,
// cumulative and net values, and carries the fees charged during the period.
// The final record always ends on the last day of the series, even mid-period.
// A daily period returns a copy of records.
func Rollup(records []domain.DailyRecord, period dateutil.Period) []domain.DailyRecord {
	if period == dateutil.Daily {
		return append([]domain.DailyRecord(nil), records...)
	}

	var out []domain.DailyRecord
	var acc *domain.DailyRecord
	for i, rec := range records {
		if acc == nil {
			acc = &domain.DailyRecord{
				OpeningValue:  rec.OpeningValue,
				Fees:          make([]domain.FeeAmount, len(rec.Fees)),
				TotalDailyFee: decimal.Zero,
			}
			for j, f := range rec.Fees {
				acc.Fees[j] = domain.FeeAmount{Name: f.Name, Amount: decimal.Zero}
			}
		}
		for j, f := range rec.Fees {
			acc.Fees[j].Amount = acc.Fees[j].Amount.Add(f.Amount)
		}
		acc.TotalDailyFee = acc.TotalDailyFee.Add(rec.TotalDailyFee)

		if i == len(records)-1 || rec.Date.Equal(dateutil.EndOf(rec.Date, period)) {
			acc.Date = rec.Date
			acc.ClosingValue = rec.ClosingValue
			acc.CumulativeFee = rec.CumulativeFee
			acc.NetValue = rec.NetValue
			out = append(out, *acc)
			acc = nil
		}
	}
	return out
}
