package calculation

import (
	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Summarize derives the headline values from a complete series.
// Records must be non-empty and carry fees in the same order as fees.
func Summarize(principal decimal.Decimal, records []domain.DailyRecord, fees []domain.FeeRate, dailyRate decimal.Decimal) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{
		Days:            len(records),
		DailyGrowthRate: dailyRate,
		FeeTotals:       make([]domain.FeeAmount, len(fees)),
	}
	for i, f := range fees {
		summary.FeeTotals[i] = domain.FeeAmount{Name: f.Name, Amount: decimal.Zero}
	}
	if len(records) == 0 {
		return summary
	}

	for _, rec := range records {
		for i, amt := range rec.Fees {
			if i < len(summary.FeeTotals) {
				summary.FeeTotals[i].Amount = summary.FeeTotals[i].Amount.Add(amt.Amount)
			}
		}
	}

	last := records[len(records)-1]
	summary.FinalClosingValue = last.ClosingValue
	summary.TotalFees = last.CumulativeFee
	summary.FinalNetValue = last.ClosingValue.Sub(last.CumulativeFee)
	summary.GrowthEarned = last.ClosingValue.Sub(principal)
	summary.FeeDragPercent = decimal.Zero
	if summary.GrowthEarned.IsPositive() {
		summary.FeeDragPercent = summary.TotalFees.Mul(hundred).DivRound(summary.GrowthEarned, WorkingPrecision)
	}
	return summary
}
