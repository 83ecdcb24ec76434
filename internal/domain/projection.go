package domain

import (
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// FeeAmount is one named fee charged on one day (or a total across days).
type FeeAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// DailyRecord is one row of the projection: the state of the investment at the end of Date.
type DailyRecord struct {
	Date          dateutil.Date   `json:"date"`
	OpeningValue  decimal.Decimal `json:"opening_value"`
	ClosingValue  decimal.Decimal `json:"closing_value"`
	Fees          []FeeAmount     `json:"fees"` // same order as the request's fees
	TotalDailyFee decimal.Decimal `json:"total_daily_fee"`
	CumulativeFee decimal.Decimal `json:"cumulative_fee"`
	NetValue      decimal.Decimal `json:"net_value"`
}

// Fee returns the amount charged for the named fee on this day.
func (dr DailyRecord) Fee(name string) (decimal.Decimal, bool) {
	for _, f := range dr.Fees {
		if f.Name == name {
			return f.Amount, true
		}
	}
	return decimal.Zero, false
}

// ProjectionSummary holds the values derived from a complete series.
type ProjectionSummary struct {
	Days              int             `json:"days"`
	DailyGrowthRate   decimal.Decimal `json:"daily_growth_rate"`
	FinalClosingValue decimal.Decimal `json:"final_closing_value"`
	FinalNetValue     decimal.Decimal `json:"final_net_value"`
	TotalFees         decimal.Decimal `json:"total_fees"`
	FeeTotals         []FeeAmount     `json:"fee_totals"`
	GrowthEarned      decimal.Decimal `json:"growth_earned"`
	FeeDragPercent    decimal.Decimal `json:"fee_drag_percent"` // total fees as a percentage of growth earned
}

// FeeTotal returns the total charged for the named fee over the whole projection.
func (ps ProjectionSummary) FeeTotal(name string) decimal.Decimal {
	for _, f := range ps.FeeTotals {
		if f.Name == name {
			return f.Amount
		}
	}
	return decimal.Zero
}

// ProjectionResult couples a request with its full daily series and summary.
type ProjectionResult struct {
	Request ProjectionRequest `json:"request"`
	Records []DailyRecord     `json:"records"`
	Summary ProjectionSummary `json:"summary"`
}

// ScenarioSummary is one named projection inside a comparison.
type ScenarioSummary struct {
	Name   string            `json:"name"`
	Result *ProjectionResult `json:"result"`
}

// ScenarioComparison provides a comparison of all scenarios
type ScenarioComparison struct {
	Currency    string            `json:"currency"`
	Scenarios   []ScenarioSummary `json:"scenarios"`
	Best        string            `json:"best"` // highest final net value
	Assumptions []string          `json:"assumptions"`
}
