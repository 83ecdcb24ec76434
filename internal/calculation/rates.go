package calculation

import (
	"fmt"

	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// DaysPerYear is the fixed annual divisor for both growth and fees, leap years included.
	DaysPerYear = 365

	// WorkingPrecision is the number of fractional digits kept between daily steps.
	WorkingPrecision int32 = 20

	// guard digits for the ln/exp evaluation
	ratePrecision = WorkingPrecision + 6
)

var (
	one         = decimal.NewFromInt(1)
	hundred     = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(DaysPerYear)
)

// DailyGrowthRate converts an annual rate into the daily rate that compounds to it
// over DaysPerYear days: (1+g)^(1/365) - 1.
func DailyGrowthRate(annual decimal.Decimal) (decimal.Decimal, error) {
	if annual.IsNegative() {
		return decimal.Zero, &domain.InvalidRateError{Name: "annual_growth_rate", Rate: annual}
	}
	if annual.IsZero() {
		return decimal.Zero, nil
	}
	ln, err := one.Add(annual).Ln(ratePrecision)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to convert annual rate %s: %w", annual, err)
	}
	growth, err := ln.DivRound(daysPerYear, ratePrecision).ExpTaylor(ratePrecision)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to convert annual rate %s: %w", annual, err)
	}
	return growth.Sub(one).Round(WorkingPrecision), nil
}

// DailyFeeRate is the flat pro-rata share of an annual fee charged per day.
func DailyFeeRate(annual decimal.Decimal) decimal.Decimal {
	return annual.DivRound(daysPerYear, WorkingPrecision)
}

// dailyFee charges one day of an annual fee against value.
// Multiplying before dividing keeps the result exact to WorkingPrecision.
func dailyFee(value, annual decimal.Decimal) decimal.Decimal {
	return value.Mul(annual).DivRound(daysPerYear, WorkingPrecision)
}
