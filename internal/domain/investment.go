package domain

import (
	"fmt"
	"strings"

	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// FeeRate is a named proportional annual fee, expressed as a fraction (0.018 for 1.8%).
type FeeRate struct {
	Name       string          `yaml:"name" json:"name" toml:"name"`
	AnnualRate decimal.Decimal `yaml:"annual_rate" json:"annual_rate" toml:"annual_rate"`
}

// DefaultFees returns the fee schedule of the Apef Trust fund:
// custodian 0.1%, management 1.8%, expenses and other charges 0.35%.
func DefaultFees() []FeeRate {
	return []FeeRate{
		{Name: "custodian", AnnualRate: decimal.RequireFromString("0.001")},
		{Name: "management", AnnualRate: decimal.RequireFromString("0.018")},
		{Name: "other", AnnualRate: decimal.RequireFromString("0.0035")},
	}
}

// FeeTiming decides whether the first day of a projection is charged a fee.
type FeeTiming int

const (
	// FeeTimingSameDay charges fees from day 0 against the day's grown closing value.
	FeeTimingSameDay FeeTiming = iota
	// FeeTimingNextDay leaves day 0 fee-free; fees accrue from day 1 onward.
	FeeTimingNextDay
)

func (ft FeeTiming) String() string {
	switch ft {
	case FeeTimingSameDay:
		return "same_day"
	case FeeTimingNextDay:
		return "next_day"
	default:
		return fmt.Sprintf("fee_timing(%d)", int(ft))
	}
}

// ParseFeeTiming reads a fee timing policy name. The empty string is the default policy.
func ParseFeeTiming(s string) (FeeTiming, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "same_day", "same-day", "day0", "from_start":
		return FeeTimingSameDay, nil
	case "next_day", "next-day", "day1", "deferred":
		return FeeTimingNextDay, nil
	default:
		return FeeTimingSameDay, fmt.Errorf("unknown fee timing %q (want same_day or next_day)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (ft FeeTiming) MarshalText() ([]byte, error) { return []byte(ft.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (ft *FeeTiming) UnmarshalText(text []byte) error {
	v, err := ParseFeeTiming(string(text))
	if err != nil {
		return err
	}
	*ft = v
	return nil
}

// ProjectionRequest holds everything the projection engine needs.
// Treat it as immutable once built; NewProjectionRequest copies the fee slice.
type ProjectionRequest struct {
	Principal        decimal.Decimal `json:"principal"`
	AnnualGrowthRate decimal.Decimal `json:"annual_growth_rate"`
	Fees             []FeeRate       `json:"fees"`
	StartDate        dateutil.Date   `json:"start_date"`
	EndDate          dateutil.Date   `json:"end_date"`
	FeeTiming        FeeTiming       `json:"fee_timing"`
}

// NewProjectionRequest builds and validates a request.
func NewProjectionRequest(principal, annualGrowthRate decimal.Decimal, fees []FeeRate, start, end dateutil.Date, timing FeeTiming) (ProjectionRequest, error) {
	req := ProjectionRequest{
		Principal:        principal,
		AnnualGrowthRate: annualGrowthRate,
		Fees:             append([]FeeRate(nil), fees...),
		StartDate:        start,
		EndDate:          end,
		FeeTiming:        timing,
	}
	if err := req.Validate(); err != nil {
		return ProjectionRequest{}, err
	}
	return req, nil
}

// Validate checks the date range first, then every rate.
func (r ProjectionRequest) Validate() error {
	if r.StartDate.After(r.EndDate) {
		return &InvalidRangeError{Start: r.StartDate, End: r.EndDate}
	}
	if r.AnnualGrowthRate.IsNegative() {
		return &InvalidRateError{Name: "annual_growth_rate", Rate: r.AnnualGrowthRate}
	}
	for _, f := range r.Fees {
		if f.AnnualRate.IsNegative() {
			return &InvalidRateError{Name: f.Name, Rate: f.AnnualRate}
		}
	}
	return nil
}

// TotalFeeRate is the effective annual drag: the sum of all fee rates.
func (r ProjectionRequest) TotalFeeRate() decimal.Decimal {
	total := decimal.Zero
	for _, f := range r.Fees {
		total = total.Add(f.AnnualRate)
	}
	return total
}

// Days is the number of calendar days in the inclusive range.
func (r ProjectionRequest) Days() int {
	return dateutil.DaysInclusive(r.StartDate, r.EndDate)
}
