package domain

import (
	"fmt"
	"strings"

	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Configuration is the input file: a currency, a default fee timing policy and
// one or more scenarios to project.
type Configuration struct {
	Currency  string     `yaml:"currency" json:"currency" toml:"currency"`
	FeeTiming FeeTiming  `yaml:"fee_timing" json:"fee_timing" toml:"fee_timing"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios" toml:"scenarios"`
}

// Scenario describes one investment to project.
type Scenario struct {
	Name             string          `yaml:"name" json:"name" toml:"name"`
	Principal        decimal.Decimal `yaml:"principal" json:"principal" toml:"principal"`
	AnnualGrowthRate decimal.Decimal `yaml:"annual_growth_rate" json:"annual_growth_rate" toml:"annual_growth_rate"`
	StartDate        dateutil.Date   `yaml:"start_date" json:"start_date" toml:"start_date"`
	EndDate          dateutil.Date   `yaml:"end_date" json:"end_date" toml:"end_date"`

	// FeeTiming overrides the configuration-wide policy when set.
	FeeTiming *FeeTiming `yaml:"fee_timing,omitempty" json:"fee_timing,omitempty" toml:"fee_timing,omitempty"`

	// Fees defaults to DefaultFees when empty.
	Fees []FeeRate `yaml:"fees,omitempty" json:"fees,omitempty" toml:"fees,omitempty"`
}

// Request turns the scenario into a projection request, applying defaults.
func (s Scenario) Request(defaultTiming FeeTiming) (ProjectionRequest, error) {
	timing := defaultTiming
	if s.FeeTiming != nil {
		timing = *s.FeeTiming
	}
	fees := s.Fees
	if len(fees) == 0 {
		fees = DefaultFees()
	}
	return NewProjectionRequest(s.Principal, s.AnnualGrowthRate, fees, s.StartDate, s.EndDate, timing)
}

// GenerateAssumptions lists the modeling policies behind every scenario in the configuration.
func (c *Configuration) GenerateAssumptions() []string {
	out := []string{
		"Growth compounds daily at (1 + annual rate)^(1/365) - 1, a fixed 365-day year including leap years",
		"Fees accrue daily at annual rate / 365 of the day's closing value, without compounding",
		"Fees are tracked separately and subtracted only when computing net value",
		fmt.Sprintf("Day-one fee policy: %s", describeFeeTiming(c.FeeTiming)),
	}
	for _, s := range c.Scenarios {
		fees := s.Fees
		if len(fees) == 0 {
			fees = DefaultFees()
		}
		parts := make([]string, 0, len(fees))
		for _, f := range fees {
			parts = append(parts, fmt.Sprintf("%s %s%%", f.Name, f.AnnualRate.Mul(decimal.NewFromInt(100)).String()))
		}
		timing := c.FeeTiming
		if s.FeeTiming != nil {
			timing = *s.FeeTiming
		}
		out = append(out, fmt.Sprintf("%s: growth %s%% annually; fees %s; %s",
			s.Name, s.AnnualGrowthRate.Mul(decimal.NewFromInt(100)).String(), strings.Join(parts, ", "), firstFeeDay(timing)))
	}
	return out
}

func firstFeeDay(ft FeeTiming) string {
	if ft == FeeTimingNextDay {
		return "fees from day two"
	}
	return "fees from day one"
}

func describeFeeTiming(ft FeeTiming) string {
	if ft == FeeTimingNextDay {
		return "no fee on the first day, fees accrue from the second day"
	}
	return "fees charged from the first day on the grown closing value"
}
