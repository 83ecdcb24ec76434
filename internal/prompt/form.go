// Package prompt collects a projection request interactively.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

// FormValues holds the raw text of every form field. Rates are entered as
// percentages ("16" for 16%).
type FormValues struct {
	Principal     string
	GrowthPercent string
	StartDate     string
	EndDate       string
	FeeTiming     string
	Custodian     string
	Management    string
	Other         string
	Format        string
}

// DefaultValues pre-fills the form with the Apef Trust fund over the current year.
func DefaultValues(today dateutil.Date) FormValues {
	return FormValues{
		Principal:     "1000000",
		GrowthPercent: "16",
		StartDate:     dateutil.BeginningOfYear(today).String(),
		EndDate:       dateutil.EndOfYear(today).String(),
		FeeTiming:     domain.FeeTimingSameDay.String(),
		Custodian:     "0.1",
		Management:    "1.8",
		Other:         "0.35",
		Format:        "console",
	}
}

// BuildForm binds v to a two-page form: investment details, then fees.
func BuildForm(v *FormValues, formats []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Initial investment").
				Value(&v.Principal).
				Validate(ValidateAmount),
			huh.NewInput().
				Title("Expected annual growth (%)").
				Value(&v.GrowthPercent).
				Validate(ValidatePercent),
			huh.NewInput().
				Title("Start date").
				Description("YYYY-MM-DD").
				Value(&v.StartDate).
				Validate(ValidateDate),
			huh.NewInput().
				Title("End date").
				Description("YYYY-MM-DD").
				Value(&v.EndDate).
				Validate(ValidateDate),
		).Title("Investment"),
		huh.NewGroup(
			huh.NewInput().Title("Custodian fee (% a year)").Value(&v.Custodian).Validate(ValidatePercent),
			huh.NewInput().Title("Management fee (% a year)").Value(&v.Management).Validate(ValidatePercent),
			huh.NewInput().Title("Expenses and other charges (% a year)").Value(&v.Other).Validate(ValidatePercent),
			huh.NewSelect[string]().
				Title("First fee charged").
				Options(
					huh.NewOption("On the first day", domain.FeeTimingSameDay.String()),
					huh.NewOption("From the second day", domain.FeeTimingNextDay.String()),
				).
				Value(&v.FeeTiming),
			huh.NewSelect[string]().
				Title("Report format").
				Options(huh.NewOptions(formats...)...).
				Value(&v.Format),
		).Title("Fees"),
	).WithTheme(huh.ThemeCharm())
}

// ValidateAmount accepts a non-negative number, with optional thousands separators.
func ValidateAmount(s string) error {
	d, err := parseNumber(s)
	if err != nil {
		return err
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

// ValidatePercent accepts a non-negative percentage.
func ValidatePercent(s string) error {
	return ValidateAmount(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

// ValidateDate accepts YYYY-MM-DD.
func ValidateDate(s string) error {
	if _, err := dateutil.Parse(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func parseNumber(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, errors.New("a number is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.New("not a number")
	}
	return d, nil
}

func parsePercent(s string) (decimal.Decimal, error) {
	d, err := parseNumber(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return decimal.Zero, err
	}
	return d.Div(decimal.NewFromInt(100)), nil
}

// Request converts the form into a validated projection request.
func (v FormValues) Request() (domain.ProjectionRequest, error) {
	principal, err := parseNumber(v.Principal)
	if err != nil {
		return domain.ProjectionRequest{}, fmt.Errorf("initial investment: %w", err)
	}
	if principal.IsNegative() {
		return domain.ProjectionRequest{}, errors.New("initial investment: must not be negative")
	}
	growth, err := parsePercent(v.GrowthPercent)
	if err != nil {
		return domain.ProjectionRequest{}, fmt.Errorf("annual growth: %w", err)
	}
	start, err := dateutil.Parse(strings.TrimSpace(v.StartDate))
	if err != nil {
		return domain.ProjectionRequest{}, fmt.Errorf("start date: %w", err)
	}
	end, err := dateutil.Parse(strings.TrimSpace(v.EndDate))
	if err != nil {
		return domain.ProjectionRequest{}, fmt.Errorf("end date: %w", err)
	}
	timing, err := domain.ParseFeeTiming(v.FeeTiming)
	if err != nil {
		return domain.ProjectionRequest{}, err
	}

	fields := []struct{ name, value string }{
		{"custodian", v.Custodian},
		{"management", v.Management},
		{"other", v.Other},
	}
	fees := make([]domain.FeeRate, 0, len(fields))
	for _, f := range fields {
		rate, err := parsePercent(f.value)
		if err != nil {
			return domain.ProjectionRequest{}, fmt.Errorf("%s fee: %w", f.name, err)
		}
		fees = append(fees, domain.FeeRate{Name: f.name, AnnualRate: rate})
	}

	return domain.NewProjectionRequest(principal, growth, fees, start, end, timing)
}
