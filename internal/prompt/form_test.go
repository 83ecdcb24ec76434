package prompt

import (
	"errors"
	"testing"

	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		in      string
		wantErr bool
	}{
		{"amount plain", ValidateAmount, "1000000", false},
		{"amount grouped", ValidateAmount, "1,000,000.50", false},
		{"amount empty", ValidateAmount, " ", true},
		{"amount text", ValidateAmount, "lots", true},
		{"amount negative", ValidateAmount, "-5", true},
		{"percent", ValidatePercent, "16", false},
		{"percent sign", ValidatePercent, "1.8%", false},
		{"percent negative", ValidatePercent, "-0.1", true},
		{"date", ValidateDate, "2025-01-01", false},
		{"date short", ValidateDate, "2025-1-1", false},
		{"date bad", ValidateDate, "01/01/2025", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultValuesRequest(t *testing.T) {
	v := DefaultValues(dateutil.MustParse("2025-06-15"))
	assert.Equal(t, "2025-01-01", v.StartDate)
	assert.Equal(t, "2025-12-31", v.EndDate)

	req, err := v.Request()
	require.NoError(t, err)
	assert.True(t, req.Principal.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, req.AnnualGrowthRate.Equal(decimal.RequireFromString("0.16")))
	assert.Equal(t, 365, req.Days())
	assert.Equal(t, domain.FeeTimingSameDay, req.FeeTiming)

	want := domain.DefaultFees()
	require.Len(t, req.Fees, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, req.Fees[i].Name)
		assert.True(t, want[i].AnnualRate.Equal(req.Fees[i].AnnualRate), "%s: %s", want[i].Name, req.Fees[i].AnnualRate)
	}
}

func TestRequestErrors(t *testing.T) {
	base := DefaultValues(dateutil.MustParse("2025-06-15"))

	v := base
	v.EndDate = "2024-12-31"
	_, err := v.Request()
	var rangeErr *domain.InvalidRangeError
	assert.True(t, errors.As(err, &rangeErr))

	v = base
	v.Management = "abc"
	_, err = v.Request()
	assert.ErrorContains(t, err, "management fee")

	v = base
	v.FeeTiming = "weekly"
	_, err = v.Request()
	assert.Error(t, err)

	v = base
	v.Principal = "-1"
	_, err = v.Request()
	assert.ErrorContains(t, err, "initial investment")
}

func TestBuildForm(t *testing.T) {
	v := DefaultValues(dateutil.MustParse("2025-06-15"))
	form := BuildForm(&v, []string{"console", "markdown"})
	require.NotNil(t, form)
}
