package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyGrowthRate(t *testing.T) {
	tests := []struct {
		annual string
	}{
		{"0.01"},
		{"0.08"},
		{"0.16"},
		{"0.5"},
		{"1"},
	}
	for _, tt := range tests {
		t.Run(tt.annual, func(t *testing.T) {
			annual := decimal.RequireFromString(tt.annual)
			d, err := DailyGrowthRate(annual)
			require.NoError(t, err)

			want := math.Pow(1+annual.InexactFloat64(), 1.0/365) - 1
			assert.InDelta(t, want, d.InexactFloat64(), 1e-15)

			// compounding the daily rate over a year returns the annual rate
			compounded := one.Add(d).Pow(daysPerYear).Sub(one)
			assert.True(t, compounded.Sub(annual).Abs().LessThan(decimal.New(1, -15)), "compounded %s", compounded)
		})
	}
}

func TestDailyGrowthRate_Boundaries(t *testing.T) {
	d, err := DailyGrowthRate(decimal.Zero)
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = DailyGrowthRate(decimal.RequireFromString("-0.01"))
	assert.Error(t, err)
}

func TestDailyFeeRate(t *testing.T) {
	assert.Equal(t, "0.00004931506849315068", DailyFeeRate(decimal.RequireFromString("0.018")).String())
	assert.True(t, DailyFeeRate(decimal.NewFromInt(365)).Equal(one))
	assert.True(t, dailyFee(decimal.NewFromInt(365000), decimal.RequireFromString("0.001")).Equal(decimal.NewFromInt(1)))
}
