package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.57", FormatCurrency(decimal.RequireFromString("1234.567"), "USD"))
	assert.Contains(t, FormatCurrency(decimal.NewFromInt(1000000), "TZS"), "1,000,000")
	assert.Equal(t, FormatCurrency(decimal.NewFromInt(5), "TZS"), FormatCurrency(decimal.NewFromInt(5), ""))
}

func TestFormatPercentageAndRate(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"percentage", FormatPercentage(decimal.NewFromFloat(12.345)), "12.35%"},
		{"annual rate", FormatRate(decimal.RequireFromString("0.018"), 2), "1.80%"},
		{"daily rate", FormatRate(decimal.RequireFromString("0.00040671"), 4), "0.0407%"},
		{"amount", FormatAmount(decimal.RequireFromString("1160000.004")), "1,160,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
