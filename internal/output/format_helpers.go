package output

import (
	"strconv"

	moneyfmt "github.com/apeftrust/investment-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats an amount in the given ISO currency, rounded to its minor unit.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return moneyfmt.NewMoneyFromDecimal(amount).Format(currency)
}

// FormatAmount formats an amount with grouping and 2 decimals, without a symbol.
func FormatAmount(amount decimal.Decimal) string {
	return moneyfmt.NewMoneyFromDecimal(amount).Grouped()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fraction (0.018) as a percentage ("1.80%") with the given decimals.
func FormatRate(rate decimal.Decimal, places int32) string {
	return rate.Mul(decimalHundred).StringFixed(places) + "%"
}

func intToString(i int) string { return strconv.Itoa(i) }
