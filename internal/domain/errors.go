package domain

import (
	"errors"
	"fmt"

	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidRange matches any *InvalidRangeError through errors.Is.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrInvalidRate matches any *InvalidRateError through errors.Is.
	ErrInvalidRate = errors.New("invalid rate")
)

// InvalidRangeError reports a projection whose end date precedes its start date.
type InvalidRangeError struct {
	Start dateutil.Date
	End   dateutil.Date
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s: end date %s is before start date %s", ErrInvalidRange, e.End, e.Start)
}

func (e *InvalidRangeError) Is(target error) bool { return target == ErrInvalidRange }

// InvalidRateError reports a negative growth or fee rate.
type InvalidRateError struct {
	Name string
	Rate decimal.Decimal
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("%s: %s must not be negative, got %s", ErrInvalidRate, e.Name, e.Rate)
}

func (e *InvalidRateError) Is(target error) bool { return target == ErrInvalidRate }

// IsValidationError reports whether err is one of the two request validation failures.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRange) || errors.Is(err, ErrInvalidRate)
}
