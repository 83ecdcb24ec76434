package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar bucket used to condense a daily series.
type Period int

const (
	Daily Period = iota
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("period(%d)", int(p))
	}
}

// ParsePeriod accepts the period name or its singular noun ("month", "year").
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "daily", "day":
		return Daily, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year", "annual":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q (want daily, monthly, quarterly or yearly)", s)
	}
}

// EndOf returns the last day of the period containing d.
func EndOf(d Date, p Period) Date {
	switch p {
	case Monthly:
		return New(d.Year(), d.Month()+1, 0)
	case Quarterly:
		q := (int(d.Month()) - 1) / 3
		return New(d.Year(), time.Month(q*3+4), 0)
	case Yearly:
		return EndOfYear(d)
	default:
		return d
	}
}
