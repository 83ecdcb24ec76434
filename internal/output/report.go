package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
)

// ErrUnsupportedFormat is returned for format names that resolve to no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Lookup resolves a format name or alias. A non-empty period condenses the
// format's time series where the format supports it; otherwise the format's
// own default applies.
func Lookup(format, period string) (Formatter, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	if period == "" {
		return f, nil
	}
	p, err := dateutil.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	return WithPeriod(f, p), nil
}

// Render formats results without writing them anywhere.
func Render(results *domain.ScenarioComparison, format, period string) ([]byte, error) {
	f, err := Lookup(format, period)
	if err != nil {
		return nil, err
	}
	return f.Format(results)
}

// GenerateReport writes results in the named format to a timestamped file in the
// working directory and returns its name. "all" writes the console, daily CSV and
// HTML reports.
func GenerateReport(results *domain.ScenarioComparison, format string) (string, error) {
	if NormalizeFormatName(format) == "all" {
		var names []string
		for _, name := range []string{"console", "csv", "html"} {
			f := GetFormatterByName(name)
			filename, err := WriteFormatted(f, results, Extension(f))
			if err != nil {
				return "", err
			}
			names = append(names, filename)
		}
		return strings.Join(names, ", "), nil
	}

	f, err := Lookup(format, "")
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, results, Extension(f))
}
