package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// PeriodFormatter is a Formatter that prints a time series condensed to a period.
type PeriodFormatter interface {
	Formatter
	WithPeriod(p dateutil.Period) Formatter
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ScenarioComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ScenarioComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }

// WithPeriod returns f condensed to p when f supports it, otherwise f unchanged.
func WithPeriod(f Formatter, p dateutil.Period) Formatter {
	if pf, ok := f.(PeriodFormatter); ok {
		return pf.WithPeriod(p)
	}
	return f
}

// Extension returns the file extension used when a formatter's output is saved.
func Extension(f Formatter) string {
	switch name := f.Name(); {
	case strings.Contains(name, "csv"):
		return "csv"
	case name == "json":
		return "json"
	case name == "html":
		return "html"
	case name == "markdown":
		return "md"
	default:
		return "txt"
	}
}

// WriteFormatted runs a formatter and writes output to timestamped file with extension.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("investment_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{Period: dateutil.Monthly},
	ConsoleLiteFormatter{},
	CSVDailyExporter{},
	CSVSummarizer{},
	HTMLFormatter{Period: dateutil.Monthly},
	JSONFormatter{},
	MarkdownFormatter{Period: dateutil.Monthly},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"verbose":     "console",
	"lite":        "console-lite",
	"daily-csv":   "csv",
	"csv-daily":   "csv",
	"csv-summary": "summary-csv",
	"md":          "markdown",
	"html-report": "html",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
