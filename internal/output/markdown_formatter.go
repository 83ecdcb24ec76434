package output

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// MarkdownFormatter renders the report as GitHub-flavored markdown tables.
type MarkdownFormatter struct {
	Period dateutil.Period
}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) WithPeriod(p dateutil.Period) Formatter { return MarkdownFormatter{Period: p} }

//go:embed templates/report.md.tmpl
var markdownTemplateSource string

var markdownTemplate = template.Must(template.New("markdown").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"amount": FormatAmount,
	"pct":    FormatPercentage,
	"rate":   func(d decimal.Decimal) string { return FormatRate(d, 2) },
	"daily":  func(d decimal.Decimal) string { return FormatRate(d, 4) },
}).Parse(markdownTemplateSource))

func (m MarkdownFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	views := buildViews(results, m.Period)
	data := struct {
		Currency       string
		PeriodLabel    string
		Assumptions    []string
		Scenarios      []scenarioView
		Recommendation Recommendation
		Compared       bool
	}{results.Currency, periodLabel(m.Period), assumptionsFor(results), views, AnalyzeScenarios(results), len(views) > 1}

	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
