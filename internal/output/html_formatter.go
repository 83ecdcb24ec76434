package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with summary cards, SVG charts and a period table.
type HTMLFormatter struct {
	Period dateutil.Period
}

func (h HTMLFormatter) Name() string { return "html" }

func (h HTMLFormatter) WithPeriod(p dateutil.Period) Formatter { return HTMLFormatter{Period: p} }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"amount": FormatAmount,
	"pct":    FormatPercentage,
	"rate":   func(d decimal.Decimal) string { return FormatRate(d, 2) },
	"daily":  func(d decimal.Decimal) string { return FormatRate(d, 4) },
	"list":   func(charts ...svgChart) []svgChart { return charts },
}).Parse(htmlTemplateSource))

type htmlScenario struct {
	scenarioView
	ValueChart svgChart
	FeeChart   svgChart
	DailyFees  svgChart
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	var scenarios []htmlScenario
	for _, v := range buildViews(results, h.Period) {
		records := results.Scenarios[v.Index-1].Result.Records
		scenarios = append(scenarios, htmlScenario{
			scenarioView: v,
			ValueChart:   valueChart(records),
			FeeChart:     feeChart(records, v.Request.Fees),
			DailyFees:    dailyFeeChart(records, v.Request.Fees),
		})
	}

	data := struct {
		Currency       string
		PeriodLabel    string
		Assumptions    []string
		Scenarios      []htmlScenario
		Recommendation Recommendation
		Compared       bool
	}{results.Currency, periodLabel(h.Period), assumptionsFor(results), scenarios, AnalyzeScenarios(results), len(scenarios) > 1}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
