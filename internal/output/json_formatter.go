package output

import (
	"encoding/json"

	"github.com/apeftrust/investment-calculator/internal/calculation"
	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
)

// JSONFormatter serializes the scenario comparison as pretty-printed JSON at full precision.
// Records are condensed to Period; the zero value keeps every day.
type JSONFormatter struct {
	Period dateutil.Period
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) WithPeriod(p dateutil.Period) Formatter { return JSONFormatter{Period: p} }

type jsonScenario struct {
	Name    string                   `json:"name"`
	Request domain.ProjectionRequest `json:"request"`
	Summary domain.ProjectionSummary `json:"summary"`
	Period  string                   `json:"period"`
	Records []domain.DailyRecord     `json:"records"`
}

type jsonReport struct {
	Currency    string         `json:"currency,omitempty"`
	Best        string         `json:"best,omitempty"`
	Assumptions []string       `json:"assumptions"`
	Scenarios   []jsonScenario `json:"scenarios"`
}

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	report := jsonReport{
		Currency:    results.Currency,
		Best:        results.Best,
		Assumptions: assumptionsFor(results),
		Scenarios:   make([]jsonScenario, 0, len(results.Scenarios)),
	}
	for _, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		report.Scenarios = append(report.Scenarios, jsonScenario{
			Name:    sc.Name,
			Request: sc.Result.Request,
			Summary: sc.Result.Summary,
			Period:  j.Period.String(),
			Records: calculation.Rollup(sc.Result.Records, j.Period),
		})
	}
	return json.MarshalIndent(report, "", "  ")
}
