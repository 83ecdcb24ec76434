package output

import (
	"sort"

	"github.com/apeftrust/investment-calculator/internal/calculation"
	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	FinalNetValue    decimal.Decimal
	RunnerUp         string
	Advantage        decimal.Decimal // net value over the runner-up
	PercentageChange decimal.Decimal // advantage relative to the runner-up's net value
}

// AnalyzeScenarios ranks scenarios by final net value; ties keep input order.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	type ranked struct {
		name string
		net  decimal.Decimal
	}
	var ranks []ranked
	for _, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		ranks = append(ranks, ranked{sc.Name, sc.Result.Summary.FinalNetValue})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].net.GreaterThan(ranks[j].net) })

	rec := Recommendation{ScenarioName: ranks[0].name, FinalNetValue: ranks[0].net}
	if len(ranks) > 1 {
		rec.RunnerUp = ranks[1].name
		rec.Advantage = ranks[0].net.Sub(ranks[1].net)
		if !ranks[1].net.IsZero() {
			rec.PercentageChange = rec.Advantage.Div(ranks[1].net.Abs()).Mul(decimalHundred)
		}
	}
	return rec
}

// scenarioView is what the table-style formatters render for one scenario.
type scenarioView struct {
	Index   int
	Name    string
	Best    bool
	Request domain.ProjectionRequest
	Summary domain.ProjectionSummary
	Rows    []domain.DailyRecord
}

func buildViews(results *domain.ScenarioComparison, period dateutil.Period) []scenarioView {
	views := make([]scenarioView, 0, len(results.Scenarios))
	for i, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		views = append(views, scenarioView{
			Index:   i + 1,
			Name:    sc.Name,
			Best:    sc.Name == results.Best,
			Request: sc.Result.Request,
			Summary: sc.Result.Summary,
			Rows:    calculation.Rollup(sc.Result.Records, period),
		})
	}
	return views
}

// periodLabel titles a rolled-up table.
func periodLabel(p dateutil.Period) string {
	switch p {
	case dateutil.Monthly:
		return "Monthly"
	case dateutil.Quarterly:
		return "Quarterly"
	case dateutil.Yearly:
		return "Yearly"
	default:
		return "Daily"
	}
}
