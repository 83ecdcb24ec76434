package calculation

import (
	"context"
	"fmt"

	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ProjectionEngine turns projection requests into daily series.
// It holds no per-call state and may be shared between goroutines.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine with a no-op logger
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

func (pe *ProjectionEngine) logger() Logger {
	if pe.Logger == nil {
		return NopLogger{}
	}
	return pe.Logger
}

// Project computes one DailyRecord per calendar day from StartDate to EndDate inclusive.
// An invalid request returns an error and no records.
func (pe *ProjectionEngine) Project(req domain.ProjectionRequest) ([]domain.DailyRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	daily, err := DailyGrowthRate(req.AnnualGrowthRate)
	if err != nil {
		return nil, err
	}

	log := pe.logger()
	log.Debugf("projecting %s over %s..%s (%d days), growth %s, daily rate %s, fee timing %s",
		req.Principal, req.StartDate, req.EndDate, req.Days(), req.AnnualGrowthRate, daily, req.FeeTiming)

	factor := one.Add(daily)
	records := make([]domain.DailyRecord, 0, req.Days())
	var prev *domain.DailyRecord
	for day := range dateutil.EachDay(req.StartDate, req.EndDate) {
		rec := nextRecord(req, factor, day, prev)
		records = append(records, rec)
		prev = &records[len(records)-1]
	}

	last := records[len(records)-1]
	log.Infof("projection complete: closing %s, cumulative fees %s, net %s",
		last.ClosingValue.StringFixed(2), last.CumulativeFee.StringFixed(2), last.NetValue.StringFixed(2))
	return records, nil
}

// nextRecord derives the record for day from the previous one (nil on the first day).
func nextRecord(req domain.ProjectionRequest, factor decimal.Decimal, day dateutil.Date, prev *domain.DailyRecord) domain.DailyRecord {
	opening, cumulative := req.Principal, decimal.Zero
	if prev != nil {
		opening, cumulative = prev.ClosingValue, prev.CumulativeFee
	}
	closing := opening.Mul(factor).Round(WorkingPrecision)

	chargeable := prev != nil || req.FeeTiming != domain.FeeTimingNextDay
	fees := make([]domain.FeeAmount, len(req.Fees))
	total := decimal.Zero
	for i, f := range req.Fees {
		amount := decimal.Zero
		if chargeable {
			amount = dailyFee(closing, f.AnnualRate)
		}
		fees[i] = domain.FeeAmount{Name: f.Name, Amount: amount}
		total = total.Add(amount)
	}
	cumulative = cumulative.Add(total)

	return domain.DailyRecord{
		Date:          day,
		OpeningValue:  opening,
		ClosingValue:  closing,
		Fees:          fees,
		TotalDailyFee: total,
		CumulativeFee: cumulative,
		NetValue:      closing.Sub(cumulative),
	}
}

// Run projects req and derives its summary.
func (pe *ProjectionEngine) Run(req domain.ProjectionRequest) (*domain.ProjectionResult, error) {
	records, err := pe.Project(req)
	if err != nil {
		return nil, err
	}
	daily, err := DailyGrowthRate(req.AnnualGrowthRate)
	if err != nil {
		return nil, err
	}
	return &domain.ProjectionResult{
		Request: req,
		Records: records,
		Summary: Summarize(req.Principal, records, req.Fees, daily),
	}, nil
}

// RunScenario projects a single configured scenario.
func (pe *ProjectionEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := scenario.Request(config.FeeTiming)
	if err != nil {
		return nil, err
	}
	result, err := pe.Run(req)
	if err != nil {
		return nil, err
	}
	return &domain.ScenarioSummary{Name: scenario.Name, Result: result}, nil
}

// RunScenarios runs every scenario in the configuration and names the one
// with the highest final net value; ties go to the earlier scenario.
func (pe *ProjectionEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	comparison := &domain.ScenarioComparison{
		Currency:    config.Currency,
		Scenarios:   make([]domain.ScenarioSummary, 0, len(config.Scenarios)),
		Assumptions: config.GenerateAssumptions(),
	}

	var best decimal.Decimal
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		summary, err := pe.RunScenario(ctx, config, scenario)
		if err != nil {
			return nil, fmt.Errorf("failed to run scenario %s: %w", scenario.Name, err)
		}
		comparison.Scenarios = append(comparison.Scenarios, *summary)

		net := summary.Result.Summary.FinalNetValue
		if i == 0 || net.GreaterThan(best) {
			best = net
			comparison.Best = summary.Name
		}
	}
	pe.logger().Infof("compared %d scenarios, best: %s", len(comparison.Scenarios), comparison.Best)
	return comparison, nil
}
