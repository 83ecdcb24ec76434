package main

import (
	"fmt"
	"strings"

	"github.com/apeftrust/investment-calculator/internal/config"
	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagName          string
	flagPrincipal     string
	flagGrowth        string
	flagCustodianFee  string
	flagManagementFee string
	flagOtherFee      string
	flagExtraFees     []string
	flagStart         string
	flagEnd           string
	flagFeeTiming     string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a single investment day by day",
	Example: "  apefcalc project --principal 1000000 --growth 16 --start 2025-01-01 --end 2025-12-31\n" +
		"  apefcalc project --growth 10 --fee advisory=0.5 --format csv -o daily.csv",
	Args: cobra.NoArgs,
	RunE: runProject,
}

func init() {
	f := projectCmd.Flags()
	f.StringVar(&flagName, "name", "Apef Trust", "Scenario name shown in reports")
	f.StringVar(&flagPrincipal, "principal", "1000000", "Initial investment")
	f.StringVar(&flagGrowth, "growth", "16", "Expected annual growth, in percent")
	f.StringVar(&flagCustodianFee, "custodian-fee", "0.1", "Custodian fee, percent a year")
	f.StringVar(&flagManagementFee, "management-fee", "1.8", "Management fee, percent a year")
	f.StringVar(&flagOtherFee, "other-fee", "0.35", "Expenses and other charges, percent a year")
	f.StringArrayVar(&flagExtraFees, "fee", nil, "Additional fee as name=percent (repeatable)")
	f.StringVar(&flagStart, "start", "", "First day, YYYY-MM-DD (default: January 1 of this year)")
	f.StringVar(&flagEnd, "end", "", "Last day, YYYY-MM-DD (default: December 31 of the start year)")
	f.StringVar(&flagFeeTiming, "fee-timing", "same_day", "First fee: same_day or next_day")
	addReportFlags(projectCmd, "console")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	cfg, err := projectConfiguration(dateutil.Today())
	if err != nil {
		return err
	}
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return err
	}

	results, err := newEngine(cmd).RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return emit(cmd, results)
}

// projectConfiguration turns the project flags into a one-scenario configuration.
func projectConfiguration(today dateutil.Date) (*domain.Configuration, error) {
	principal, err := parseAmount(flagPrincipal)
	if err != nil {
		return nil, fmt.Errorf("invalid --principal: %w", err)
	}
	growth, err := parsePercent(flagGrowth)
	if err != nil {
		return nil, fmt.Errorf("invalid --growth: %w", err)
	}
	timing, err := domain.ParseFeeTiming(flagFeeTiming)
	if err != nil {
		return nil, err
	}
	start, end, err := dateRange(flagStart, flagEnd, today)
	if err != nil {
		return nil, err
	}
	fees, err := feeFlags()
	if err != nil {
		return nil, err
	}

	return &domain.Configuration{
		Currency:  flagCurrency,
		FeeTiming: timing,
		Scenarios: []domain.Scenario{{
			Name:             flagName,
			Principal:        principal,
			AnnualGrowthRate: growth,
			StartDate:        start,
			EndDate:          end,
			Fees:             fees,
		}},
	}, nil
}

func dateRange(startFlag, endFlag string, today dateutil.Date) (dateutil.Date, dateutil.Date, error) {
	start := dateutil.BeginningOfYear(today)
	if startFlag != "" {
		d, err := dateutil.Parse(startFlag)
		if err != nil {
			return dateutil.Date{}, dateutil.Date{}, fmt.Errorf("invalid --start: %w", err)
		}
		start = d
	}
	end := dateutil.EndOfYear(start)
	if endFlag != "" {
		d, err := dateutil.Parse(endFlag)
		if err != nil {
			return dateutil.Date{}, dateutil.Date{}, fmt.Errorf("invalid --end: %w", err)
		}
		end = d
	}
	return start, end, nil
}

func feeFlags() ([]domain.FeeRate, error) {
	named := []struct{ flag, name, value string }{
		{"custodian-fee", "custodian", flagCustodianFee},
		{"management-fee", "management", flagManagementFee},
		{"other-fee", "other", flagOtherFee},
	}
	fees := make([]domain.FeeRate, 0, len(named)+len(flagExtraFees))
	for _, n := range named {
		rate, err := parsePercent(n.value)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", n.flag, err)
		}
		fees = append(fees, domain.FeeRate{Name: n.name, AnnualRate: rate})
	}
	for _, raw := range flagExtraFees {
		fee, err := parseFeeFlag(raw)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}
	return fees, nil
}

// parseFeeFlag reads "name=percent".
func parseFeeFlag(raw string) (domain.FeeRate, error) {
	name, value, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return domain.FeeRate{}, fmt.Errorf("invalid --fee %q, want name=percent", raw)
	}
	rate, err := parsePercent(value)
	if err != nil {
		return domain.FeeRate{}, fmt.Errorf("invalid --fee %q: %w", raw, err)
	}
	return domain.FeeRate{Name: name, AnnualRate: rate}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
}

func parsePercent(s string) (decimal.Decimal, error) {
	d, err := parseAmount(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return decimal.Zero, err
	}
	return d.Div(decimal.NewFromInt(100)), nil
}
