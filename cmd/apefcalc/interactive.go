package main

import (
	"errors"
	"fmt"

	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/internal/output"
	"github.com/apeftrust/investment-calculator/internal/prompt"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Enter an investment through a form and print its projection",
	Args:    cobra.NoArgs,
	RunE:    runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	values := prompt.DefaultValues(dateutil.Today())
	if err := prompt.BuildForm(&values, output.AvailableFormatterNames()).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("form failed: %w", err)
	}

	req, err := values.Request()
	if err != nil {
		return err
	}
	cfg := &domain.Configuration{
		Currency:  flagCurrency,
		FeeTiming: req.FeeTiming,
		Scenarios: []domain.Scenario{{
			Name:             "Apef Trust",
			Principal:        req.Principal,
			AnnualGrowthRate: req.AnnualGrowthRate,
			StartDate:        req.StartDate,
			EndDate:          req.EndDate,
			Fees:             req.Fees,
		}},
	}

	results, err := newEngine(cmd).RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	flagFormat = values.Format
	return emit(cmd, results)
}
