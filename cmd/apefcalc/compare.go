package main

import (
	"errors"

	"github.com/apeftrust/investment-calculator/internal/config"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [config-file]",
	Short: "Project every scenario of a configuration file side by side",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompare,
}

func init() {
	addReportFlags(compareCmd, "console")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("a configuration file is required: pass it as an argument or with --config")
	}

	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return err
	}
	if flagCurrency != "" {
		cfg.Currency = flagCurrency
	}

	results, err := newEngine(cmd).RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return emit(cmd, results)
}
