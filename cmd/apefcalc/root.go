package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apeftrust/investment-calculator/internal/calculation"
	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/internal/output"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagVerbose  bool
	flagCurrency string
	flagFormat   string
	flagPeriod   string
	flagOutput   string
	flagRender   bool
)

var rootCmd = &cobra.Command{
	Use:   "apefcalc",
	Short: "Apef Trust investment projection calculator",
	Long: "Project an investment day by day: daily compounding growth, flat daily fees,\n" +
		"and the net value left after fees, for one fund or a set of scenarios.",
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Scenario configuration file (.yaml, .json or .toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "ISO currency code for display (default TZS)")
}

// addReportFlags registers the flags shared by every command that prints a report.
func addReportFlags(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringVarP(&flagFormat, "format", "f", defaultFormat, "Report format (see 'apefcalc formats')")
	cmd.Flags().StringVar(&flagPeriod, "period", "", "Table granularity: daily, monthly, quarterly or yearly")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&flagRender, "render", false, "Render markdown reports for the terminal")
}

func newLogger(w io.Writer) calculation.Logger {
	level := calculation.LevelWarn
	if flagVerbose {
		level = calculation.LevelDebug
	}
	return calculation.NewWriterLogger(w, level)
}

func newEngine(cmd *cobra.Command) *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(newLogger(cmd.ErrOrStderr()))
	return engine
}

// renderMarkdown styles a markdown report with glamour.
func renderMarkdown(md []byte) ([]byte, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(string(md))
	if err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return []byte(out), nil
}

// emit formats results and writes them to --output or the command's stdout.
func emit(cmd *cobra.Command, results *domain.ScenarioComparison) error {
	data, err := output.Render(results, flagFormat, flagPeriod)
	if err != nil {
		return err
	}
	if flagRender && flagOutput == "" && output.NormalizeFormatName(flagFormat) == "markdown" {
		if data, err = renderMarkdown(data); err != nil {
			return err
		}
	}

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report %s: %w", flagOutput, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", flagOutput)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	if err == nil && !strings.HasSuffix(string(data), "\n") {
		_, err = fmt.Fprintln(cmd.OutOrStdout())
	}
	return err
}
