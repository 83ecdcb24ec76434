package main

import (
	"fmt"

	"github.com/apeftrust/investment-calculator/internal/config"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write an example scenario configuration",
	Long:  "Write an example configuration. The encoding follows the extension: .yaml, .json or .toml.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, args []string) error {
	filename := "example_config.yaml"
	if len(args) == 1 {
		filename = args[0]
	}

	cfg := config.NewInputParser().CreateExampleConfiguration()
	if err := config.SaveConfiguration(cfg, filename); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", filename)
	return nil
}
