package main

import (
	"fmt"
	"strings"

	"github.com/apeftrust/investment-calculator/internal/output"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List report formats and their aliases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Formats:")
		for _, name := range output.AvailableFormatterNames() {
			fmt.Fprintf(w, "  %s\n", name)
		}
		fmt.Fprintf(w, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		fmt.Fprintln(w, "Periods: daily, monthly, quarterly, yearly")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
