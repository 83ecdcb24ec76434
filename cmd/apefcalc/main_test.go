package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apeftrust/investment-calculator/internal/output"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default, since the commands share package-level state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestProjectCommand_CSV(t *testing.T) {
	out, err := runCLI(t, "project", "--start", "2025-01-01", "--end", "2025-01-10", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Scenario,Day,Date,OpeningValue,ClosingValue,Fee:custodian,Fee:management,Fee:other,TotalDailyFee,CumulativeFee,NetValue", strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "Apef Trust,0,2025-01-01,1000000.00,1000406.71,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[10], "Apef Trust,9,2025-01-10,"), lines[10])
}

func TestProjectCommand_ExtraFeeAndTiming(t *testing.T) {
	out, err := runCLI(t, "project",
		"--start", "2025-01-01", "--end", "2025-01-02",
		"--custodian-fee", "0", "--management-fee", "0", "--other-fee", "0",
		"--fee", "advisory=0.5", "--fee-timing", "next_day", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Fee:advisory")
	// no fee on the first day
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[1]), ",0.00,0.00,0.00,0.00,0.00,0.00,1000406.71"), lines[1])
}

func TestProjectCommand_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	out, err := runCLI(t, "project", "--name", "Mine", "--start", "2025-01-01", "--end", "2025-03-31",
		"--format", "json", "--period", "monthly", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"best": "Mine"`)
	assert.Contains(t, string(data), `"period": "monthly"`)
}

func TestProjectCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad growth", []string{"--growth", "lots"}, "invalid --growth"},
		{"bad principal", []string{"--principal", "x"}, "invalid --principal"},
		{"negative principal", []string{"--principal", "-5"}, "principal cannot be negative"},
		{"negative growth", []string{"--growth", "-2"}, "invalid rate"},
		{"bad fee flag", []string{"--fee", "advisory"}, "want name=percent"},
		{"bad fee percent", []string{"--fee", "advisory=high"}, "invalid --fee"},
		{"bad start", []string{"--start", "2025/01/01"}, "invalid --start"},
		{"reversed range", []string{"--start", "2025-02-01", "--end", "2025-01-01"}, "invalid date range"},
		{"bad timing", []string{"--fee-timing", "weekly"}, "fee timing"},
		{"duplicate fee", []string{"--fee", "management=1"}, "duplicate fee"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, append([]string{"project"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := runCLI(t, "project", "--format", "pdf")
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat), "got %v", err)
}

func TestExampleAndCompareCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.toml")
	out, err := runCLI(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, err = runCLI(t, "compare", path, "--format", "lite")
	require.NoError(t, err)
	assert.Contains(t, out, "Apef Trust 2025")
	assert.Contains(t, out, "Money Market 2025")
	assert.Contains(t, out, "Recommended: Apef Trust 2025 (fees from day two) (")

	out, err = runCLI(t, "--config", path, "--currency", "USD", "compare", "--format", "summary-csv")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)
}

func TestCompareCommand_NeedsConfig(t *testing.T) {
	_, err := runCLI(t, "compare")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration file is required")

	_, err = runCLI(t, "compare", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestFormatsCommand(t *testing.T) {
	out, err := runCLI(t, "formats")
	require.NoError(t, err)
	for _, name := range output.AvailableFormatterNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "md")
}

func TestParseFeeFlag(t *testing.T) {
	fee, err := parseFeeFlag(" advisory = 0.5% ")
	require.NoError(t, err)
	assert.Equal(t, "advisory", fee.Name)
	assert.True(t, fee.AnnualRate.Equal(decimal.RequireFromString("0.005")), fee.AnnualRate.String())

	for _, bad := range []string{"", "=1", "advisory", "advisory=x"} {
		_, err := parseFeeFlag(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateRangeDefaults(t *testing.T) {
	today := dateutil.MustParse("2024-03-10")

	start, end, err := dateRange("", "", today)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", start.String())
	assert.Equal(t, "2024-12-31", end.String())

	start, end, err = dateRange("2025-07-01", "", today)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", start.String())
	assert.Equal(t, "2025-12-31", end.String())

	_, _, err = dateRange("", "soon", today)
	assert.ErrorContains(t, err, "invalid --end")
}

func TestProjectCommand_RenderedMarkdown(t *testing.T) {
	out, err := runCLI(t, "project", "--start", "2025-01-01", "--end", "2025-02-28",
		"--format", "md", "--period", "monthly", "--render")
	require.NoError(t, err)
	assert.Contains(t, out, "Investment Projection Report")
}
