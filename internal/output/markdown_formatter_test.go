package output

import (
	"strings"
	"testing"

	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// mdTable is a parsed markdown table: header cells and body rows.
type mdTable struct {
	header []string
	rows   [][]string
}

func cellText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func parseTables(t *testing.T, source []byte) []mdTable {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(source))

	var tables []mdTable
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		tbl, ok := n.(*east.Table)
		if !ok {
			return ast.WalkContinue, nil
		}
		var parsed mdTable
		for row := tbl.FirstChild(); row != nil; row = row.NextSibling() {
			var cells []string
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				cells = append(cells, cellText(cell, source))
			}
			if _, isHeader := row.(*east.TableHeader); isHeader {
				parsed.header = cells
			} else {
				parsed.rows = append(parsed.rows, cells)
			}
		}
		tables = append(tables, parsed)
		return ast.WalkSkipChildren, nil
	})
	require.NoError(t, err)
	return tables
}

func TestMarkdownFormatterTables(t *testing.T) {
	cmp := buildTestComparison(t)
	out, err := MarkdownFormatter{Period: dateutil.Monthly}.Format(cmp)
	require.NoError(t, err)

	tables := parseTables(t, out)
	// metrics, fees and monthly values for each of the two scenarios
	require.Len(t, tables, 6)

	fees := tables[4]
	assert.Equal(t, []string{"Fee", "Annual rate", "Total charged"}, fees.header)
	require.Len(t, fees.rows, 4)
	assert.Equal(t, "custodian", fees.rows[0][0])
	assert.Equal(t, "1.80%", fees.rows[1][1])
	assert.Equal(t, "Total", fees.rows[3][0])
	assert.Equal(t, FormatAmount(cmp.Scenarios[1].Result.Summary.TotalFees), fees.rows[3][2])

	values := tables[5]
	assert.Equal(t, []string{"Date", "Opening", "Closing", "Fees", "Cumulative fees", "Net value"}, values.header)
	require.Len(t, values.rows, 12)
	assert.Equal(t, "2025-01-31", values.rows[0][0])
	assert.Equal(t, "1,000,000.00", values.rows[0][1])
	assert.Equal(t, "2025-12-31", values.rows[11][0])
	assert.Equal(t, FormatAmount(cmp.Scenarios[1].Result.Summary.FinalNetValue), values.rows[11][5])
}

func TestMarkdownFormatterHeadings(t *testing.T) {
	out, err := MarkdownFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "**Recommended:** B")
	assert.Contains(t, content, "## Scenario 2: B ★")
	assert.Contains(t, content, "### Daily values")
}
