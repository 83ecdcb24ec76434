package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	colorBorder    = lipgloss.Color("#3A3A3A")
	colorTextDim   = lipgloss.Color("#6C6C6C")
	colorTextMuted = lipgloss.Color("#8A8A8A")
	colorText      = lipgloss.Color("#F2F2F2")
	colorAccent    = lipgloss.Color("#2E8B57")
	colorGold      = lipgloss.Color("#C9A227")
	colorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	bestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGold)

	feeStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// table is a bordered text table; the first column is left-aligned, the rest right-aligned.
type table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func renderTitle(title string, width int) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

func renderTable(t table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle.Render(b.String()) + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	b.WriteString(dimStyle.Render("│"))
	for i, h := range t.Headers {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
		b.WriteString(dimStyle.Render("│"))
	}
	b.WriteString("\n")
	b.WriteString(rule("├", "┼", "┤"))

	for _, row := range t.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if i == 0 {
				cell = " " + cell + strings.Repeat(" ", pad) + " "
			} else {
				cell = " " + strings.Repeat(" ", pad) + cell + " "
			}
			b.WriteString(valueStyle.Render(cell))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}
	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

// metric is one card in a row of headline values.
type metric struct {
	Label, Value, Note string
}

func metricCard(m metric, outerWidth int) string {
	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(contentWidth).
		Padding(0, 1)

	content := mutedStyle.Render(m.Label) + "\n" + valueStyle.Bold(true).Render(m.Value)
	if m.Note != "" {
		content += "\n" + dimStyle.Render(m.Note)
	}
	return card.Render(content)
}

// metricRow lays cards side by side; the first cards absorb any remainder width.
func metricRow(metrics []metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	base, rem := totalWidth/len(metrics), totalWidth%len(metrics)
	cards := make([]string, len(metrics))
	for i, m := range metrics {
		w := base
		if i < rem {
			w++
		}
		cards[i] = metricCard(m, w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
