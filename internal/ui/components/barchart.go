package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tempo/internal/ui/theme"
)

// Bar is one labelled value in a chart.
type Bar struct {
	Label string
	Value float64
}

var (
	barStyle   = lipgloss.NewStyle().Foreground(theme.Sapphire)
	labelStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
	valueStyle = lipgloss.NewStyle().Foreground(theme.Text)
)

// BarChart renders horizontal bars scaled to the widest value. Values
// are minutes; the numeric suffix keeps one decimal.
func BarChart(title string, bars []Bar, width int) string {
	if len(bars) == 0 {
		return theme.Title.Render(title) + "\n" + theme.Muted.Render("  暂无数据")
	}

	maxValue := 0.0
	labelWidth := 0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
		if w := lipgloss.Width(b.Label); w > labelWidth {
			labelWidth = w
		}
	}

	// label + space + bar + space + value
	barSpace := width - labelWidth - 10
	if barSpace < 4 {
		barSpace = 4
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	for _, bar := range bars {
		length := 0
		if maxValue > 0 {
			length = int(bar.Value / maxValue * float64(barSpace))
		}
		if bar.Value > 0 && length == 0 {
			length = 1
		}
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(bar.Label))
		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			labelStyle.Render(bar.Label), pad,
			barStyle.Render(strings.Repeat("█", length)),
			valueStyle.Render(fmt.Sprintf("%.1f", bar.Value))))
	}
	return strings.TrimRight(b.String(), "\n")
}
