package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	statsdto "tempo/internal/modules/stats/dto"
	"tempo/internal/platform/timefmt"
	"tempo/internal/ui/components"
	"tempo/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type StatsPort interface {
	Overview(ctx context.Context) (statsdto.Overview, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Overview statsdto.Overview
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     StatsPort
	viewport viewport.Model
	overview statsdto.Overview
	loaded   bool
	errText  string
	width    int
	height   int
}

func New(port StatsPort) Model {
	vp := viewport.New(0, 0)
	return Model{port: port, viewport: vp}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width
		m.viewport.Height = m.height
		m.viewport.SetContent(m.renderContent())

	case LoadedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
		} else {
			m.overview = msg.Overview
			m.loaded = true
			m.errText = ""
		}
		m.viewport.SetContent(m.renderContent())

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

// Reload refreshes the aggregates, used after new sessions land.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.port.Overview(context.Background())
		return LoadedMsg{Overview: overview, Err: err}
	}
}

// ─── rendering ───────────────────────────────────────────────────────────────

func (m Model) renderContent() string {
	if m.errText != "" {
		return theme.Muted.Render("统计加载失败: " + m.errText)
	}
	if !m.loaded {
		return theme.Muted.Render("加载中…")
	}

	sections := []string{
		m.renderLatest(),
		m.renderPeriods(),
		components.BarChart("本周", bars(m.overview.WeekDaily), m.width-4),
		components.BarChart("本月", bars(m.overview.MonthDaily), m.width-4),
		components.BarChart("今年", bars(m.overview.YearMonthly), m.width-4),
	}
	return strings.Join(sections, "\n\n")
}

func (m Model) renderLatest() string {
	latest := m.overview.Latest
	if latest == nil {
		return theme.Muted.Render("暂无记录")
	}
	return strings.Join([]string{
		theme.Title.Render("最近一次"),
		fmt.Sprintf("%s %s  %s", latest.DisplayDate, latest.TimeOfDay, timefmt.Duration(latest.DurationSec)),
		theme.Muted.Render(latest.Phrase),
	}, "\n")
}

func (m Model) renderPeriods() string {
	row := func(label string, p statsdto.PeriodOutput) string {
		return fmt.Sprintf("%s  %d 次  %s  平均 %.1f 分钟",
			theme.Muted.Render(label), p.Count, timefmt.Duration(p.TotalSeconds), p.AvgMinutes)
	}
	return strings.Join([]string{
		theme.Title.Render("统计"),
		row("本周", m.overview.Week),
		row("本月", m.overview.Month),
		row("今年", m.overview.Year),
		row("总计", m.overview.Overall),
	}, "\n")
}

func bars(points []statsdto.PointOutput) []components.Bar {
	out := make([]components.Bar, len(points))
	for i, p := range points {
		out[i] = components.Bar{Label: p.Label, Value: p.Minutes}
	}
	return out
}
