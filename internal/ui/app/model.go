package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tempo/internal/platform/timefmt"
	"tempo/internal/ui/theme"
	historyview "tempo/internal/ui/views/history"
	statsview "tempo/internal/ui/views/stats"
	timerview "tempo/internal/ui/views/timer"
)

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabHistory
	tabStats
	tabCount
)

var tabLabels = [tabCount]string{"计时", "历史", "统计"}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab    key.Binding
	Help   key.Binding
	Quit   key.Binding
	Toggle key.Binding
	Stop   key.Binding
	Delete key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/pause")),
		Stop:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "stop")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete entry")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Stop},
		{k.Delete},
		{k.Tab, k.Help, k.Quit},
	}
}

// ─── display tick ────────────────────────────────────────────────────────────

// tickMsg refreshes the clock readout once a second. Elapsed time is
// computed from the stored run, never accumulated from ticks.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model: tab routing plus the status bar.
// Business logic lives behind the view ports.
type Model struct {
	timerView   timerview.Model
	historyView historyview.Model
	statsView   statsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	width     int
	height    int
}

func NewModel(timer timerview.TimerPort, sessions historyview.SessionPort, stats statsview.StatsPort) Model {
	return Model{
		timerView:   timerview.New(timer),
		historyView: historyview.New(sessions),
		statsView:   statsview.New(stats),
		activeTab:   tabTimer,
		keys:        defaultKeys(),
		help:        help.New(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.historyView.Init(),
		m.statsView.Init(),
		tickCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case tickMsg:
		cmds = append(cmds, tickCmd())
		if m.activeTab == tabTimer && !m.timerView.Annotating() {
			cmds = append(cmds, m.timerView.Refresh())
		}

	case timerview.CommittedMsg:
		if msg.Err == nil {
			m.status = "已记录 " + timefmt.Duration(msg.Out.DurationSec)
			cmds = append(cmds, m.historyView.Reload(), m.statsView.Reload())
		}
		var cmd tea.Cmd
		m.timerView, cmd = m.timerView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.subViewCapturing() {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			cmds = append(cmds, m.reloadActive())
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			cmds = append(cmds, m.reloadActive())
		case "?":
			m.showHelp = !m.showHelp
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTimer:
		m.timerView, tabCmd = m.timerView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	case tabStats:
		m.statsView, tabCmd = m.statsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabHistory:
		return m.historyView.View()
	case tabStats:
		return m.statsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "tempo  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab is consuming free-form
// typing, in which case global bindings must yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.Annotating()
	case tabHistory:
		return m.historyView.Filtering()
	}
	return false
}

func (m *Model) reloadActive() tea.Cmd {
	switch m.activeTab {
	case tabHistory:
		return m.historyView.Reload()
	case tabStats:
		return m.statsView.Reload()
	}
	return nil
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
	m.statsView, _ = m.statsView.Update(sz)
}
