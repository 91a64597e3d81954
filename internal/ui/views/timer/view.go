package timer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	timerdto "tempo/internal/modules/timer/dto"
	"tempo/internal/platform/timefmt"
	"tempo/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TimerPort interface {
	Start(ctx context.Context) (timerdto.StatusOutput, error)
	Pause(ctx context.Context) (timerdto.StatusOutput, error)
	Stop(ctx context.Context) (timerdto.StatusOutput, error)
	Status(ctx context.Context) (timerdto.StatusOutput, error)
	Commit(ctx context.Context, input timerdto.AnnotateInput) (timerdto.CommitOutput, error)
	Discard(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type StatusMsg struct {
	Status timerdto.StatusOutput
	Err    error
}

// CommittedMsg bubbles to the root model so the history tab can
// refresh.
type CommittedMsg struct {
	Out timerdto.CommitOutput
	Err error
}

type DiscardedMsg struct{ Err error }

// ─── annotation form ─────────────────────────────────────────────────────────

const (
	fieldRemark = iota
	fieldLocation
	fieldRating
	fieldMood
	fieldProps
	fieldWatchedMovie
	fieldClimax
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"备注", "地点", "评分 (0-5)", "心情", "道具", "看片", "高潮",
}

type form struct {
	inputs       [5]textinput.Model
	watchedMovie bool
	climax       bool
	focus        int
}

func newForm() form {
	f := form{}
	placeholders := [5]string{"", "", "3.0", "平静", "手"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 64
		in.Width = 24
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

func (f *form) setFocus(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f form) annotation() timerdto.AnnotateInput {
	rating := 3.0
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.inputs[fieldRating].Value()), 64); err == nil {
		rating = v
	}
	return timerdto.AnnotateInput{
		Remark:       f.inputs[fieldRemark].Value(),
		Location:     f.inputs[fieldLocation].Value(),
		Rating:       rating,
		Mood:         f.inputs[fieldMood].Value(),
		Props:        f.inputs[fieldProps].Value(),
		WatchedMovie: f.watchedMovie,
		Climax:       f.climax,
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    TimerPort
	status  timerdto.StatusOutput
	form    form
	message string
	width   int
	height  int
}

func New(port TimerPort) Model {
	return Model{port: port, form: newForm()}
}

func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

// Annotating reports whether the detail form is capturing keystrokes,
// so the root model yields its global bindings.
func (m Model) Annotating() bool {
	return m.status.State == "stopped"
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StatusMsg:
		if msg.Err != nil {
			m.message = msg.Err.Error()
			return m, nil
		}
		entering := m.status.State != "stopped" && msg.Status.State == "stopped"
		m.status = msg.Status
		if entering {
			m.form = newForm()
			m.message = "计时结束，填写详情后提交"
		}

	case CommittedMsg:
		if msg.Err != nil {
			m.message = msg.Err.Error()
			return m, nil
		}
		m.message = fmt.Sprintf("已记录 %s", timefmt.Duration(msg.Out.DurationSec))
		return m, m.refreshCmd()

	case DiscardedMsg:
		if msg.Err != nil {
			m.message = msg.Err.Error()
			return m, nil
		}
		m.message = "已放弃本次记录"
		return m, m.refreshCmd()

	case tea.KeyMsg:
		if m.Annotating() {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "s", " ":
			if m.status.State == "running" {
				return m, m.pauseCmd()
			}
			return m, m.startCmd()
		case "e":
			if m.status.State == "running" || m.status.State == "paused" {
				return m, m.stopCmd()
			}
		}
	}

	var cmd tea.Cmd
	if m.Annotating() {
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down", "enter":
		if msg.String() == "enter" && m.form.focus == fieldCount-1 {
			return m, m.commitCmd()
		}
		m.form.setFocus((m.form.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.form.setFocus((m.form.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case " ":
		switch m.form.focus {
		case fieldWatchedMovie:
			m.form.watchedMovie = !m.form.watchedMovie
			return m, nil
		case fieldClimax:
			m.form.climax = !m.form.climax
			return m, nil
		}
	case "ctrl+s":
		return m, m.commitCmd()
	case "ctrl+d":
		return m, m.discardCmd()
	}

	if m.form.focus < len(m.form.inputs) {
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.Annotating() {
		return m.viewForm()
	}
	return m.viewClock()
}

func (m Model) viewClock() string {
	clockStyle := theme.Clock
	stateLabel := "空闲"
	hint := "s:开始  q:退出"
	switch m.status.State {
	case "running":
		stateLabel = "计时中"
		hint = "s:暂停  e:结束"
	case "paused":
		clockStyle = theme.ClockPaused
		stateLabel = "已暂停"
		hint = "s:继续  e:结束"
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Muted.Render(stateLabel),
		clockStyle.Render(bigClock(m.status.ElapsedSec)),
		"",
		theme.Muted.Render(hint),
		m.renderMessage(),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewForm() string {
	rows := make([]string, 0, fieldCount+2)
	rows = append(rows, theme.Title.Render(
		fmt.Sprintf("本次用时 %s", timefmt.Clock(m.status.ElapsedSec))))
	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		marker := "  "
		if i == m.form.focus {
			marker = theme.Hot.Render("> ")
		}
		var value string
		switch i {
		case fieldWatchedMovie:
			value = checkbox(m.form.watchedMovie)
		case fieldClimax:
			value = checkbox(m.form.climax)
		default:
			value = m.form.inputs[i].View()
		}
		rows = append(rows, fmt.Sprintf("%s%s  %s", marker, theme.Muted.Render(label), value))
	}
	rows = append(rows, "", theme.Muted.Render("ctrl+s:提交  ctrl+d:放弃  tab:下一项"), m.renderMessage())
	body := theme.Pane.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderMessage() string {
	if m.message == "" {
		return ""
	}
	return theme.Muted.Render(m.message)
}

func checkbox(on bool) string {
	if on {
		return theme.Hot.Render("[x]")
	}
	return theme.Muted.Render("[ ]")
}

// bigClock spreads the mm:ss digits so the timer reads at a glance.
func bigClock(seconds int) string {
	text := timefmt.Clock(seconds)
	spaced := make([]string, 0, len(text))
	for _, r := range text {
		spaced = append(spaced, string(r))
	}
	return strings.Join(spaced, " ")
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Status(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Start(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func (m Model) pauseCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Pause(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func (m Model) stopCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Stop(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func (m Model) commitCmd() tea.Cmd {
	annotation := m.form.annotation()
	return func() tea.Msg {
		out, err := m.port.Commit(context.Background(), annotation)
		return CommittedMsg{Out: out, Err: err}
	}
}

func (m Model) discardCmd() tea.Cmd {
	return func() tea.Msg {
		return DiscardedMsg{Err: m.port.Discard(context.Background())}
	}
}

// Refresh re-reads timer state, used by the root model's display tick.
func (m Model) Refresh() tea.Cmd {
	return m.refreshCmd()
}
