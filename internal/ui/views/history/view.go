package history

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	sessiondto "tempo/internal/modules/session/dto"
	"tempo/internal/platform/timefmt"
	"tempo/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SessionPort interface {
	List(ctx context.Context) ([]sessiondto.SessionOutput, error)
	Delete(ctx context.Context, id int64) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Sessions []sessiondto.SessionOutput
	Err      error
}

type DeletedMsg struct {
	ID  int64
	Err error
}

// ─── list item ───────────────────────────────────────────────────────────────

type sessionItem struct {
	session sessiondto.SessionOutput
}

func (i sessionItem) Title() string {
	return i.session.Timestamp.Format("2006-01-02 15:04")
}

func (i sessionItem) Description() string {
	desc := fmt.Sprintf("%s  评分 %.1f  %s", timefmt.Duration(i.session.Duration), i.session.Rating, i.session.Mood)
	if i.session.Remark != "" {
		desc += "  " + i.session.Remark
	}
	return desc
}

func (i sessionItem) FilterValue() string {
	return i.session.Remark + " " + i.session.Location + " " + i.session.Mood
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   SessionPort
	list   list.Model
	width  int
	height int
}

func New(port SessionPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Green).BorderForeground(theme.Green)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Green)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "历史记录"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height)

	case LoadedMsg:
		if msg.Err != nil {
			m.list.Title = "历史记录: " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = fmt.Sprintf("历史记录 (%d)", len(msg.Sessions))
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[i] = sessionItem{session: s}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case DeletedMsg:
		if msg.Err != nil {
			m.list.Title = "历史记录: " + msg.Err.Error()
			return m, nil
		}
		cmds = append(cmds, m.loadCmd())

	case tea.KeyMsg:
		if !m.Filtering() && msg.String() == "d" {
			if item, ok := m.list.SelectedItem().(sessionItem); ok {
				return m, m.deleteCmd(item.session.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return m.list.View()
}

// Reload refreshes the list, used after the timer commits a session.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.port.List(context.Background())
		return LoadedMsg{Sessions: sessions, Err: err}
	}
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return DeletedMsg{ID: id, Err: m.port.Delete(context.Background(), id)}
	}
}
