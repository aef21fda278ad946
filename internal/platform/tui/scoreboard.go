package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snek/internal/storage"
)

const scoreboardLimit = 20

type scoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Refresh, k.Quit}}
}

var scoreboardKeys = scoreboardKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("10")).
				MarginBottom(1)
	scoreboardErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// scoreboardModel shows the top recorded scores in an interactive table.
type scoreboardModel struct {
	store *storage.Store
	table table.Model
	help  help.Model
	err   error
}

func newScoreboardModel(store *storage.Store) *scoreboardModel {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(scoreboardLimit+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10")).
		Bold(false)
	t.SetStyles(styles)

	m := &scoreboardModel{
		store: store,
		table: t,
		help:  help.New(),
	}
	m.reload()
	return m
}

func (m *scoreboardModel) reload() {
	entries, err := m.store.TopScores(scoreboardLimit)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

func (m *scoreboardModel) Init() tea.Cmd {
	return nil
}

func (m *scoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, scoreboardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, scoreboardKeys.Refresh):
			m.reload()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *scoreboardModel) View() string {
	s := scoreboardTitleStyle.Render("TOP SCORES") + "\n"
	if m.err != nil {
		s += scoreboardErrStyle.Render(fmt.Sprintf("failed to load scores: %v", m.err)) + "\n"
	} else if len(m.table.Rows()) == 0 {
		s += "no scores recorded yet\n"
	} else {
		s += m.table.View() + "\n"
	}
	s += "\n" + m.help.View(scoreboardKeys)
	return s
}

// RunScoreboard shows the interactive score table until the user quits.
func RunScoreboard(store *storage.Store) error {
	p := tea.NewProgram(newScoreboardModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
