package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snek/internal/config"
	"github.com/vovakirdan/tui-snek/internal/core"
	"github.com/vovakirdan/tui-snek/internal/game"
	"github.com/vovakirdan/tui-snek/internal/storage"
)

type phase int

const (
	phaseTitle phase = iota
	phasePlaying
	phaseGameOver
)

// Model is the bubbletea model for a single game session. It owns the
// session lifecycle: the title screen, the tick loop while playing, and
// the game-over screen with score persistence.
type Model struct {
	cfg    config.SnekConfig
	store  *storage.Store // nil when persistence is unavailable
	keys   *KeyMapper
	screen *core.Screen
	frame  core.InputFrame

	session *game.Session
	phase   phase

	highScore int
	newHigh   bool
	saved     bool
	saveErr   error
	tooSmall  bool
	seed      int64 // 0 means derive from the clock per game
}

func NewModel(cfg config.SnekConfig, store *storage.Store) *Model {
	m := &Model{
		cfg:    cfg,
		store:  store,
		keys:   NewKeyMapper(),
		screen: core.NewScreen(game.ScreenWidth, game.ScreenHeight),
		frame:  core.NewInputFrame(),
	}
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			m.highScore = hs
		}
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.tooSmall = msg.Width < game.ScreenWidth || msg.Height < game.ScreenHeight
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.phase != phasePlaying {
			return m, nil
		}
		m.session.Step(m.frame)
		m.frame.Clear()
		if m.session.State() == game.StateGameOver {
			m.phase = phaseGameOver
			m.finishGame()
			return m, nil
		}
		return m, tickCmd(m.session.Interval())
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Map(msg)
	if action == core.ActionQuit {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseTitle:
		if action == core.ActionConfirm {
			return m, m.startGame()
		}
	case phasePlaying:
		if action != core.ActionNone {
			m.frame.Set(action)
		}
	case phaseGameOver:
		if action == core.ActionConfirm {
			return m, m.startGame()
		}
	}
	return m, nil
}

func (m *Model) startGame() tea.Cmd {
	seed := m.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.session = game.NewSession(m.cfg, seed, core.SystemClock{})
	m.frame.Clear()
	m.phase = phasePlaying
	m.saved = false
	m.saveErr = nil
	m.newHigh = false
	return tickCmd(m.session.Interval())
}

// finishGame records the score once per session.
func (m *Model) finishGame() {
	if m.saved {
		return
	}
	m.saved = true
	score := m.session.Score()
	if score > m.highScore {
		m.highScore = score
		m.newHigh = true
	}
	if m.store != nil && score > 0 {
		if _, err := m.store.SaveScore(score); err != nil {
			m.saveErr = err
		}
	}
}

func (m *Model) View() string {
	if m.tooSmall {
		return fmt.Sprintf("terminal too small: need at least %dx%d\n", game.ScreenWidth, game.ScreenHeight)
	}

	var msgs []game.Message
	switch m.phase {
	case phaseTitle:
		msgs = titleMessages()
	case phasePlaying:
		if m.session.State() == game.StatePaused {
			msgs = pauseMessages()
		}
	case phaseGameOver:
		msgs = gameOverMessages(m.session.Score(), m.newHigh, m.saveErr)
	}

	if m.session != nil {
		m.session.Render(m.screen, m.highScore, msgs)
	} else {
		game.RenderFrame(m.screen, nil, nil, 0, m.highScore, msgs)
	}
	return RenderScreen(m.screen)
}

func titleMessages() []game.Message {
	mid := game.ScreenHeight / 2
	return []game.Message{
		{Row: mid - 3, Text: "S N E K", Color: core.ColorBrightGreen},
		{Row: mid - 1, Text: "eat snacks, dodge walls and yourself", Color: core.ColorWhite},
		{Row: mid + 1, Text: "arrows / wasd / hjkl to steer, p to pause", Color: core.ColorGray},
		{Row: mid + 3, Text: "press enter to start, q to quit", Color: core.ColorBrightYellow},
	}
}

func pauseMessages() []game.Message {
	mid := game.ScreenHeight / 2
	return []game.Message{
		{Row: mid - 1, Text: "P A U S E D", Color: core.ColorBrightYellow},
		{Row: mid + 1, Text: "press p to resume", Color: core.ColorGray},
	}
}

func gameOverMessages(score int, newHigh bool, saveErr error) []game.Message {
	mid := game.ScreenHeight / 2
	msgs := []game.Message{
		{Row: mid - 2, Text: "G A M E   O V E R", Color: core.ColorRed},
		{Row: mid, Text: fmt.Sprintf("score: %d", score), Color: core.ColorWhite},
	}
	if newHigh {
		msgs = append(msgs, game.Message{Row: mid + 1, Text: "new high score!", Color: core.ColorBrightMagenta})
	}
	if saveErr != nil {
		msgs = append(msgs, game.Message{Row: mid + 2, Text: fmt.Sprintf("score not saved: %v", saveErr), Color: core.ColorBrightRed})
	}
	msgs = append(msgs, game.Message{Row: mid + 3, Text: "enter to play again, q to quit", Color: core.ColorBrightYellow})
	return msgs
}

// Run starts the interactive game in the current terminal. A non-zero
// seed makes item placement reproducible across runs.
func Run(cfg config.SnekConfig, store *storage.Store, seed int64) error {
	m := NewModel(cfg, store)
	m.seed = seed
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
