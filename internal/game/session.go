package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snek/internal/config"
	"github.com/vovakirdan/tui-snek/internal/core"
)

// State is the session's lifecycle state.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (st State) String() string {
	switch st {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session orchestrates one complete play-through: it owns the board, the
// snake, score, speed, timers, and transient status flags. Board and Snake
// are created fresh per session and discarded entirely at game over.
type Session struct {
	cfg    config.SnekConfig
	rng    *rand.Rand
	clock  core.Clock
	placer *Placer

	board *Board
	snake *Snake

	state   State
	ticks   uint64
	score   int
	pending Direction

	interval      time.Duration
	savedInterval time.Duration
	poisoned      bool
	poisonedAt    time.Time

	obstacleMark int
	nextSnackAt  time.Time
	nextPowerAt  time.Time
}

const initialSnakeLength = 4

// NewSession starts a fresh session: empty board, snake at the board center
// facing east, one snack on the field, timers armed from the clock.
func NewSession(cfg config.SnekConfig, seed int64, clock core.Clock) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		cfg:      cfg,
		rng:      rng,
		clock:    clock,
		placer:   NewPlacer(rng),
		board:    NewBoard(),
		snake:    NewSnake(Point{Row: Height / 2, Col: Width / 2}, East, initialSnakeLength),
		state:    StatePlaying,
		pending:  East,
		interval: cfg.Speed.InitialInterval(),
	}

	s.placer.PlaceRandom(s.board, s.snake.Head(), TagSnack, cfg.Items.PlaceAttempts)

	now := clock.Now()
	s.nextSnackAt = now.Add(cfg.Items.SnackRefresh())
	s.nextPowerAt = now.Add(cfg.Items.PowerRefresh())
	return s
}

// Step runs one simulation tick. Input is sampled once at tick start and
// applied atomically before collision and scoring effects are evaluated.
// Game over is terminal: further steps are no-ops.
func (s *Session) Step(in core.InputFrame) {
	switch s.state {
	case StateGameOver:
		return
	case StatePaused:
		if in.Has(core.ActionPause) {
			s.state = StatePlaying
		}
		return
	}

	if in.Has(core.ActionPause) {
		s.state = StatePaused
		return
	}

	s.sampleDirection(in)
	s.ticks++
	now := s.clock.Now()

	// 1. Poison expiry restores the pre-poison speed.
	if s.poisoned && now.Sub(s.poisonedAt) >= s.cfg.Items.PoisonDuration() {
		s.poisoned = false
		s.interval = s.savedInterval
	}

	// 2. Advance the snake.
	s.snake.Advance(s.pending)
	head := s.snake.Head()

	// 3. Resolve the cell under the new head.
	switch s.board.At(head) {
	case TagSnack:
		s.score += s.cfg.Items.SnackPoints
		s.speedUp()
		s.board.Clear(head)
		s.snake.Grow(s.cfg.Items.SnackGrowth)
	case TagPowerItem:
		s.score += s.cfg.Items.PowerPoints
		if !s.poisoned {
			s.savedInterval = s.interval
		}
		s.interval /= 2
		s.board.Clear(head)
		s.poisoned = true
		s.poisonedAt = now
	case TagObstacle:
		s.state = StateGameOver
		return
	case TagEmpty:
	}

	// 4. Self-collision.
	if s.snake.CollidesWithSelf() {
		s.state = StateGameOver
		return
	}

	// 5. Out of bounds.
	if !s.snake.InBounds(Height, Width) {
		s.state = StateGameOver
		return
	}

	// 6. Barrier spawn once the score advances past the next checkpoint.
	if s.score >= s.cfg.Obstacles.ScoreThreshold && s.score-s.obstacleMark >= s.cfg.Obstacles.ScoreStep {
		s.placer.PlaceObstacle(s.board, s.snake, s.cfg.Obstacles.PlaceAttempts)
		s.obstacleMark = s.score
	}

	// 7. Wall-clock item replenishment.
	if !now.Before(s.nextSnackAt) {
		s.placer.PlaceRandom(s.board, head, TagSnack, s.cfg.Items.PlaceAttempts)
		s.nextSnackAt = now.Add(s.cfg.Items.SnackRefresh())
	}
	if !now.Before(s.nextPowerAt) {
		if s.score > s.cfg.Items.PowerScoreThreshold {
			s.placer.PlaceRandom(s.board, head, TagPowerItem, s.cfg.Items.PlaceAttempts)
		}
		s.nextPowerAt = now.Add(s.cfg.Items.PowerRefresh())
	}
}

// sampleDirection buffers the requested facing for this tick. A 180°
// reversal is applied as-is; the resulting neck hit resolves as an ordinary
// self-collision.
func (s *Session) sampleDirection(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		s.pending = North
	case in.Has(core.ActionDown):
		s.pending = South
	case in.Has(core.ActionLeft):
		s.pending = West
	case in.Has(core.ActionRight):
		s.pending = East
	}
}

// speedUp shortens the tick interval by the configured step, floored at the
// configured minimum.
func (s *Session) speedUp() {
	s.interval -= s.cfg.Speed.Step()
	if min := s.cfg.Speed.MinInterval(); s.interval < min {
		s.interval = min
	}
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Interval returns the current tick interval, which defines game speed.
func (s *Session) Interval() time.Duration {
	return s.interval
}

// Poisoned reports whether the poison status is active.
func (s *Session) Poisoned() bool {
	return s.poisoned
}

// Board exposes the item grid for the renderer.
func (s *Session) Board() *Board {
	return s.board
}

// Snake exposes the body for the renderer.
func (s *Session) Snake() *Snake {
	return s.snake
}

// Render draws the session's current frame into dst, overlaying msgs.
func (s *Session) Render(dst *core.Screen, highScore int, msgs []Message) {
	RenderFrame(dst, s.board, s.snake, s.score, highScore, msgs)
}
