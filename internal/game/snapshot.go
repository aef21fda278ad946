package game

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Ticks      uint64
	State      State
	Score      int
	SnakeLen   int
	HeadRow    int
	HeadCol    int
	Facing     Direction
	IntervalMs int64
	Poisoned   bool
	Snacks     int
	PowerItems int
	Obstacles  int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.snake.Head()
	return Snapshot{
		Ticks:      s.ticks,
		State:      s.state,
		Score:      s.score,
		SnakeLen:   s.snake.Len(),
		HeadRow:    head.Row,
		HeadCol:    head.Col,
		Facing:     s.snake.Facing(),
		IntervalMs: s.interval.Milliseconds(),
		Poisoned:   s.poisoned,
		Snacks:     s.board.Count(TagSnack),
		PowerItems: s.board.Count(TagPowerItem),
		Obstacles:  s.board.Count(TagObstacle),
	}
}
