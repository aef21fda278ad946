package game

// Point is a board coordinate (row, col).
type Point struct {
	Row, Col int
}

// Direction is the snake's facing on the grid.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Delta returns the (row, col) step for the direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Snake is an ordered body of grid segments with a distinguished head and
// tail. Segments are stored tail-first with the head at the end of the
// slice, giving O(1) head-push (append) and O(1) tail-pop (reslice).
// The snake exclusively owns its segment sequence.
type Snake struct {
	segs          []Point
	facing        Direction
	pendingGrowth int
}

// NewSnake creates a snake of the given length with its head at start,
// facing dir; the body trails in the opposite direction.
func NewSnake(start Point, dir Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	dr, dc := dir.Delta()
	segs := make([]Point, 0, length+8)
	for i := length - 1; i >= 0; i-- {
		segs = append(segs, Point{Row: start.Row - i*dr, Col: start.Col - i*dc})
	}
	return &Snake{segs: segs, facing: dir}
}

// Head returns the head segment position.
func (s *Snake) Head() Point {
	return s.segs[len(s.segs)-1]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.segs)
}

// Facing returns the current facing direction.
func (s *Snake) Facing() Direction {
	return s.facing
}

// Segments returns the body tail-first, head last. The returned slice is
// shared; callers must not modify it.
func (s *Snake) Segments() []Point {
	return s.segs
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p Point) bool {
	for _, seg := range s.segs {
		if seg == p {
			return true
		}
	}
	return false
}

// Advance applies dir as the new facing unconditionally (an immediate 180°
// reversal is permitted and resolves as an ordinary self-collision), links a
// new head at head+delta, and drops the tail unless growth is pending.
func (s *Snake) Advance(dir Direction) {
	s.facing = dir
	dr, dc := dir.Delta()
	head := s.Head()
	s.segs = append(s.segs, Point{Row: head.Row + dr, Col: head.Col + dc})
	if s.pendingGrowth > 0 {
		s.pendingGrowth--
	} else {
		s.segs = s.segs[1:]
	}
}

// Grow schedules n tail-preservation steps: the next n advances keep the
// tail, lengthening the body by n cells total.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.pendingGrowth += n
	}
}

// CollidesWithSelf reports whether the head occupies the same cell as any
// other segment. Checked after Advance, before the move is committed as
// valid.
func (s *Snake) CollidesWithSelf() bool {
	head := s.Head()
	for _, seg := range s.segs[:len(s.segs)-1] {
		if seg == head {
			return true
		}
	}
	return false
}

// InBounds reports whether the head is inside the playable interior of a
// height x width board whose outermost ring is wall.
func (s *Snake) InBounds(height, width int) bool {
	head := s.Head()
	return head.Row >= 1 && head.Row <= height-2 && head.Col >= 1 && head.Col <= width-2
}
