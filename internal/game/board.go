// Package game implements the snek simulation core: the board, the snake
// body, item placement, the per-tick session step, and the frame renderer.
// It contains pure logic with no terminal dependencies.
package game

// Board dimensions are fixed; the outermost ring of cells is a permanent
// wall. Interior (playable) cells span rows [1, Height-2] and columns
// [1, Width-2].
const (
	Height = 30
	Width  = 100
)

// Tag identifies the item stored in a board cell. Snake occupancy is never
// stored on the board; the renderer derives head/body from the Snake.
type Tag uint8

const (
	TagEmpty Tag = iota
	TagSnack
	TagPowerItem
	TagObstacle
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagEmpty:
		return "empty"
	case TagSnack:
		return "snack"
	case TagPowerItem:
		return "power-item"
	case TagObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Board is a fixed-size grid holding one item tag per cell. It has no
// behavior beyond storage and lookup.
type Board struct {
	cells [Height][Width]Tag
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the tag at p, or TagEmpty for coordinates outside the grid.
func (b *Board) At(p Point) Tag {
	if p.Row < 0 || p.Row >= Height || p.Col < 0 || p.Col >= Width {
		return TagEmpty
	}
	return b.cells[p.Row][p.Col]
}

// Set stores tag at p. Writes outside the grid are ignored.
func (b *Board) Set(p Point, tag Tag) {
	if p.Row < 0 || p.Row >= Height || p.Col < 0 || p.Col >= Width {
		return
	}
	b.cells[p.Row][p.Col] = tag
}

// Clear resets the cell at p to TagEmpty.
func (b *Board) Clear(p Point) {
	b.Set(p, TagEmpty)
}

// Count returns how many cells hold the given tag. Used by tests and the
// determinism snapshot.
func (b *Board) Count(tag Tag) int {
	n := 0
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			if b.cells[r][c] == tag {
				n++
			}
		}
	}
	return n
}

// interior reports whether p is a playable cell (inside the wall ring).
func interior(p Point) bool {
	return p.Row >= 1 && p.Row <= Height-2 && p.Col >= 1 && p.Col <= Width-2
}
