package game

import "math/rand"

// Placer chooses free cells for snacks, power-items, and obstacle shapes.
// All placement is bounded-retry: a saturated board simply does not receive
// a new item, never an error and never an unbounded search.
type Placer struct {
	rng *rand.Rand
}

// NewPlacer creates a placer drawing from the given random source.
func NewPlacer(rng *rand.Rand) *Placer {
	return &Placer{rng: rng}
}

// randomInterior samples a uniformly random playable cell.
func (pl *Placer) randomInterior() Point {
	return Point{
		Row: 1 + pl.rng.Intn(Height-2),
		Col: 1 + pl.rng.Intn(Width-2),
	}
}

// PlaceRandom samples up to attempts random interior cells and commits tag
// to the first one that is Empty and not the snake's head cell. Returns
// whether a cell was committed. Body cells are not rejected; an item may
// appear under the body and be picked up as the tail clears it.
func (pl *Placer) PlaceRandom(b *Board, head Point, tag Tag, attempts int) bool {
	for i := 0; i < attempts; i++ {
		p := pl.randomInterior()
		if p == head || b.At(p) != TagEmpty {
			continue
		}
		b.Set(p, tag)
		return true
	}
	return false
}

// obstacleShape returns the three cells of a straight 3-cell barrier
// centered at c, horizontal or vertical.
func obstacleShape(c Point, horizontal bool) [3]Point {
	if horizontal {
		return [3]Point{
			{Row: c.Row, Col: c.Col - 1},
			c,
			{Row: c.Row, Col: c.Col + 1},
		}
	}
	return [3]Point{
		{Row: c.Row - 1, Col: c.Col},
		c,
		{Row: c.Row + 1, Col: c.Col},
	}
}

// PlaceObstacle tries up to attempts times to commit a 3-cell straight
// barrier (horizontal or vertical, chosen at random) centered at a random
// interior cell. A shape is rejected if any of its cells leaves the
// interior, overlaps a snake segment, or covers a non-Empty cell. On failure
// no obstacle is placed this call.
func (pl *Placer) PlaceObstacle(b *Board, s *Snake, attempts int) bool {
	for i := 0; i < attempts; i++ {
		shape := obstacleShape(pl.randomInterior(), pl.rng.Intn(2) == 0)
		if !obstacleFits(b, s, shape) {
			continue
		}
		for _, p := range shape {
			b.Set(p, TagObstacle)
		}
		return true
	}
	return false
}

func obstacleFits(b *Board, s *Snake, shape [3]Point) bool {
	for _, p := range shape {
		if !interior(p) || b.At(p) != TagEmpty || s.Contains(p) {
			return false
		}
	}
	return true
}
