package game

import (
	"math/rand"
	"testing"
)

func TestPlaceRandomNeverHitsHeadOrOccupied(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pl := NewPlacer(rng)
	b := NewBoard()
	head := Point{Row: 15, Col: 50}

	placed := 0
	for i := 0; i < 500; i++ {
		before := b.Count(TagSnack)
		if pl.PlaceRandom(b, head, TagSnack, 100) {
			placed++
			if b.At(head) != TagEmpty {
				t.Fatal("placement overwrote the snake head cell")
			}
			if b.Count(TagSnack) != before+1 {
				t.Fatal("successful placement must commit exactly one cell")
			}
		}
	}
	if placed == 0 {
		t.Error("expected placements on a mostly empty board")
	}
}

func TestPlaceRandomSingleEmptyCell(t *testing.T) {
	b := NewBoard()
	free := Point{Row: 7, Col: 42}
	for r := 1; r <= Height-2; r++ {
		for c := 1; c <= Width-2; c++ {
			p := Point{Row: r, Col: c}
			if p != free {
				b.Set(p, TagObstacle)
			}
		}
	}
	head := Point{Row: 15, Col: 50}
	obstaclesBefore := b.Count(TagObstacle)

	rng := rand.New(rand.NewSource(3))
	pl := NewPlacer(rng)
	ok := pl.PlaceRandom(b, head, TagSnack, 100)

	// Either it found the lone free cell or it gave up; the board must be
	// correct in both outcomes.
	if ok {
		if b.At(free) != TagSnack {
			t.Errorf("commit landed on %v, expected the lone free cell", free)
		}
	} else if b.At(free) != TagEmpty {
		t.Error("failed placement must not mutate the board")
	}
	if b.Count(TagObstacle) != obstaclesBefore {
		t.Error("placement must never overwrite occupied cells")
	}
}

func TestPlaceRandomGivesUpOnSaturatedBoard(t *testing.T) {
	b := NewBoard()
	for r := 1; r <= Height-2; r++ {
		for c := 1; c <= Width-2; c++ {
			b.Set(Point{Row: r, Col: c}, TagObstacle)
		}
	}

	pl := NewPlacer(rand.New(rand.NewSource(1)))
	if pl.PlaceRandom(b, Point{Row: 15, Col: 50}, TagSnack, 200) {
		t.Error("placement on a saturated board must give up")
	}
	if b.Count(TagSnack) != 0 {
		t.Error("give-up must leave the board untouched")
	}
}

func TestPlaceObstacleAvoidsSnakeAndItems(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pl := NewPlacer(rng)
	b := NewBoard()
	s := NewSnake(Point{Row: 15, Col: 70}, East, 20)

	// Scatter some items to verify the shape never covers them.
	for i := 0; i < 40; i++ {
		pl.PlaceRandom(b, s.Head(), TagSnack, 100)
	}
	snacks := b.Count(TagSnack)

	for i := 0; i < 200; i++ {
		if !pl.PlaceObstacle(b, s, 3) {
			continue
		}
		for _, seg := range s.Segments() {
			if b.At(seg) == TagObstacle {
				t.Fatalf("obstacle overlaps snake segment %v", seg)
			}
		}
		if b.Count(TagSnack) != snacks {
			t.Fatal("obstacle placement overwrote an item cell")
		}
	}

	if n := b.Count(TagObstacle); n%3 != 0 {
		t.Errorf("obstacle cells = %d, expected a multiple of 3", n)
	}
}

func TestPlaceObstacleGivesUpSilently(t *testing.T) {
	b := NewBoard()
	for r := 1; r <= Height-2; r++ {
		for c := 1; c <= Width-2; c++ {
			b.Set(Point{Row: r, Col: c}, TagSnack)
		}
	}
	s := NewSnake(Point{Row: 15, Col: 50}, East, 3)

	pl := NewPlacer(rand.New(rand.NewSource(5)))
	if pl.PlaceObstacle(b, s, 3) {
		t.Error("expected give-up on a saturated board")
	}
	if b.Count(TagObstacle) != 0 {
		t.Error("failed obstacle placement must not mark any cells")
	}
}

func TestObstacleShapes(t *testing.T) {
	c := Point{Row: 10, Col: 20}

	h := obstacleShape(c, true)
	if h[0] != (Point{Row: 10, Col: 19}) || h[1] != c || h[2] != (Point{Row: 10, Col: 21}) {
		t.Errorf("horizontal shape = %v", h)
	}

	v := obstacleShape(c, false)
	if v[0] != (Point{Row: 9, Col: 20}) || v[1] != c || v[2] != (Point{Row: 11, Col: 20}) {
		t.Errorf("vertical shape = %v", v)
	}
}
