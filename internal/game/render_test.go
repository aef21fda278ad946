package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snek/internal/config"
	"github.com/vovakirdan/tui-snek/internal/core"
)

func TestRenderIdempotent(t *testing.T) {
	clock := newFakeClock()
	s := NewSession(config.DefaultSnekConfig(), 99, clock)
	for i := 0; i < 20; i++ {
		step(s)
	}
	msgs := []Message{{Row: 12, Text: "PAUSED", Color: core.ColorBrightYellow}}

	a := core.NewScreen(ScreenWidth, ScreenHeight)
	b := core.NewScreen(ScreenWidth, ScreenHeight)
	s.Render(a, 500, msgs)
	s.Render(b, 500, msgs)

	if a.String() != b.String() {
		t.Fatal("identical inputs produced different text buffers")
	}
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if a.GetCell(x, y) != b.GetCell(x, y) {
				t.Fatalf("cell (%d,%d) differs between identical renders", x, y)
			}
		}
	}
}

func TestRenderBorderAndHeader(t *testing.T) {
	dst := core.NewScreen(ScreenWidth, ScreenHeight)
	RenderFrame(dst, NewBoard(), nil, 120, 340, nil)

	if !strings.Contains(dst.Row(0), "SCORE 120") {
		t.Errorf("header row = %q, expected score", dst.Row(0))
	}
	if !strings.Contains(dst.Row(0), "HIGH SCORE 340") {
		t.Errorf("header row = %q, expected high score", dst.Row(0))
	}

	// Solid block ring on all four sides of the grid.
	top, bottom := boardTop, boardTop+Height-1
	for x := 0; x < Width; x++ {
		if dst.Get(x, top) != glyphBorder || dst.Get(x, bottom) != glyphBorder {
			t.Fatalf("missing border block at column %d", x)
		}
	}
	for r := 0; r < Height; r++ {
		if dst.Get(0, boardTop+r) != glyphBorder || dst.Get(Width-1, boardTop+r) != glyphBorder {
			t.Fatalf("missing border block at row %d", r)
		}
	}
}

func TestRenderNilBoardAndSnake(t *testing.T) {
	dst := core.NewScreen(ScreenWidth, ScreenHeight)
	msgs := []Message{
		{Row: 10, Text: "S N E K", Color: core.ColorBrightGreen},
		{Row: 14, Text: "press enter to start", Color: core.ColorWhite},
	}

	RenderFrame(dst, nil, nil, 0, 0, msgs)

	if !strings.Contains(dst.Row(boardTop+10), "S N E K") {
		t.Error("title message missing from its labeled row")
	}
	if !strings.Contains(dst.Row(boardTop+14), "press enter to start") {
		t.Error("prompt message missing from its labeled row")
	}
	if strings.Contains(dst.Row(0), "HIGH SCORE") {
		t.Error("zero high score should not be shown")
	}
}

func TestRenderSnakeAndItems(t *testing.T) {
	b := NewBoard()
	b.Set(Point{Row: 5, Col: 10}, TagSnack)
	b.Set(Point{Row: 6, Col: 10}, TagPowerItem)
	b.Set(Point{Row: 7, Col: 10}, TagObstacle)
	s := NewSnake(Point{Row: 15, Col: 50}, East, 4)

	dst := core.NewScreen(ScreenWidth, ScreenHeight)
	RenderFrame(dst, b, s, 0, 0, nil)

	if got := dst.Get(10, boardTop+5); got != glyphSnack {
		t.Errorf("snack cell = %q, expected %q", got, glyphSnack)
	}
	if got := dst.Get(10, boardTop+6); got != glyphPower {
		t.Errorf("power cell = %q, expected %q", got, glyphPower)
	}
	if got := dst.Get(10, boardTop+7); got != glyphObstacle {
		t.Errorf("obstacle cell = %q, expected %q", got, glyphObstacle)
	}

	if got := dst.Get(50, boardTop+15); got != glyphSnakeHead {
		t.Errorf("head cell = %q, expected %q", got, glyphSnakeHead)
	}
	for col := 47; col < 50; col++ {
		if got := dst.Get(col, boardTop+15); got != glyphSnakeBody {
			t.Errorf("body cell at col %d = %q, expected %q", col, got, glyphSnakeBody)
		}
	}

	head := dst.GetCell(50, boardTop+15)
	if head.Color != core.ColorBrightGreen {
		t.Errorf("head color = %v, expected bright green", head.Color)
	}
}

func TestRenderMessageOverridesSnake(t *testing.T) {
	s := NewSnake(Point{Row: 15, Col: 50}, East, 4)
	msgs := []Message{{Row: 15, Text: strings.Repeat("=", 20), Color: core.ColorRed}}

	dst := core.NewScreen(ScreenWidth, ScreenHeight)
	RenderFrame(dst, NewBoard(), s, 0, 0, msgs)

	if got := dst.Get(50, boardTop+15); got != '=' {
		t.Errorf("cell under overlay = %q, expected message glyph", got)
	}
}
