package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snek/internal/core"
)

// Frame dimensions: a header row above the board grid.
const (
	ScreenWidth  = Width
	ScreenHeight = Height + 1
	boardTop     = 1
)

// Glyphs for each cell kind.
const (
	glyphBorder    = '█'
	glyphSnakeHead = 'O'
	glyphSnakeBody = 'o'
	glyphSnack     = '*'
	glyphPower     = '%'
	glyphObstacle  = '▒'
)

// Message is one overlay line for title, pause, and game-over screens:
// text centered on a board row in a color. Overlays are constructed fresh
// per screen and never persisted.
type Message struct {
	Row   int // board row, 0..Height-1
	Text  string
	Color core.Color
}

// RenderFrame flattens board, snake, score, and overlay messages into dst as
// styled cells, row-major: header row, then the grid with a solid-block
// border ring. Cell priority: message text over snake over item tag over
// empty. Pure with respect to its inputs; identical inputs always produce
// identical buffers. Both board and snake may be nil (title screen).
func RenderFrame(dst *core.Screen, b *Board, s *Snake, score, highScore int, msgs []Message) {
	dst.Clear()

	dst.DrawText(1, 0, fmt.Sprintf("SCORE %d", score), core.ColorBrightWhite)
	if highScore > 0 {
		text := fmt.Sprintf("HIGH SCORE %d", highScore)
		dst.DrawText(dst.Width()-len(text)-1, 0, text, core.ColorBrightYellow)
	}

	for r := 0; r < Height; r++ {
		y := boardTop + r
		for c := 0; c < Width; c++ {
			p := Point{Row: r, Col: c}
			if r == 0 || r == Height-1 || c == 0 || c == Width-1 {
				dst.SetCell(c, y, core.Cell{Rune: glyphBorder, Color: core.ColorBlue})
				continue
			}
			if b == nil {
				continue
			}
			switch b.At(p) {
			case TagSnack:
				dst.SetCell(c, y, core.Cell{Rune: glyphSnack, Color: core.ColorBrightGreen})
			case TagPowerItem:
				dst.SetCell(c, y, core.Cell{Rune: glyphPower, Color: core.ColorMagenta})
			case TagObstacle:
				dst.SetCell(c, y, core.Cell{Rune: glyphObstacle, Color: core.ColorGray})
			case TagEmpty:
			}
		}
	}

	if s != nil {
		segs := s.Segments()
		for _, seg := range segs[:len(segs)-1] {
			dst.SetCell(seg.Col, boardTop+seg.Row, core.Cell{Rune: glyphSnakeBody, Color: core.ColorGreen})
		}
		head := s.Head()
		dst.SetCell(head.Col, boardTop+head.Row, core.Cell{Rune: glyphSnakeHead, Color: core.ColorBrightGreen})
	}

	for _, m := range msgs {
		dst.DrawTextCentered(boardTop+m.Row, m.Text, m.Color)
	}
}
