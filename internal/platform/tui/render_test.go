package tui

import (
	"testing"

	"github.com/vovakirdan/tui-snek/internal/core"
)

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style mapping", c)
		}
	}
	for c := range colorStyles {
		if c > core.ColorGray {
			t.Errorf("style mapped for color %d outside the palette", c)
		}
	}
}

func TestRenderScreenUnstyledPassthrough(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "abcde", core.ColorDefault)
	s.DrawText(0, 1, "12345", core.ColorDefault)

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}
