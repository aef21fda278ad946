package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snek/internal/config"
	"github.com/vovakirdan/tui-snek/internal/core"
	"github.com/vovakirdan/tui-snek/internal/game"
	"github.com/vovakirdan/tui-snek/internal/storage"
)

func TestFinishGameRecordsSaveError(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	store.Close()

	m := NewModel(config.DefaultSnekConfig(), store)
	m.startGame()

	// Walk the head onto a snack so the session has a score worth saving.
	head := m.session.Snake().Head()
	m.session.Board().Set(game.Point{Row: head.Row, Col: head.Col + 1}, game.TagSnack)
	m.session.Step(core.NewInputFrame())
	if m.session.Score() == 0 {
		t.Fatal("expected a non-zero score after eating a snack")
	}

	m.finishGame()
	if m.saveErr == nil {
		t.Error("expected saveErr after saving to a closed store")
	}
}

func TestGameOverMessagesReportSaveFailure(t *testing.T) {
	msgs := gameOverMessages(40, false, errors.New("database is closed"))
	found := false
	for _, msg := range msgs {
		if strings.HasPrefix(msg.Text, "score not saved:") {
			found = true
		}
	}
	if !found {
		t.Errorf("game-over messages missing the save warning: %v", msgs)
	}
}
