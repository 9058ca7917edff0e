package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tggbb/SnakeNeo/internal/games/snake"
	"github.com/tggbb/SnakeNeo/internal/storage"
)

func openBoardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := store.SaveScore("classic", "ada", 12, 1, false); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	if _, err := store.SaveScore("timed", "bob", 30, 2, true); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	if _, err := store.UnlockAchievement(snake.AchFirstBite); err != nil {
		t.Fatalf("UnlockAchievement failed: %v", err)
	}
	return store
}

func sendBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return board
}

func TestScoreboardAllModes(t *testing.T) {
	m := NewScoreboardModel(openBoardStore(t), NeoTheme(), "", 100, 30)

	if m.Mode() != "" {
		t.Errorf("Mode() = %q, expected the all-modes board", m.Mode())
	}
	rows := m.rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Highest first, with mode column and cheat mark
	if rows[0][1] != "bob" || rows[0][2] != "Timed" || rows[0][3] != "30*" {
		t.Errorf("first row = %v", rows[0])
	}
	if m.best != 30 {
		t.Errorf("best = %d, expected 30", m.best)
	}
}

func TestScoreboardPaging(t *testing.T) {
	m := NewScoreboardModel(openBoardStore(t), NeoTheme(), snake.ModeClassic, 60, 30)

	if m.Mode() != snake.ModeClassic {
		t.Fatalf("Mode() = %q, expected classic", m.Mode())
	}
	if rows := m.rows(); len(rows) != 1 || rows[0][1] != "ada" || len(rows[0]) != 4 {
		t.Errorf("classic rows = %v", rows)
	}

	m = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != snake.ModeTimed {
		t.Errorf("after tab Mode() = %q, expected timed", m.Mode())
	}

	m = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Mode() != "" {
		t.Errorf("two pages back Mode() = %q, expected all modes", m.Mode())
	}

	// Wraps from the first page to the achievement page
	m = sendBoard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if !m.current().achievements {
		t.Fatalf("expected the achievement page, got %+v", m.current())
	}
	view := m.View()
	if !strings.Contains(view, "ACHIEVEMENTS") || !strings.Contains(view, "(1/") {
		t.Errorf("achievement view missing header:\n%s", view)
	}
	rows := m.rows()
	if len(rows) != len(snake.Achievements()) {
		t.Fatalf("expected one row per achievement, got %d", len(rows))
	}
	if rows[0][0] != "*" || rows[1][0] != " " {
		t.Errorf("unlock marks = %q, %q", rows[0][0], rows[1][0])
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, NeoTheme(), "", 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty board should show the empty message")
	}

	back := sendBoard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back")
	}
	quit := sendBoard(t, m, runeKey('q'))
	if !quit.IsQuitting() || quit.IsGoingBack() {
		t.Error("q should quit")
	}
}
