package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tggbb/SnakeNeo/internal/core"
	"github.com/tggbb/SnakeNeo/internal/games/snake"
	"github.com/tggbb/SnakeNeo/internal/replay"
	"github.com/tggbb/SnakeNeo/internal/storage"
)

var t0 = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func newTestGame(wrap bool) *snake.Game {
	opts := snake.DefaultOptions(snake.ModeClassic)
	opts.Seed = 1
	opts.Grid.Wrap = wrap
	return snake.New(opts)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelFeedsElapsedTime(t *testing.T) {
	m := NewModel(newTestGame(true), Session{}, 80, 24)

	m = send(t, m, runeKey('w'))
	m = send(t, m, TickMsg(t0))
	if m.Game().Phase() != snake.PhaseRunning {
		t.Fatalf("expected Running after a direction, got %v", m.Game().Phase())
	}
	if m.Game().Tick() != 0 {
		t.Fatalf("first frame has no elapsed time, got %d ticks", m.Game().Tick())
	}

	// 200ms at 6 ticks per second is one tick
	m = send(t, m, TickMsg(t0.Add(200*time.Millisecond)))
	if m.Game().Tick() != 1 {
		t.Errorf("expected 1 tick, got %d", m.Game().Tick())
	}
}

func TestModelPauseAndBack(t *testing.T) {
	m := NewModel(newTestGame(true), Session{}, 80, 24)

	m = send(t, m, runeKey('d'))
	m = send(t, m, TickMsg(t0))
	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg(t0.Add(time.Second)))
	if m.Game().Phase() != snake.PhasePaused {
		t.Fatalf("expected Paused, got %v", m.Game().Phase())
	}
	if m.Game().Tick() != 0 {
		t.Errorf("paused game should not tick, got %d", m.Game().Tick())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("esc while paused should go back to the menu")
	}
}

func TestModelIgnoresCheatsWithoutAdmin(t *testing.T) {
	m := NewModel(newTestGame(true), Session{}, 80, 24)
	m = send(t, m, runeKey('x'))
	if m.Game().Cheated() || m.Game().Score() != 0 {
		t.Error("cheat applied without admin mode")
	}

	admin := NewModel(newTestGame(true), Session{Admin: true}, 80, 24)
	admin = send(t, admin, runeKey('x'))
	if !admin.Game().Cheated() || admin.Game().Score() == 0 {
		t.Error("admin cheat was not applied")
	}
}

func TestModelGameOverSavesRun(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "snake.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := newTestGame(false)
	m := NewModel(g, Session{Store: store, Admin: true, ReplayDir: dir}, 80, 24)

	m = send(t, m, runeKey('x')) // +50
	m = send(t, m, runeKey('d'))
	m = send(t, m, TickMsg(t0))
	for range 40 {
		g.Step()
	}
	if g.Phase() != snake.PhaseGameOver {
		t.Fatalf("expected the snake to hit the wall, phase %v", g.Phase())
	}

	m = send(t, m, TickMsg(t0.Add(10*time.Millisecond)))
	if m.nameEntry == nil {
		t.Fatal("name entry should open after a scoring run")
	}
	if !strings.Contains(m.View(), "Enter your name") {
		t.Error("view should show the name prompt")
	}

	for _, r := range "ada" {
		m = send(t, m, runeKey(r))
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.nameEntry != nil {
		t.Fatal("name entry should close after enter")
	}

	scores, err := store.TopScores(string(snake.ModeClassic), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Name != "ada" || scores[0].Score < 50 || !scores[0].Cheated {
		t.Errorf("unexpected leaderboard: %+v", scores)
	}
	if m.PlayerName() != "ada" {
		t.Errorf("PlayerName() = %q, want ada", m.PlayerName())
	}

	rec, err := replay.Load(filepath.Join(dir, LastReplayFile))
	if err != nil {
		t.Fatalf("replay not written: %v", err)
	}
	if !rec.Cheated {
		t.Error("replay of a cheated run should be flagged")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(newTestGame(true), Session{DataDir: dir}, 80, 24)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(filepath.Join(dir, "screenshots"))
	if err != nil {
		t.Fatalf("screenshot directory missing: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	data, _ := os.ReadFile(filepath.Join(dir, "screenshots", entries[0].Name()))
	if !strings.Contains(string(data), "SNAKE NEO") {
		t.Error("screenshot should contain the HUD")
	}
}

func TestThemeByName(t *testing.T) {
	tests := map[string]string{
		"neo":    "neo",
		"retro":  "retro",
		"SUNSET": "sunset",
		"bogus":  "neo",
		"":       "neo",
	}
	for in, want := range tests {
		if got := ThemeByName(in).Name; got != want {
			t.Errorf("ThemeByName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "SNAKE", core.ColorBrightCyan)
	s.DrawText(0, 1, "neo")

	out := RenderScreen(s, NeoTheme())
	if !strings.Contains(out, "SNAKE") || !strings.Contains(out, "neo") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
