package persist

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/tggbb/SnakeNeo/internal/games/snake"
	"github.com/tggbb/SnakeNeo/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newGame() *snake.Game {
	opts := snake.DefaultOptions(snake.ModeClassic)
	opts.Seed = 7
	return snake.New(opts)
}

func TestPrimeLoadsUnlocksAndBest(t *testing.T) {
	store := openStore(t)
	store.UnlockAchievement("first-bite")
	store.SaveScore("timed", "ada", 33, 1, false)

	g := newGame()
	rec := New(store, nil)
	if err := rec.Prime(g); err != nil {
		t.Fatalf("Prime() failed: %v", err)
	}

	if !g.Unlocked("first-bite") {
		t.Error("expected first-bite primed")
	}
	if g.Unlocked("gold") {
		t.Error("gold should not be primed")
	}
	if g.Best() != 33 {
		t.Errorf("expected best 33, got %d", g.Best())
	}
}

func TestHandlePersistsEvents(t *testing.T) {
	store := openStore(t)
	rec := New(store, nil)

	events := []snake.Event{
		snake.ScoreChanged{Score: 1},
		snake.AchievementUnlocked{ID: "first-bite", Name: "First Bite"},
		snake.GameOver{Mode: snake.ModeTimed, FinalScore: 12, Best: 12, NewBest: true, Cause: snake.CauseTimeUp},
	}
	if err := rec.Handle(events); err != nil {
		t.Fatalf("Handle() failed: %v", err)
	}

	ids, _ := store.AchievementIDs()
	if len(ids) != 1 || ids[0] != "first-bite" {
		t.Errorf("unexpected achievements: %v", ids)
	}
	if best, _ := store.BestScore("timed"); best != 12 {
		t.Errorf("expected timed best 12, got %d", best)
	}

	over, ok := rec.Pending()
	if !ok || over.FinalScore != 12 || over.Cause != snake.CauseTimeUp {
		t.Errorf("unexpected pending run: %+v %v", over, ok)
	}
	rec.Discard()
	if _, ok := rec.Pending(); ok {
		t.Error("Discard() should clear the pending run")
	}
}

func TestSaveRun(t *testing.T) {
	tests := []struct {
		name      string
		snap      snake.Snapshot
		wantSaved bool
		wantSeed  int64
	}{
		{
			name:      "classic uses run seed",
			snap:      snake.Snapshot{Mode: snake.ModeClassic, Score: 5, RunSeed: 99},
			wantSaved: true,
			wantSeed:  99,
		},
		{
			name:      "daily uses daily seed",
			snap:      snake.Snapshot{Mode: snake.ModeDaily, Score: 8, DailySeed: 20261016},
			wantSaved: true,
			wantSeed:  20261016,
		},
		{
			name:      "zero score is skipped",
			snap:      snake.Snapshot{Mode: snake.ModeClassic},
			wantSaved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openStore(t)
			rec := New(store, nil)

			saved, err := rec.SaveRun("  ada  ", tt.snap)
			if err != nil {
				t.Fatalf("SaveRun() failed: %v", err)
			}
			if saved != tt.wantSaved {
				t.Fatalf("SaveRun() = %v, want %v", saved, tt.wantSaved)
			}

			scores, _ := store.TopScores(string(tt.snap.Mode), 10)
			if !tt.wantSaved {
				if len(scores) != 0 {
					t.Errorf("expected no entries, got %d", len(scores))
				}
				return
			}
			if len(scores) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(scores))
			}
			if scores[0].Name != "ada" || scores[0].Seed != tt.wantSeed {
				t.Errorf("unexpected entry: %+v", scores[0])
			}
		})
	}
}

func TestNilStore(t *testing.T) {
	rec := New(nil, nil)
	if rec.Enabled() {
		t.Error("nil store should not be enabled")
	}
	if err := rec.Prime(newGame()); err != nil {
		t.Errorf("Prime() with nil store: %v", err)
	}
	err := rec.Handle([]snake.Event{
		snake.AchievementUnlocked{ID: "ten"},
		snake.GameOver{Mode: snake.ModeClassic, FinalScore: 3},
	})
	if err != nil {
		t.Errorf("Handle() with nil store: %v", err)
	}
	if saved, err := rec.SaveRun("x", snake.Snapshot{Score: 3}); saved || err != nil {
		t.Errorf("SaveRun() with nil store = %v, %v", saved, err)
	}
}

type failingStore struct{}

var errBroken = errors.New("broken")

func (failingStore) UnlockAchievement(string) (bool, error) { return false, errBroken }
func (failingStore) AchievementIDs() ([]string, error) { return nil, errBroken }
func (failingStore) BestScore(string) (int, error) { return 0, errBroken }
func (failingStore) RecordBest(string, int) error { return errBroken }
func (failingStore) SaveScore(string, string, int, int64, bool) (int64, error) {
	return 0, errBroken
}

func TestHandleJoinsErrors(t *testing.T) {
	rec := New(failingStore{}, nil)

	err := rec.Handle([]snake.Event{
		snake.AchievementUnlocked{ID: "ten"},
		snake.GameOver{Mode: snake.ModeClassic, FinalScore: 3},
	})
	if !errors.Is(err, errBroken) {
		t.Errorf("expected joined errBroken, got %v", err)
	}
	if _, ok := rec.Pending(); !ok {
		t.Error("game over should be pending despite store failure")
	}
	if err := rec.Prime(newGame()); !errors.Is(err, errBroken) {
		t.Errorf("Prime() expected errBroken, got %v", err)
	}
}
