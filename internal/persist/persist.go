// Package persist connects the simulation's events to durable storage.
// The game never touches storage itself; a Recorder drains its events,
// records unlocks and best scores, and saves named leaderboard entries.
package persist

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tggbb/SnakeNeo/internal/games/snake"
)

// Store is the subset of storage the Recorder writes to.
type Store interface {
	UnlockAchievement(id string) (bool, error)
	AchievementIDs() ([]string, error)
	BestScore(mode string) (int, error)
	RecordBest(mode string, score int) error
	SaveScore(mode, name string, score int, seed int64, cheated bool) (int64, error)
}

// Recorder persists simulation outcomes. A nil store turns every
// operation into a no-op so hosts can run without a database.
type Recorder struct {
	store  Store
	logger *log.Logger

	last    snake.GameOver
	pending bool
}

// New creates a Recorder. A nil logger discards output.
func New(store Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, logger: logger}
}

// Enabled reports whether a store is attached.
func (r *Recorder) Enabled() bool {
	return r.store != nil
}

// Prime loads persisted unlocks and the overall best score into the game,
// so already-unlocked achievements are not reported again.
func (r *Recorder) Prime(g *snake.Game) error {
	if r.store == nil {
		return nil
	}
	ids, err := r.store.AchievementIDs()
	if err != nil {
		return err
	}
	g.PrimeAchievements(ids)

	best, err := r.store.BestScore("")
	if err != nil {
		return err
	}
	g.SetBest(best)
	return nil
}

// Handle persists the outcome of a batch of drained events.
// Storage failures are logged and joined into the returned error;
// the remaining events are still processed.
func (r *Recorder) Handle(events []snake.Event) error {
	var errs []error
	for _, ev := range events {
		switch e := ev.(type) {
		case snake.AchievementUnlocked:
			r.logger.Info("achievement unlocked", "id", e.ID, "name", e.Name)
			if r.store == nil {
				continue
			}
			if _, err := r.store.UnlockAchievement(e.ID); err != nil {
				r.logger.Error("cannot persist achievement", "id", e.ID, "error", err)
				errs = append(errs, err)
			}
		case snake.GameOver:
			r.last = e
			r.pending = true
			r.logger.Debug("run ended",
				"mode", e.Mode,
				"score", e.FinalScore,
				"cause", e.Cause,
				"ticks", e.Ticks,
				"cheated", e.Cheated,
			)
			if r.store == nil || e.FinalScore <= 0 {
				continue
			}
			if err := r.store.RecordBest(string(e.Mode), e.FinalScore); err != nil {
				r.logger.Error("cannot persist best score", "mode", e.Mode, "error", err)
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Pending returns the last finished run that has not been saved or discarded.
func (r *Recorder) Pending() (snake.GameOver, bool) {
	return r.last, r.pending
}

// Discard forgets the pending run.
func (r *Recorder) Discard() {
	r.pending = false
}

// SaveRun stores a leaderboard entry for a finished run.
// Runs that scored nothing are not saved. It reports whether an entry was written.
func (r *Recorder) SaveRun(name string, snap snake.Snapshot) (bool, error) {
	r.pending = false
	if r.store == nil || snap.Score <= 0 {
		return false, nil
	}

	seed := snap.RunSeed
	if snap.Mode == snake.ModeDaily {
		seed = int64(snap.DailySeed)
	}
	if _, err := r.store.SaveScore(string(snap.Mode), name, snap.Score, seed, snap.Cheated); err != nil {
		r.logger.Error("cannot save run", "mode", snap.Mode, "error", err)
		return false, err
	}
	r.logger.Info("run saved", "mode", snap.Mode, "score", snap.Score)
	return true, nil
}
