// Package replay records the inputs of a run and replays them against a
// fresh game. Runs are deterministic given their seed, configuration and
// the tick index of every accepted direction, so a recording is enough to
// verify a leaderboard score.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/tggbb/SnakeNeo/internal/config"
	"github.com/tggbb/SnakeNeo/internal/games/snake"
)

// Version is the current recording format version.
const Version = 1

var (
	// ErrMismatch is returned when a replay does not reproduce the recorded outcome.
	ErrMismatch = errors.New("replay: outcome mismatch")
	// ErrCheated is returned for recordings of runs that used cheats.
	ErrCheated = errors.New("replay: run used cheats")
	// ErrInvalid is returned for malformed recordings.
	ErrInvalid = errors.New("replay: invalid recording")
)

// Input is one accepted direction and the number of ticks applied before it.
type Input struct {
	Tick uint64          `msgpack:"t"`
	Dir  snake.Direction `msgpack:"d"`
}

// Recording is everything needed to rebuild a run.
type Recording struct {
	Version    int             `msgpack:"version"`
	Mode       snake.Mode      `msgpack:"mode"`
	Seed       int64           `msgpack:"seed"`
	DailySeed  uint32          `msgpack:"daily_seed"`
	Settings   config.Settings `msgpack:"settings"`
	Rules      config.Rules    `msgpack:"rules"`
	SpeedMul   float64         `msgpack:"speed_mul"`
	Inputs     []Input         `msgpack:"inputs"`
	Ticks      uint64          `msgpack:"ticks"`
	FinalScore int             `msgpack:"final_score"`
	Cheated    bool            `msgpack:"cheated"`
	RecordedAt time.Time       `msgpack:"recorded_at"`
}

// Options rebuilds the game options of the recorded run.
func (r Recording) Options() snake.Options {
	opts := snake.OptionsFromConfig(config.SnakeConfig{Settings: r.Settings, Rules: r.Rules})
	opts.Mode = r.Mode
	opts.Seed = r.Seed
	opts.DailySeed = r.DailySeed
	opts.SpeedMul = r.SpeedMul
	return opts
}

func (r Recording) validate() error {
	if r.Version <= 0 || r.Version > Version {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalid, r.Version)
	}
	if _, err := snake.ParseMode(string(r.Mode)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if r.Mode == snake.ModeDaily && r.DailySeed == 0 {
		return fmt.Errorf("%w: missing daily seed", ErrInvalid)
	}
	if r.Mode != snake.ModeDaily && r.Seed == 0 {
		return fmt.Errorf("%w: missing seed", ErrInvalid)
	}
	if err := r.Rules.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	var prev uint64
	for i, in := range r.Inputs {
		if in.Tick < prev || in.Tick > r.Ticks {
			return fmt.Errorf("%w: input %d out of order", ErrInvalid, i)
		}
		prev = in.Tick
	}
	return nil
}

// Recorder captures the directions a host submits to a game.
type Recorder struct {
	game   *snake.Game
	rec    Recording
	active bool
}

// NewRecorder wraps a game. Call Start at the beginning of every run.
func NewRecorder(g *snake.Game) *Recorder {
	return &Recorder{game: g}
}

// Start begins recording the current run. The run must still be Idle
// for the recording to be complete.
func (r *Recorder) Start() {
	snap := r.game.Snapshot()
	opts := r.game.Options()
	r.rec = Recording{
		Version:   Version,
		Mode:      snap.Mode,
		Seed:      snap.RunSeed,
		DailySeed: snap.DailySeed,
		Settings: config.Settings{
			GridWidth:  snap.Grid.Width,
			GridHeight: snap.Grid.Height,
			BaseSpeed:  snap.BaseSpeed,
			Wrap:       snap.Grid.Wrap,
			Obstacles:  snap.Grid.Obstacles,
			Mode:       string(snap.Mode),
		},
		Rules:    opts.Rules,
		SpeedMul: snap.SpeedMul,
	}
	r.active = snap.Phase == snake.PhaseIdle
}

// Active reports whether the current run is being recorded.
func (r *Recorder) Active() bool {
	return r.active
}

// Submit forwards a direction to the game and records it if accepted.
func (r *Recorder) Submit(d snake.Direction) bool {
	if !r.game.SubmitDirection(d) {
		return false
	}
	if r.active {
		r.rec.Inputs = append(r.rec.Inputs, Input{Tick: r.game.Tick(), Dir: d})
	}
	return true
}

// Finish stops recording and returns the recording with the run's
// current outcome. It reports false if nothing was being recorded.
func (r *Recorder) Finish() (Recording, bool) {
	if !r.active {
		return Recording{}, false
	}
	r.active = false

	snap := r.game.Snapshot()
	rec := r.rec
	rec.Ticks = snap.Tick
	rec.FinalScore = snap.Score
	rec.Cheated = snap.Cheated
	rec.RecordedAt = time.Now().UTC()
	return rec, true
}

// Play rebuilds the recorded run and applies its inputs tick by tick.
// It stops at the recorded tick count or when the run ends.
func Play(rec Recording) (*snake.Game, error) {
	if err := rec.validate(); err != nil {
		return nil, err
	}

	g := snake.New(rec.Options())
	next := 0
	for {
		for next < len(rec.Inputs) && rec.Inputs[next].Tick == g.Tick() {
			g.SubmitDirection(rec.Inputs[next].Dir)
			next++
		}
		if g.Tick() >= rec.Ticks || g.Phase() != snake.PhaseRunning {
			break
		}
		g.Step()
	}
	return g, nil
}

// Verify replays a recording and checks it reproduces the recorded score
// and tick count.
func Verify(rec Recording) error {
	if rec.Cheated {
		return ErrCheated
	}
	g, err := Play(rec)
	if err != nil {
		return err
	}
	snap := g.Snapshot()
	if snap.Score != rec.FinalScore || snap.Tick != rec.Ticks {
		return fmt.Errorf("%w: replayed score %d after %d ticks, recorded %d after %d",
			ErrMismatch, snap.Score, snap.Tick, rec.FinalScore, rec.Ticks)
	}
	return nil
}
