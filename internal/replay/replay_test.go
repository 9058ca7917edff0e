package replay

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tggbb/SnakeNeo/internal/games/snake"
)

var testDay = time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

func newGame(mode snake.Mode, mutate func(*snake.Options)) *snake.Game {
	opts := snake.DefaultOptions(mode)
	opts.Seed = 42
	opts.Now = func() time.Time { return testDay }
	if mutate != nil {
		mutate(&opts)
	}
	return snake.New(opts)
}

// steer heads greedily for the food without reversing.
func steer(s snake.Snapshot) snake.Direction {
	h := s.Head()
	var d snake.Direction
	switch {
	case s.Food.X > h.X:
		d = snake.DirRight
	case s.Food.X < h.X:
		d = snake.DirLeft
	case s.Food.Y > h.Y:
		d = snake.DirDown
	default:
		d = snake.DirUp
	}
	if d == s.Heading.Opposite() {
		if d == snake.DirLeft || d == snake.DirRight {
			return snake.DirUp
		}
		return snake.DirLeft
	}
	return d
}

// drive plays up to maxTicks ticks through the recorder.
func drive(g *snake.Game, rec *Recorder, maxTicks int) {
	rec.Submit(snake.DirUp)
	for i := 0; i < maxTicks && g.Phase() != snake.PhaseGameOver; i++ {
		snap := g.Snapshot()
		if d := steer(snap); d != snap.Heading {
			rec.Submit(d)
		}
		g.Step()
	}
}

func TestRecordAndVerify(t *testing.T) {
	g := newGame(snake.ModeClassic, nil)
	rec := NewRecorder(g)
	rec.Start()
	if !rec.Active() {
		t.Fatal("recorder should be active on an idle run")
	}

	drive(g, rec, 200)

	r, ok := rec.Finish()
	if !ok {
		t.Fatal("Finish() reported nothing recorded")
	}
	if r.FinalScore < 1 {
		t.Fatalf("expected the greedy run to score, got %d", r.FinalScore)
	}
	if r.Seed != 42 || r.Mode != snake.ModeClassic {
		t.Errorf("unexpected header: seed %d mode %s", r.Seed, r.Mode)
	}
	if len(r.Inputs) == 0 || r.Inputs[0].Tick != 0 || r.Inputs[0].Dir != snake.DirUp {
		t.Errorf("unexpected first input: %+v", r.Inputs)
	}

	if err := Verify(r); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}

	replayed, err := Play(r)
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	got, want := replayed.Snapshot(), g.Snapshot()
	if got.Head() != want.Head() || got.Length() != want.Length() || got.Food != want.Food {
		t.Errorf("replayed state differs: head %v/%v length %d/%d food %v/%v",
			got.Head(), want.Head(), got.Length(), want.Length(), got.Food, want.Food)
	}

	if _, ok := rec.Finish(); ok {
		t.Error("second Finish() should report nothing recorded")
	}
}

func TestVerifyAfterRestart(t *testing.T) {
	g := newGame(snake.ModeClassic, nil)
	rec := NewRecorder(g)

	rec.Start()
	drive(g, rec, 30)
	rec.Finish()

	g.Restart(snake.RestartSoft)
	rec.Start()
	drive(g, rec, 150)

	r, _ := rec.Finish()
	if r.Seed == 42 {
		t.Error("restarted run should carry its own seed")
	}
	if err := Verify(r); err != nil {
		t.Fatalf("Verify() after restart failed: %v", err)
	}
}

func TestVerifyIgnoresPauses(t *testing.T) {
	g := newGame(snake.ModeClassic, nil)
	rec := NewRecorder(g)
	rec.Start()

	rec.Submit(snake.DirDown)
	for i := 0; i < 20; i++ {
		g.Step()
	}
	g.Pause()
	if rec.Submit(snake.DirLeft) {
		t.Error("directions should be rejected while paused")
	}
	g.Resume()
	rec.Submit(snake.DirLeft)
	for i := 0; i < 10; i++ {
		g.Step()
	}

	r, _ := rec.Finish()
	if len(r.Inputs) != 2 {
		t.Fatalf("expected 2 recorded inputs, got %d", len(r.Inputs))
	}
	if r.Inputs[1].Tick != 20 {
		t.Errorf("second input tick = %d, want 20", r.Inputs[1].Tick)
	}
	if err := Verify(r); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
}

func TestVerifyDaily(t *testing.T) {
	g := newGame(snake.ModeDaily, nil)
	rec := NewRecorder(g)
	rec.Start()
	drive(g, rec, 150)

	r, _ := rec.Finish()
	if r.DailySeed != 20261016 {
		t.Errorf("DailySeed = %d, want 20261016", r.DailySeed)
	}
	if r.Seed != 0 {
		t.Errorf("daily recordings should not carry a run seed, got %d", r.Seed)
	}
	if err := Verify(r); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
}

func TestVerifyTimed(t *testing.T) {
	g := newGame(snake.ModeTimed, func(o *snake.Options) {
		o.Rules.TimedSeconds = 2
	})
	rec := NewRecorder(g)
	rec.Start()
	drive(g, rec, 1000)

	if g.Phase() != snake.PhaseGameOver {
		t.Fatal("timed run should end on its own")
	}
	r, _ := rec.Finish()
	if err := Verify(r); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	g := newGame(snake.ModeClassic, nil)
	rec := NewRecorder(g)
	rec.Start()
	drive(g, rec, 100)
	r, _ := rec.Finish()

	tests := []struct {
		name   string
		mutate func(*Recording)
		want   error
	}{
		{name: "score", mutate: func(r *Recording) { r.FinalScore += 5 }, want: ErrMismatch},
		{name: "cheated", mutate: func(r *Recording) { r.Cheated = true }, want: ErrCheated},
		{name: "version", mutate: func(r *Recording) { r.Version = 0 }, want: ErrInvalid},
		{name: "missing seed", mutate: func(r *Recording) { r.Seed = 0 }, want: ErrInvalid},
		{name: "unknown mode", mutate: func(r *Recording) { r.Mode = "arcade" }, want: ErrInvalid},
		{
			name: "inputs out of order",
			mutate: func(r *Recording) {
				r.Inputs = []Input{{Tick: 5, Dir: snake.DirUp}, {Tick: 2, Dir: snake.DirLeft}}
			},
			want: ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := r
			bad.Inputs = append([]Input(nil), r.Inputs...)
			tt.mutate(&bad)
			if err := Verify(bad); !errors.Is(err, tt.want) {
				t.Errorf("Verify() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCheatedRunIsFlagged(t *testing.T) {
	g := newGame(snake.ModeClassic, nil)
	rec := NewRecorder(g)
	rec.Start()
	rec.Submit(snake.DirUp)
	g.ApplyCheat(snake.CheatAddScore)

	r, _ := rec.Finish()
	if !r.Cheated {
		t.Fatal("recording should be flagged as cheated")
	}
	if err := Verify(r); !errors.Is(err, ErrCheated) {
		t.Errorf("Verify() = %v, want ErrCheated", err)
	}
}

func TestStartOnRunningGame(t *testing.T) {
	g := newGame(snake.ModeClassic, nil)
	g.SubmitDirection(snake.DirUp)

	rec := NewRecorder(g)
	rec.Start()
	if rec.Active() {
		t.Error("recorder should not be active on a run already in progress")
	}
	if !rec.Submit(snake.DirLeft) {
		t.Error("Submit() should still forward directions")
	}
	if _, ok := rec.Finish(); ok {
		t.Error("Finish() should report nothing recorded")
	}
}

func TestSaveLoad(t *testing.T) {
	g := newGame(snake.ModeClassic, nil)
	rec := NewRecorder(g)
	rec.Start()
	drive(g, rec, 80)
	r, _ := rec.Finish()

	path := filepath.Join(t.TempDir(), "replays", "run.snr")
	if err := Save(path, r); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.FinalScore != r.FinalScore || loaded.Ticks != r.Ticks || len(loaded.Inputs) != len(r.Inputs) {
		t.Errorf("loaded recording differs: %+v", loaded)
	}
	if loaded.Settings != r.Settings || loaded.Rules != r.Rules {
		t.Error("configuration did not survive encoding")
	}
	if err := Verify(loaded); err != nil {
		t.Errorf("Verify(loaded) failed: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.snr")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Decode([]byte{0xc1}); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for garbage, got %v", err)
	}
}
