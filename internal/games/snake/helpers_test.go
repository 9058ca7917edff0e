package snake

import (
	"testing"
	"time"

	"github.com/tggbb/SnakeNeo/internal/core"
)

// scriptedRNG replays a fixed list of draws, cycling when exhausted.
type scriptedRNG struct {
	vals []float64
	i    int
}

func (s *scriptedRNG) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

var testDay = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

// newTestGame builds a 28x22 game with a fixed seed and a fixed calendar date.
func newTestGame(t *testing.T, mode Mode, mutate func(*Options)) *Game {
	t.Helper()
	opts := DefaultOptions(mode)
	opts.Seed = 42
	opts.Now = func() time.Time { return testDay }
	if mutate != nil {
		mutate(&opts)
	}
	return New(opts)
}

// place puts the game into Running with the given body, heading and food,
// and removes any special item and pending events.
func place(g *Game, body []Point, dir Direction, food Point) {
	g.snake = append([]Point(nil), body...)
	g.dir = dir
	g.queue = nil
	g.food = food
	g.hasFood = true
	g.special = nil
	g.phase = PhaseRunning
	g.Events()
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func inputNone() core.InputFrame {
	return core.NewInputFrame()
}
