package snake

import (
	"fmt"
	"math/rand"
)

// initMode selects the RNG stream and countdown for the run's mode.
func (g *Game) initMode() {
	g.timeLeft = 0
	g.daily = 0
	switch g.mode {
	case ModeDaily:
		g.daily = g.opts.DailySeed
		if g.daily == 0 {
			g.daily = DailySeed(g.opts.now())
		}
		g.rng = NewSeeded(g.daily)
	case ModeTimed:
		g.timeLeft = g.rules.TimedSeconds
		g.rng = rand.New(rand.NewSource(g.runSeed))
	default:
		g.rng = rand.New(rand.NewSource(g.runSeed))
	}
}

// countdown charges one tick against the timed-mode clock and
// reports whether time has run out.
func (g *Game) countdown() bool {
	if g.mode != ModeTimed {
		return false
	}
	g.timeLeft = max(0, g.timeLeft-1/g.TickRate())
	return g.timeLeft <= 0
}

// TimeLeft returns the remaining countdown in seconds (timed mode only).
func (g *Game) TimeLeft() float64 {
	return g.timeLeft
}

// FormatClock renders seconds as MM:SS using the floor of the value.
func FormatClock(seconds float64) string {
	total := max(0, int(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
