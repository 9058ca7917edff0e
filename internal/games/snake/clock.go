package snake

import "time"

// maxFrameDelta bounds the time a single host frame can contribute,
// so a stalled host does not replay seconds of ticks at once.
const maxFrameDelta = 250 * time.Millisecond

// Speed multiplier bounds.
const (
	MinSpeedMultiplier = 0.25
	MaxSpeedMultiplier = 4.0
)

// TickRate returns ticks per second: base speed times multiplier, at least 1.
func (g *Game) TickRate() float64 {
	return max(1, float64(g.baseSpeed)*g.speedMul)
}

// TickInterval returns the simulated duration of one tick.
func (g *Game) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / g.TickRate())
}

// SpeedMultiplier returns the current speed multiplier.
func (g *Game) SpeedMultiplier() float64 {
	return g.speedMul
}

// Update feeds elapsed wall-clock time into the fixed-step accumulator and
// applies as many whole ticks as fit. Time only accumulates while Running.
// It returns the number of ticks applied.
func (g *Game) Update(dt time.Duration) int {
	if g.phase != PhaseRunning {
		g.acc = 0
		return 0
	}
	g.acc += min(max(dt, 0), maxFrameDelta)

	step := g.TickInterval()
	ticks := 0
	for g.acc >= step && g.phase == PhaseRunning {
		g.Step()
		g.acc -= step
		ticks++
	}
	if g.phase != PhaseRunning {
		g.acc = 0
	}
	return ticks
}
