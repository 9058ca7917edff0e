package snake

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RestartKind selects how much configuration a restart keeps.
type RestartKind int

const (
	// RestartFull applies pending options and resets the speed multiplier.
	RestartFull RestartKind = iota
	// RestartSoft keeps speed multiplier, wrap, obstacles and grid size.
	RestartSoft
)

// Cause explains why a run ended.
type Cause string

const (
	CauseWall     Cause = "wall"
	CauseSelf     Cause = "self"
	CauseObstacle Cause = "obstacle"
	CauseTimeUp   Cause = "time_up"
)

// SubmitDirection queues a turn. A direction reversing the last queued
// heading (or the current one when the queue is empty) is dropped.
// The first accepted direction moves an Idle run to Running.
// Directions are ignored while Paused or GameOver.
// It reports whether the direction was queued.
func (g *Game) SubmitDirection(d Direction) bool {
	if g.phase == PhasePaused || g.phase == PhaseGameOver || d == DirNone {
		return false
	}
	last := g.dir
	if n := len(g.queue); n > 0 {
		last = g.queue[n-1]
	}
	if d == last.Opposite() {
		return false
	}
	g.queue = append(g.queue, d)
	if g.phase == PhaseIdle {
		g.phase = PhaseRunning
	}
	return true
}

// Pause freezes a Running run.
func (g *Game) Pause() {
	if g.phase != PhaseRunning {
		return
	}
	g.phase = PhasePaused
	g.acc = 0
}

// Resume continues a Paused run.
func (g *Game) Resume() {
	if g.phase != PhasePaused {
		return
	}
	g.phase = PhaseRunning
}

// TogglePause switches between Running and Paused.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.Pause()
	case PhasePaused:
		g.Resume()
	}
}

// Restart returns to Idle with fresh run state. It is valid in every phase.
func (g *Game) Restart(kind RestartKind) {
	g.runSeed = g.seeds.Int63()
	g.startRun(kind == RestartFull)
}

// SetMode switches mode; this always implies a full restart.
func (g *Game) SetMode(m Mode) {
	g.opts.Mode = m
	g.Restart(RestartFull)
}

// Configure replaces the pending options and performs a full restart.
// The session's ambient seed stream is kept.
func (g *Game) Configure(opts Options) {
	opts.Seed = g.opts.Seed
	g.opts = opts
	g.Restart(RestartFull)
}

// endRun moves the run to GameOver and reports the outcome.
func (g *Game) endRun(cause Cause) {
	prevBest := g.best
	g.phase = PhaseGameOver
	g.acc = 0
	g.queue = g.queue[:0]
	g.best = max(g.best, g.score)
	g.emit(GameOver{
		Mode:       g.mode,
		FinalScore: g.score,
		Best:       g.best,
		NewBest:    g.score > prevBest,
		Cause:      cause,
		Ticks:      g.tick,
		Cheated:    g.cheated,
	})
}
