// Package snake implements the SnakeNeo simulation: a tick-stepped snake on a
// discrete grid with food, golden and portal specials, obstacles, three game
// modes and one-shot achievements. It has no terminal or storage dependencies;
// hosts drive it with commands and elapsed time and read snapshots and events.
package snake

import (
	"math/rand"
	"time"

	"github.com/tggbb/SnakeNeo/internal/config"
	"github.com/tggbb/SnakeNeo/internal/core"
	"github.com/tggbb/SnakeNeo/internal/registry"
	"github.com/zyedidia/generic/mapset"
)

// Game implements one SnakeNeo session. A session holds consecutive runs;
// each restart replaces all run state.
type Game struct {
	opts Options // pending options, applied on full restart

	// Effective configuration of the current run
	mode      Mode
	grid      GridConfig
	baseSpeed int
	rules     config.Rules
	speedMul  float64

	// Randomness
	seeds   *rand.Rand // draws run seeds for the ambient stream
	runSeed int64      // ambient seed of the current run
	daily   uint32     // daily seed of the current run
	rng     RNG        // active stream

	// Run state
	phase     Phase
	tick      uint64
	snake     []Point // Head at index 0
	dir       Direction
	queue     []Direction
	food      Point
	hasFood   bool
	special   *Special
	obstacles mapset.Set[Point]
	score     int
	best      int
	timeLeft  float64
	acc       time.Duration

	// Flags
	god         bool
	cheated     bool
	goldenEaten bool
	portalUsed  bool

	unlocked mapset.Set[string]
	events   []Event

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a game in the Idle state of its first run.
func New(opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	g := &Game{
		opts:     opts,
		seeds:    NewAmbient(opts.Seed),
		runSeed:  opts.Seed,
		unlocked: mapset.New[string](),
		screenW:  core.DefaultConfig().ScreenW,
		screenH:  core.DefaultConfig().ScreenH,
	}
	g.startRun(true)
	return g
}

func init() {
	for _, m := range Modes() {
		mode := m
		info := registry.Info{ID: string(mode), Title: mode.Title(), Description: mode.Description()}
		registry.Register(info, func() registry.Game {
			return New(DefaultOptions(mode))
		})
	}
}

// startRun reinitializes all run state. A full start applies the pending
// options and resets the speed multiplier to its configured value; a soft start keeps the
// effective configuration of the previous run.
func (g *Game) startRun(full bool) {
	if full {
		g.mode = g.opts.Mode
		g.grid = g.opts.Grid
		g.baseSpeed = g.opts.BaseSpeed
		g.rules = g.opts.Rules
		g.speedMul = 1
		if g.opts.SpeedMul > 0 {
			g.setSpeedMultiplier(g.opts.SpeedMul)
		}
	}

	g.phase = PhaseIdle
	g.tick = 0
	g.acc = 0
	g.score = 0
	g.special = nil
	g.hasFood = false
	g.god = false
	g.cheated = false
	g.goldenEaten = false
	g.portalUsed = false

	g.initSnake()
	g.initMode()
	g.initObstacles()
	g.spawnFood()
}

// initSnake lays the snake out left of the board center, heading right.
func (g *Game) initSnake() {
	cx := g.grid.Width / 2
	cy := g.grid.Height / 2
	g.snake = make([]Point, 0, g.rules.InitialLength)
	for i := range g.rules.InitialLength {
		g.snake = append(g.snake, Point{X: cx - 1 - i, Y: cy})
	}
	g.dir = DirRight
	g.queue = g.queue[:0]
}

// ID returns the identifier of the current mode.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake Neo: " + g.mode.Title()
}

// Reset adopts the host's screen size and RNG seed and performs a full restart.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	if cfg.Seed != 0 {
		g.opts.Seed = cfg.Seed
		g.seeds = NewAmbient(cfg.Seed)
		g.runSeed = cfg.Seed
		g.startRun(true)
		return
	}
	g.Restart(RestartFull)
}

// Resize updates the screen dimensions used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Advance applies one host frame: commands from the input frame in arrival
// order, then dt of simulated time.
func (g *Game) Advance(in core.InputFrame, dt time.Duration) core.StepResult {
	g.HandleInput(in)
	ticks := g.Update(dt)
	return core.StepResult{State: g.State(), Ticks: ticks}
}

// HandleInput translates platform actions into commands.
func (g *Game) HandleInput(in core.InputFrame) {
	for _, a := range in.Sequence {
		switch a {
		case core.ActionRestart:
			g.Restart(RestartFull)
		case core.ActionSoftRestart:
			g.Restart(RestartSoft)
		case core.ActionPause:
			g.TogglePause()
		case core.ActionCycleMode:
			g.SetMode(g.mode.Next())
		default:
			if d, ok := DirectionFromAction(a); ok {
				g.SubmitDirection(d)
			}
		}
	}
}

// State returns the platform-level view of the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     max(g.best, g.score),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
		Started:  g.phase != PhaseIdle,
	}
}

// Mode returns the mode of the current run.
func (g *Game) Mode() Mode {
	return g.mode
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Best returns the best-score candidate: the larger of the primed best and any score seen.
func (g *Game) Best() int {
	return max(g.best, g.score)
}

// SetBest primes the best score, typically from persisted storage.
func (g *Game) SetBest(best int) {
	g.best = max(g.best, best)
}

// Options returns the pending options.
func (g *Game) Options() Options {
	return g.opts
}
