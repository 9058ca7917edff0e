package snake

import (
	"cmp"
	"slices"
)

// Snapshot is a read-only copy of the run for renderers, persistence and
// determinism checks. It shares no memory with the game.
type Snapshot struct {
	Mode      Mode
	Phase     Phase
	Tick      uint64
	Grid      GridConfig
	BaseSpeed int
	SpeedMul  float64
	TickRate  float64

	Snake     []Point // Head first
	Heading   Direction
	Food      Point
	HasFood   bool
	Special   *Special
	Obstacles []Point

	Score    int
	Best     int
	TimeLeft float64 // Timed mode only

	RunSeed   int64  // ambient seed of classic and timed runs, zero in daily mode
	DailySeed uint32 // seed of daily runs
	God       bool
	Cheated   bool
}

// Snapshot returns a copy of the current run state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:      g.mode,
		Phase:     g.phase,
		Tick:      g.tick,
		Grid:      g.grid,
		BaseSpeed: g.baseSpeed,
		SpeedMul:  g.speedMul,
		TickRate:  g.TickRate(),
		Snake:     g.Snake(),
		Heading:   g.dir,
		Food:      g.food,
		HasFood:   g.hasFood,
		Obstacles: g.Obstacles(),
		Score:     g.score,
		Best:      g.Best(),
		TimeLeft:  g.timeLeft,
		RunSeed:   g.runSeed,
		DailySeed: g.daily,
		God:       g.god,
		Cheated:   g.cheated,
	}
	if g.mode == ModeDaily {
		snap.RunSeed = 0
	}
	if g.special != nil {
		s := *g.special
		snap.Special = &s
	}
	return snap
}

// Length returns the snake length.
func (s Snapshot) Length() int {
	return len(s.Snake)
}

// Head returns the head position.
func (s Snapshot) Head() Point {
	if len(s.Snake) == 0 {
		return Point{}
	}
	return s.Snake[0]
}

// sortPoints orders points row by row.
func sortPoints(pts []Point) {
	slices.SortFunc(pts, func(a, b Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}
