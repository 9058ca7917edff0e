package snake

import (
	"fmt"
	"strings"

	"github.com/tggbb/SnakeNeo/internal/core"
)

// Cheat is an admin runtime control. Applying any cheat marks the run as cheated.
type Cheat string

const (
	CheatAddScore     Cheat = "add-score"
	CheatGrow         Cheat = "grow"
	CheatShrink       Cheat = "shrink"
	CheatTeleportFood Cheat = "teleport-food"
	CheatSpawnGolden  Cheat = "spawn-golden"
	CheatSpawnPortal  Cheat = "spawn-portal"
	CheatToggleGod    Cheat = "god"
	CheatToggleWrap   Cheat = "wrap"
	CheatObstacles    Cheat = "obstacles"
	CheatSpeedUp      Cheat = "speed-up"
	CheatSpeedDown    Cheat = "speed-down"
)

// Cheats returns every cheat.
func Cheats() []Cheat {
	return []Cheat{
		CheatAddScore, CheatGrow, CheatShrink, CheatTeleportFood,
		CheatSpawnGolden, CheatSpawnPortal, CheatToggleGod, CheatToggleWrap,
		CheatObstacles, CheatSpeedUp, CheatSpeedDown,
	}
}

// ParseCheat converts a cheat name.
func ParseCheat(s string) (Cheat, error) {
	c := Cheat(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Cheats() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("snake: unknown cheat %q", s)
}

// speedStep is the multiplier change of one speed cheat.
const speedStep = 0.25

// ApplyCheat runs an admin control. Cheats are ignored once the run is over.
// It reports whether the cheat was applied.
func (g *Game) ApplyCheat(c Cheat) bool {
	if g.phase == PhaseGameOver {
		return false
	}

	switch c {
	case CheatAddScore:
		g.score += g.rules.CheatScore
		g.emit(ScoreChanged{Score: g.score})
	case CheatGrow:
		tail := g.snake[len(g.snake)-1]
		for range 3 {
			g.snake = append(g.snake, tail)
		}
	case CheatShrink:
		for i := 0; i < 3 && len(g.snake) > g.rules.InitialLength; i++ {
			g.snake = g.snake[:len(g.snake)-1]
		}
	case CheatTeleportFood:
		if !g.hasFood {
			return false
		}
		g.snake[0] = g.food
	case CheatSpawnGolden:
		g.placeSpecial(Special{Kind: SpecialGolden, Pos: g.randomFreeCell(), TTL: g.rules.CheatSpecialTTL})
	case CheatSpawnPortal:
		g.placeSpecial(Special{Kind: SpecialPortal, Pos: g.randomFreeCell(), TTL: g.rules.CheatSpecialTTL})
	case CheatToggleGod:
		g.god = !g.god
	case CheatToggleWrap:
		g.grid.Wrap = !g.grid.Wrap
	case CheatObstacles:
		g.grid.Obstacles = !g.grid.Obstacles
		g.initObstacles()
	case CheatSpeedUp:
		g.setSpeedMultiplier(g.speedMul + speedStep)
	case CheatSpeedDown:
		g.setSpeedMultiplier(g.speedMul - speedStep)
	default:
		return false
	}

	g.cheated = true
	return true
}

// SetSpeedMultiplier sets the multiplier, clamped to [0.25, 4]. It counts as a cheat.
func (g *Game) SetSpeedMultiplier(m float64) {
	if g.phase == PhaseGameOver {
		return
	}
	g.setSpeedMultiplier(m)
	g.cheated = true
}

func (g *Game) setSpeedMultiplier(m float64) {
	g.speedMul = core.ClampF(m, MinSpeedMultiplier, MaxSpeedMultiplier)
}

// God reports whether collisions are suppressed.
func (g *Game) God() bool {
	return g.god
}

// Cheated reports whether any cheat was used this run.
func (g *Game) Cheated() bool {
	return g.cheated
}
