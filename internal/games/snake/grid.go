package snake

import (
	"github.com/tggbb/SnakeNeo/internal/core"
	"github.com/zyedidia/generic/mapset"
)

// Point is a cell coordinate on the board.
type Point struct {
	X, Y int
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// GridConfig describes the board. It is fixed for the duration of a run.
type GridConfig struct {
	Width     int
	Height    int
	Wrap      bool
	Obstacles bool
}

// InBounds reports whether p lies within [0,Width)x[0,Height).
func (c GridConfig) InBounds(p Point) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
}

// WrapPoint folds p back onto the board modulo its dimensions.
func (c GridConfig) WrapPoint(p Point) Point {
	return Point{X: core.Wrap(p.X, c.Width), Y: core.Wrap(p.Y, c.Height)}
}

// ClampPoint moves p to the nearest cell on the board.
func (c GridConfig) ClampPoint(p Point) Point {
	return Point{X: core.Clamp(p.X, 0, c.Width-1), Y: core.Clamp(p.Y, 0, c.Height-1)}
}

// Area returns the number of cells on the board.
func (c GridConfig) Area() int {
	return c.Width * c.Height
}

// occupancy collects every cell held by the snake, an obstacle, the food or the special item.
func (g *Game) occupancy() mapset.Set[Point] {
	occ := mapset.New[Point]()
	for _, seg := range g.snake {
		occ.Put(seg)
	}
	g.obstacles.Each(func(p Point) {
		occ.Put(p)
	})
	if g.hasFood {
		occ.Put(g.food)
	}
	if g.special != nil {
		occ.Put(g.special.Pos)
	}
	return occ
}

// IsFree reports whether p is on the board and not occupied.
func (g *Game) IsFree(p Point) bool {
	if !g.grid.InBounds(p) {
		return false
	}
	return !g.occupancy().Has(p)
}

// randomFreeCell samples the active RNG for an unoccupied cell.
// After the configured number of attempts it settles for (0, 0).
func (g *Game) randomFreeCell() Point {
	occ := g.occupancy()
	for range g.rules.FreeCellAttempts {
		p := Point{
			X: intn(g.rng, g.grid.Width),
			Y: intn(g.rng, g.grid.Height),
		}
		if !occ.Has(p) {
			return p
		}
	}
	return Point{}
}
