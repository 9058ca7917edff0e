package snake

import "github.com/zyedidia/generic/mapset"

// spawnFood places the food on a free cell.
func (g *Game) spawnFood() {
	g.food = g.randomFreeCell()
	g.hasFood = true
}

// initObstacles rebuilds the obstacle set when obstacles are enabled.
// The count is floor(area * density).
func (g *Game) initObstacles() {
	g.obstacles = mapset.New[Point]()
	if !g.grid.Obstacles {
		return
	}
	count := int(float64(g.grid.Area()) * g.rules.ObstacleDensity)
	for range count {
		g.obstacles.Put(g.randomFreeCell())
	}
}

// maybeSpawnSpecial rolls for a special item when none is present.
func (g *Game) maybeSpawnSpecial() {
	if g.special != nil {
		return
	}
	if g.rng.Float64() < g.rules.SpecialChance {
		g.spawnSpecial()
	}
}

// spawnSpecial draws the kind, then the cell, then the ttl.
func (g *Game) spawnSpecial() {
	kind := SpecialPortal
	if g.rng.Float64() < 0.5 {
		kind = SpecialGolden
	}
	pos := g.randomFreeCell()
	ttl := between(g.rng, g.rules.SpecialTTLMin, g.rules.SpecialTTLMax)
	g.placeSpecial(Special{Kind: kind, Pos: pos, TTL: ttl})
}

func (g *Game) placeSpecial(s Special) {
	g.special = &s
	g.emit(SpecialSpawned{Special: s})
}

// Food returns the food position and whether food is on the board.
func (g *Game) Food() (Point, bool) {
	return g.food, g.hasFood
}

// Obstacles returns the obstacle cells.
func (g *Game) Obstacles() []Point {
	out := make([]Point, 0, g.obstacles.Size())
	g.obstacles.Each(func(p Point) {
		out = append(out, p)
	})
	sortPoints(out)
	return out
}
