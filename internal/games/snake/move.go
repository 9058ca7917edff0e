package snake

// Step applies exactly one tick. It is a no-op unless the run is Running.
func (g *Game) Step() {
	if g.phase != PhaseRunning || len(g.snake) == 0 {
		return
	}
	g.tick++

	// Apply one buffered turn
	if len(g.queue) > 0 {
		g.dir = g.queue[0]
		g.queue = g.queue[1:]
	}

	head := g.snake[0].Add(g.dir.Delta())
	if g.grid.Wrap || g.god {
		head = g.grid.WrapPoint(head)
	}

	onFood := g.hasFood && head == g.food
	onSpecial := g.special != nil && head == g.special.Pos
	if cause, hit := g.collision(head, onFood || onSpecial); hit && !g.god {
		g.endRun(cause)
		return
	}

	g.snake = append(g.snake, Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = head

	switch {
	case onFood:
		g.eatFood()
	case onSpecial:
		g.consumeSpecial()
	default:
		g.snake = g.snake[:len(g.snake)-1]
	}

	g.decaySpecial()
	g.evaluateAchievements()

	if g.countdown() {
		g.endRun(CauseTimeUp)
	}
}

// collision checks the new head against the board edge, the body and the
// obstacles, in that order. The tail is only a hazard when it stays put.
func (g *Game) collision(head Point, tailStays bool) (Cause, bool) {
	if !g.grid.InBounds(head) {
		return CauseWall, true
	}

	body := g.snake
	if !tailStays {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == head {
			return CauseSelf, true
		}
	}

	if g.grid.Obstacles && g.obstacles.Has(head) {
		return CauseObstacle, true
	}
	return "", false
}

// eatFood scores the food under the head, rolls for a special and respawns the food.
func (g *Game) eatFood() {
	g.score += g.rules.FoodPoints
	g.emit(FoodEaten{Pos: g.food})
	g.emit(ScoreChanged{Score: g.score})
	g.maybeSpawnSpecial()
	g.spawnFood()
}

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []Point {
	out := make([]Point, len(g.snake))
	copy(out, g.snake)
	return out
}

// Head returns the head position.
func (g *Game) Head() Point {
	if len(g.snake) == 0 {
		return Point{}
	}
	return g.snake[0]
}

// Heading returns the direction applied on the last tick.
func (g *Game) Heading() Direction {
	return g.dir
}

// Tick returns the number of ticks applied in the current run.
func (g *Game) Tick() uint64 {
	return g.tick
}
