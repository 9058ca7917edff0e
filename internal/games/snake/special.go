package snake

// SpecialKind identifies a special item.
type SpecialKind string

const (
	SpecialGolden SpecialKind = "golden"
	SpecialPortal SpecialKind = "portal"
)

// Special is a time-limited bonus item.
type Special struct {
	Kind SpecialKind
	Pos  Point
	TTL  int // remaining ticks
}

// consumeSpecial resolves the item under the head. The tail stays this tick.
// A portal moves the head next to the food without collision checks.
func (g *Game) consumeSpecial() {
	s := *g.special
	g.special = nil

	switch s.Kind {
	case SpecialGolden:
		g.score += g.rules.GoldenBonus
		g.goldenEaten = true
		g.emit(ScoreChanged{Score: g.score})
	case SpecialPortal:
		g.portalUsed = true
		j := g.rules.PortalJitter
		target := Point{
			X: g.food.X + between(g.rng, -j, j),
			Y: g.food.Y + between(g.rng, -j, j),
		}
		g.snake[0] = g.grid.ClampPoint(target)
	}
	g.emit(SpecialConsumed{Special: s, Head: g.snake[0]})
}

// decaySpecial counts down the item's ttl and clears it at zero.
func (g *Game) decaySpecial() {
	if g.special == nil {
		return
	}
	g.special.TTL--
	if g.special.TTL <= 0 {
		expired := *g.special
		g.special = nil
		g.emit(SpecialExpired{Special: expired})
	}
}

// CurrentSpecial returns a copy of the special item, if any.
func (g *Game) CurrentSpecial() (Special, bool) {
	if g.special == nil {
		return Special{}, false
	}
	return *g.special, true
}
