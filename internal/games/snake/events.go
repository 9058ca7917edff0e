package snake

// Event is a notification for collaborators such as persistence and audio.
// Events queue up until drained with Events.
type Event interface {
	event()
}

// ScoreChanged reports a new score.
type ScoreChanged struct {
	Score int
}

// FoodEaten reports regular food consumption.
type FoodEaten struct {
	Pos Point
}

// SpecialSpawned reports a special item appearing.
type SpecialSpawned struct {
	Special Special
}

// SpecialConsumed reports a special item being eaten. Head is the head
// position after the effect, which differs from the item for portals.
type SpecialConsumed struct {
	Special Special
	Head    Point
}

// SpecialExpired reports a special item timing out.
type SpecialExpired struct {
	Special Special
}

// AchievementUnlocked reports a one-shot unlock.
type AchievementUnlocked struct {
	ID   string
	Name string
}

// GameOver reports the end of a run.
type GameOver struct {
	Mode       Mode
	FinalScore int
	Best       int
	NewBest    bool
	Cause      Cause
	Ticks      uint64
	Cheated    bool
}

func (ScoreChanged) event() {}
func (FoodEaten) event() {}
func (SpecialSpawned) event() {}
func (SpecialConsumed) event() {}
func (SpecialExpired) event() {}
func (AchievementUnlocked) event() {}
func (GameOver) event() {}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Events drains and returns the pending events in emission order.
func (g *Game) Events() []Event {
	out := g.events
	g.events = nil
	return out
}
