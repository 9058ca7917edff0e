package snake

import "slices"

// Achievement describes a one-shot unlock.
type Achievement struct {
	ID          string
	Name        string
	Description string
	met         func(*Game) bool
}

// Achievement identifiers.
const (
	AchFirstBite = "first-bite"
	AchTen       = "ten"
	AchGold      = "gold"
	AchPortal    = "portal"
	AchFast      = "fast"
)

var achievements = []Achievement{
	{AchFirstBite, "First Bite", "Score at least 1 point", func(g *Game) bool { return g.score >= 1 }},
	{AchTen, "Double Digits", "Score at least 10 points", func(g *Game) bool { return g.score >= 10 }},
	{AchGold, "Golden Touch", "Eat a golden fruit", func(g *Game) bool { return g.goldenEaten }},
	{AchPortal, "Portal Pioneer", "Ride a portal", func(g *Game) bool { return g.portalUsed }},
	{AchFast, "Speed Demon", "Play a tick at 2x speed or more", func(g *Game) bool { return g.speedMul >= 2 }},
}

// Achievements returns the catalogue in display order.
func Achievements() []Achievement {
	return slices.Clone(achievements)
}

// LookupAchievement finds an achievement by id.
func LookupAchievement(id string) (Achievement, bool) {
	for _, a := range achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// evaluateAchievements unlocks every predicate that now holds.
// Unlocked ids are skipped, so each id is announced at most once per session.
func (g *Game) evaluateAchievements() {
	for _, a := range achievements {
		if g.unlocked.Has(a.ID) || !a.met(g) {
			continue
		}
		g.unlocked.Put(a.ID)
		g.emit(AchievementUnlocked{ID: a.ID, Name: a.Name})
	}
}

// PrimeAchievements marks ids as already unlocked without emitting events.
func (g *Game) PrimeAchievements(ids []string) {
	for _, id := range ids {
		g.unlocked.Put(id)
	}
}

// Unlocked reports whether an achievement id has been unlocked.
func (g *Game) Unlocked(id string) bool {
	return g.unlocked.Has(id)
}

// UnlockedIDs returns the unlocked ids in catalogue order.
func (g *Game) UnlockedIDs() []string {
	var ids []string
	for _, a := range achievements {
		if g.unlocked.Has(a.ID) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
