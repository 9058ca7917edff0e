package snake

import "testing"

func unlockIDs(events []Event) []string {
	var ids []string
	for _, e := range events {
		if u, ok := e.(AchievementUnlocked); ok {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

func TestFirstBiteIdempotent(t *testing.T) {
	g := newTestGame(t, ModeClassic, nil)
	place(g, []Point{{13, 11}, {12, 11}, {11, 11}}, DirRight, Point{14, 11})

	g.Step()
	ids := unlockIDs(g.Events())
	if len(ids) != 1 || ids[0] != AchFirstBite {
		t.Fatalf("unlocks = %v, expected [first-bite]", ids)
	}

	for i := 0; i < 5; i++ {
		g.food = g.Head().Add(Point{X: 1})
		g.special = nil
		g.Step()
		if got := unlockIDs(g.Events()); len(got) != 0 {
			t.Fatalf("tick %d re-emitted unlocks %v", i, got)
		}
	}
	if g.score != 6 {
		t.Errorf("score = %d, expected 6", g.score)
	}
}

func TestUnlocksSurviveRestart(t *testing.T) {
	g := newTestGame(t, ModeClassic, nil)
	place(g, []Point{{13, 11}, {12, 11}, {11, 11}}, DirRight, Point{14, 11})
	g.Step()
	g.Events()

	g.Restart(RestartFull)
	place(g, []Point{{13, 11}, {12, 11}, {11, 11}}, DirRight, Point{14, 11})
	g.Step()

	if ids := unlockIDs(g.Events()); len(ids) != 0 {
		t.Errorf("restart re-emitted %v", ids)
	}
}

func TestPrimedAchievementsAreSilent(t *testing.T) {
	g := newTestGame(t, ModeClassic, nil)
	g.PrimeAchievements([]string{AchFirstBite})
	place(g, []Point{{13, 11}, {12, 11}, {11, 11}}, DirRight, Point{14, 11})

	g.Step()

	if ids := unlockIDs(g.Events()); len(ids) != 0 {
		t.Errorf("primed achievement re-emitted: %v", ids)
	}
}

func TestTenAndFast(t *testing.T) {
	g := newTestGame(t, ModeClassic, nil)
	g.PrimeAchievements([]string{AchFirstBite})
	place(g, []Point{{13, 11}, {12, 11}, {11, 11}}, DirRight, Point{1, 1})
	g.score = 10
	g.SetSpeedMultiplier(2)

	g.Step()

	ids := unlockIDs(g.Events())
	if len(ids) != 2 || ids[0] != AchTen || ids[1] != AchFast {
		t.Errorf("unlocks = %v, expected [ten fast]", ids)
	}
	if got := g.UnlockedIDs(); len(got) != 3 {
		t.Errorf("UnlockedIDs() = %v, expected three ids", got)
	}
}

func TestAchievementsEvaluatedOnlyOnTicks(t *testing.T) {
	g := newTestGame(t, ModeClassic, nil)
	g.SubmitDirection(DirUp)
	g.ApplyCheat(CheatAddScore)

	if ids := unlockIDs(g.Events()); len(ids) != 0 {
		t.Errorf("unlocks before any tick: %v", ids)
	}
}

func TestLookupAchievement(t *testing.T) {
	a, ok := LookupAchievement(AchGold)
	if !ok || a.Name != "Golden Touch" {
		t.Errorf("LookupAchievement(gold) = %+v, %v", a, ok)
	}
	if _, ok := LookupAchievement("nope"); ok {
		t.Error("LookupAchievement(nope) should fail")
	}
	if n := len(Achievements()); n != 5 {
		t.Errorf("catalogue size = %d, expected 5", n)
	}
}
