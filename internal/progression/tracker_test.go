package progression

import "testing"

func TestLevelDerivedFromXP(t *testing.T) {
	tr := NewTracker(0)

	awards := []int{0, 5, 10, 20, 50, 5, 50, 10, 20, 50}
	total := 0
	for _, a := range awards {
		if _, err := tr.Award(a, 0); err != nil {
			t.Fatalf("Award(%d): %v", a, err)
		}
		total += a
		wantLevel := total/LevelThreshold + 1
		if tr.Level() != wantLevel {
			t.Fatalf("after %d xp: Level() = %d, want %d", total, tr.Level(), wantLevel)
		}
	}
	if tr.XP() != total {
		t.Errorf("XP() = %d, want %d", tr.XP(), total)
	}
}

func TestNegativeAwardRejected(t *testing.T) {
	tr := NewTracker(3)
	if _, err := tr.Award(-5, 0); err == nil {
		t.Fatal("expected error for negative award")
	}
	if tr.XP() != 0 {
		t.Errorf("XP changed after rejected award: %d", tr.XP())
	}
	if tr.Completed(0) {
		t.Error("slide marked complete after rejected award")
	}
}

func TestCompletionIdempotent(t *testing.T) {
	tr := NewTracker(0)

	tr.Award(10, 4)
	if !tr.Completed(4) {
		t.Fatal("slide 4 should be complete after award of 10")
	}
	tr.Award(50, 4)
	tr.Award(10, 4)
	if tr.CompletedCount() != 1 {
		t.Errorf("CompletedCount() = %d, want 1", tr.CompletedCount())
	}
	// XP still accumulates on repeat awards.
	if tr.XP() != 70 {
		t.Errorf("XP() = %d, want 70", tr.XP())
	}
}

func TestSmallAwardDoesNotComplete(t *testing.T) {
	tr := NewTracker(0)
	tr.Award(5, 2)
	if tr.Completed(2) {
		t.Error("award of 5 must not mark slide complete")
	}
	tr.Award(9, 2)
	if tr.Completed(2) {
		t.Error("award of 9 must not mark slide complete")
	}
}

func TestCelebrationSignal(t *testing.T) {
	tr := NewTracker(0)
	if c, _ := tr.Award(0, 0); c {
		t.Error("zero award must not celebrate")
	}
	if c, _ := tr.Award(5, 0); !c {
		t.Error("positive award must celebrate")
	}
}

func TestLevelProgress(t *testing.T) {
	tr := NewTracker(0)
	tr.Award(50, 0)
	if got := tr.LevelProgress(); got != 0.5 {
		t.Errorf("LevelProgress() = %v, want 0.5", got)
	}
	tr.Award(50, 1)
	if got := tr.LevelProgress(); got != 0.0 {
		t.Errorf("LevelProgress() at level boundary = %v, want 0", got)
	}
	if tr.Level() != 2 {
		t.Errorf("Level() = %d, want 2", tr.Level())
	}
}

func TestNegativeStartingStreakClamped(t *testing.T) {
	if s := NewTracker(-1).Streak(); s != 0 {
		t.Errorf("Streak() = %d, want 0", s)
	}
}
