package progression

import "fmt"

const (
	// LevelThreshold is the experience required per level.
	LevelThreshold = 100

	// CompletionThreshold is the minimum award that marks a slide complete.
	CompletionThreshold = 10
)

// Tracker owns the learner's in-session progression: experience, streak,
// and the set of completed slides. Level is always derived from experience.
type Tracker struct {
	xp        int
	streak    int
	completed map[int]bool
}

// NewTracker creates a Tracker with zero experience and the given starting
// streak.
func NewTracker(streak int) *Tracker {
	if streak < 0 {
		streak = 0
	}
	return &Tracker{
		streak:    streak,
		completed: make(map[int]bool),
	}
}

// Award adds amount experience attributed to slideID. A negative amount is
// rejected as invalid input; no state changes. Awards of at least
// CompletionThreshold mark the slide complete, exactly once. Returns true
// when the award should trigger a celebration (amount > 0).
func (t *Tracker) Award(amount, slideID int) (celebrate bool, err error) {
	if amount < 0 {
		return false, fmt.Errorf("progression: negative award %d", amount)
	}
	t.xp += amount
	if amount >= CompletionThreshold && !t.completed[slideID] {
		t.completed[slideID] = true
	}
	return amount > 0, nil
}

// XP returns the total experience.
func (t *Tracker) XP() int {
	return t.xp
}

// Level returns the current level, derived from experience.
func (t *Tracker) Level() int {
	return t.xp/LevelThreshold + 1
}

// LevelProgress returns the fraction of the way through the current level,
// in [0, 1).
func (t *Tracker) LevelProgress() float64 {
	return float64(t.xp%LevelThreshold) / float64(LevelThreshold)
}

// Streak returns the current streak counter.
func (t *Tracker) Streak() int {
	return t.streak
}

// Completed reports whether slideID has been marked complete.
func (t *Tracker) Completed(slideID int) bool {
	return t.completed[slideID]
}

// CompletedCount returns the number of completed slides.
func (t *Tracker) CompletedCount() int {
	return len(t.completed)
}
