package engine

import (
	"testing"
	"time"

	"github.com/claude/liftplan/internal/models"
)

// TestAdvanceWithinWeek verifies that advancing inside a week only increments
// the day index.
func TestAdvanceWithinWeek(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 3)))
	eng := testEngine()

	if !eng.Advance(p) {
		t.Fatal("expected cursor to move")
	}
	if got := cursor(p); got != [3]int{0, 0, 1} {
		t.Errorf("cursor = %v, want [0 0 1]", got)
	}
}

// TestAdvanceSkipsNonTrainingDays verifies that rest, active recovery and
// deload days are invisible to the day index.
func TestAdvanceSkipsNonTrainingDays(t *testing.T) {
	week := newWeek(1,
		models.DayTraining,
		models.DayRest,
		models.DayTraining,
		models.DayDeload,
		models.DayActiveRecovery,
		models.DayTraining,
	)
	p := newProgram(newPhase(1, week))
	eng := testEngine()

	// Three training days total: indices 0, 1, 2.
	eng.Advance(p)
	eng.Advance(p)
	if got := cursor(p); got != [3]int{0, 0, 2} {
		t.Fatalf("cursor = %v, want [0 0 2]", got)
	}

	day := CurrentDay(p)
	if day == nil {
		t.Fatal("expected current day")
	}
	if day.DayType != models.DayTraining {
		t.Errorf("current day type = %q, want training", day.DayType)
	}
	if day.DayNumber != 6 {
		t.Errorf("current day number = %d, want 6 (third training day)", day.DayNumber)
	}
}

// TestAdvanceRollsToNextWeek verifies the week rollover: last training day of
// a week moves to day 0 of the next week.
func TestAdvanceRollsToNextWeek(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 2), trainingWeek(2, 2)))
	p.CurrentDayIndex = 1 // last training day of week 0

	eng := testEngine()
	if !eng.Advance(p) {
		t.Fatal("expected cursor to move")
	}
	if got := cursor(p); got != [3]int{0, 1, 0} {
		t.Errorf("cursor = %v, want [0 1 0]", got)
	}
}

// TestAdvanceRollsToNextPhase verifies the phase rollover: last day of the
// last week moves to (phase+1, 0, 0).
func TestAdvanceRollsToNextPhase(t *testing.T) {
	p := newProgram(
		newPhase(1, trainingWeek(1, 2)),
		newPhase(2, trainingWeek(1, 3)),
	)
	p.CurrentDayIndex = 1

	eng := testEngine()
	if !eng.Advance(p) {
		t.Fatal("expected cursor to move")
	}
	if got := cursor(p); got != [3]int{1, 0, 0} {
		t.Errorf("cursor = %v, want [1 0 0]", got)
	}
}

// TestAdvanceTerminalIdempotent verifies that a finished program is a stable
// no-op: the cursor freezes at the last valid position and repeated calls
// change nothing, including the updated-at stamp.
func TestAdvanceTerminalIdempotent(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 3)))
	p.CurrentDayIndex = 2 // last training day, single week, single phase
	stamp := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	p.UpdatedAt = stamp

	eng := testEngine()
	for i := 0; i < 2; i++ {
		if eng.Advance(p) {
			t.Fatalf("call %d: expected no-op on terminal cursor", i+1)
		}
		if got := cursor(p); got != [3]int{0, 0, 2} {
			t.Fatalf("call %d: cursor = %v, want [0 0 2]", i+1, got)
		}
		if !p.UpdatedAt.Equal(stamp) {
			t.Fatalf("call %d: updated_at stamped on no-op", i+1)
		}
	}
}

// TestAdvanceInvalidCursorNoOp verifies that out-of-range phase or week
// indices leave the program untouched rather than panicking or clamping.
func TestAdvanceInvalidCursorNoOp(t *testing.T) {
	tests := []struct {
		name                string
		phaseIdx, weekIdx   int
	}{
		{"phase out of range", 5, 0},
		{"negative phase", -1, 0},
		{"week out of range", 0, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProgram(newPhase(1, trainingWeek(1, 3)))
			p.CurrentPhaseIndex = tt.phaseIdx
			p.CurrentWeekIndex = tt.weekIdx

			eng := testEngine()
			if eng.Advance(p) {
				t.Fatal("expected no-op")
			}
			if got := cursor(p); got != [3]int{tt.phaseIdx, tt.weekIdx, 0} {
				t.Errorf("cursor changed to %v", got)
			}
		})
	}
}

// TestAdvanceRespectsExplicitOrder verifies that phases and weeks are walked
// by their order fields, not by slice position, and that gaps are tolerated.
func TestAdvanceRespectsExplicitOrder(t *testing.T) {
	// Slices deliberately out of order with gappy numbering.
	second := newPhase(10, trainingWeek(1, 1))
	second.Name = "Second"
	first := newPhase(3, trainingWeek(4, 1), trainingWeek(2, 1))
	first.Name = "First"
	p := newProgram(second, first)

	if got := CurrentPhase(p); got == nil || got.Name != "First" {
		t.Fatalf("current phase = %+v, want First", got)
	}
	if wk := CurrentWeek(p); wk == nil || wk.WeekNumber != 2 {
		t.Fatalf("current week = %+v, want week 2", wk)
	}

	eng := testEngine()
	eng.Advance(p) // week 2 → week 4 within First
	if got := cursor(p); got != [3]int{0, 1, 0} {
		t.Fatalf("cursor = %v, want [0 1 0]", got)
	}
	eng.Advance(p) // First → Second
	if got := CurrentPhase(p); got == nil || got.Name != "Second" {
		t.Errorf("current phase = %+v, want Second", got)
	}
}

// TestProjectionsOutOfRange verifies that derived views return nil instead of
// panicking when the cursor points outside the live collections.
func TestProjectionsOutOfRange(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 2)))
	p.CurrentPhaseIndex = 3

	if CurrentPhase(p) != nil {
		t.Error("CurrentPhase should be nil for out-of-range cursor")
	}
	if CurrentWeek(p) != nil {
		t.Error("CurrentWeek should be nil for out-of-range cursor")
	}
	if CurrentDay(p) != nil {
		t.Error("CurrentDay should be nil for out-of-range cursor")
	}

	p.CurrentPhaseIndex = 0
	p.CurrentDayIndex = 7
	if CurrentDay(p) != nil {
		t.Error("CurrentDay should be nil when day index exceeds training days")
	}
}

// TestAdvanceStampsUpdatedAt verifies a successful step stamps the program.
func TestAdvanceStampsUpdatedAt(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 2)))
	eng := testEngine()
	eng.Advance(p)
	if !p.UpdatedAt.Equal(testNow) {
		t.Errorf("updated_at = %v, want %v", p.UpdatedAt, testNow)
	}
}
