package engine

import (
	"testing"

	"github.com/claude/liftplan/internal/models"
)

// TestSkipWorkoutRecordsHistoryAndAdvances verifies that a skip produces
// exactly one cancelled, skipped session stamped with an end time, and that
// the cursor lands where a direct advance from the same position would.
func TestSkipWorkoutRecordsHistoryAndAdvances(t *testing.T) {
	build := func() *models.Program {
		return newProgram(newPhase(1, trainingWeek(1, 2), trainingWeek(2, 2)))
	}
	eng := testEngine()

	skipped := build()
	skipped.CurrentDayIndex = 1
	wantDay := CurrentDay(skipped)

	advanced := build()
	advanced.CurrentDayIndex = 1
	eng.Advance(advanced)

	session := eng.SkipWorkout(skipped)
	if session == nil {
		t.Fatal("expected a history session")
	}
	if !session.WasSkipped {
		t.Error("was_skipped = false, want true")
	}
	if session.Status != models.SessionCancelled {
		t.Errorf("status = %q, want cancelled", session.Status)
	}
	if session.EndTime == nil || !session.EndTime.Equal(testNow) {
		t.Errorf("end_time = %v, want %v", session.EndTime, testNow)
	}
	if session.ProgramDayID == nil || *session.ProgramDayID != wantDay.ID {
		t.Error("session should reference the day that was skipped")
	}
	if cursor(skipped) != cursor(advanced) {
		t.Errorf("skip cursor = %v, advance cursor = %v; want identical",
			cursor(skipped), cursor(advanced))
	}
}

// TestSkipWorkoutNoCurrentDay verifies that skipping with an unresolvable
// cursor produces no session and moves nothing.
func TestSkipWorkoutNoCurrentDay(t *testing.T) {
	p := newProgram(newPhase(1, newWeek(1, models.DayRest, models.DayRest)))
	eng := testEngine()

	if session := eng.SkipWorkout(p); session != nil {
		t.Fatalf("expected nil session, got %+v", session)
	}
	if got := cursor(p); got != [3]int{0, 0, 0} {
		t.Errorf("cursor = %v, want unchanged [0 0 0]", got)
	}
}

// TestCompleteWorkoutBindsDayAndAdvances verifies completion rebinds the
// session's day reference to the current cursor day before advancing.
func TestCompleteWorkoutBindsDayAndAdvances(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 2)))
	day := CurrentDay(p)
	eng := testEngine()

	session := &models.WorkoutSession{Status: models.SessionCompleted}
	eng.CompleteWorkout(p, session)

	if session.ProgramDayID == nil || *session.ProgramDayID != day.ID {
		t.Error("session should be bound to the day under the cursor")
	}
	if got := cursor(p); got != [3]int{0, 0, 1} {
		t.Errorf("cursor = %v, want [0 0 1]", got)
	}
}

// TestCompleteWorkoutInvalidCursor verifies completion with an unresolvable
// cursor keeps the session's existing day reference and moves nothing.
func TestCompleteWorkoutInvalidCursor(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 2)))
	p.CurrentPhaseIndex = 4
	eng := testEngine()

	session := &models.WorkoutSession{}
	eng.CompleteWorkout(p, session)

	if session.ProgramDayID != nil {
		t.Error("day reference should stay unset")
	}
	if got := cursor(p); got != [3]int{4, 0, 0} {
		t.Errorf("cursor = %v, want unchanged", got)
	}
}
