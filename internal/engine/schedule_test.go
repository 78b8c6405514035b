package engine

import (
	"testing"
	"time"
)

// TestIsScheduledEmptySetMeansEveryDay verifies that a program with no
// scheduled days is due on all seven weekdays.
func TestIsScheduledEmptySetMeansEveryDay(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 3)))
	eng := testEngine()

	for offset := 0; offset < 7; offset++ {
		day := testNow.AddDate(0, 0, offset)
		if !eng.IsScheduledOn(p, day) {
			t.Errorf("empty set: not scheduled on %s", day.Weekday())
		}
	}
}

// TestIsScheduledMembership verifies weekday membership: Mon/Wed/Fri program
// evaluated on a Tuesday is not due.
func TestIsScheduledMembership(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 3)))
	p.ScheduledDays = []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	eng := testEngine() // testNow is a Tuesday

	if eng.IsScheduledToday(p) {
		t.Error("Mon/Wed/Fri program should not be due on Tuesday")
	}
	if !eng.IsScheduledOn(p, testNow.AddDate(0, 0, 1)) {
		t.Error("program should be due on Wednesday")
	}
}

// TestNextScheduledDateEmptySet verifies the empty set yields tomorrow.
func TestNextScheduledDateEmptySet(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 3)))
	eng := testEngine()

	next := eng.NextScheduledDate(p)
	if next == nil {
		t.Fatal("expected a next date")
	}
	want := testNow.AddDate(0, 0, 1)
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

// TestNextScheduledDateFindsComingWeekday verifies the scan over offsets 1..7:
// a Mon/Wed/Fri program evaluated on Tuesday resolves to the coming Wednesday.
func TestNextScheduledDateFindsComingWeekday(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 3)))
	p.ScheduledDays = []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	eng := testEngine()

	next := eng.NextScheduledDate(p)
	if next == nil {
		t.Fatal("expected a next date")
	}
	if next.Weekday() != time.Wednesday {
		t.Errorf("next weekday = %s, want Wednesday", next.Weekday())
	}
	if got := next.Sub(testNow); got != 24*time.Hour {
		t.Errorf("next is %v away, want 24h", got)
	}
}

// TestNextScheduledDateWrapsWeek verifies a single scheduled weekday equal to
// today's resolves to the same weekday next week, not today.
func TestNextScheduledDateWrapsWeek(t *testing.T) {
	p := newProgram(newPhase(1, trainingWeek(1, 3)))
	p.ScheduledDays = []time.Weekday{testNow.Weekday()}
	eng := testEngine()

	next := eng.NextScheduledDate(p)
	if next == nil {
		t.Fatal("expected a next date")
	}
	if next.Weekday() != testNow.Weekday() {
		t.Errorf("next weekday = %s, want %s", next.Weekday(), testNow.Weekday())
	}
	if got := next.Sub(testNow); got != 7*24*time.Hour {
		t.Errorf("next is %v away, want 168h", got)
	}
}
