package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestParseEnums verifies each closed enumeration accepts exactly its members.
func TestParseEnums(t *testing.T) {
	if _, err := ParseDayType("training"); err != nil {
		t.Errorf("training: %v", err)
	}
	if _, err := ParseDayType("active_recovery"); err != nil {
		t.Errorf("active_recovery: %v", err)
	}
	if _, err := ParseDayType("cardio"); err == nil {
		t.Error("expected error for unknown day type")
	}
	if _, err := ParseGroupType("superset"); err != nil {
		t.Errorf("superset: %v", err)
	}
	if _, err := ParseGroupType("giant"); err == nil {
		t.Error("expected error for unknown group type")
	}
	if _, err := ParseSetType("warmup"); err != nil {
		t.Errorf("warmup: %v", err)
	}
	if _, err := ParseSetType("backoff"); err == nil {
		t.Error("expected error for unknown set type")
	}
	if _, err := ParseResumeMode("go_back_one_week"); err != nil {
		t.Errorf("go_back_one_week: %v", err)
	}
	if _, err := ParseResumeMode("rewind"); err == nil {
		t.Error("expected error for unknown resume mode")
	}
	if _, err := ParseSessionStatus("cancelled"); err != nil {
		t.Errorf("cancelled: %v", err)
	}
}

// TestTrainingDaysFiltersAndOrders verifies the training-day view counts only
// training-typed days, ordered by DayNumber regardless of slice order.
func TestTrainingDaysFiltersAndOrders(t *testing.T) {
	w := Week{
		Days: []ProgramDay{
			{ID: uuid.New(), DayNumber: 5, DayType: DayTraining},
			{ID: uuid.New(), DayNumber: 2, DayType: DayRest},
			{ID: uuid.New(), DayNumber: 1, DayType: DayTraining},
			{ID: uuid.New(), DayNumber: 3, DayType: DayDeload},
			{ID: uuid.New(), DayNumber: 4, DayType: DayActiveRecovery},
		},
	}

	days := w.TrainingDays()
	if len(days) != 2 {
		t.Fatalf("training days = %d, want 2", len(days))
	}
	if days[0].DayNumber != 1 || days[1].DayNumber != 5 {
		t.Errorf("order = [%d %d], want [1 5]", days[0].DayNumber, days[1].DayNumber)
	}
}

// TestSortedPhasesByExplicitOrder verifies phase sequence follows the order
// field, not insertion order, and tolerates gaps.
func TestSortedPhasesByExplicitOrder(t *testing.T) {
	p := Program{
		Phases: []Phase{
			{Order: 30, Name: "c"},
			{Order: 1, Name: "a"},
			{Order: 7, Name: "b"},
		},
	}
	got := p.SortedPhases()
	want := []string{"a", "b", "c"}
	for i, ph := range got {
		if ph.Name != want[i] {
			t.Errorf("phase %d = %q, want %q", i, ph.Name, want[i])
		}
	}
	// Input slice untouched.
	if p.Phases[0].Name != "c" {
		t.Error("SortedPhases mutated the receiver")
	}
}

// TestNormalizeScheduledDays verifies deduplication, range filtering and the
// empty set surviving as a distinct valid state.
func TestNormalizeScheduledDays(t *testing.T) {
	got := NormalizeScheduledDays([]time.Weekday{
		time.Friday, time.Monday, time.Monday, time.Weekday(9), time.Weekday(-1),
	})
	if len(got) != 2 || got[0] != time.Monday || got[1] != time.Friday {
		t.Errorf("normalized = %v, want [Monday Friday]", got)
	}

	if got := NormalizeScheduledDays(nil); len(got) != 0 {
		t.Errorf("empty input: got %v, want empty", got)
	}
}
