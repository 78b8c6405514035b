package mcp

import (
	"log/slog"
	"testing"
	"time"

	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
)

// TestDefaultTimeRange verifies time range defaults (last 30 days) and parsing.
func TestDefaultTimeRange(t *testing.T) {
	// Both empty → defaults to last 30 days
	start, end, err := defaultTimeRange("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff := end.Sub(start)
	if diff.Hours() < 719 || diff.Hours() > 721 { // ~720 hours = 30 days
		t.Errorf("default range = %.0f hours, want ~720", diff.Hours())
	}

	// Explicit dates
	start, end, err = defaultTimeRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Year() != 2024 || start.Month() != 1 || start.Day() != 1 {
		t.Errorf("start = %v, want 2024-01-01", start)
	}
	if end.Year() != 2024 || end.Month() != 1 || end.Day() != 31 {
		t.Errorf("end = %v, want 2024-01-31", end)
	}

	// RFC3339
	start, _, err = defaultTimeRange("2024-06-15T10:30:00Z", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 10 || start.Minute() != 30 {
		t.Errorf("start = %v, want 10:30", start)
	}

	// Invalid
	_, _, err = defaultTimeRange("not-a-date", "")
	if err == nil {
		t.Error("expected error for invalid date")
	}
}

// TestPositionPayload verifies the position summary resolves the cursor and
// schedule into readable fields.
func TestPositionPayload(t *testing.T) {
	// A Monday so the Mon/Thu schedule hits today.
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	h := &handlers{
		engine: engine.NewWithNow(func() time.Time { return now }),
		log:    slog.Default(),
	}

	p := &models.Program{
		ID:            uuid.New(),
		Name:          "Upper/Lower",
		IsActive:      true,
		ScheduledDays: []time.Weekday{time.Monday, time.Thursday},
		Phases: []models.Phase{{
			Order: 1,
			Name:  "Base",
			Weeks: []models.Week{{
				WeekNumber: 1,
				Days: []models.ProgramDay{{
					DayNumber: 1,
					Name:      "Upper A",
					DayType:   models.DayTraining,
					Workout:   &models.WorkoutTemplate{Name: "Upper A"},
				}},
			}},
		}},
	}

	payload := h.positionPayload(p)

	if payload["current_phase"] != "Base" {
		t.Errorf("current_phase = %v, want Base", payload["current_phase"])
	}
	if payload["current_day"] != "Upper A" {
		t.Errorf("current_day = %v, want Upper A", payload["current_day"])
	}
	if payload["current_workout"] != "Upper A" {
		t.Errorf("current_workout = %v", payload["current_workout"])
	}
	if payload["is_scheduled_today"] != true {
		t.Error("Monday should be on-schedule for Mon/Thu")
	}
	if payload["next_scheduled_date"] != "2024-01-04" {
		t.Errorf("next_scheduled_date = %v, want 2024-01-04 (Thursday)", payload["next_scheduled_date"])
	}
}

// TestPositionPayloadStaleCursor verifies an out-of-range cursor omits the
// projection fields rather than failing.
func TestPositionPayloadStaleCursor(t *testing.T) {
	h := &handlers{engine: engine.New(), log: slog.Default()}

	p := &models.Program{
		ID:                uuid.New(),
		Name:              "Stale",
		CurrentPhaseIndex: 9,
		Phases:            []models.Phase{{Order: 1}},
	}

	payload := h.positionPayload(p)
	if _, ok := payload["current_phase"]; ok {
		t.Error("stale cursor should omit current_phase")
	}
	if _, ok := payload["current_day"]; ok {
		t.Error("stale cursor should omit current_day")
	}
}
