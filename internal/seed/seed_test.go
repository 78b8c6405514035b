package seed

import (
	"testing"

	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
)

// TestDemoProgramShape verifies the generated demo program has the expected
// phase/week/day structure and resolves every lift against the catalog.
func TestDemoProgramShape(t *testing.T) {
	catalog := map[string]uuid.UUID{
		"Back Squat":     uuid.New(),
		"Bench Press":    uuid.New(),
		"Deadlift":       uuid.New(),
		"Overhead Press": uuid.New(),
		"Barbell Row":    uuid.New(),
		"Pull-Up":        uuid.New(),
		"Plank":          uuid.New(),
	}

	p := demoProgram(catalog)

	if len(p.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(p.Phases))
	}
	for _, phase := range p.Phases {
		if len(phase.Weeks) != 2 {
			t.Fatalf("phase %q weeks = %d, want 2", phase.Name, len(phase.Weeks))
		}
		for _, week := range phase.Weeks {
			if got := len(week.TrainingDays()); got != 2 {
				t.Errorf("week %d training days = %d, want 2", week.WeekNumber, got)
			}
			for _, day := range week.Days {
				if day.DayType == models.DayRest && day.Workout != nil {
					t.Error("rest day should carry no template")
				}
				if day.DayType != models.DayTraining {
					continue
				}
				if day.Workout == nil {
					t.Fatalf("training day %q has no template", day.Name)
				}
				for _, g := range day.Workout.Groups {
					for _, ex := range g.Exercises {
						if ex.ExerciseID == uuid.Nil {
							t.Errorf("exercise in %q did not resolve against the catalog", day.Name)
						}
						if len(ex.Sets) < 2 {
							t.Errorf("exercise in %q has %d sets, want warmup plus working", day.Name, len(ex.Sets))
						}
						if ex.Sets[0].SetType != models.SetWarmup {
							t.Errorf("first set should be a warmup")
						}
					}
				}
			}
		}
	}

	// The second phase adds a working set.
	baseSets := len(p.Phases[0].Weeks[0].Days[0].Workout.Groups[0].Exercises[0].Sets)
	buildSets := len(p.Phases[1].Weeks[0].Days[0].Workout.Groups[0].Exercises[0].Sets)
	if buildSets != baseSets+1 {
		t.Errorf("build phase sets = %d, want %d", buildSets, baseSets+1)
	}
}
