package engine

import (
	"testing"

	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
)

func intPtr(n int) *int { return &n }

// templateDay builds a training day carrying one group with one exercise and
// three set templates: warmup x10, working x8, working x8.
func templateDay(exerciseID uuid.UUID) *models.ProgramDay {
	day := &models.ProgramDay{
		ID:        uuid.New(),
		DayNumber: 1,
		Name:      "Push A",
		DayType:   models.DayTraining,
	}
	tmpl := &models.WorkoutTemplate{
		ID:    uuid.New(),
		DayID: day.ID,
		Name:  "Push A",
	}
	group := models.ExerciseGroup{
		ID:         uuid.New(),
		TemplateID: tmpl.ID,
		GroupType:  models.GroupSingle,
		Order:      1,
	}
	ex := models.WorkoutExercise{
		ID:          uuid.New(),
		GroupID:     group.ID,
		ExerciseID:  exerciseID,
		Order:       1,
		RestSeconds: 120,
		Notes:       "pause at the bottom",
	}
	ex.Sets = []models.SetTemplate{
		{ID: uuid.New(), ExerciseID: ex.ID, SetNumber: 1, SetType: models.SetWarmup, TargetReps: intPtr(10)},
		{ID: uuid.New(), ExerciseID: ex.ID, SetNumber: 2, SetType: models.SetWorking, TargetReps: intPtr(8)},
		{ID: uuid.New(), ExerciseID: ex.ID, SetNumber: 3, SetType: models.SetWorking, TargetReps: intPtr(8)},
	}
	group.Exercises = []models.WorkoutExercise{ex}
	tmpl.Groups = []models.ExerciseGroup{group}
	day.Workout = tmpl
	return day
}

// TestMaterializeCopiesStructure verifies the materialized session mirrors
// the template: group/exercise/set counts, set numbers and types, targets
// carried over as initial logged values, everything uncompleted.
func TestMaterializeCopiesStructure(t *testing.T) {
	catalogID := uuid.New()
	day := templateDay(catalogID)
	p := newProgram(newPhase(1, trainingWeek(1, 1)))
	eng := testEngine()

	session := eng.MaterializeSession(p, day)
	if session == nil {
		t.Fatal("expected a session")
	}
	if session.Status != models.SessionInProgress {
		t.Errorf("status = %q, want in_progress", session.Status)
	}
	if session.ProgramDayID == nil || *session.ProgramDayID != day.ID {
		t.Error("session should reference the source day")
	}
	if len(session.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(session.Groups))
	}
	group := session.Groups[0]
	if group.GroupType != models.GroupSingle || group.Order != 1 {
		t.Errorf("group = %+v, want single/order 1", group)
	}
	if len(group.Exercises) != 1 {
		t.Fatalf("exercises = %d, want 1", len(group.Exercises))
	}
	ex := group.Exercises[0]
	if ex.ExerciseID != catalogID {
		t.Error("catalog exercise reference must be shared, never duplicated")
	}
	if ex.RestSeconds != 120 || ex.Notes != "pause at the bottom" {
		t.Errorf("exercise fields not copied: %+v", ex)
	}
	if len(ex.Sets) != 3 {
		t.Fatalf("sets = %d, want 3", len(ex.Sets))
	}

	wantReps := []int{10, 8, 8}
	wantTypes := []models.SetType{models.SetWarmup, models.SetWorking, models.SetWorking}
	for i, set := range ex.Sets {
		if set.SetNumber != i+1 {
			t.Errorf("set %d: number = %d", i, set.SetNumber)
		}
		if set.SetType != wantTypes[i] {
			t.Errorf("set %d: type = %q, want %q", i, set.SetType, wantTypes[i])
		}
		if set.Reps == nil || *set.Reps != wantReps[i] {
			t.Errorf("set %d: reps = %v, want %d", i, set.Reps, wantReps[i])
		}
		if set.IsCompleted {
			t.Errorf("set %d: is_completed = true, want false", i)
		}
		if set.Weight != nil {
			t.Errorf("set %d: weight should start unset", i)
		}
	}
}

// TestMaterializeIsStructurallyIndependent verifies the core correctness
// property: mutating the session never touches the template it came from.
func TestMaterializeIsStructurallyIndependent(t *testing.T) {
	day := templateDay(uuid.New())
	eng := testEngine()

	session := eng.MaterializeSession(nil, day)
	if session == nil {
		t.Fatal("expected a session")
	}

	logged := &session.Groups[0].Exercises[0].Sets[1]
	*logged.Reps = 3
	logged.IsCompleted = true
	weight := 102.5
	logged.Weight = &weight
	session.Groups[0].Name = "renamed"

	source := day.Workout.Groups[0].Exercises[0].Sets[1]
	if source.TargetReps == nil || *source.TargetReps != 8 {
		t.Errorf("template target reps = %v, want untouched 8", source.TargetReps)
	}
	if day.Workout.Groups[0].Name != "" {
		t.Errorf("template group name mutated to %q", day.Workout.Groups[0].Name)
	}
}

// TestMaterializeFreshIdentity verifies session entities never reuse template IDs.
func TestMaterializeFreshIdentity(t *testing.T) {
	day := templateDay(uuid.New())
	eng := testEngine()

	session := eng.MaterializeSession(nil, day)
	tmpl := day.Workout

	if session.ID == tmpl.ID {
		t.Error("session reused template ID")
	}
	if session.Groups[0].ID == tmpl.Groups[0].ID {
		t.Error("session group reused template group ID")
	}
	if session.Groups[0].Exercises[0].ID == tmpl.Groups[0].Exercises[0].ID {
		t.Error("session exercise reused template exercise ID")
	}
	for i, set := range session.Groups[0].Exercises[0].Sets {
		if set.ID == tmpl.Groups[0].Exercises[0].Sets[i].ID {
			t.Errorf("logged set %d reused template set ID", i)
		}
	}
}

// TestMaterializeNoTemplate verifies rest days and template-less days yield nil.
func TestMaterializeNoTemplate(t *testing.T) {
	eng := testEngine()
	if got := eng.MaterializeSession(nil, nil); got != nil {
		t.Errorf("nil day: got %+v", got)
	}
	day := &models.ProgramDay{ID: uuid.New(), DayNumber: 2, DayType: models.DayRest}
	if got := eng.MaterializeSession(nil, day); got != nil {
		t.Errorf("day without template: got %+v", got)
	}
}
