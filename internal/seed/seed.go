// Package seed builds a demonstration catalog and training program and plays
// a few weeks of history through the progression engine, so a fresh install
// has realistic data to browse.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/storage"
	"github.com/google/uuid"
)

// Stats tracks what the seeder created.
type Stats struct {
	ExercisesCreated  int
	ProgramsCreated   int
	SessionsCompleted int
	SessionsSkipped   int
}

// Seeder populates a database with a demo program and simulated history.
type Seeder struct {
	db    *storage.DB
	eng   *engine.Engine
	log   *slog.Logger
	stats Stats
}

// New creates a Seeder. The engine's clock controls the simulated timeline.
func New(db *storage.DB, eng *engine.Engine, log *slog.Logger) *Seeder {
	return &Seeder{db: db, eng: eng, log: log}
}

// Run creates the catalog, saves the demo program, activates it, and plays
// two weeks of history: most days completed, one skipped.
func (s *Seeder) Run(ctx context.Context) (*Stats, error) {
	catalog, err := s.seedCatalog(ctx)
	if err != nil {
		return &s.stats, err
	}

	program := demoProgram(catalog)
	program.CreatedAt = time.Now()
	program.UpdatedAt = program.CreatedAt
	if err := s.db.SaveProgram(ctx, program); err != nil {
		return &s.stats, fmt.Errorf("saving demo program: %w", err)
	}
	s.stats.ProgramsCreated++
	s.log.Info("demo program saved", "program", program.Name)

	s.eng.Activate(program, 0, 0, 0, []time.Weekday{time.Monday, time.Wednesday, time.Friday})

	// Six positions: complete five, skip one in the middle.
	for i := 0; i < 6; i++ {
		if i == 3 {
			if err := s.skipOne(ctx, program); err != nil {
				return &s.stats, err
			}
			continue
		}
		if err := s.completeOne(ctx, program); err != nil {
			return &s.stats, err
		}
	}

	if err := s.db.UpdateProgramState(ctx, program); err != nil {
		return &s.stats, fmt.Errorf("saving program state: %w", err)
	}

	return &s.stats, nil
}

// completeOne materializes the current day's session, logs every set as done,
// and completes it through the engine.
func (s *Seeder) completeOne(ctx context.Context, p *models.Program) error {
	session := s.eng.MaterializeSession(p, engine.CurrentDay(p))
	if session == nil {
		// Cursor past the plan or on a template-less day; nothing to play.
		s.eng.Advance(p)
		return nil
	}

	for gi := range session.Groups {
		for ei := range session.Groups[gi].Exercises {
			for si := range session.Groups[gi].Exercises[ei].Sets {
				set := &session.Groups[gi].Exercises[ei].Sets[si]
				set.IsCompleted = true
				weight := 60.0 + float64(si)*2.5
				set.Weight = &weight
			}
		}
	}

	end := session.StartTime.Add(55 * time.Minute)
	session.EndTime = &end
	session.Status = models.SessionCompleted
	rating := 4
	session.Rating = &rating

	s.eng.CompleteWorkout(p, session)

	if err := s.db.InsertSession(ctx, session); err != nil {
		return fmt.Errorf("inserting demo session: %w", err)
	}
	s.stats.SessionsCompleted++
	return nil
}

// skipOne records the current day as skipped through the engine.
func (s *Seeder) skipOne(ctx context.Context, p *models.Program) error {
	session := s.eng.SkipWorkout(p)
	if session == nil {
		return nil
	}
	if err := s.db.InsertSession(ctx, session); err != nil {
		return fmt.Errorf("inserting skip record: %w", err)
	}
	s.stats.SessionsSkipped++
	return nil
}

// seedCatalog upserts the demo exercises and returns name → ID.
func (s *Seeder) seedCatalog(ctx context.Context) (map[string]uuid.UUID, error) {
	exercises := []models.Exercise{
		{Name: "Back Squat", MuscleGroup: "legs", Equipment: "barbell"},
		{Name: "Bench Press", MuscleGroup: "chest", Equipment: "barbell"},
		{Name: "Deadlift", MuscleGroup: "back", Equipment: "barbell"},
		{Name: "Overhead Press", MuscleGroup: "shoulders", Equipment: "barbell"},
		{Name: "Barbell Row", MuscleGroup: "back", Equipment: "barbell"},
		{Name: "Pull-Up", MuscleGroup: "back", Equipment: "bodyweight"},
		{Name: "Plank", MuscleGroup: "core", Equipment: "bodyweight"},
	}

	catalog := make(map[string]uuid.UUID, len(exercises))
	for i := range exercises {
		ex := exercises[i]
		ex.ID = uuid.New()
		ex.CreatedAt = time.Now()
		id, err := s.db.UpsertExercise(ctx, &ex)
		if err != nil {
			return nil, fmt.Errorf("upserting exercise %q: %w", ex.Name, err)
		}
		catalog[ex.Name] = id
		s.stats.ExercisesCreated++
	}
	return catalog, nil
}

// demoProgram builds a two-phase strength block: each week alternates two
// training days with rest days between, second phase adds a third set.
func demoProgram(catalog map[string]uuid.UUID) *models.Program {
	p := &models.Program{
		ID:          uuid.New(),
		Name:        "Starter Strength Block",
		Description: "Two-phase linear progression demo: squat/bench and deadlift/press days.",
	}

	phaseSets := []int{2, 3}
	phaseNames := []string{"Base", "Build"}

	for pi := 0; pi < 2; pi++ {
		phase := models.Phase{
			ID:        uuid.New(),
			ProgramID: p.ID,
			Order:     pi + 1,
			Name:      phaseNames[pi],
		}
		for wn := 1; wn <= 2; wn++ {
			week := models.Week{
				ID:         uuid.New(),
				PhaseID:    phase.ID,
				WeekNumber: wn,
			}
			week.Days = append(week.Days,
				trainingDay(week.ID, 1, "Squat Day", catalog, phaseSets[pi],
					[]string{"Back Squat", "Bench Press", "Barbell Row"}),
				restDay(week.ID, 2),
				trainingDay(week.ID, 3, "Deadlift Day", catalog, phaseSets[pi],
					[]string{"Deadlift", "Overhead Press", "Pull-Up"}),
				restDay(week.ID, 4),
			)
			phase.Weeks = append(phase.Weeks, week)
		}
		p.Phases = append(p.Phases, phase)
	}

	return p
}

func trainingDay(weekID uuid.UUID, num int, name string, catalog map[string]uuid.UUID, workingSets int, lifts []string) models.ProgramDay {
	day := models.ProgramDay{
		ID:        uuid.New(),
		WeekID:    weekID,
		DayNumber: num,
		Name:      name,
		DayType:   models.DayTraining,
	}

	t := &models.WorkoutTemplate{
		ID:               uuid.New(),
		DayID:            day.ID,
		Name:             name,
		EstimatedMinutes: 60,
	}

	for li, lift := range lifts {
		group := models.ExerciseGroup{
			ID:         uuid.New(),
			TemplateID: t.ID,
			GroupType:  models.GroupSingle,
			Order:      li + 1,
		}
		ex := models.WorkoutExercise{
			ID:          uuid.New(),
			GroupID:     group.ID,
			ExerciseID:  catalog[lift],
			Order:       1,
			RestSeconds: 180,
		}

		warmupReps := 10
		ex.Sets = append(ex.Sets, models.SetTemplate{
			ID:         uuid.New(),
			ExerciseID: ex.ID,
			SetNumber:  1,
			SetType:    models.SetWarmup,
			TargetReps: &warmupReps,
		})
		for sn := 0; sn < workingSets; sn++ {
			workReps := 5
			ex.Sets = append(ex.Sets, models.SetTemplate{
				ID:         uuid.New(),
				ExerciseID: ex.ID,
				SetNumber:  sn + 2,
				SetType:    models.SetWorking,
				TargetReps: &workReps,
			})
		}

		group.Exercises = append(group.Exercises, ex)
		t.Groups = append(t.Groups, group)
	}

	day.Workout = t
	return day
}

func restDay(weekID uuid.UUID, num int) models.ProgramDay {
	return models.ProgramDay{
		ID:        uuid.New(),
		WeekID:    weekID,
		DayNumber: num,
		Name:      "Rest",
		DayType:   models.DayRest,
	}
}
