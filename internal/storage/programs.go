package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// weekdaysToInts converts a weekday set to the int4[] representation stored in
// the scheduled_days column.
func weekdaysToInts(days []time.Weekday) []int32 {
	out := make([]int32, len(days))
	for i, d := range days {
		out[i] = int32(d)
	}
	return out
}

func intsToWeekdays(vals []int32) []time.Weekday {
	out := make([]time.Weekday, len(vals))
	for i, v := range vals {
		out[i] = time.Weekday(v)
	}
	return out
}

// SaveProgram inserts a full program graph (program, phases, weeks, days,
// templates, groups, exercises, set templates) in one transaction.
func (db *DB) SaveProgram(ctx context.Context, p *models.Program) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO programs (id, name, description, is_active, start_date, scheduled_days,
		 phase_index, week_index, day_index, paused_until, resume_mode, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.Name, p.Description, p.IsActive, p.StartDate, weekdaysToInts(p.ScheduledDays),
		p.CurrentPhaseIndex, p.CurrentWeekIndex, p.CurrentDayIndex,
		p.PausedUntil, p.PauseResumeMode, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}

	for _, phase := range p.Phases {
		_, err = tx.Exec(ctx,
			`INSERT INTO phases (id, program_id, ord, name, description) VALUES ($1,$2,$3,$4,$5)`,
			phase.ID, p.ID, phase.Order, phase.Name, phase.Description)
		if err != nil {
			return fmt.Errorf("inserting phase %q: %w", phase.Name, err)
		}
		for _, week := range phase.Weeks {
			_, err = tx.Exec(ctx,
				`INSERT INTO weeks (id, phase_id, week_number, notes) VALUES ($1,$2,$3,$4)`,
				week.ID, phase.ID, week.WeekNumber, week.Notes)
			if err != nil {
				return fmt.Errorf("inserting week %d: %w", week.WeekNumber, err)
			}
			for _, day := range week.Days {
				_, err = tx.Exec(ctx,
					`INSERT INTO program_days (id, week_id, day_number, name, day_type) VALUES ($1,$2,$3,$4,$5)`,
					day.ID, week.ID, day.DayNumber, day.Name, day.DayType)
				if err != nil {
					return fmt.Errorf("inserting day %d: %w", day.DayNumber, err)
				}
				if day.Workout != nil {
					if err := insertTemplate(ctx, tx, day.ID, day.Workout); err != nil {
						return err
					}
				}
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing program: %w", err)
	}
	return nil
}

func insertTemplate(ctx context.Context, tx pgx.Tx, dayID uuid.UUID, t *models.WorkoutTemplate) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO workout_templates (id, day_id, name, description, estimated_minutes)
		 VALUES ($1,$2,$3,$4,$5)`,
		t.ID, dayID, t.Name, t.Description, t.EstimatedMinutes)
	if err != nil {
		return fmt.Errorf("inserting template %q: %w", t.Name, err)
	}
	for _, g := range t.Groups {
		_, err = tx.Exec(ctx,
			`INSERT INTO exercise_groups (id, template_id, group_type, ord, name, notes)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			g.ID, t.ID, g.GroupType, g.Order, g.Name, g.Notes)
		if err != nil {
			return fmt.Errorf("inserting exercise group: %w", err)
		}
		for _, ex := range g.Exercises {
			_, err = tx.Exec(ctx,
				`INSERT INTO workout_exercises (id, group_id, exercise_id, ord, rest_seconds, is_optional, notes)
				 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
				ex.ID, g.ID, ex.ExerciseID, ex.Order, ex.RestSeconds, ex.IsOptional, ex.Notes)
			if err != nil {
				return fmt.Errorf("inserting workout exercise: %w", err)
			}
			for _, st := range ex.Sets {
				_, err = tx.Exec(ctx,
					`INSERT INTO set_templates (id, workout_exercise_id, set_number, set_type, target_reps, target_time, side)
					 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
					st.ID, ex.ID, st.SetNumber, st.SetType, st.TargetReps, st.TargetTime, st.Side)
				if err != nil {
					return fmt.Errorf("inserting set template %d: %w", st.SetNumber, err)
				}
			}
		}
	}
	return nil
}

// UpdateProgramState persists the mutable progression fields (active flag,
// start date, schedule, cursor, pause fields) in a single UPDATE so the
// cursor triple is committed as a unit.
func (db *DB) UpdateProgramState(ctx context.Context, p *models.Program) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE programs SET
		 is_active = $2, start_date = $3, scheduled_days = $4,
		 phase_index = $5, week_index = $6, day_index = $7,
		 paused_until = $8, resume_mode = $9, updated_at = $10
		 WHERE id = $1`,
		p.ID, p.IsActive, p.StartDate, weekdaysToInts(p.ScheduledDays),
		p.CurrentPhaseIndex, p.CurrentWeekIndex, p.CurrentDayIndex,
		p.PausedUntil, p.PauseResumeMode, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating program state: %w", err)
	}
	return nil
}

// ListPrograms returns all programs without their plan graphs.
func (db *DB) ListPrograms(ctx context.Context) ([]models.Program, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, description, is_active, start_date, scheduled_days,
		 phase_index, week_index, day_index, paused_until, resume_mode, created_at, updated_at
		 FROM programs
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var result []models.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

func scanProgram(row pgx.Row) (*models.Program, error) {
	var p models.Program
	var days []int32
	var resumeMode *string
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.IsActive, &p.StartDate, &days,
		&p.CurrentPhaseIndex, &p.CurrentWeekIndex, &p.CurrentDayIndex,
		&p.PausedUntil, &resumeMode, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning program: %w", err)
	}
	p.ScheduledDays = intsToWeekdays(days)
	if resumeMode != nil {
		mode, err := models.ParseResumeMode(*resumeMode)
		if err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		p.PauseResumeMode = &mode
	}
	return &p, nil
}

// GetProgram loads a program with its full plan graph reassembled in explicit
// order (phase order, week number, day number, group/exercise/set order).
func (db *DB) GetProgram(ctx context.Context, id uuid.UUID) (*models.Program, error) {
	p, err := scanProgram(db.Pool.QueryRow(ctx,
		`SELECT id, name, description, is_active, start_date, scheduled_days,
		 phase_index, week_index, day_index, paused_until, resume_mode, created_at, updated_at
		 FROM programs WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	// Phases
	phaseRows, err := db.Pool.Query(ctx,
		`SELECT id, program_id, ord, name, description FROM phases
		 WHERE program_id = $1 ORDER BY ord`, id)
	if err != nil {
		return nil, fmt.Errorf("querying phases: %w", err)
	}
	defer phaseRows.Close()

	phaseIdx := map[uuid.UUID]int{}
	for phaseRows.Next() {
		var ph models.Phase
		if err := phaseRows.Scan(&ph.ID, &ph.ProgramID, &ph.Order, &ph.Name, &ph.Description); err != nil {
			return nil, fmt.Errorf("scanning phase: %w", err)
		}
		phaseIdx[ph.ID] = len(p.Phases)
		p.Phases = append(p.Phases, ph)
	}
	if err := phaseRows.Err(); err != nil {
		return nil, err
	}

	// Weeks
	weekRows, err := db.Pool.Query(ctx,
		`SELECT w.id, w.phase_id, w.week_number, w.notes
		 FROM weeks w JOIN phases ph ON w.phase_id = ph.id
		 WHERE ph.program_id = $1 ORDER BY w.week_number`, id)
	if err != nil {
		return nil, fmt.Errorf("querying weeks: %w", err)
	}
	defer weekRows.Close()

	weekLoc := map[uuid.UUID][2]int{} // week id → (phase index, week index)
	for weekRows.Next() {
		var w models.Week
		if err := weekRows.Scan(&w.ID, &w.PhaseID, &w.WeekNumber, &w.Notes); err != nil {
			return nil, fmt.Errorf("scanning week: %w", err)
		}
		pi, ok := phaseIdx[w.PhaseID]
		if !ok {
			continue
		}
		weekLoc[w.ID] = [2]int{pi, len(p.Phases[pi].Weeks)}
		p.Phases[pi].Weeks = append(p.Phases[pi].Weeks, w)
	}
	if err := weekRows.Err(); err != nil {
		return nil, err
	}

	// Days
	dayRows, err := db.Pool.Query(ctx,
		`SELECT d.id, d.week_id, d.day_number, d.name, d.day_type
		 FROM program_days d
		 JOIN weeks w ON d.week_id = w.id
		 JOIN phases ph ON w.phase_id = ph.id
		 WHERE ph.program_id = $1 ORDER BY d.day_number`, id)
	if err != nil {
		return nil, fmt.Errorf("querying days: %w", err)
	}
	defer dayRows.Close()

	dayLoc := map[uuid.UUID][3]int{}
	for dayRows.Next() {
		var d models.ProgramDay
		var dayType string
		if err := dayRows.Scan(&d.ID, &d.WeekID, &d.DayNumber, &d.Name, &dayType); err != nil {
			return nil, fmt.Errorf("scanning day: %w", err)
		}
		dt, err := models.ParseDayType(dayType)
		if err != nil {
			return nil, fmt.Errorf("scanning day: %w", err)
		}
		d.DayType = dt
		loc, ok := weekLoc[d.WeekID]
		if !ok {
			continue
		}
		week := &p.Phases[loc[0]].Weeks[loc[1]]
		dayLoc[d.ID] = [3]int{loc[0], loc[1], len(week.Days)}
		week.Days = append(week.Days, d)
	}
	if err := dayRows.Err(); err != nil {
		return nil, err
	}

	if err := db.loadTemplates(ctx, id, p, dayLoc); err != nil {
		return nil, err
	}
	return p, nil
}

// loadTemplates attaches workout templates (with groups, exercises and set
// templates) to the already-assembled day tree.
func (db *DB) loadTemplates(ctx context.Context, programID uuid.UUID, p *models.Program, dayLoc map[uuid.UUID][3]int) error {
	tmplRows, err := db.Pool.Query(ctx,
		`SELECT t.id, t.day_id, t.name, t.description, t.estimated_minutes
		 FROM workout_templates t
		 JOIN program_days d ON t.day_id = d.id
		 JOIN weeks w ON d.week_id = w.id
		 JOIN phases ph ON w.phase_id = ph.id
		 WHERE ph.program_id = $1`, programID)
	if err != nil {
		return fmt.Errorf("querying templates: %w", err)
	}
	defer tmplRows.Close()

	templates := map[uuid.UUID]*models.WorkoutTemplate{}
	for tmplRows.Next() {
		var t models.WorkoutTemplate
		if err := tmplRows.Scan(&t.ID, &t.DayID, &t.Name, &t.Description, &t.EstimatedMinutes); err != nil {
			return fmt.Errorf("scanning template: %w", err)
		}
		loc, ok := dayLoc[t.DayID]
		if !ok {
			continue
		}
		day := &p.Phases[loc[0]].Weeks[loc[1]].Days[loc[2]]
		day.Workout = &t
		templates[t.ID] = day.Workout
	}
	if err := tmplRows.Err(); err != nil {
		return err
	}

	groupRows, err := db.Pool.Query(ctx,
		`SELECT g.id, g.template_id, g.group_type, g.ord, g.name, g.notes
		 FROM exercise_groups g
		 JOIN workout_templates t ON g.template_id = t.id
		 JOIN program_days d ON t.day_id = d.id
		 JOIN weeks w ON d.week_id = w.id
		 JOIN phases ph ON w.phase_id = ph.id
		 WHERE ph.program_id = $1 ORDER BY g.ord`, programID)
	if err != nil {
		return fmt.Errorf("querying exercise groups: %w", err)
	}
	defer groupRows.Close()

	for groupRows.Next() {
		var g models.ExerciseGroup
		var groupType string
		if err := groupRows.Scan(&g.ID, &g.TemplateID, &groupType, &g.Order, &g.Name, &g.Notes); err != nil {
			return fmt.Errorf("scanning exercise group: %w", err)
		}
		gt, err := models.ParseGroupType(groupType)
		if err != nil {
			return fmt.Errorf("scanning exercise group: %w", err)
		}
		g.GroupType = gt
		t, ok := templates[g.TemplateID]
		if !ok {
			continue
		}
		t.Groups = append(t.Groups, g)
	}
	if err := groupRows.Err(); err != nil {
		return err
	}

	// Index after all appends so the pointers stay valid.
	groups := map[uuid.UUID]*models.ExerciseGroup{}
	for _, t := range templates {
		for i := range t.Groups {
			groups[t.Groups[i].ID] = &t.Groups[i]
		}
	}

	exRows, err := db.Pool.Query(ctx,
		`SELECT e.id, e.group_id, e.exercise_id, e.ord, e.rest_seconds, e.is_optional, e.notes
		 FROM workout_exercises e
		 JOIN exercise_groups g ON e.group_id = g.id
		 JOIN workout_templates t ON g.template_id = t.id
		 JOIN program_days d ON t.day_id = d.id
		 JOIN weeks w ON d.week_id = w.id
		 JOIN phases ph ON w.phase_id = ph.id
		 WHERE ph.program_id = $1 ORDER BY e.ord`, programID)
	if err != nil {
		return fmt.Errorf("querying workout exercises: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var e models.WorkoutExercise
		if err := exRows.Scan(&e.ID, &e.GroupID, &e.ExerciseID, &e.Order, &e.RestSeconds, &e.IsOptional, &e.Notes); err != nil {
			return fmt.Errorf("scanning workout exercise: %w", err)
		}
		g, ok := groups[e.GroupID]
		if !ok {
			continue
		}
		g.Exercises = append(g.Exercises, e)
	}
	if err := exRows.Err(); err != nil {
		return err
	}

	exercises := map[uuid.UUID]*models.WorkoutExercise{}
	for _, g := range groups {
		for i := range g.Exercises {
			exercises[g.Exercises[i].ID] = &g.Exercises[i]
		}
	}

	setRows, err := db.Pool.Query(ctx,
		`SELECT s.id, s.workout_exercise_id, s.set_number, s.set_type, s.target_reps, s.target_time, s.side
		 FROM set_templates s
		 JOIN workout_exercises e ON s.workout_exercise_id = e.id
		 JOIN exercise_groups g ON e.group_id = g.id
		 JOIN workout_templates t ON g.template_id = t.id
		 JOIN program_days d ON t.day_id = d.id
		 JOIN weeks w ON d.week_id = w.id
		 JOIN phases ph ON w.phase_id = ph.id
		 WHERE ph.program_id = $1 ORDER BY s.set_number`, programID)
	if err != nil {
		return fmt.Errorf("querying set templates: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var s models.SetTemplate
		var setType string
		if err := setRows.Scan(&s.ID, &s.ExerciseID, &s.SetNumber, &setType, &s.TargetReps, &s.TargetTime, &s.Side); err != nil {
			return fmt.Errorf("scanning set template: %w", err)
		}
		st, err := models.ParseSetType(setType)
		if err != nil {
			return fmt.Errorf("scanning set template: %w", err)
		}
		s.SetType = st
		e, ok := exercises[s.ExerciseID]
		if !ok {
			continue
		}
		e.Sets = append(e.Sets, s)
	}
	return setRows.Err()
}

// DeleteProgram removes a program and, via cascading foreign keys, its whole
// plan graph. History sessions keep their day references as dangling UUIDs.
func (db *DB) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	return nil
}
