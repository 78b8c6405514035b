package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
)

// InsertSession inserts a workout session with its full group/exercise/set
// graph in one transaction. Skipped sessions arrive with an empty graph.
func (db *DB) InsertSession(ctx context.Context, s *models.WorkoutSession) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO workout_sessions (id, program_id, program_day_id, name, start_time, end_time,
		 status, was_skipped, rating, notes)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		s.ID, s.ProgramID, s.ProgramDayID, s.Name, s.StartTime, s.EndTime,
		s.Status, s.WasSkipped, s.Rating, s.Notes)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	for _, g := range s.Groups {
		_, err = tx.Exec(ctx,
			`INSERT INTO session_groups (id, session_id, group_type, ord, name, notes)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			g.ID, s.ID, g.GroupType, g.Order, g.Name, g.Notes)
		if err != nil {
			return fmt.Errorf("inserting session group: %w", err)
		}
		for _, ex := range g.Exercises {
			_, err = tx.Exec(ctx,
				`INSERT INTO session_exercises (id, group_id, exercise_id, ord, rest_seconds, is_optional, notes)
				 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
				ex.ID, g.ID, ex.ExerciseID, ex.Order, ex.RestSeconds, ex.IsOptional, ex.Notes)
			if err != nil {
				return fmt.Errorf("inserting session exercise: %w", err)
			}
			for _, set := range ex.Sets {
				_, err = tx.Exec(ctx,
					`INSERT INTO logged_sets (id, session_exercise_id, set_number, set_type, side,
					 is_completed, weight, reps, time_seconds)
					 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
					set.ID, ex.ID, set.SetNumber, set.SetType, set.Side,
					set.IsCompleted, set.Weight, set.Reps, set.TimeSeconds)
				if err != nil {
					return fmt.Errorf("inserting logged set %d: %w", set.SetNumber, err)
				}
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}
	return nil
}

// UpdateLoggedSet overwrites the mutable fields of one logged set.
func (db *DB) UpdateLoggedSet(ctx context.Context, set *models.LoggedSet) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE logged_sets SET is_completed = $2, weight = $3, reps = $4, time_seconds = $5
		 WHERE id = $1`,
		set.ID, set.IsCompleted, set.Weight, set.Reps, set.TimeSeconds)
	if err != nil {
		return fmt.Errorf("updating logged set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("logged set %s not found", set.ID)
	}
	return nil
}

// FinalizeSession stamps a session's terminal state. Used both by completion
// (status completed, optional rating/notes) and by skip persistence updates.
func (db *DB) FinalizeSession(ctx context.Context, id uuid.UUID, status models.SessionStatus, endTime time.Time, rating *int, notes string, dayID *uuid.UUID) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE workout_sessions SET status = $2, end_time = $3, rating = $4, notes = $5, program_day_id = $6
		 WHERE id = $1`,
		id, status, endTime, rating, notes, dayID)
	if err != nil {
		return fmt.Errorf("finalizing session: %w", err)
	}
	return nil
}

// QuerySessions retrieves session headers (no set graph) in a time range,
// newest first. skippedOnly filters to skip records when non-nil.
func (db *DB) QuerySessions(ctx context.Context, start, end time.Time, programID *uuid.UUID, skippedOnly *bool) ([]models.WorkoutSession, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, program_id, program_day_id, name, start_time, end_time, status, was_skipped, rating, notes
		 FROM workout_sessions
		 WHERE start_time >= $1 AND start_time < $2
		 AND ($3::uuid IS NULL OR program_id = $3)
		 AND ($4::boolean IS NULL OR was_skipped = $4)
		 ORDER BY start_time DESC`,
		start, end, programID, skippedOnly)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutSession
	for rows.Next() {
		var s models.WorkoutSession
		var status string
		if err := rows.Scan(&s.ID, &s.ProgramID, &s.ProgramDayID, &s.Name, &s.StartTime,
			&s.EndTime, &status, &s.WasSkipped, &s.Rating, &s.Notes); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		st, err := models.ParseSessionStatus(status)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		s.Status = st
		result = append(result, s)
	}
	return result, rows.Err()
}

// GetSession retrieves one session with its full group/exercise/set graph.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*models.WorkoutSession, error) {
	var s models.WorkoutSession
	var status string
	err := db.Pool.QueryRow(ctx,
		`SELECT id, program_id, program_day_id, name, start_time, end_time, status, was_skipped, rating, notes
		 FROM workout_sessions WHERE id = $1`, id).
		Scan(&s.ID, &s.ProgramID, &s.ProgramDayID, &s.Name, &s.StartTime,
			&s.EndTime, &status, &s.WasSkipped, &s.Rating, &s.Notes)
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	st, err := models.ParseSessionStatus(status)
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	s.Status = st

	groupRows, err := db.Pool.Query(ctx,
		`SELECT id, session_id, group_type, ord, name, notes
		 FROM session_groups WHERE session_id = $1 ORDER BY ord`, id)
	if err != nil {
		return nil, fmt.Errorf("querying session groups: %w", err)
	}
	defer groupRows.Close()

	for groupRows.Next() {
		var g models.SessionGroup
		var groupType string
		if err := groupRows.Scan(&g.ID, &g.SessionID, &groupType, &g.Order, &g.Name, &g.Notes); err != nil {
			return nil, fmt.Errorf("scanning session group: %w", err)
		}
		gt, err := models.ParseGroupType(groupType)
		if err != nil {
			return nil, fmt.Errorf("scanning session group: %w", err)
		}
		g.GroupType = gt
		s.Groups = append(s.Groups, g)
	}
	if err := groupRows.Err(); err != nil {
		return nil, err
	}

	// Index after all appends so the pointers stay valid.
	groups := map[uuid.UUID]*models.SessionGroup{}
	for i := range s.Groups {
		groups[s.Groups[i].ID] = &s.Groups[i]
	}

	exRows, err := db.Pool.Query(ctx,
		`SELECT e.id, e.group_id, e.exercise_id, e.ord, e.rest_seconds, e.is_optional, e.notes
		 FROM session_exercises e
		 JOIN session_groups g ON e.group_id = g.id
		 WHERE g.session_id = $1 ORDER BY e.ord`, id)
	if err != nil {
		return nil, fmt.Errorf("querying session exercises: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var e models.SessionExercise
		if err := exRows.Scan(&e.ID, &e.GroupID, &e.ExerciseID, &e.Order, &e.RestSeconds, &e.IsOptional, &e.Notes); err != nil {
			return nil, fmt.Errorf("scanning session exercise: %w", err)
		}
		g, ok := groups[e.GroupID]
		if !ok {
			continue
		}
		g.Exercises = append(g.Exercises, e)
	}
	if err := exRows.Err(); err != nil {
		return nil, err
	}

	exercises := map[uuid.UUID]*models.SessionExercise{}
	for _, g := range groups {
		for i := range g.Exercises {
			exercises[g.Exercises[i].ID] = &g.Exercises[i]
		}
	}

	setRows, err := db.Pool.Query(ctx,
		`SELECT s.id, s.session_exercise_id, s.set_number, s.set_type, s.side,
		 s.is_completed, s.weight, s.reps, s.time_seconds
		 FROM logged_sets s
		 JOIN session_exercises e ON s.session_exercise_id = e.id
		 JOIN session_groups g ON e.group_id = g.id
		 WHERE g.session_id = $1 ORDER BY s.set_number`, id)
	if err != nil {
		return nil, fmt.Errorf("querying logged sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var set models.LoggedSet
		var setType string
		if err := setRows.Scan(&set.ID, &set.ExerciseID, &set.SetNumber, &setType, &set.Side,
			&set.IsCompleted, &set.Weight, &set.Reps, &set.TimeSeconds); err != nil {
			return nil, fmt.Errorf("scanning logged set: %w", err)
		}
		st, err := models.ParseSetType(setType)
		if err != nil {
			return nil, fmt.Errorf("scanning logged set: %w", err)
		}
		set.SetType = st
		e, ok := exercises[set.ExerciseID]
		if !ok {
			continue
		}
		e.Sets = append(e.Sets, set)
	}
	return &s, setRows.Err()
}
