package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrExerciseNotFound is returned when a catalog lookup by name misses.
var ErrExerciseNotFound = errors.New("exercise not found")

// UpsertExercise inserts a catalog exercise or returns the existing row's ID
// when the name is already taken. Names are the import contract's resolution
// key, so they are unique.
func (db *DB) UpsertExercise(ctx context.Context, ex *models.Exercise) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO exercises (id, name, muscle_group, equipment, notes)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (name) DO UPDATE SET
		 muscle_group = EXCLUDED.muscle_group, equipment = EXCLUDED.equipment
		 RETURNING id`,
		ex.ID, ex.Name, ex.MuscleGroup, ex.Equipment, ex.Notes).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("upserting exercise %q: %w", ex.Name, err)
	}
	return id, nil
}

// GetExerciseByName resolves a catalog exercise by its exact name.
func (db *DB) GetExerciseByName(ctx context.Context, name string) (*models.Exercise, error) {
	var ex models.Exercise
	err := db.Pool.QueryRow(ctx,
		`SELECT id, name, muscle_group, equipment, notes, created_at
		 FROM exercises WHERE name = $1`, name).
		Scan(&ex.ID, &ex.Name, &ex.MuscleGroup, &ex.Equipment, &ex.Notes, &ex.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying exercise %q: %w", name, err)
	}
	return &ex, nil
}

// ListExercises returns the whole catalog ordered by name.
func (db *DB) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, muscle_group, equipment, notes, created_at
		 FROM exercises ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.MuscleGroup, &ex.Equipment, &ex.Notes, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, ex)
	}
	return result, rows.Err()
}
