package engine

import (
	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
)

// SkipWorkout records the current training day as skipped and advances the
// cursor. Exactly one cancelled session is produced per skip — even though no
// sets were logged — so collaborators computing streaks or attendance from
// session history see every scheduled occurrence. The caller persists the
// returned session.
//
// Returns nil without advancing when the cursor resolves to no day.
func (e *Engine) SkipWorkout(p *models.Program) *models.WorkoutSession {
	day := CurrentDay(p)
	if day == nil {
		return nil
	}

	name := day.Name
	if day.Workout != nil && day.Workout.Name != "" {
		name = day.Workout.Name
	}

	now := e.now()
	session := &models.WorkoutSession{
		ID:           uuid.New(),
		Name:         name,
		StartTime:    now,
		EndTime:      &now,
		Status:       models.SessionCancelled,
		WasSkipped:   true,
		ProgramDayID: &day.ID,
		ProgramID:    &p.ID,
	}

	e.Advance(p)
	return session
}
