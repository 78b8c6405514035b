package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// WorkoutSession is one performed or skipped workout occurrence. Its group,
// exercise and set graph is materialized from a WorkoutTemplate but owns its
// own storage: mutating a session never touches the template it came from.
// Only the catalog exercise references are shared. Once finalized a session is
// immutable history.
type WorkoutSession struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	StartTime  time.Time     `json:"start_time"`
	EndTime    *time.Time    `json:"end_time,omitempty"`
	Status     SessionStatus `json:"status"`
	WasSkipped bool          `json:"was_skipped"`
	Rating     *int          `json:"rating,omitempty"`
	Notes      string        `json:"notes,omitempty"`

	// ProgramDayID points at the plan day this session was performed (or
	// skipped) for. Non-owning: the day outlives and predates the session.
	ProgramDayID *uuid.UUID `json:"program_day_id,omitempty"`
	ProgramID    *uuid.UUID `json:"program_id,omitempty"`

	Groups []SessionGroup `json:"exercise_groups,omitempty"`
}

// SessionGroup mirrors an ExerciseGroup at materialization time.
type SessionGroup struct {
	ID        uuid.UUID         `json:"id"`
	SessionID uuid.UUID         `json:"session_id"`
	GroupType GroupType         `json:"group_type"`
	Order     int               `json:"order"`
	Name      string            `json:"name,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	Exercises []SessionExercise `json:"exercises,omitempty"`
}

// SessionExercise mirrors a WorkoutExercise; ExerciseID is the same catalog
// reference the template holds.
type SessionExercise struct {
	ID          uuid.UUID   `json:"id"`
	GroupID     uuid.UUID   `json:"group_id"`
	ExerciseID  uuid.UUID   `json:"exercise_id"`
	Order       int         `json:"order"`
	RestSeconds int         `json:"rest_seconds"`
	IsOptional  bool        `json:"is_optional"`
	Notes       string      `json:"notes,omitempty"`
	Sets        []LoggedSet `json:"sets,omitempty"`
}

// LoggedSet is the mutable counterpart of a SetTemplate. Reps and TimeSeconds
// start at the template's targets and are overwritten as the user logs actuals.
type LoggedSet struct {
	ID          uuid.UUID `json:"id"`
	ExerciseID  uuid.UUID `json:"session_exercise_id"`
	SetNumber   int       `json:"set_number"`
	SetType     SetType   `json:"set_type"`
	Side        *string   `json:"side,omitempty"`
	IsCompleted bool      `json:"is_completed"`
	Weight      *float64  `json:"weight,omitempty"`
	Reps        *int      `json:"reps,omitempty"`
	TimeSeconds *int      `json:"time_seconds,omitempty"`
}

// SortedGroups returns the session's groups ordered by Order.
func (s *WorkoutSession) SortedGroups() []SessionGroup {
	groups := make([]SessionGroup, len(s.Groups))
	copy(groups, s.Groups)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Order < groups[j].Order })
	return groups
}
