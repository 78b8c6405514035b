package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Program is a complete training plan: ordered Phases of Weeks of Days, plus
// the mutable progression state (cursor, schedule, pause fields). The cursor
// and pause fields change only through the engine package; the plan hierarchy
// itself is created once by authoring or import and is immutable afterwards.
type Program struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`

	IsActive      bool           `json:"is_active"`
	StartDate     *time.Time     `json:"start_date,omitempty"`
	ScheduledDays []time.Weekday `json:"scheduled_days"`

	CurrentPhaseIndex int `json:"current_phase_index"`
	CurrentWeekIndex  int `json:"current_week_index"`
	CurrentDayIndex   int `json:"current_day_index"`

	PausedUntil     *time.Time  `json:"paused_until,omitempty"`
	PauseResumeMode *ResumeMode `json:"pause_resume_mode,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Phases []Phase `json:"phases,omitempty"`
}

// Phase is one block of a Program. Order defines the sequence, not slice position.
type Phase struct {
	ID          uuid.UUID `json:"id"`
	ProgramID   uuid.UUID `json:"program_id"`
	Order       int       `json:"order"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Weeks       []Week    `json:"weeks,omitempty"`
}

// Week is one week within a Phase, ordered by WeekNumber.
type Week struct {
	ID         uuid.UUID    `json:"id"`
	PhaseID    uuid.UUID    `json:"phase_id"`
	WeekNumber int          `json:"week_number"`
	Notes      string       `json:"notes,omitempty"`
	Days       []ProgramDay `json:"days,omitempty"`
}

// ProgramDay is one planned day, ordered by DayNumber. Training days may carry
// a WorkoutTemplate; rest/recovery/deload days never do anything at advancement.
type ProgramDay struct {
	ID        uuid.UUID        `json:"id"`
	WeekID    uuid.UUID        `json:"week_id"`
	DayNumber int              `json:"day_number"`
	Name      string           `json:"name"`
	DayType   DayType          `json:"day_type"`
	Workout   *WorkoutTemplate `json:"workout,omitempty"`
}

// WorkoutTemplate is the reusable exercise/set plan attached to a training day.
// Sessions are materialized from it; the template itself is never mutated by a
// workout.
type WorkoutTemplate struct {
	ID               uuid.UUID       `json:"id"`
	DayID            uuid.UUID       `json:"day_id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	Groups           []ExerciseGroup `json:"exercise_groups,omitempty"`
}

// ExerciseGroup bundles exercises performed together (straight sets, supersets,
// circuits, ...), ordered by Order.
type ExerciseGroup struct {
	ID         uuid.UUID         `json:"id"`
	TemplateID uuid.UUID         `json:"template_id"`
	GroupType  GroupType         `json:"group_type"`
	Order      int               `json:"order"`
	Name       string            `json:"name,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	Exercises  []WorkoutExercise `json:"exercises,omitempty"`
}

// WorkoutExercise is one exercise slot in a template group. ExerciseID is a
// non-owning reference into the exercise catalog.
type WorkoutExercise struct {
	ID          uuid.UUID     `json:"id"`
	GroupID     uuid.UUID     `json:"group_id"`
	ExerciseID  uuid.UUID     `json:"exercise_id"`
	Order       int           `json:"order"`
	RestSeconds int           `json:"rest_seconds"`
	IsOptional  bool          `json:"is_optional"`
	Notes       string        `json:"notes,omitempty"`
	Sets        []SetTemplate `json:"sets,omitempty"`
}

// SetTemplate is one prescribed set: a target, never a result.
type SetTemplate struct {
	ID          uuid.UUID `json:"id"`
	ExerciseID  uuid.UUID `json:"workout_exercise_id"`
	SetNumber   int       `json:"set_number"`
	SetType     SetType   `json:"set_type"`
	TargetReps  *int      `json:"target_reps,omitempty"`
	TargetTime  *int      `json:"target_time,omitempty"`
	Side        *string   `json:"side,omitempty"`
}

// SortedPhases returns the program's phases ordered by their explicit Order
// field. Order values are gap-tolerant; ties keep input order.
func (p *Program) SortedPhases() []Phase {
	phases := make([]Phase, len(p.Phases))
	copy(phases, p.Phases)
	sort.SliceStable(phases, func(i, j int) bool { return phases[i].Order < phases[j].Order })
	return phases
}

// SortedWeeks returns the phase's weeks ordered by WeekNumber.
func (ph *Phase) SortedWeeks() []Week {
	weeks := make([]Week, len(ph.Weeks))
	copy(weeks, ph.Weeks)
	sort.SliceStable(weeks, func(i, j int) bool { return weeks[i].WeekNumber < weeks[j].WeekNumber })
	return weeks
}

// SortedDays returns the week's days ordered by DayNumber.
func (w *Week) SortedDays() []ProgramDay {
	days := make([]ProgramDay, len(w.Days))
	copy(days, w.Days)
	sort.SliceStable(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })
	return days
}

// TrainingDays returns the week's training-typed days in DayNumber order.
// This is the list the cursor's day index counts over; rest, active recovery
// and deload days are invisible to it.
func (w *Week) TrainingDays() []ProgramDay {
	var days []ProgramDay
	for _, d := range w.SortedDays() {
		if d.DayType == DayTraining {
			days = append(days, d)
		}
	}
	return days
}

// SortedGroups returns the template's exercise groups ordered by Order.
func (t *WorkoutTemplate) SortedGroups() []ExerciseGroup {
	groups := make([]ExerciseGroup, len(t.Groups))
	copy(groups, t.Groups)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Order < groups[j].Order })
	return groups
}

// SortedExercises returns the group's exercises ordered by Order.
func (g *ExerciseGroup) SortedExercises() []WorkoutExercise {
	exs := make([]WorkoutExercise, len(g.Exercises))
	copy(exs, g.Exercises)
	sort.SliceStable(exs, func(i, j int) bool { return exs[i].Order < exs[j].Order })
	return exs
}

// NormalizeScheduledDays deduplicates and sorts a weekday set, dropping values
// outside 0–6. The empty set is a valid, distinct state meaning "every day".
func NormalizeScheduledDays(days []time.Weekday) []time.Weekday {
	seen := map[time.Weekday]bool{}
	var out []time.Weekday
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
