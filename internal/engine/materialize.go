package engine

import (
	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
)

// MaterializeSession deep-copies the day's workout template into a fresh,
// in-progress WorkoutSession. Every group, exercise and set gets its own
// identity and storage; only the catalog exercise references are shared with
// the template. Targets become the initial logged values (target reps → reps,
// target time → time), all sets start uncompleted with no weight.
//
// Returns nil when the day is nil or carries no template.
func (e *Engine) MaterializeSession(p *models.Program, day *models.ProgramDay) *models.WorkoutSession {
	if day == nil || day.Workout == nil {
		return nil
	}
	tmpl := day.Workout

	name := tmpl.Name
	if name == "" {
		name = day.Name
	}

	session := &models.WorkoutSession{
		ID:           uuid.New(),
		Name:         name,
		StartTime:    e.now(),
		Status:       models.SessionInProgress,
		ProgramDayID: &day.ID,
	}
	if p != nil {
		session.ProgramID = &p.ID
	}

	for _, group := range tmpl.SortedGroups() {
		sg := models.SessionGroup{
			ID:        uuid.New(),
			SessionID: session.ID,
			GroupType: group.GroupType,
			Order:     group.Order,
			Name:      group.Name,
			Notes:     group.Notes,
		}
		for _, ex := range group.SortedExercises() {
			se := models.SessionExercise{
				ID:          uuid.New(),
				GroupID:     sg.ID,
				ExerciseID:  ex.ExerciseID,
				Order:       ex.Order,
				RestSeconds: ex.RestSeconds,
				IsOptional:  ex.IsOptional,
				Notes:       ex.Notes,
			}
			for _, st := range ex.Sets {
				ls := models.LoggedSet{
					ID:         uuid.New(),
					ExerciseID: se.ID,
					SetNumber:  st.SetNumber,
					SetType:    st.SetType,
				}
				if st.Side != nil {
					side := *st.Side
					ls.Side = &side
				}
				if st.TargetReps != nil {
					reps := *st.TargetReps
					ls.Reps = &reps
				}
				if st.TargetTime != nil {
					secs := *st.TargetTime
					ls.TimeSeconds = &secs
				}
				se.Sets = append(se.Sets, ls)
			}
			sg.Exercises = append(sg.Exercises, se)
		}
		session.Groups = append(session.Groups, sg)
	}

	return session
}
