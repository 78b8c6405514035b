package engine

import "github.com/claude/liftplan/internal/models"

// CompleteWorkout binds the session to the program's current day and advances
// the cursor. Binding happens before advancement so history records the plan
// day that was actually performed, even if the plan changes later. With an
// unresolvable cursor the session's existing day reference is kept and
// advancement no-ops.
func (e *Engine) CompleteWorkout(p *models.Program, session *models.WorkoutSession) {
	if day := CurrentDay(p); day != nil && session != nil {
		session.ProgramDayID = &day.ID
	}
	e.Advance(p)
}
