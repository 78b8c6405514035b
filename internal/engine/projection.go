package engine

import "github.com/claude/liftplan/internal/models"

// CurrentPhase returns the phase the cursor points at, or nil when the index
// is out of range. Projections are recomputed from the live graph on every
// call and are never stored.
func CurrentPhase(p *models.Program) *models.Phase {
	phases := p.SortedPhases()
	if p.CurrentPhaseIndex < 0 || p.CurrentPhaseIndex >= len(phases) {
		return nil
	}
	phase := phases[p.CurrentPhaseIndex]
	return &phase
}

// CurrentWeek returns the week the cursor points at, or nil.
func CurrentWeek(p *models.Program) *models.Week {
	phase := CurrentPhase(p)
	if phase == nil {
		return nil
	}
	weeks := phase.SortedWeeks()
	if p.CurrentWeekIndex < 0 || p.CurrentWeekIndex >= len(weeks) {
		return nil
	}
	week := weeks[p.CurrentWeekIndex]
	return &week
}

// CurrentDay returns the training day the cursor points at, or nil. The day
// index counts only training-typed days within the current week.
func CurrentDay(p *models.Program) *models.ProgramDay {
	week := CurrentWeek(p)
	if week == nil {
		return nil
	}
	days := week.TrainingDays()
	if p.CurrentDayIndex < 0 || p.CurrentDayIndex >= len(days) {
		return nil
	}
	day := days[p.CurrentDayIndex]
	return &day
}
