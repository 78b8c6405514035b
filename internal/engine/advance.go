package engine

import "github.com/claude/liftplan/internal/models"

// Advance moves the cursor to the next training day: first within the current
// week, then to the first training day of the next week, then to the first
// week of the next phase. When no further position exists the cursor stays
// where it is; repeated calls on a finished program remain no-ops. That
// immovability is the program's terminal state — there is no separate flag.
//
// Returns true if the cursor moved. Lower indices are reset before the higher
// index moves, so a reader of the struct never sees a new week paired with the
// old week's day index.
func (e *Engine) Advance(p *models.Program) bool {
	phases := p.SortedPhases()
	if p.CurrentPhaseIndex < 0 || p.CurrentPhaseIndex >= len(phases) {
		return false
	}
	phase := phases[p.CurrentPhaseIndex]

	weeks := phase.SortedWeeks()
	if p.CurrentWeekIndex < 0 || p.CurrentWeekIndex >= len(weeks) {
		return false
	}
	week := weeks[p.CurrentWeekIndex]

	switch {
	case p.CurrentDayIndex+1 < len(week.TrainingDays()):
		p.CurrentDayIndex++
	case p.CurrentWeekIndex+1 < len(weeks):
		p.CurrentDayIndex = 0
		p.CurrentWeekIndex++
	case p.CurrentPhaseIndex+1 < len(phases):
		p.CurrentDayIndex = 0
		p.CurrentWeekIndex = 0
		p.CurrentPhaseIndex++
	default:
		return false
	}

	p.UpdatedAt = e.now()
	return true
}
