package engine

import (
	"time"

	"github.com/claude/liftplan/internal/models"
)

// Activate marks the program active, stamps the start date, places the cursor
// at the given triple and installs the weekly schedule (normalized per the
// weekday-set invariant). Any pause state is cleared. The caller is
// responsible for supplying an in-range triple; activation does not validate
// it — a bad cursor simply makes the dependent operations no-op until fixed.
func (e *Engine) Activate(p *models.Program, phaseIndex, weekIndex, dayIndex int, scheduledDays []time.Weekday) {
	now := e.now()
	p.IsActive = true
	p.StartDate = &now
	p.CurrentPhaseIndex = phaseIndex
	p.CurrentWeekIndex = weekIndex
	p.CurrentDayIndex = dayIndex
	p.ScheduledDays = models.NormalizeScheduledDays(scheduledDays)
	p.PausedUntil = nil
	p.PauseResumeMode = nil
	p.UpdatedAt = now
}

// Deactivate clears the active flag and any pause state. The cursor is left
// alone so a later activation can continue from the same place.
func (e *Engine) Deactivate(p *models.Program) {
	p.IsActive = false
	p.PausedUntil = nil
	p.PauseResumeMode = nil
	p.UpdatedAt = e.now()
}
