package engine

import (
	"time"

	"github.com/claude/liftplan/internal/models"
)

// Pause freezes the program until the given date. The cursor is untouched;
// mode (optional) decides where Resume places it.
func (e *Engine) Pause(p *models.Program, until time.Time, mode *models.ResumeMode) {
	p.PausedUntil = &until
	p.PauseResumeMode = mode
	p.UpdatedAt = e.now()
}

// ExtendPause moves the pause end date without touching anything else.
func (e *Engine) ExtendPause(p *models.Program, newUntil time.Time) {
	p.PausedUntil = &newUntil
}

// Resume clears the pause state and repositions the cursor according to the
// stored resume mode. With no mode set the cursor is left where it was.
//
// go_back_one_week at the very first week of the very first phase performs no
// cursor movement at all; the pause fields are still cleared. That matches the
// source behavior and is deliberately not clamped or wrapped.
func (e *Engine) Resume(p *models.Program) {
	mode := p.PauseResumeMode
	p.PausedUntil = nil
	p.PauseResumeMode = nil
	p.UpdatedAt = e.now()

	if mode == nil {
		return
	}

	switch *mode {
	case models.ResumeContinue:
		// Cursor unchanged.
	case models.ResumeRestartWeek:
		p.CurrentDayIndex = 0
	case models.ResumeBackOneWeek:
		switch {
		case p.CurrentWeekIndex > 0:
			p.CurrentDayIndex = 0
			p.CurrentWeekIndex--
		case p.CurrentPhaseIndex > 0:
			phases := p.SortedPhases()
			weekCount := len(phases[p.CurrentPhaseIndex-1].Weeks)
			p.CurrentDayIndex = 0
			p.CurrentWeekIndex = max(0, weekCount-1)
			p.CurrentPhaseIndex--
		}
		// Already at the first week of the first phase: no movement.
	}
}
