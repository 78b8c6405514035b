package engine

import (
	"time"

	"github.com/claude/liftplan/internal/models"
)

// IsScheduledToday reports whether the program is due on the current date.
// An empty scheduled-day set means the program is due every day.
func (e *Engine) IsScheduledToday(p *models.Program) bool {
	return e.IsScheduledOn(p, e.now())
}

// IsScheduledOn reports whether the program is due on the given date.
func (e *Engine) IsScheduledOn(p *models.Program, t time.Time) bool {
	if len(p.ScheduledDays) == 0 {
		return true
	}
	wd := t.Weekday()
	for _, d := range p.ScheduledDays {
		if d == wd {
			return true
		}
	}
	return false
}

// NextScheduledDate returns the next date on or after tomorrow on which the
// program is due. With an empty scheduled-day set that is simply tomorrow.
// Returns nil only if a non-empty set matches no weekday within a full week,
// which a normalized set cannot produce.
func (e *Engine) NextScheduledDate(p *models.Program) *time.Time {
	today := e.now()
	if len(p.ScheduledDays) == 0 {
		next := today.AddDate(0, 0, 1)
		return &next
	}
	for offset := 1; offset <= 7; offset++ {
		candidate := today.AddDate(0, 0, offset)
		wd := candidate.Weekday()
		for _, d := range p.ScheduledDays {
			if d == wd {
				return &candidate
			}
		}
	}
	return nil
}
