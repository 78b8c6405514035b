// Package engine implements the program progression and scheduling engine:
// the cursor advancement state machine, the schedule evaluator, the
// activation/pause/resume/skip controllers and the session materializer.
//
// All transitions are synchronous, in-memory mutations of a *models.Program.
// The engine assumes a single logical owner of the graph at a time and does no
// locking; callers persist the resulting state. Operations that would
// dereference a missing phase/week/day are silent no-ops rather than errors —
// the cursor can never be pushed out of range by the engine's own transitions.
package engine

import "time"

// Engine performs progression transitions. The clock is injectable so that
// schedule and pause behavior can be tested against fixed dates.
type Engine struct {
	now func() time.Time
}

// New creates an Engine using the wall clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithNow creates an Engine with a custom clock source.
func NewWithNow(now func() time.Time) *Engine {
	return &Engine{now: now}
}
