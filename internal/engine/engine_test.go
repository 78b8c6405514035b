package engine

import (
	"time"

	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
)

// testNow is a fixed Tuesday used across engine tests (2024-01-02).
var testNow = time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return NewWithNow(func() time.Time { return testNow })
}

func newWeek(num int, types ...models.DayType) models.Week {
	w := models.Week{ID: uuid.New(), WeekNumber: num}
	for i, dt := range types {
		day := models.ProgramDay{
			ID:        uuid.New(),
			WeekID:    w.ID,
			DayNumber: i + 1,
			Name:      "Day " + string(rune('A'+i)),
			DayType:   dt,
		}
		w.Days = append(w.Days, day)
	}
	return w
}

func newPhase(order int, weeks ...models.Week) models.Phase {
	return models.Phase{ID: uuid.New(), Order: order, Name: "Phase", Weeks: weeks}
}

func newProgram(phases ...models.Phase) *models.Program {
	return &models.Program{
		ID:     uuid.New(),
		Name:   "Test Program",
		Phases: phases,
	}
}

// trainingWeek builds a week of n training days.
func trainingWeek(num, n int) models.Week {
	types := make([]models.DayType, n)
	for i := range types {
		types[i] = models.DayTraining
	}
	return newWeek(num, types...)
}

func cursor(p *models.Program) [3]int {
	return [3]int{p.CurrentPhaseIndex, p.CurrentWeekIndex, p.CurrentDayIndex}
}
