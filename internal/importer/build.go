package importer

import (
	"context"
	"fmt"

	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
)

// ExerciseResolver maps a catalog exercise name to its ID. Unresolved names
// return an error.
type ExerciseResolver func(ctx context.Context, name string) (uuid.UUID, error)

// Build converts a parsed document into a Program graph, validating every
// enumeration value and resolving exercise references through the resolver.
// The resulting graph matches the shape the engine operates on: explicit
// orders preserved as given, one optional template per day.
func Build(ctx context.Context, doc *ProgramDoc, resolve ExerciseResolver) (*models.Program, error) {
	p := &models.Program{
		ID:          uuid.New(),
		Name:        doc.Name,
		Description: doc.Description,
	}

	for pi, phaseDoc := range doc.Phases {
		phase := models.Phase{
			ID:          uuid.New(),
			ProgramID:   p.ID,
			Order:       phaseDoc.Order,
			Name:        phaseDoc.Name,
			Description: phaseDoc.Description,
		}
		for wi, weekDoc := range phaseDoc.Weeks {
			week := models.Week{
				ID:         uuid.New(),
				PhaseID:    phase.ID,
				WeekNumber: weekDoc.WeekNumber,
				Notes:      weekDoc.Notes,
			}
			for di, dayDoc := range weekDoc.Days {
				path := fmt.Sprintf("phases[%d].weeks[%d].days[%d]", pi, wi, di)
				dayType, err := models.ParseDayType(dayDoc.DayType)
				if err != nil {
					return nil, &ImportError{Kind: KindInvalidEnum, Path: path + ".dayType", Err: err}
				}
				day := models.ProgramDay{
					ID:        uuid.New(),
					WeekID:    week.ID,
					DayNumber: dayDoc.DayNumber,
					Name:      dayDoc.Name,
					DayType:   dayType,
				}
				if dayDoc.Workout != nil {
					workout, err := buildWorkout(ctx, day.ID, dayDoc.Workout, path+".workout", resolve)
					if err != nil {
						return nil, err
					}
					day.Workout = workout
				}
				week.Days = append(week.Days, day)
			}
			phase.Weeks = append(phase.Weeks, week)
		}
		p.Phases = append(p.Phases, phase)
	}

	return p, nil
}

func buildWorkout(ctx context.Context, dayID uuid.UUID, doc *WorkoutDoc, path string, resolve ExerciseResolver) (*models.WorkoutTemplate, error) {
	t := &models.WorkoutTemplate{
		ID:               uuid.New(),
		DayID:            dayID,
		Name:             doc.Name,
		Description:      doc.Description,
		EstimatedMinutes: doc.EstimatedMinutes,
	}

	for gi, groupDoc := range doc.ExerciseGroups {
		groupPath := fmt.Sprintf("%s.exerciseGroups[%d]", path, gi)
		groupType, err := models.ParseGroupType(groupDoc.GroupType)
		if err != nil {
			return nil, &ImportError{Kind: KindInvalidEnum, Path: groupPath + ".groupType", Err: err}
		}
		group := models.ExerciseGroup{
			ID:         uuid.New(),
			TemplateID: t.ID,
			GroupType:  groupType,
			Order:      groupDoc.Order,
			Name:       groupDoc.Name,
			Notes:      groupDoc.Notes,
		}
		for ei, exDoc := range groupDoc.Exercises {
			exPath := fmt.Sprintf("%s.exercises[%d]", groupPath, ei)
			exerciseID, err := resolve(ctx, exDoc.Exercise)
			if err != nil {
				return nil, &ImportError{Kind: KindUnresolvedExercise, Path: exPath + ".exercise", Name: exDoc.Exercise, Err: err}
			}
			ex := models.WorkoutExercise{
				ID:          uuid.New(),
				GroupID:     group.ID,
				ExerciseID:  exerciseID,
				Order:       exDoc.Order,
				RestSeconds: exDoc.RestSeconds,
				IsOptional:  exDoc.IsOptional,
				Notes:       exDoc.Notes,
			}
			for si, setDoc := range exDoc.Sets {
				setType, err := models.ParseSetType(setDoc.SetType)
				if err != nil {
					return nil, &ImportError{Kind: KindInvalidEnum, Path: fmt.Sprintf("%s.sets[%d].setType", exPath, si), Err: err}
				}
				ex.Sets = append(ex.Sets, models.SetTemplate{
					ID:         uuid.New(),
					ExerciseID: ex.ID,
					SetNumber:  setDoc.SetNumber,
					SetType:    setType,
					TargetReps: setDoc.TargetReps,
					TargetTime: setDoc.TargetTime,
					Side:       setDoc.Side,
				})
			}
			group.Exercises = append(group.Exercises, ex)
		}
		t.Groups = append(t.Groups, group)
	}

	return t, nil
}
