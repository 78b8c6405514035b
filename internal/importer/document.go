package importer

import (
	"encoding/json"
	"fmt"
)

// ProgramDoc is the JSON import contract. Order, week and day numbers are
// explicit and gap-tolerant; exercises are referenced by catalog name.
type ProgramDoc struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Phases      []PhaseDoc `json:"phases"`
}

type PhaseDoc struct {
	Order       int       `json:"order"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Weeks       []WeekDoc `json:"weeks"`
}

type WeekDoc struct {
	WeekNumber int      `json:"weekNumber"`
	Notes      string   `json:"notes"`
	Days       []DayDoc `json:"days"`
}

type DayDoc struct {
	DayNumber int         `json:"dayNumber"`
	Name      string      `json:"name"`
	DayType   string      `json:"dayType"`
	Workout   *WorkoutDoc `json:"workout,omitempty"`
}

type WorkoutDoc struct {
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	ExerciseGroups   []GroupDoc `json:"exerciseGroups"`
}

type GroupDoc struct {
	GroupType string        `json:"groupType"`
	Order     int           `json:"order"`
	Name      string        `json:"name"`
	Notes     string        `json:"notes"`
	Exercises []ExerciseDoc `json:"exercises"`
}

type ExerciseDoc struct {
	Exercise    string   `json:"exercise"` // catalog name
	Order       int      `json:"order"`
	RestSeconds int      `json:"restSeconds"`
	IsOptional  bool     `json:"isOptional"`
	Notes       string   `json:"notes"`
	Sets        []SetDoc `json:"sets"`
}

type SetDoc struct {
	SetNumber  int     `json:"setNumber"`
	SetType    string  `json:"setType"`
	TargetReps *int    `json:"targetReps,omitempty"`
	TargetTime *int    `json:"targetTime,omitempty"`
	Side       *string `json:"side,omitempty"`
}

// Parse decodes a program document, rejecting empty or phase-less documents.
func Parse(data []byte) (*ProgramDoc, error) {
	var doc ProgramDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ImportError{Kind: KindParse, Err: err}
	}
	if doc.Name == "" {
		return nil, &ImportError{Kind: KindParse, Path: "name", Err: fmt.Errorf("program name is required")}
	}
	if len(doc.Phases) == 0 {
		return nil, &ImportError{Kind: KindParse, Path: "phases", Err: fmt.Errorf("at least one phase is required")}
	}
	return &doc, nil
}
