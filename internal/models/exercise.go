package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is a catalog entry. Templates and sessions reference it by ID and
// never own it; importing a program resolves exercise names against this
// catalog.
type Exercise struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscle_group,omitempty"`
	Equipment   string    `json:"equipment,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
