// Package model defines domain entities for the application.
package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a persisted user record.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser holds a sanitized create payload that passed validation and is
// ready to persist.
type NewUser struct {
	Name  string
	Email string
}

// UserChanges holds a validated partial update. A nil field means "keep the
// current value"; a set field is sanitized and valid.
type UserChanges struct {
	Name  *string
	Email *string
}
