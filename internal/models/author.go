package models

import (
	"time"

	"github.com/google/uuid"
)

// Author is a library author. Name is stored canonicalized (lowercased and
// trimmed), so equality on Name is equality of identity. Born is nil when the
// birth year is unknown. BookCount is derived at read time from the book
// collection and never persisted.
type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Born      *int      `json:"born,omitempty"`
	BookCount int       `json:"bookCount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAuthor creates a new Author with a generated UUID. The caller is
// responsible for passing an already-canonicalized name.
func NewAuthor(name string) *Author {
	return &Author{
		ID:   uuid.New().String(),
		Name: name,
	}
}
