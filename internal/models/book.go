package models

import (
	"time"

	"github.com/google/uuid"
)

// Book references its Author by id. Title and genres are stored
// canonicalized. Genres keeps first-occurrence order with duplicates removed.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Published int       `json:"published"`
	AuthorID  string    `json:"author_id"`
	Genres    []string  `json:"genres"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBook creates a new Book with a generated UUID. Title and genres must
// already be canonicalized.
func NewBook(title string, published int, authorID string, genres []string) *Book {
	return &Book{
		ID:        uuid.New().String(),
		Title:     title,
		Published: published,
		AuthorID:  authorID,
		Genres:    genres,
	}
}

// HasGenre reports whether the book carries the given canonical genre.
func (b *Book) HasGenre(genre string) bool {
	for _, g := range b.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
