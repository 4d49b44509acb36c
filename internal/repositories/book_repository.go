package repositories

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/alidemir/catalog/internal/models"
)

// BookRepository is the SQLite-backed BookStore. Genres are stored as a JSON
// array in a single column; genre filtering happens in the service layer.
type BookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

// Insert creates a new book
func (r *BookRepository) Insert(book *models.Book) error {
	book.CreatedAt = time.Now()

	genres, err := json.Marshal(book.Genres)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO books (
			id, title, published, author_id, genres, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, book.ID, book.Title, book.Published, book.AuthorID, string(genres), book.CreatedAt)
	return err
}

// FindAll retrieves all books in insertion order
func (r *BookRepository) FindAll() ([]*models.Book, error) {
	query := `
		SELECT id, title, published, author_id, genres, created_at
		FROM books ORDER BY rowid
	`
	return r.queryBooks(query)
}

// FindByAuthorID retrieves all books referencing the given author
func (r *BookRepository) FindByAuthorID(authorID string) ([]*models.Book, error) {
	query := `
		SELECT id, title, published, author_id, genres, created_at
		FROM books WHERE author_id = ? ORDER BY rowid
	`
	return r.queryBooks(query, authorID)
}

// CountByAuthorID returns the number of books referencing the given author
func (r *BookRepository) CountByAuthorID(authorID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM books WHERE author_id = ?`, authorID).Scan(&count)
	return count, err
}

// Count returns the number of books
func (r *BookRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM books`).Scan(&count)
	return count, err
}

func (r *BookRepository) queryBooks(query string, args ...interface{}) ([]*models.Book, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*models.Book
	for rows.Next() {
		book := &models.Book{}
		var genres string
		err := rows.Scan(&book.ID, &book.Title, &book.Published, &book.AuthorID, &genres, &book.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(genres), &book.Genres); err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, rows.Err()
}
