package repositories

import (
	"database/sql"
	"strings"
	"time"

	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/pkg/normalize"
)

// AuthorRepository is the SQLite-backed AuthorStore. The name column is
// stored canonicalized and UNIQUE.
type AuthorRepository struct {
	db *sql.DB
}

func NewAuthorRepository(db *sql.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

// Insert creates a new author. The name must already be canonicalized.
func (r *AuthorRepository) Insert(author *models.Author) error {
	now := time.Now()
	author.CreatedAt = now
	author.UpdatedAt = now

	query := `
		INSERT INTO authors (
			id, name, born, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, author.ID, author.Name, author.Born, author.CreatedAt, author.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return apperr.ErrDuplicateName
	}
	return err
}

// Update updates an existing author
func (r *AuthorRepository) Update(author *models.Author) error {
	author.UpdatedAt = time.Now()

	query := `
		UPDATE authors SET
			name = ?, born = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, author.Name, author.Born, author.UpdatedAt, author.ID)
	return err
}

// FindByName retrieves an author by canonicalized name, nil if absent
func (r *AuthorRepository) FindByName(name string) (*models.Author, error) {
	query := `
		SELECT id, name, born, created_at, updated_at
		FROM authors WHERE name = ?
	`
	return r.scanOne(r.db.QueryRow(query, normalize.Canonicalize(name)))
}

// FindByID retrieves an author by ID, nil if absent
func (r *AuthorRepository) FindByID(id string) (*models.Author, error) {
	query := `
		SELECT id, name, born, created_at, updated_at
		FROM authors WHERE id = ?
	`
	return r.scanOne(r.db.QueryRow(query, id))
}

// FindOrCreate gets the author stored under the canonicalized name or
// creates one with an unknown birth year. If a concurrent call wins the
// insert, the UNIQUE constraint fires and the existing row is re-read, so
// at most one author ever exists per canonical name.
func (r *AuthorRepository) FindOrCreate(name string) (*models.Author, error) {
	canonical := normalize.Canonicalize(name)

	author, err := r.FindByName(canonical)
	if err != nil {
		return nil, err
	}
	if author != nil {
		return author, nil
	}

	author = models.NewAuthor(canonical)
	if err := r.Insert(author); err != nil {
		if err == apperr.ErrDuplicateName {
			// Lost the race, the row exists now.
			return r.FindByName(canonical)
		}
		return nil, err
	}
	return author, nil
}

// FindAll retrieves all authors in insertion order
func (r *AuthorRepository) FindAll() ([]*models.Author, error) {
	query := `
		SELECT id, name, born, created_at, updated_at
		FROM authors ORDER BY rowid
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []*models.Author
	for rows.Next() {
		author := &models.Author{}
		err := rows.Scan(&author.ID, &author.Name, &author.Born, &author.CreatedAt, &author.UpdatedAt)
		if err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}

	return authors, rows.Err()
}

// Count returns the number of authors
func (r *AuthorRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM authors`).Scan(&count)
	return count, err
}

func (r *AuthorRepository) scanOne(row *sql.Row) (*models.Author, error) {
	author := &models.Author{}
	err := row.Scan(&author.ID, &author.Name, &author.Born, &author.CreatedAt, &author.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return author, nil
}
