package repositories

import (
	"database/sql"
	"strings"
	"time"

	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/pkg/normalize"
)

// PersonRepository is the SQLite-backed PersonStore. The canonical_name
// column carries a UNIQUE constraint, so duplicate detection happens in the
// store rather than in the engine.
type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Insert creates a new person
func (r *PersonRepository) Insert(person *models.Person) error {
	now := time.Now()
	person.CreatedAt = now
	person.UpdatedAt = now

	query := `
		INSERT INTO people (
			id, name, canonical_name, phone, street, city, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		person.ID, person.Name, normalize.Canonicalize(person.Name),
		person.Phone, person.Street, person.City, person.CreatedAt, person.UpdatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return apperr.ErrDuplicateName
	}
	return err
}

// Update updates an existing person
func (r *PersonRepository) Update(person *models.Person) error {
	person.UpdatedAt = time.Now()

	query := `
		UPDATE people SET
			name = ?, canonical_name = ?, phone = ?, street = ?, city = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		person.Name, normalize.Canonicalize(person.Name),
		person.Phone, person.Street, person.City, person.UpdatedAt, person.ID,
	)
	return err
}

// FindByName retrieves a person by canonicalized name, nil if absent
func (r *PersonRepository) FindByName(name string) (*models.Person, error) {
	query := `
		SELECT id, name, phone, street, city, created_at, updated_at
		FROM people WHERE canonical_name = ?
	`
	return r.scanOne(r.db.QueryRow(query, normalize.Canonicalize(name)))
}

// FindByID retrieves a person by ID, nil if absent
func (r *PersonRepository) FindByID(id string) (*models.Person, error) {
	query := `
		SELECT id, name, phone, street, city, created_at, updated_at
		FROM people WHERE id = ?
	`
	return r.scanOne(r.db.QueryRow(query, id))
}

// FindByIDs retrieves the people with the given ids, preserving the order of ids
func (r *PersonRepository) FindByIDs(ids []string) ([]*models.Person, error) {
	people := make([]*models.Person, 0, len(ids))
	for _, id := range ids {
		person, err := r.FindByID(id)
		if err != nil {
			return nil, err
		}
		if person != nil {
			people = append(people, person)
		}
	}
	return people, nil
}

// FindAll retrieves all people in insertion order, optionally narrowed by
// phone presence
func (r *PersonRepository) FindAll(filter PhoneFilter) ([]*models.Person, error) {
	query := `
		SELECT id, name, phone, street, city, created_at, updated_at
		FROM people
	`
	switch filter {
	case PhoneYes:
		query += ` WHERE phone != ''`
	case PhoneNo:
		query += ` WHERE phone = ''`
	}
	query += ` ORDER BY rowid`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		person := &models.Person{}
		err := rows.Scan(
			&person.ID, &person.Name, &person.Phone, &person.Street, &person.City,
			&person.CreatedAt, &person.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	return people, rows.Err()
}

// Count returns the number of people
func (r *PersonRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM people`).Scan(&count)
	return count, err
}

func (r *PersonRepository) scanOne(row *sql.Row) (*models.Person, error) {
	person := &models.Person{}
	err := row.Scan(
		&person.ID, &person.Name, &person.Phone, &person.Street, &person.City,
		&person.CreatedAt, &person.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return person, nil
}
