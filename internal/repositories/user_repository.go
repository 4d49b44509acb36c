package repositories

import (
	"database/sql"
	"strings"
	"time"

	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/models"
)

// UserRepository is the SQLite-backed UserStore. Friend links live in the
// user_friends join table; no friend is ever removed, so syncing is
// insert-or-ignore.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Insert creates a new user
func (r *UserRepository) Insert(user *models.User) error {
	user.CreatedAt = time.Now()

	query := `
		INSERT INTO users (
			id, username, password_hash, favourite_genre, created_at
		) VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, user.ID, user.Username, user.PasswordHash, user.FavouriteGenre, user.CreatedAt)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return apperr.ErrDuplicateUsername
	}
	if err != nil {
		return err
	}
	return r.syncFriends(user)
}

// Update updates an existing user and syncs the friend set
func (r *UserRepository) Update(user *models.User) error {
	query := `
		UPDATE users SET
			favourite_genre = ?
		WHERE id = ?
	`

	if _, err := r.db.Exec(query, user.FavouriteGenre, user.ID); err != nil {
		return err
	}
	return r.syncFriends(user)
}

// FindByUsername retrieves a user by exact username, nil if absent
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, favourite_genre, created_at
		FROM users WHERE username = ?
	`
	return r.scanOne(r.db.QueryRow(query, username))
}

// FindByID retrieves a user by ID, nil if absent
func (r *UserRepository) FindByID(id string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, favourite_genre, created_at
		FROM users WHERE id = ?
	`
	return r.scanOne(r.db.QueryRow(query, id))
}

func (r *UserRepository) syncFriends(user *models.User) error {
	for _, personID := range user.Friends {
		_, err := r.db.Exec(
			`INSERT OR IGNORE INTO user_friends (user_id, person_id) VALUES (?, ?)`,
			user.ID, personID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.FavouriteGenre, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`SELECT person_id FROM user_friends WHERE user_id = ? ORDER BY rowid`, user.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	user.Friends = []string{}
	for rows.Next() {
		var personID string
		if err := rows.Scan(&personID); err != nil {
			return nil, err
		}
		user.Friends = append(user.Friends, personID)
	}

	return user, rows.Err()
}
