package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate and mutate the catalog. Username
// uniqueness is case-sensitive. PasswordHash is a bcrypt hash; the plaintext
// is never stored. Friends holds Person ids (phonebook deployment);
// FavouriteGenre is the library deployment's extra field. Both columns exist
// in every deployment, the config flag just decides which one is exposed.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	FavouriteGenre string    `json:"favouriteGenre,omitempty"`
	Friends        []string  `json:"friends"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with a generated UUID
func NewUser(username, passwordHash, favouriteGenre string) *User {
	return &User{
		ID:             uuid.New().String(),
		Username:       username,
		PasswordHash:   passwordHash,
		FavouriteGenre: favouriteGenre,
		Friends:        []string{},
	}
}

// IsFriend reports whether the person id is already in the friend set.
func (u *User) IsFriend(personID string) bool {
	for _, id := range u.Friends {
		if id == personID {
			return true
		}
	}
	return false
}
