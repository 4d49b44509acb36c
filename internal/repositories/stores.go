package repositories

import "github.com/alidemir/catalog/internal/models"

// PhoneFilter narrows allPersons by phone presence.
type PhoneFilter string

const (
	PhoneAny PhoneFilter = ""
	PhoneYes PhoneFilter = "YES"
	PhoneNo  PhoneFilter = "NO"
)

// PersonStore is the record-store contract for Person records. Absent
// records are reported as (nil, nil), never as an error. Uniqueness of the
// canonical name is enforced by the store itself: Insert returns
// apperr.ErrDuplicateName on a conflict.
type PersonStore interface {
	Insert(person *models.Person) error
	Update(person *models.Person) error
	FindByName(name string) (*models.Person, error)
	FindByID(id string) (*models.Person, error)
	FindByIDs(ids []string) ([]*models.Person, error)
	FindAll(filter PhoneFilter) ([]*models.Person, error)
	Count() (int, error)
}

// AuthorStore is the record-store contract for Author records. Names are
// stored canonicalized and unique. FindOrCreate is the only way the engine
// materializes an implicitly-referenced author: the store's uniqueness
// constraint, not an engine-side pre-check, guarantees at most one author
// per canonical name even under concurrent calls.
type AuthorStore interface {
	Insert(author *models.Author) error
	Update(author *models.Author) error
	FindByName(name string) (*models.Author, error)
	FindByID(id string) (*models.Author, error)
	FindOrCreate(name string) (*models.Author, error)
	FindAll() ([]*models.Author, error)
	Count() (int, error)
}

// BookStore is the record-store contract for Book records.
type BookStore interface {
	Insert(book *models.Book) error
	FindAll() ([]*models.Book, error)
	FindByAuthorID(authorID string) ([]*models.Book, error)
	CountByAuthorID(authorID string) (int, error)
	Count() (int, error)
}

// UserStore is the record-store contract for User records. Username
// uniqueness is case-sensitive; Insert returns apperr.ErrDuplicateUsername
// on a conflict.
type UserStore interface {
	Insert(user *models.User) error
	Update(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id string) (*models.User, error)
}
