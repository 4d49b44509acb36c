package repositories

import (
	"sync"
	"time"

	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/pkg/normalize"
)

// In-memory store implementations. Records are kept in insertion order with
// a canonical-key index enforcing the same uniqueness constraints as the
// SQLite schema. Every record crossing the store boundary is copied, in
// either direction, so callers never share struct memory with the store —
// the same isolation the SQLite repositories get from allocating per row.
// Used by tests and the "memory" database driver.

func clonePerson(p *models.Person) *models.Person {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneAuthor(a *models.Author) *models.Author {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func cloneBook(b *models.Book) *models.Book {
	if b == nil {
		return nil
	}
	c := *b
	c.Genres = append([]string(nil), b.Genres...)
	return &c
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	c.Friends = append([]string(nil), u.Friends...)
	return &c
}

type MemoryPersonStore struct {
	mu     sync.Mutex
	people []*models.Person
	byKey  map[string]*models.Person
}

func NewMemoryPersonStore() *MemoryPersonStore {
	return &MemoryPersonStore{byKey: make(map[string]*models.Person)}
}

func (s *MemoryPersonStore) Insert(person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalize.Canonicalize(person.Name)
	if _, exists := s.byKey[key]; exists {
		return apperr.ErrDuplicateName
	}

	now := time.Now()
	person.CreatedAt = now
	person.UpdatedAt = now

	stored := clonePerson(person)
	s.people = append(s.people, stored)
	s.byKey[key] = stored
	return nil
}

func (s *MemoryPersonStore) Update(person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.people {
		if p.ID == person.ID {
			person.UpdatedAt = time.Now()

			stored := clonePerson(person)
			delete(s.byKey, normalize.Canonicalize(p.Name))
			s.people[i] = stored
			s.byKey[normalize.Canonicalize(stored.Name)] = stored
			return nil
		}
	}
	return nil
}

func (s *MemoryPersonStore) FindByName(name string) (*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePerson(s.byKey[normalize.Canonicalize(name)]), nil
}

func (s *MemoryPersonStore) FindByID(id string) (*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.people {
		if p.ID == id {
			return clonePerson(p), nil
		}
	}
	return nil, nil
}

func (s *MemoryPersonStore) FindByIDs(ids []string) ([]*models.Person, error) {
	people := make([]*models.Person, 0, len(ids))
	for _, id := range ids {
		p, _ := s.FindByID(id)
		if p != nil {
			people = append(people, p)
		}
	}
	return people, nil
}

func (s *MemoryPersonStore) FindAll(filter PhoneFilter) ([]*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Person
	for _, p := range s.people {
		switch filter {
		case PhoneYes:
			if !p.HasPhone() {
				continue
			}
		case PhoneNo:
			if p.HasPhone() {
				continue
			}
		}
		out = append(out, clonePerson(p))
	}
	return out, nil
}

func (s *MemoryPersonStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.people), nil
}

type MemoryAuthorStore struct {
	mu      sync.Mutex
	authors []*models.Author
	byName  map[string]*models.Author
}

func NewMemoryAuthorStore() *MemoryAuthorStore {
	return &MemoryAuthorStore{byName: make(map[string]*models.Author)}
}

func (s *MemoryAuthorStore) Insert(author *models.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(author)
}

func (s *MemoryAuthorStore) insertLocked(author *models.Author) error {
	if _, exists := s.byName[author.Name]; exists {
		return apperr.ErrDuplicateName
	}

	now := time.Now()
	author.CreatedAt = now
	author.UpdatedAt = now

	stored := cloneAuthor(author)
	s.authors = append(s.authors, stored)
	s.byName[stored.Name] = stored
	return nil
}

func (s *MemoryAuthorStore) Update(author *models.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.authors {
		if a.ID == author.ID {
			author.UpdatedAt = time.Now()

			stored := cloneAuthor(author)
			delete(s.byName, a.Name)
			s.authors[i] = stored
			s.byName[stored.Name] = stored
			return nil
		}
	}
	return nil
}

func (s *MemoryAuthorStore) FindByName(name string) (*models.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAuthor(s.byName[normalize.Canonicalize(name)]), nil
}

func (s *MemoryAuthorStore) FindByID(id string) (*models.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.authors {
		if a.ID == id {
			return cloneAuthor(a), nil
		}
	}
	return nil, nil
}

// FindOrCreate holds the lock across the lookup and the insert, so two
// concurrent calls for an unseen name still yield a single author.
func (s *MemoryAuthorStore) FindOrCreate(name string) (*models.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	canonical := normalize.Canonicalize(name)
	if author, exists := s.byName[canonical]; exists {
		return cloneAuthor(author), nil
	}

	author := models.NewAuthor(canonical)
	if err := s.insertLocked(author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *MemoryAuthorStore) FindAll() ([]*models.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Author, 0, len(s.authors))
	for _, a := range s.authors {
		out = append(out, cloneAuthor(a))
	}
	return out, nil
}

func (s *MemoryAuthorStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.authors), nil
}

type MemoryBookStore struct {
	mu    sync.Mutex
	books []*models.Book
}

func NewMemoryBookStore() *MemoryBookStore {
	return &MemoryBookStore{}
}

func (s *MemoryBookStore) Insert(book *models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book.CreatedAt = time.Now()
	s.books = append(s.books, cloneBook(book))
	return nil
}

func (s *MemoryBookStore) FindAll() ([]*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, cloneBook(b))
	}
	return out, nil
}

func (s *MemoryBookStore) FindByAuthorID(authorID string) ([]*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Book
	for _, b := range s.books {
		if b.AuthorID == authorID {
			out = append(out, cloneBook(b))
		}
	}
	return out, nil
}

func (s *MemoryBookStore) CountByAuthorID(authorID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, b := range s.books {
		if b.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (s *MemoryBookStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.books), nil
}

type MemoryUserStore struct {
	mu         sync.Mutex
	users      []*models.User
	byUsername map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{byUsername: make(map[string]*models.User)}
}

func (s *MemoryUserStore) Insert(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[user.Username]; exists {
		return apperr.ErrDuplicateUsername
	}

	user.CreatedAt = time.Now()

	stored := cloneUser(user)
	s.users = append(s.users, stored)
	s.byUsername[stored.Username] = stored
	return nil
}

func (s *MemoryUserStore) Update(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == user.ID {
			stored := cloneUser(user)
			delete(s.byUsername, u.Username)
			s.users[i] = stored
			s.byUsername[stored.Username] = stored
			return nil
		}
	}
	return nil
}

func (s *MemoryUserStore) FindByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUser(s.byUsername[username]), nil
}

func (s *MemoryUserStore) FindByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}
