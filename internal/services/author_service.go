package services

import (
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/internal/repositories"
)

// AuthorService implements the author operations. BookCount on every
// returned author is recomputed from the live book collection, never read
// from storage.
type AuthorService struct {
	authorStore repositories.AuthorStore
	bookStore   repositories.BookStore
}

func NewAuthorService(authorStore repositories.AuthorStore, bookStore repositories.BookStore) *AuthorService {
	return &AuthorService{
		authorStore: authorStore,
		bookStore:   bookStore,
	}
}

// Count returns the number of authors
func (s *AuthorService) Count() (int, error) {
	return s.authorStore.Count()
}

// Find looks an author up by canonicalized name and derives its book count.
// Absent is (nil, nil).
func (s *AuthorService) Find(name string) (*models.Author, error) {
	author, err := s.authorStore.FindByName(name)
	if err != nil || author == nil {
		return nil, err
	}
	return s.withBookCount(author)
}

// Get looks an author up by id and derives its book count. Absent is (nil, nil).
func (s *AuthorService) Get(id string) (*models.Author, error) {
	author, err := s.authorStore.FindByID(id)
	if err != nil || author == nil {
		return nil, err
	}
	return s.withBookCount(author)
}

// All returns all authors in store order, each with a derived book count
func (s *AuthorService) All() ([]*models.Author, error) {
	authors, err := s.authorStore.FindAll()
	if err != nil {
		return nil, err
	}

	for _, author := range authors {
		if _, err := s.withBookCount(author); err != nil {
			return nil, err
		}
	}
	return authors, nil
}

// EditBorn sets the birth year of the author stored under the canonicalized
// name. A missing author is (nil, nil), not an error.
func (s *AuthorService) EditBorn(name string, born int) (*models.Author, error) {
	author, err := s.authorStore.FindByName(name)
	if err != nil || author == nil {
		return nil, err
	}

	author.Born = &born
	if err := s.authorStore.Update(author); err != nil {
		return nil, err
	}
	return s.withBookCount(author)
}

func (s *AuthorService) withBookCount(author *models.Author) (*models.Author, error) {
	count, err := s.bookStore.CountByAuthorID(author.ID)
	if err != nil {
		return nil, err
	}
	author.BookCount = count
	return author, nil
}
