package services

import (
	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/internal/repositories"
	"github.com/alidemir/catalog/pkg/logger"
	"github.com/alidemir/catalog/pkg/normalize"
	"github.com/sirupsen/logrus"
)

// BookService implements the book operations, including the implicit
// find-or-create of an unseen author inside addBook.
type BookService struct {
	bookStore   repositories.BookStore
	authorStore repositories.AuthorStore
	requireAuth bool
}

func NewBookService(bookStore repositories.BookStore, authorStore repositories.AuthorStore, requireAuth bool) *BookService {
	return &BookService{
		bookStore:   bookStore,
		authorStore: authorStore,
		requireAuth: requireAuth,
	}
}

// Count returns the number of books
func (s *BookService) Count() (int, error) {
	return s.bookStore.Count()
}

// All returns books matching both filters. An empty filter imposes no
// constraint; with both present the result is books by that author AND
// carrying that genre. Matching is canonicalized on both sides.
func (s *BookService) All(authorFilter, genreFilter string) ([]*models.Book, error) {
	var authorID string
	if authorFilter != "" {
		author, err := s.authorStore.FindByName(authorFilter)
		if err != nil {
			return nil, err
		}
		if author == nil {
			// Unknown author matches nothing.
			return []*models.Book{}, nil
		}
		authorID = author.ID
	}

	var books []*models.Book
	var err error
	if authorID != "" {
		books, err = s.bookStore.FindByAuthorID(authorID)
	} else {
		books, err = s.bookStore.FindAll()
	}
	if err != nil {
		return nil, err
	}

	if genreFilter == "" {
		return books, nil
	}

	genre := normalize.Canonicalize(genreFilter)
	matched := make([]*models.Book, 0, len(books))
	for _, book := range books {
		if book.HasGenre(genre) {
			matched = append(matched, book)
		}
	}
	return matched, nil
}

// Add creates a book, materializing its author first if the canonicalized
// author name is unseen. The two writes run sequentially; a failure on the
// book insert leaves the author committed, which is acceptable because the
// author record carries no state beyond its name.
func (s *BookService) Add(title, authorName string, published int, genres []string, currentUser *models.User) (*models.Book, error) {
	if s.requireAuth && currentUser == nil {
		return nil, apperr.ErrAuthentication
	}
	if normalize.Canonicalize(title) == "" {
		return nil, apperr.NewValidation("title", "must not be empty")
	}
	if normalize.Canonicalize(authorName) == "" {
		return nil, apperr.NewValidation("author", "must not be empty")
	}

	author, err := s.authorStore.FindOrCreate(authorName)
	if err != nil {
		return nil, err
	}

	book := models.NewBook(normalize.Canonicalize(title), published, author.ID, normalize.CanonicalizeAll(genres))
	if err := s.bookStore.Insert(book); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"title":  book.Title,
		"author": author.Name,
	}).Info("book added")
	return book, nil
}
