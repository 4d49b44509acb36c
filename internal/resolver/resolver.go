// Package resolver dispatches named catalog operations to the service
// layer. It is the single typed surface the transport exposes: every query
// and mutation arrives as an operation name plus JSON arguments and leaves
// as a typed view or a classified error.
package resolver

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/internal/repositories"
	"github.com/alidemir/catalog/internal/services"
)

// ErrUnknownOperation is returned for an operation name outside the schema.
var ErrUnknownOperation = errors.New("unknown operation")

// Request is the operation envelope accepted by the endpoint.
type Request struct {
	Operation string          `json:"operation"`
	Args      json.RawMessage `json:"args,omitempty"`
}

type Resolver struct {
	persons    *services.PersonService
	authors    *services.AuthorService
	books      *services.BookService
	users      *services.UserService
	auth       *services.AuthService
	deployment string
}

func New(persons *services.PersonService, authors *services.AuthorService, books *services.BookService, users *services.UserService, auth *services.AuthService, deployment string) *Resolver {
	return &Resolver{
		persons:    persons,
		authors:    authors,
		books:      books,
		users:      users,
		auth:       auth,
		deployment: deployment,
	}
}

// Resolve executes the named operation with the given current user (nil for
// anonymous requests). Queries never require an identity; mutations apply
// the deployment's auth policy inside the services.
func (r *Resolver) Resolve(req Request, currentUser *models.User) (interface{}, error) {
	switch req.Operation {
	case "personCount":
		return r.persons.Count()

	case "allPersons":
		var args struct {
			Phone repositories.PhoneFilter `json:"phone"`
		}
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		people, err := r.persons.All(args.Phone)
		if err != nil {
			return nil, err
		}
		return personViews(people), nil

	case "findPerson":
		var args struct {
			Name string `json:"name"`
		}
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		person, err := r.persons.Find(args.Name)
		if err != nil || person == nil {
			return nil, err
		}
		return newPersonView(person), nil

	case "me":
		user, err := r.users.Me(currentUser)
		if err != nil || user == nil {
			return nil, err
		}
		return r.newUserView(user)

	case "bookCount":
		return r.books.Count()

	case "authorCount":
		return r.authors.Count()

	case "allBooks":
		var args struct {
			Author string `json:"author"`
			Genre  string `json:"genre"`
		}
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		books, err := r.books.All(args.Author, args.Genre)
		if err != nil {
			return nil, err
		}
		return r.bookViews(books)

	case "findAuthor":
		var args struct {
			Name string `json:"name"`
		}
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		author, err := r.authors.Find(args.Name)
		if err != nil || author == nil {
			return nil, err
		}
		return newAuthorView(author), nil

	case "allAuthors":
		authors, err := r.authors.All()
		if err != nil {
			return nil, err
		}
		return authorViews(authors), nil

	case "addPerson":
		var args struct {
			Name   string `json:"name"`
			Phone  string `json:"phone"`
			Street string `json:"street"`
			City   string `json:"city"`
		}
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		person, err := r.persons.Add(args.Name, args.Phone, args.Street, args.City, currentUser)
		if err != nil {
			return nil, err
		}
		return newPersonView(person), nil

	case "editNumber":
		var args struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		}
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		person, err := r.persons.EditNumber(args.Name, args.Phone)
		if err != nil || person == nil {
			return nil, err
		}
		return newPersonView(person), nil

	case "addBook":
		var args struct {
			Title     string   `json:"title"`
			Author    string   `json:"author"`
			Published int      `json:"published"`
			Genres    []string `json:"genres"`
		}
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		book, err := r.books.Add(args.Title, args.Author, args.Published, args.Genres, currentUser)
		if err != nil {
			return nil, err
		}
		return r.newBookView(book)

	case "editAuthor":
		var args struct {
			Name      string `json:"name"`
			SetBornTo int    `json:"setBornTo"`
		}
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		author, err := r.authors.EditBorn(args.Name, args.SetBornTo)
		if err != nil || author == nil {
			return nil, err
		}
		return newAuthorView(author), nil

	case "createUser":
		var args struct {
			Username       string `json:"username"`
			Password       string `json:"password"`
			FavouriteGenre string `json:"favouriteGenre"`
		}
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		user, err := r.users.Create(args.Username, args.Password, args.FavouriteGenre)
		if err != nil {
			return nil, err
		}
		return r.newUserView(user)

	case "login":
		var args struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		token, err := r.auth.Login(args.Username, args.Password)
		if err != nil {
			return nil, err
		}
		return TokenView{Value: token}, nil

	case "addAsFriend":
		var args struct {
			Name string `json:"name"`
		}
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		user, err := r.users.AddAsFriend(args.Name, currentUser)
		if err != nil {
			return nil, err
		}
		return r.newUserView(user)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, req.Operation)
	}
}

func decodeArgs(raw json.RawMessage, into interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, into)
}
