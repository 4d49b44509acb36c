package resolver

import (
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/pkg/config"
)

// Views are the typed results the endpoint returns. They carry the derived
// fields the stored records do not: a person's address, an author's book
// count, a book's expanded author, a user's resolved friend list.

type PersonView struct {
	Name    string         `json:"name"`
	Phone   string         `json:"phone,omitempty"`
	Address models.Address `json:"address"`
	ID      string         `json:"id"`
}

type AuthorView struct {
	Name      string `json:"name"`
	Born      *int   `json:"born"`
	BookCount int    `json:"bookCount"`
	ID        string `json:"id"`
}

type BookView struct {
	Title     string     `json:"title"`
	Published int        `json:"published"`
	Author    AuthorView `json:"author"`
	Genres    []string   `json:"genres"`
	ID        string     `json:"id"`
}

type UserView struct {
	Username       string       `json:"username"`
	FavouriteGenre string       `json:"favouriteGenre,omitempty"`
	Friends        []PersonView `json:"friends,omitempty"`
	ID             string       `json:"id"`
}

type TokenView struct {
	Value string `json:"value"`
}

func newPersonView(p *models.Person) PersonView {
	return PersonView{
		Name:    p.Name,
		Phone:   p.Phone,
		Address: p.Address(),
		ID:      p.ID,
	}
}

func personViews(people []*models.Person) []PersonView {
	views := make([]PersonView, 0, len(people))
	for _, p := range people {
		views = append(views, newPersonView(p))
	}
	return views
}

func newAuthorView(a *models.Author) AuthorView {
	return AuthorView{
		Name:      a.Name,
		Born:      a.Born,
		BookCount: a.BookCount,
		ID:        a.ID,
	}
}

func authorViews(authors []*models.Author) []AuthorView {
	views := make([]AuthorView, 0, len(authors))
	for _, a := range authors {
		views = append(views, newAuthorView(a))
	}
	return views
}

func (r *Resolver) newBookView(b *models.Book) (BookView, error) {
	view := BookView{
		Title:     b.Title,
		Published: b.Published,
		Genres:    b.Genres,
		ID:        b.ID,
	}

	author, err := r.authors.Get(b.AuthorID)
	if err != nil {
		return view, err
	}
	if author != nil {
		view.Author = newAuthorView(author)
	}
	return view, nil
}

func (r *Resolver) bookViews(books []*models.Book) ([]BookView, error) {
	views := make([]BookView, 0, len(books))
	for _, b := range books {
		view, err := r.newBookView(b)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// newUserView projects a user per the deployment: the library variant
// exposes the favourite genre, the phonebook variant the resolved friend
// list. The store keeps both fields either way.
func (r *Resolver) newUserView(u *models.User) (UserView, error) {
	view := UserView{
		Username: u.Username,
		ID:       u.ID,
	}

	if r.deployment == config.DeploymentLibrary {
		view.FavouriteGenre = u.FavouriteGenre
		return view, nil
	}

	friends, err := r.users.Friends(u)
	if err != nil {
		return UserView{}, err
	}
	view.Friends = personViews(friends)
	return view, nil
}
