package services

import (
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/internal/repositories"
	"github.com/alidemir/catalog/pkg/logger"
	"github.com/alidemir/catalog/pkg/normalize"
)

type seedBook struct {
	title     string
	published int
	author    string
	genres    []string
}

var seedAuthorBirths = map[string]int{
	"robert martin":     1952,
	"martin fowler":     1963,
	"fyodor dostoevsky": 1821,
}

var seedBooks = []seedBook{
	{"Clean Code", 2008, "Robert Martin", []string{"refactoring"}},
	{"Agile software development", 2002, "Robert Martin", []string{"agile", "patterns", "design"}},
	{"Refactoring, edition 2", 2018, "Martin Fowler", []string{"refactoring"}},
	{"Refactoring to patterns", 2008, "Joshua Kerievsky", []string{"refactoring", "patterns"}},
	{"Practical Object-Oriented Design, An Agile Primer Using Ruby", 2012, "Sandi Metz", []string{"refactoring", "design"}},
	{"Crime and punishment", 1866, "Fyodor Dostoevsky", []string{"classic", "crime"}},
	{"The Demon", 1872, "Fyodor Dostoevsky", []string{"classic", "revolution"}},
}

// SeedCatalog loads the starter authors and books into an empty store. A
// non-empty book collection is left untouched, so repeated startups do not
// duplicate anything.
func SeedCatalog(authorStore repositories.AuthorStore, bookStore repositories.BookStore) error {
	count, err := bookStore.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, sb := range seedBooks {
		author, err := authorStore.FindOrCreate(sb.author)
		if err != nil {
			return err
		}

		if born, ok := seedAuthorBirths[author.Name]; ok && author.Born == nil {
			author.Born = &born
			if err := authorStore.Update(author); err != nil {
				return err
			}
		}

		book := models.NewBook(normalize.Canonicalize(sb.title), sb.published, author.ID, normalize.CanonicalizeAll(sb.genres))
		if err := bookStore.Insert(book); err != nil {
			return err
		}
	}

	logger.Infof("Seeded catalog with %d books", len(seedBooks))
	return nil
}
