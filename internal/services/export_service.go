package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/alidemir/catalog/internal/repositories"
	"github.com/xuri/excelize/v2"
)

// ExportService writes an XLSX snapshot of the catalog: one sheet per entity
// kind, with the derived book count included for authors.
type ExportService struct {
	personStore repositories.PersonStore
	authorStore repositories.AuthorStore
	bookStore   repositories.BookStore
}

func NewExportService(personStore repositories.PersonStore, authorStore repositories.AuthorStore, bookStore repositories.BookStore) *ExportService {
	return &ExportService{
		personStore: personStore,
		authorStore: authorStore,
		bookStore:   bookStore,
	}
}

// Write renders the workbook to w.
func (s *ExportService) Write(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeAuthors(f); err != nil {
		return err
	}
	if err := s.writeBooks(f); err != nil {
		return err
	}
	if err := s.writePersons(f); err != nil {
		return err
	}

	// Drop the default sheet created by NewFile.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

func (s *ExportService) writeAuthors(f *excelize.File) error {
	if _, err := f.NewSheet("Authors"); err != nil {
		return err
	}
	if err := setRow(f, "Authors", 1, "Name", "Born", "Books"); err != nil {
		return err
	}

	authors, err := s.authorStore.FindAll()
	if err != nil {
		return err
	}

	for i, author := range authors {
		born := ""
		if author.Born != nil {
			born = fmt.Sprintf("%d", *author.Born)
		}
		count, err := s.bookStore.CountByAuthorID(author.ID)
		if err != nil {
			return err
		}
		if err := setRow(f, "Authors", i+2, author.Name, born, count); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeBooks(f *excelize.File) error {
	if _, err := f.NewSheet("Books"); err != nil {
		return err
	}
	if err := setRow(f, "Books", 1, "Title", "Author", "Published", "Genres"); err != nil {
		return err
	}

	books, err := s.bookStore.FindAll()
	if err != nil {
		return err
	}

	for i, book := range books {
		authorName := ""
		if author, err := s.authorStore.FindByID(book.AuthorID); err != nil {
			return err
		} else if author != nil {
			authorName = author.Name
		}
		if err := setRow(f, "Books", i+2, book.Title, authorName, book.Published, strings.Join(book.Genres, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writePersons(f *excelize.File) error {
	if _, err := f.NewSheet("Persons"); err != nil {
		return err
	}
	if err := setRow(f, "Persons", 1, "Name", "Phone", "Street", "City"); err != nil {
		return err
	}

	people, err := s.personStore.FindAll(repositories.PhoneAny)
	if err != nil {
		return err
	}

	for i, person := range people {
		if err := setRow(f, "Persons", i+2, person.Name, person.Phone, person.Street, person.City); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
