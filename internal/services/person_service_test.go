package services

import (
	"testing"

	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPhonebookService() (*PersonService, *repositories.MemoryUserStore) {
	users := repositories.NewMemoryUserStore()
	// Phonebook deployment: writes are open, friend sets are tracked.
	return NewPersonService(repositories.NewMemoryPersonStore(), users, false, true), users
}

func TestAddPerson(t *testing.T) {
	t.Run("stores name as given", func(t *testing.T) {
		persons, _ := newPhonebookService()

		person, err := persons.Add("Arto Hellas", "040-123543", "Tapiolankatu 5 A", "Espoo", nil)
		require.NoError(t, err)
		assert.Equal(t, "Arto Hellas", person.Name)
		assert.NotEmpty(t, person.ID)
	})

	t.Run("case-variant duplicate fails and count stays 1", func(t *testing.T) {
		persons, _ := newPhonebookService()

		_, err := persons.Add("Ann", "040-1", "St 1", "City", nil)
		require.NoError(t, err)

		_, err = persons.Add("ann", "040-2", "St 2", "City", nil)
		assert.ErrorIs(t, err, apperr.ErrDuplicateName)

		count, err := persons.Count()
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("empty name is a validation error", func(t *testing.T) {
		persons, _ := newPhonebookService()

		_, err := persons.Add("", "040-1", "St 1", "City", nil)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("new person joins the current user's friends", func(t *testing.T) {
		persons, users := newPhonebookService()

		user := models.NewUser("ann", "hash", "")
		require.NoError(t, users.Insert(user))

		person, err := persons.Add("Arto Hellas", "", "Tapiolankatu 5 A", "Espoo", user)
		require.NoError(t, err)

		stored, err := users.FindByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{person.ID}, stored.Friends)
	})

	t.Run("auth-requiring deployment rejects anonymous writes", func(t *testing.T) {
		persons := NewPersonService(repositories.NewMemoryPersonStore(), repositories.NewMemoryUserStore(), true, false)

		_, err := persons.Add("Ann", "040-1", "St 1", "City", nil)
		assert.ErrorIs(t, err, apperr.ErrAuthentication)
	})
}

func TestFindPerson(t *testing.T) {
	persons, _ := newPhonebookService()

	_, err := persons.Add("Arto Hellas", "040-123543", "Tapiolankatu 5 A", "Espoo", nil)
	require.NoError(t, err)

	t.Run("case-insensitive match", func(t *testing.T) {
		person, err := persons.Find("  ARTO hellas ")
		require.NoError(t, err)
		require.NotNil(t, person)
		assert.Equal(t, "Arto Hellas", person.Name)
	})

	t.Run("absent is nil, not an error", func(t *testing.T) {
		person, err := persons.Find("Nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, person)
	})
}

func TestAllPersonsPhoneFilter(t *testing.T) {
	persons, _ := newPhonebookService()

	_, err := persons.Add("Arto Hellas", "040-123543", "Tapiolankatu 5 A", "Espoo", nil)
	require.NoError(t, err)
	_, err = persons.Add("Venla Ruuska", "", "Nallemäentie 22 C", "Helsinki", nil)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		filter   repositories.PhoneFilter
		expected []string
	}{
		{"any returns all in insertion order", repositories.PhoneAny, []string{"Arto Hellas", "Venla Ruuska"}},
		{"hasPhone", repositories.PhoneYes, []string{"Arto Hellas"}},
		{"noPhone", repositories.PhoneNo, []string{"Venla Ruuska"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			people, err := persons.All(tc.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(people))
			for _, p := range people {
				names = append(names, p.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestEditNumber(t *testing.T) {
	persons, _ := newPhonebookService()

	_, err := persons.Add("Arto Hellas", "040-123543", "Tapiolankatu 5 A", "Espoo", nil)
	require.NoError(t, err)

	t.Run("overwrites the phone via canonical lookup", func(t *testing.T) {
		person, err := persons.EditNumber("arto hellas", "050-999")
		require.NoError(t, err)
		require.NotNil(t, person)
		assert.Equal(t, "050-999", person.Phone)

		stored, err := persons.Find("Arto Hellas")
		require.NoError(t, err)
		assert.Equal(t, "050-999", stored.Phone)
	})

	t.Run("absent target returns nil, not an error", func(t *testing.T) {
		person, err := persons.EditNumber("Nonexistent", "040-0")
		assert.NoError(t, err)
		assert.Nil(t, person)
	})
}
