package repositories

import (
	"sync"
	"testing"

	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPersonStoreUniqueness(t *testing.T) {
	store := NewMemoryPersonStore()

	require.NoError(t, store.Insert(models.NewPerson("Ann", "040-1", "St 1", "City")))

	err := store.Insert(models.NewPerson(" ANN ", "040-2", "St 2", "City"))
	assert.ErrorIs(t, err, apperr.ErrDuplicateName)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryAuthorFindOrCreateUnderConcurrency(t *testing.T) {
	store := NewMemoryAuthorStore()

	var wg sync.WaitGroup
	ids := make([]string, 16)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			author, err := store.FindOrCreate("  Robert MARTIN ")
			if assert.NoError(t, err) {
				ids[i] = author.ID
			}
		}(i)
	}
	wg.Wait()

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	for _, id := range ids[1:] {
		assert.Equal(t, ids[0], id)
	}
}

// Records returned by the memory stores must not share memory with the
// stored ones: read-side derivations write onto what Find returns, and the
// SQLite repositories already isolate callers by allocating per row.
func TestMemoryStoresReturnCopies(t *testing.T) {
	t.Run("author reads are isolated from the store", func(t *testing.T) {
		store := NewMemoryAuthorStore()

		created, err := store.FindOrCreate("robert martin")
		require.NoError(t, err)

		fetched, err := store.FindByName("robert martin")
		require.NoError(t, err)

		born := 1952
		fetched.BookCount = 7
		fetched.Born = &born

		stored, err := store.FindByName("robert martin")
		require.NoError(t, err)
		assert.Zero(t, stored.BookCount)
		assert.Nil(t, stored.Born)
		assert.Equal(t, created.ID, stored.ID)
	})

	t.Run("updates do not alias the caller's struct", func(t *testing.T) {
		store := NewMemoryAuthorStore()

		author, err := store.FindOrCreate("robert martin")
		require.NoError(t, err)

		born := 1952
		author.Born = &born
		require.NoError(t, store.Update(author))

		// Writing on the struct passed to Update must not reach the store.
		author.BookCount = 99

		stored, err := store.FindByName("robert martin")
		require.NoError(t, err)
		require.NotNil(t, stored.Born)
		assert.Equal(t, 1952, *stored.Born)
		assert.Zero(t, stored.BookCount)
	})

	t.Run("book genres are isolated from the store", func(t *testing.T) {
		store := NewMemoryBookStore()

		require.NoError(t, store.Insert(models.NewBook("clean code", 2008, "a1", []string{"refactoring"})))

		books, err := store.FindAll()
		require.NoError(t, err)
		books[0].Genres[0] = "mangled"

		books, err = store.FindAll()
		require.NoError(t, err)
		assert.Equal(t, []string{"refactoring"}, books[0].Genres)
	})

	t.Run("user friend sets are isolated from the store", func(t *testing.T) {
		store := NewMemoryUserStore()

		user := models.NewUser("ann", "hash", "")
		require.NoError(t, store.Insert(user))

		fetched, err := store.FindByUsername("ann")
		require.NoError(t, err)
		fetched.Friends = append(fetched.Friends, "p1")

		stored, err := store.FindByUsername("ann")
		require.NoError(t, err)
		assert.Empty(t, stored.Friends)
	})
}

func TestMemoryPersonStoreReindexesOnRename(t *testing.T) {
	store := NewMemoryPersonStore()

	person := models.NewPerson("Ann", "040-1", "St 1", "City")
	require.NoError(t, store.Insert(person))

	person.Name = "Anna"
	require.NoError(t, store.Update(person))

	stale, err := store.FindByName("Ann")
	require.NoError(t, err)
	assert.Nil(t, stale)

	renamed, err := store.FindByName("anna")
	require.NoError(t, err)
	require.NotNil(t, renamed)
	assert.Equal(t, person.ID, renamed.ID)

	// The old key is free again.
	require.NoError(t, store.Insert(models.NewPerson("Ann", "040-2", "St 2", "City")))
}

func TestMemoryStoresPreserveInsertionOrder(t *testing.T) {
	store := NewMemoryBookStore()

	require.NoError(t, store.Insert(models.NewBook("clean code", 2008, "a1", []string{"refactoring"})))
	require.NoError(t, store.Insert(models.NewBook("refactoring, edition 2", 2018, "a2", []string{"refactoring"})))

	books, err := store.FindAll()
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "clean code", books[0].Title)
	assert.Equal(t, "refactoring, edition 2", books[1].Title)
}
