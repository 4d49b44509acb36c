package services

import (
	"testing"

	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/repositories"
	"github.com/alidemir/catalog/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	users   *UserService
	persons *PersonService
	auth    *AuthService
}

func newUserFixture(deployment string) userFixture {
	userStore := repositories.NewMemoryUserStore()
	personStore := repositories.NewMemoryPersonStore()
	auth := NewAuthService(userStore, "test-secret")
	return userFixture{
		users:   NewUserService(userStore, personStore, auth, deployment),
		persons: NewPersonService(personStore, userStore, false, true),
		auth:    auth,
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("stores the hash, never the plaintext", func(t *testing.T) {
		f := newUserFixture(config.DeploymentPhonebook)

		user, err := f.users.Create("ann", "secret123", "")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.True(t, f.auth.VerifyPassword("secret123", user.PasswordHash))
	})

	t.Run("short username is a validation error", func(t *testing.T) {
		f := newUserFixture(config.DeploymentPhonebook)

		_, err := f.users.Create("an", "secret123", "")
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("duplicate username is rejected case-sensitively", func(t *testing.T) {
		f := newUserFixture(config.DeploymentPhonebook)

		_, err := f.users.Create("ann", "secret123", "")
		require.NoError(t, err)

		_, err = f.users.Create("ann", "other", "")
		assert.ErrorIs(t, err, apperr.ErrDuplicateUsername)

		// Different case is a different username under the stored rule.
		_, err = f.users.Create("Ann", "other", "")
		assert.NoError(t, err)
	})

	t.Run("library deployment requires a favourite genre", func(t *testing.T) {
		f := newUserFixture(config.DeploymentLibrary)

		_, err := f.users.Create("ann", "secret123", "")
		assert.True(t, apperr.IsValidation(err))

		user, err := f.users.Create("ann", "secret123", " Refactoring ")
		require.NoError(t, err)
		assert.Equal(t, "refactoring", user.FavouriteGenre)
	})
}

func TestMe(t *testing.T) {
	f := newUserFixture(config.DeploymentPhonebook)

	t.Run("anonymous is nil, not an error", func(t *testing.T) {
		user, err := f.users.Me(nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("returns the carried identity", func(t *testing.T) {
		created, err := f.users.Create("ann", "secret123", "")
		require.NoError(t, err)

		user, err := f.users.Me(created)
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})
}

func TestAddAsFriend(t *testing.T) {
	f := newUserFixture(config.DeploymentPhonebook)

	user, err := f.users.Create("ann", "secret123", "")
	require.NoError(t, err)

	person, err := f.persons.Add("Arto Hellas", "040-123543", "Tapiolankatu 5 A", "Espoo", nil)
	require.NoError(t, err)

	t.Run("anonymous call fails", func(t *testing.T) {
		_, err := f.users.AddAsFriend("Arto Hellas", nil)
		assert.ErrorIs(t, err, apperr.ErrAuthentication)
	})

	t.Run("idempotent by person id", func(t *testing.T) {
		updated, err := f.users.AddAsFriend("Arto Hellas", user)
		require.NoError(t, err)
		assert.Equal(t, []string{person.ID}, updated.Friends)

		// Case-variant name resolves to the same person; the set is unchanged.
		updated, err = f.users.AddAsFriend("arto HELLAS", user)
		require.NoError(t, err)
		assert.Equal(t, []string{person.ID}, updated.Friends)
	})

	t.Run("unknown person is a validation error", func(t *testing.T) {
		_, err := f.users.AddAsFriend("Nonexistent", user)
		assert.True(t, apperr.IsValidation(err))
	})
}

// End-to-end: register, log in, use the token's identity for a guarded
// mutation, and watch the same mutation fail anonymously.
func TestLoginGatesWrites(t *testing.T) {
	userStore := repositories.NewMemoryUserStore()
	auth := NewAuthService(userStore, "test-secret")
	users := NewUserService(userStore, repositories.NewMemoryPersonStore(), auth, config.DeploymentLibrary)

	authorStore := repositories.NewMemoryAuthorStore()
	bookStore := repositories.NewMemoryBookStore()
	books := NewBookService(bookStore, authorStore, true)

	_, err := users.Create("ann", "secret123", "refactoring")
	require.NoError(t, err)

	token, err := auth.Login("ann", "secret123")
	require.NoError(t, err)

	currentUser, err := auth.ResolveCurrentUser(token)
	require.NoError(t, err)
	require.NotNil(t, currentUser)

	_, err = books.Add("Clean Code", "Robert Martin", 2008, []string{"refactoring"}, currentUser)
	assert.NoError(t, err)

	_, err = books.Add("Clean Code", "Robert Martin", 2008, []string{"refactoring"}, nil)
	assert.ErrorIs(t, err, apperr.ErrAuthentication)
}
