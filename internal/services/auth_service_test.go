package services

import (
	"testing"

	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() (*AuthService, *repositories.MemoryUserStore) {
	users := repositories.NewMemoryUserStore()
	return NewAuthService(users, "test-secret"), users
}

func TestPasswordHashing(t *testing.T) {
	auth, _ := newTestAuthService()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	t.Run("hash is not the plaintext", func(t *testing.T) {
		assert.NotEqual(t, "secret123", hash)
	})

	t.Run("verification", func(t *testing.T) {
		assert.True(t, auth.VerifyPassword("secret123", hash))
		assert.False(t, auth.VerifyPassword("wrong", hash))
	})

	t.Run("salted, so hashes differ across calls", func(t *testing.T) {
		other, err := auth.HashPassword("secret123")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
		assert.True(t, auth.VerifyPassword("secret123", other))
	})
}

func TestTokenRoundtrip(t *testing.T) {
	auth, users := newTestAuthService()

	user := models.NewUser("ann", "hash", "")
	require.NoError(t, users.Insert(user))

	token, err := auth.IssueToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ann", claims.Username)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestVerifyTokenFailures(t *testing.T) {
	auth, users := newTestAuthService()

	user := models.NewUser("ann", "hash", "")
	require.NoError(t, users.Insert(user))

	t.Run("garbage token", func(t *testing.T) {
		_, err := auth.VerifyToken("not-a-token")
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := NewAuthService(users, "other-secret")
		token, err := other.IssueToken(user)
		require.NoError(t, err)

		_, err = auth.VerifyToken(token)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})
}

func TestResolveCurrentUser(t *testing.T) {
	auth, users := newTestAuthService()

	user := models.NewUser("ann", "hash", "")
	require.NoError(t, users.Insert(user))

	t.Run("empty token is anonymous, not an error", func(t *testing.T) {
		resolved, err := auth.ResolveCurrentUser("")
		assert.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("valid token resolves the user", func(t *testing.T) {
		token, err := auth.IssueToken(user)
		require.NoError(t, err)

		resolved, err := auth.ResolveCurrentUser(token)
		require.NoError(t, err)
		require.NotNil(t, resolved)
		assert.Equal(t, user.ID, resolved.ID)
	})

	t.Run("invalid token is a hard failure", func(t *testing.T) {
		_, err := auth.ResolveCurrentUser("broken")
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})
}

func TestLogin(t *testing.T) {
	auth, users := newTestAuthService()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, users.Insert(models.NewUser("ann", hash, "")))

	t.Run("success issues a verifiable token", func(t *testing.T) {
		token, err := auth.Login("ann", "secret123")
		require.NoError(t, err)

		claims, err := auth.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "ann", claims.Username)
	})

	t.Run("unknown user and wrong password report the same error", func(t *testing.T) {
		_, errUnknown := auth.Login("nobody", "secret123")
		_, errWrongPw := auth.Login("ann", "wrong")

		assert.ErrorIs(t, errUnknown, apperr.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPw, apperr.ErrInvalidCredentials)
		assert.Equal(t, errUnknown, errWrongPw)
	})
}
