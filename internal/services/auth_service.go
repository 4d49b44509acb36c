package services

import (
	"fmt"

	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// TokenClaims is the claim set carried by a bearer token: the subject
// identity as {username, id}.
type TokenClaims struct {
	Username string `json:"username"`
	UserID   string `json:"id"`
	jwt.RegisteredClaims
}

// AuthService hashes passwords, issues and verifies signed bearer tokens and
// resolves a token to the current user.
type AuthService struct {
	userStore repositories.UserStore
	secret    []byte
}

func NewAuthService(userStore repositories.UserStore, secret string) *AuthService {
	return &AuthService{
		userStore: userStore,
		secret:    []byte(secret),
	}
}

// HashPassword derives a one-way salted hash from the plaintext. The same
// plaintext yields different hashes across calls; use VerifyPassword.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
func (s *AuthService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs a token over the user's {username, id}.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	claims := TokenClaims{
		Username: user.Username,
		UserID:   user.ID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken parses and verifies a signed token, returning its claims.
// Any signature or format failure maps to ErrInvalidToken.
func (s *AuthService) VerifyToken(value string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}

// ResolveCurrentUser turns an optional bearer token into the current user.
// An empty token means anonymous and yields (nil, nil). A present but
// invalid token is a hard failure, never silently anonymous.
func (s *AuthService) ResolveCurrentUser(value string) (*models.User, error) {
	if value == "" {
		return nil, nil
	}

	claims, err := s.VerifyToken(value)
	if err != nil {
		return nil, err
	}

	return s.userStore.FindByID(claims.UserID)
}

// Login checks the credentials and issues a token. A missing user and a
// wrong password report the same error, so login never leaks whether a
// username exists.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userStore.FindByUsername(username)
	if err != nil {
		return "", err
	}

	if user == nil || !s.VerifyPassword(password, user.PasswordHash) {
		return "", apperr.ErrInvalidCredentials
	}

	return s.IssueToken(user)
}
