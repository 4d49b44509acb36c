package services

import (
	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/internal/repositories"
	"github.com/alidemir/catalog/pkg/config"
	"github.com/alidemir/catalog/pkg/logger"
	"github.com/alidemir/catalog/pkg/normalize"
)

const minUsernameLength = 3

// UserService implements account creation, the me query and the friend
// relation.
type UserService struct {
	userStore   repositories.UserStore
	personStore repositories.PersonStore
	auth        *AuthService
	deployment  string
}

func NewUserService(userStore repositories.UserStore, personStore repositories.PersonStore, auth *AuthService, deployment string) *UserService {
	return &UserService{
		userStore:   userStore,
		personStore: personStore,
		auth:        auth,
		deployment:  deployment,
	}
}

// Create registers a new account. Username uniqueness is case-sensitive and
// enforced by the store. Only the bcrypt hash of the password is kept. The
// library deployment additionally requires a favourite genre.
func (s *UserService) Create(username, password, favouriteGenre string) (*models.User, error) {
	if len(username) < minUsernameLength {
		return nil, apperr.NewValidation("username", "must be at least 3 characters")
	}
	if s.deployment == config.DeploymentLibrary && normalize.Canonicalize(favouriteGenre) == "" {
		return nil, apperr.NewValidation("favouriteGenre", "must not be empty")
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(username, hash, normalize.Canonicalize(favouriteGenre))
	if err := s.userStore.Insert(user); err != nil {
		return nil, err
	}

	logger.WithField("username", user.Username).Info("user created")
	return user, nil
}

// Me returns whatever identity the request carried. Anonymous is (nil, nil).
func (s *UserService) Me(currentUser *models.User) (*models.User, error) {
	return currentUser, nil
}

// AddAsFriend appends the person stored under the given name to the current
// user's friend set. Idempotent: a person already in the set leaves the set
// unchanged. Always requires an identity.
func (s *UserService) AddAsFriend(name string, currentUser *models.User) (*models.User, error) {
	if currentUser == nil {
		return nil, apperr.ErrAuthentication
	}

	person, err := s.personStore.FindByName(name)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperr.NewValidation("name", "unknown person")
	}

	if currentUser.IsFriend(person.ID) {
		return currentUser, nil
	}

	currentUser.Friends = append(currentUser.Friends, person.ID)
	if err := s.userStore.Update(currentUser); err != nil {
		return nil, err
	}
	return currentUser, nil
}

// Friends resolves the current user's friend ids to person records.
func (s *UserService) Friends(user *models.User) ([]*models.Person, error) {
	return s.personStore.FindByIDs(user.Friends)
}
