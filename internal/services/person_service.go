package services

import (
	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/models"
	"github.com/alidemir/catalog/internal/repositories"
	"github.com/alidemir/catalog/pkg/logger"
)

// PersonService implements the phonebook operations: counting, filtered
// listing, canonical-name lookup, creation and phone edits.
type PersonService struct {
	personStore  repositories.PersonStore
	userStore    repositories.UserStore
	requireAuth  bool
	trackFriends bool
}

func NewPersonService(personStore repositories.PersonStore, userStore repositories.UserStore, requireAuth, trackFriends bool) *PersonService {
	return &PersonService{
		personStore:  personStore,
		userStore:    userStore,
		requireAuth:  requireAuth,
		trackFriends: trackFriends,
	}
}

// Count returns the number of people
func (s *PersonService) Count() (int, error) {
	return s.personStore.Count()
}

// All returns all people in store order, optionally narrowed by phone presence
func (s *PersonService) All(filter repositories.PhoneFilter) ([]*models.Person, error) {
	return s.personStore.FindAll(filter)
}

// Find looks a person up by name, case-insensitively. Absent is (nil, nil).
func (s *PersonService) Find(name string) (*models.Person, error) {
	return s.personStore.FindByName(name)
}

// Add creates a new person. The name is stored as given; the store rejects a
// second person under the same canonical name. When the deployment tracks
// per-user relations and an identity is present, the new person joins the
// current user's friend set.
func (s *PersonService) Add(name, phone, street, city string, currentUser *models.User) (*models.Person, error) {
	if s.requireAuth && currentUser == nil {
		return nil, apperr.ErrAuthentication
	}
	if name == "" {
		return nil, apperr.NewValidation("name", "must not be empty")
	}

	person := models.NewPerson(name, phone, street, city)
	if err := s.personStore.Insert(person); err != nil {
		return nil, err
	}

	if s.trackFriends && currentUser != nil {
		currentUser.Friends = append(currentUser.Friends, person.ID)
		if err := s.userStore.Update(currentUser); err != nil {
			return nil, err
		}
	}

	logger.WithField("person", person.Name).Info("person added")
	return person, nil
}

// EditNumber overwrites the phone of the person stored under the
// canonicalized name. A missing person is (nil, nil), not an error.
func (s *PersonService) EditNumber(name, phone string) (*models.Person, error) {
	person, err := s.personStore.FindByName(name)
	if err != nil || person == nil {
		return nil, err
	}

	person.Phone = phone
	if err := s.personStore.Update(person); err != nil {
		return nil, err
	}
	return person, nil
}
