package store

import (
	"errors"
	"strings"
	"sync"

	"ekrishi/models"
)

var ErrEmailTaken = errors.New("email already registered")

// UserStore keeps registered users in memory, keyed by email.
type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// Create registers u unless its email is already known. Emails compare case-insensitively.
func (s *UserStore) Create(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(u.Email) >= 0 {
		return ErrEmailTaken
	}
	s.users = append(s.users, u)
	return nil
}

func (s *UserStore) FindByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(email); i >= 0 {
		return s.users[i], true
	}
	return models.User{}, false
}

func (s *UserStore) indexOf(email string) int {
	for i, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return i
		}
	}
	return -1
}
