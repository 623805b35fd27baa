// Package store holds the in-memory user registry for the auth demo
// service.
package store

import (
	"errors"
	"sync"

	"parkgate/pkg/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserStore is an in-memory map of users keyed by login email. The
// login email never changes; profile edits only touch the profile.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]model.User),
	}
}

func (s *UserStore) Put(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = user
}

func (s *UserStore) Get(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies the non-empty fields of update to the user's
// profile and returns the result.
func (s *UserStore) UpdateProfile(email string, update model.ProfileUpdate) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return model.Profile{}, ErrUserNotFound
	}

	if update.Name != "" {
		user.Profile.Name = update.Name
	}
	if update.Email != "" {
		user.Profile.Email = update.Email
	}

	s.users[email] = user
	return user.Profile, nil
}
