package memory

import (
	"sync"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

var _ store.UserStore = (*UserStore)(nil)

// UserStore keeps the team directory in insertion order
type UserStore struct {
	mu    sync.RWMutex
	users []model.User
}

// NewUserStore creates an empty UserStore
func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) ListUsers() ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...), nil
}

func (s *UserStore) FetchUser(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	u := s.users[i]
	return &u, nil
}

func (s *UserStore) CreateUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	return nil
}

func (s *UserStore) UpdateUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(user.ID)
	if i < 0 {
		return store.ErrNotFound
	}
	s.users[i] = user
	return nil
}

func (s *UserStore) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return store.ErrNotFound
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return nil
}

func (s *UserStore) indexOf(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}
