package memory

import (
	"sync"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

var _ store.GrantStore = (*GrantStore)(nil)

// GrantStore keeps the permission matrix in a map of sets
type GrantStore struct {
	mu     sync.RWMutex
	grants map[model.Role]map[model.PermissionID]bool
}

// NewGrantStore creates an empty GrantStore
func NewGrantStore() *GrantStore {
	return &GrantStore{grants: map[model.Role]map[model.PermissionID]bool{}}
}

func (s *GrantStore) Granted(role model.Role, permission model.PermissionID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grants[role][permission], nil
}

// Grants returns the role's permissions in catalog order
func (s *GrantStore) Grants(role model.Role) ([]model.PermissionID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.PermissionID
	for _, id := range model.PermissionIDValues() {
		if s.grants[role][id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (s *GrantStore) Toggle(role model.Role, permission model.PermissionID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.grants[role]
	if !ok {
		set = map[model.PermissionID]bool{}
		s.grants[role] = set
	}
	if set[permission] {
		delete(set, permission)
		return false, nil
	}
	set[permission] = true
	return true, nil
}

func (s *GrantStore) Replace(role model.Role, permissions []model.PermissionID) error {
	set := make(map[model.PermissionID]bool, len(permissions))
	for _, p := range permissions {
		set[p] = true
	}

	s.mu.Lock()
	s.grants[role] = set
	s.mu.Unlock()
	return nil
}
