package gorm

import (
	"gorm.io/gorm"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// Ensure GrantStore implements store.GrantStore
var _ store.GrantStore = (*GrantStore)(nil)

// GrantStore implements store.GrantStore over the role_permissions table
type GrantStore struct {
	db *gorm.DB
}

// NewGrantStore creates a new GrantStore
func NewGrantStore(db *gorm.DB) *GrantStore {
	return &GrantStore{db: db}
}

func (s *GrantStore) Granted(role model.Role, permission model.PermissionID) (bool, error) {
	var count int64
	err := s.db.Model(&model.RoleGrant{}).
		Where("role = ? AND permission = ?", role, permission).
		Count(&count).Error
	return count > 0, err
}

// Grants returns the role's permissions in catalog order
func (s *GrantStore) Grants(role model.Role) ([]model.PermissionID, error) {
	var rows []model.RoleGrant
	if err := s.db.Where("role = ?", role).Find(&rows).Error; err != nil {
		return nil, err
	}

	held := make(map[model.PermissionID]bool, len(rows))
	for _, r := range rows {
		held[r.Permission] = true
	}
	var out []model.PermissionID
	for _, id := range model.PermissionIDValues() {
		if held[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

// Toggle deletes the grant if present, inserts it otherwise
func (s *GrantStore) Toggle(role model.Role, permission model.PermissionID) (bool, error) {
	var granted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("role = ? AND permission = ?", role, permission).Delete(&model.RoleGrant{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			granted = false
			return nil
		}
		granted = true
		return tx.Create(&model.RoleGrant{Role: role, Permission: permission}).Error
	})
	return granted, err
}

func (s *GrantStore) Replace(role model.Role, permissions []model.PermissionID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role = ?", role).Delete(&model.RoleGrant{}).Error; err != nil {
			return err
		}
		if len(permissions) == 0 {
			return nil
		}
		rows := make([]model.RoleGrant, len(permissions))
		for i, p := range permissions {
			rows[i] = model.RoleGrant{Role: role, Permission: p}
		}
		return tx.Create(&rows).Error
	})
}
