package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// UserStore implements store.UserStore using GORM
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a new UserStore
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) ListUsers() ([]model.User, error) {
	var users []model.User
	err := s.db.Order("id").Find(&users).Error
	return users, err
}

func (s *UserStore) FetchUser(id string) (*model.User, error) {
	var u model.User
	if err := s.db.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) CreateUser(user model.User) error {
	return s.db.Create(&user).Error
}

func (s *UserStore) UpdateUser(user model.User) error {
	res := s.db.Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":        user.Name,
			"email":       user.Email,
			"role":        user.Role,
			"status":      user.Status,
			"avatar_url":  user.AvatarURL,
			"last_active": user.LastActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *UserStore) DeleteUser(id string) error {
	res := s.db.Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
