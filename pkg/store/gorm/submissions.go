package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// Ensure SubmissionStore implements store.SubmissionStore
var _ store.SubmissionStore = (*SubmissionStore)(nil)

// SubmissionStore implements store.SubmissionStore using GORM
type SubmissionStore struct {
	db *gorm.DB
}

// NewSubmissionStore creates a new SubmissionStore
func NewSubmissionStore(db *gorm.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

func (s *SubmissionStore) ListSubmissions() ([]model.FormSubmission, error) {
	var subs []model.FormSubmission
	err := s.db.Order("position desc").Find(&subs).Error
	return subs, err
}

func (s *SubmissionStore) FetchSubmission(id string) (*model.FormSubmission, error) {
	var sub model.FormSubmission
	if err := s.db.Where("id = ?", id).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (s *SubmissionStore) CreateSubmission(sub model.FormSubmission) error {
	pos, err := nextPosition(s.db, sub.TableName())
	if err != nil {
		return err
	}
	sub.Position = pos
	return s.db.Create(&sub).Error
}

func (s *SubmissionStore) UpdateSubmissionStatus(id string, from, to model.FormStatus) error {
	res := s.db.Model(&model.FormSubmission{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	if _, err := s.FetchSubmission(id); err != nil {
		return err
	}
	return store.ErrStatusConflict
}

// nextPosition returns the position that sorts a new row ahead of every
// existing one
func nextPosition(db *gorm.DB, table string) (int64, error) {
	var pos int64
	err := db.Table(table).Select("COALESCE(MAX(position), 0) + 1").Scan(&pos).Error
	return pos, err
}
