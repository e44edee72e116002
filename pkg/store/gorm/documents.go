package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// Ensure DocumentStore implements store.DocumentStore
var _ store.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements store.DocumentStore using GORM
type DocumentStore struct {
	db *gorm.DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) ListDocuments() ([]model.DocumentEntity, error) {
	var docs []model.DocumentEntity
	err := s.db.Order("position desc").Find(&docs).Error
	return docs, err
}

func (s *DocumentStore) FetchDocument(id string) (*model.DocumentEntity, error) {
	var doc model.DocumentEntity
	if err := s.db.Where("id = ?", id).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (s *DocumentStore) CreateDocument(doc model.DocumentEntity) error {
	pos, err := nextPosition(s.db, doc.TableName())
	if err != nil {
		return err
	}
	doc.Position = pos
	return s.db.Create(&doc).Error
}

// UpdateDocument writes every mutable column. Versions are written back as
// given; callers never rewrite history.
func (s *DocumentStore) UpdateDocument(doc model.DocumentEntity) error {
	res := s.db.Model(&model.DocumentEntity{}).
		Where("id = ?", doc.ID).
		Updates(map[string]interface{}{
			"name":            doc.Name,
			"type":            doc.Type,
			"classification":  doc.Classification,
			"size":            doc.Size,
			"upload_date":     doc.UploadDate,
			"author":          doc.Author,
			"tags":            doc.Tags,
			"current_version": doc.CurrentVersion,
			"versions":        doc.Versions,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
