package memory

import (
	"sync"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

var _ store.DocumentStore = (*DocumentStore)(nil)

// DocumentStore keeps documents in a slice, newest first
type DocumentStore struct {
	mu   sync.RWMutex
	docs []model.DocumentEntity
}

// NewDocumentStore creates an empty DocumentStore
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

func (s *DocumentStore) ListDocuments() ([]model.DocumentEntity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.DocumentEntity, len(s.docs))
	for i, d := range s.docs {
		out[i] = d.Clone()
	}
	return out, nil
}

func (s *DocumentStore) FetchDocument(id string) (*model.DocumentEntity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	doc := s.docs[i].Clone()
	return &doc, nil
}

func (s *DocumentStore) CreateDocument(doc model.DocumentEntity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = append([]model.DocumentEntity{doc.Clone()}, s.docs...)
	return nil
}

func (s *DocumentStore) UpdateDocument(doc model.DocumentEntity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(doc.ID)
	if i < 0 {
		return store.ErrNotFound
	}
	doc.Position = s.docs[i].Position
	s.docs[i] = doc.Clone()
	return nil
}

func (s *DocumentStore) indexOf(id string) int {
	for i := range s.docs {
		if s.docs[i].ID == id {
			return i
		}
	}
	return -1
}
