package memory

import (
	"sync"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

var _ store.SubmissionStore = (*SubmissionStore)(nil)

// SubmissionStore keeps submissions in a slice, newest first
type SubmissionStore struct {
	mu   sync.RWMutex
	subs []model.FormSubmission
}

// NewSubmissionStore creates an empty SubmissionStore
func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{}
}

func (s *SubmissionStore) ListSubmissions() ([]model.FormSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.FormSubmission, len(s.subs))
	for i, sub := range s.subs {
		out[i] = sub.Clone()
	}
	return out, nil
}

func (s *SubmissionStore) FetchSubmission(id string) (*model.FormSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	sub := s.subs[i].Clone()
	return &sub, nil
}

func (s *SubmissionStore) CreateSubmission(sub model.FormSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append([]model.FormSubmission{sub.Clone()}, s.subs...)
	return nil
}

func (s *SubmissionStore) UpdateSubmissionStatus(id string, from, to model.FormStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return store.ErrNotFound
	}
	if s.subs[i].Status != from {
		return store.ErrStatusConflict
	}
	s.subs[i].Status = to
	return nil
}

func (s *SubmissionStore) indexOf(id string) int {
	for i := range s.subs {
		if s.subs[i].ID == id {
			return i
		}
	}
	return -1
}
