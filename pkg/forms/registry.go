package forms

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/smartfill"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// Counts summarises the registry by status
type Counts struct {
	Draft    int `json:"draft"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

type rejectKey struct {
	submission string
	actor      string
}

// Registry holds submitted forms and applies approval decisions
type Registry struct {
	store store.SubmissionStore
	audit audit.Recorder

	mu      sync.Mutex
	pending map[rejectKey]struct{}
}

// NewRegistry creates a Registry over s
func NewRegistry(s store.SubmissionStore) *Registry {
	return &Registry{
		store:   s,
		audit:   audit.Default,
		pending: map[rejectKey]struct{}{},
	}
}

// WithAudit sets the recorder decisions are reported to.
func (r *Registry) WithAudit(rec audit.Recorder) *Registry {
	r.audit = rec
	return r
}

// List returns every submission, newest first
func (r *Registry) List() ([]model.FormSubmission, error) {
	return r.store.ListSubmissions()
}

// Get returns a submission by id
func (r *Registry) Get(id string) (*model.FormSubmission, error) {
	return r.store.FetchSubmission(id)
}

// Counts tallies submissions by status
func (r *Registry) Counts() (Counts, error) {
	subs, err := r.store.ListSubmissions()
	if err != nil {
		return Counts{}, err
	}
	var c Counts
	for _, s := range subs {
		switch s.Status {
		case model.FormStatusDraft:
			c.Draft++
		case model.FormStatusPendingApproval:
			c.Pending++
		case model.FormStatusApproved:
			c.Approved++
		case model.FormStatusRejected:
			c.Rejected++
		}
		c.Total++
	}
	return c, nil
}

// Create stores a new submission at the head of the list.
func (r *Registry) Create(ctx context.Context, sub model.FormSubmission) error {
	if err := r.store.CreateSubmission(sub); err != nil {
		return fmt.Errorf("storing submission %s: %w", sub.ID, err)
	}
	actor, _ := identity.Get(ctx)
	r.audit.Log(audit.FormSubmitEvent{
		User:         actor.String(),
		SubmissionID: sub.ID,
		Template:     sub.TemplateName,
	})
	return nil
}

// Approve moves a pending submission to APPROVED.
func (r *Registry) Approve(ctx context.Context, id string) error {
	err := r.transition(id, model.FormStatusApproved)
	if err == nil {
		r.clearPending(id)
	}
	r.record(ctx, id, "approve", err)
	return err
}

// RequestReject records the acting user's intent to reject a pending
// submission. The status does not change until ConfirmReject.
func (r *Registry) RequestReject(ctx context.Context, id string) error {
	err := r.requirePending(id)
	if err == nil {
		r.mu.Lock()
		r.pending[r.key(ctx, id)] = struct{}{}
		r.mu.Unlock()
	}
	r.record(ctx, id, "request-reject", err)
	return err
}

// ConfirmReject applies a rejection previously requested by the same user.
func (r *Registry) ConfirmReject(ctx context.Context, id string) error {
	err := r.confirmReject(ctx, id)
	r.record(ctx, id, "confirm-reject", err)
	return err
}

func (r *Registry) confirmReject(ctx context.Context, id string) error {
	if err := r.requirePending(id); err != nil {
		return err
	}
	if !r.RejectPending(ctx, id) {
		return fmt.Errorf("%w: %s", ErrRejectNotConfirmed, id)
	}
	if err := r.transition(id, model.FormStatusRejected); err != nil {
		return err
	}
	r.clearPending(id)
	return nil
}

// CancelReject drops the acting user's pending rejection, if any.
func (r *Registry) CancelReject(ctx context.Context, id string) error {
	if _, err := r.store.FetchSubmission(id); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.pending, r.key(ctx, id))
	r.mu.Unlock()
	r.record(ctx, id, "cancel-reject", nil)
	return nil
}

// RejectPending reports whether the acting user has requested a rejection
// of id.
func (r *Registry) RejectPending(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[r.key(ctx, id)]
	return ok
}

// Decide applies a decision given as a target status. APPROVED approves,
// REJECTED confirms a requested rejection; anything else is refused.
func (r *Registry) Decide(ctx context.Context, id string, status model.FormStatus) error {
	if !status.IsAFormStatus() {
		return fmt.Errorf("%w: form status %d", model.ErrUnknownEnumValue, int(status))
	}
	switch status {
	case model.FormStatusApproved:
		return r.Approve(ctx, id)
	case model.FormStatusRejected:
		return r.ConfirmReject(ctx, id)
	default:
		return fmt.Errorf("%w: cannot decide %s", ErrInvalidTransition, status)
	}
}

// DisplayFields returns the fields shown when reviewing a submission. Seeded
// submissions carry none and show the extraction fixture instead.
func DisplayFields(sub model.FormSubmission) model.FieldList {
	if len(sub.Fields) == 0 {
		return smartfill.SeedFields()
	}
	return append(model.FieldList(nil), sub.Fields...)
}

func (r *Registry) requirePending(id string) error {
	sub, err := r.store.FetchSubmission(id)
	if err != nil {
		return err
	}
	if sub.Status != model.FormStatusPendingApproval {
		return fmt.Errorf("%w: %s is %s", ErrInvalidTransition, id, sub.Status)
	}
	return nil
}

func (r *Registry) transition(id string, to model.FormStatus) error {
	if err := r.requirePending(id); err != nil {
		return err
	}
	err := r.store.UpdateSubmissionStatus(id, model.FormStatusPendingApproval, to)
	if errors.Is(err, store.ErrStatusConflict) {
		return fmt.Errorf("%w: %s was decided concurrently", ErrInvalidTransition, id)
	}
	return err
}

func (r *Registry) clearPending(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.pending {
		if k.submission == id {
			delete(r.pending, k)
		}
	}
}

func (r *Registry) key(ctx context.Context, id string) rejectKey {
	k := rejectKey{submission: id}
	if s, ok := identity.Get(ctx); ok {
		k.actor = s.UserID
	}
	return k
}

func (r *Registry) record(ctx context.Context, id, operation string, err error) {
	actor, _ := identity.Get(ctx)
	event := audit.FormDecisionEvent{
		User:         actor.String(),
		SubmissionID: id,
		Operation:    operation,
		Success:      err == nil,
	}
	if err != nil {
		event.Error = err.Error()
	}
	r.audit.Log(event)
}
