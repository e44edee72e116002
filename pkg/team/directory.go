package team

import (
	"fmt"
	"strings"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
	"github.com/tripleswitch/complianceos/pkg/validate"
)

// Directory is the team's user list
type Directory struct {
	store     store.UserStore
	audit     audit.Recorder
	validator *validate.Validator
}

// NewDirectory creates a Directory over s
func NewDirectory(s store.UserStore) *Directory {
	return &Directory{
		store:     s,
		audit:     audit.Default,
		validator: validate.New(),
	}
}

// WithAudit sets the recorder edits are reported to.
func (d *Directory) WithAudit(rec audit.Recorder) *Directory {
	d.audit = rec
	return d
}

// List returns users whose name or email contains search, ignoring case.
// An empty search returns everyone.
func (d *Directory) List(search string) ([]model.User, error) {
	users, err := d.store.ListUsers()
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return users, nil
	}
	out := users[:0]
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), search) ||
			strings.Contains(strings.ToLower(u.Email), search) {
			out = append(out, u)
		}
	}
	return out, nil
}

// Get returns a user by id
func (d *Directory) Get(id string) (*model.User, error) {
	return d.store.FetchUser(id)
}

// Session resolves a user id to the session acting as them
func (d *Directory) Session(id string) (*identity.Session, error) {
	u, err := d.store.FetchUser(id)
	if err != nil {
		return nil, err
	}
	return identity.FromUser(*u), nil
}

// Update replaces a user's details. The actor may edit themselves but not
// their own role.
func (d *Directory) Update(actor identity.Session, u model.User) (*model.User, error) {
	err := d.update(actor, u)
	d.record(actor, u.ID, "update", err)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *Directory) update(actor identity.Session, u model.User) error {
	if err := d.validator.Struct(u); err != nil {
		return err
	}
	current, err := d.store.FetchUser(u.ID)
	if err != nil {
		return err
	}
	if u.ID == actor.UserID && u.Role != current.Role {
		return fmt.Errorf("%w: %s", ErrSelfRoleChange, u.ID)
	}
	if err := d.store.UpdateUser(u); err != nil {
		return fmt.Errorf("updating user %s: %w", u.ID, err)
	}
	return nil
}

// Remove deletes a user. The actor cannot remove themselves.
func (d *Directory) Remove(actor identity.Session, id string) error {
	err := d.remove(actor, id)
	d.record(actor, id, "remove", err)
	return err
}

func (d *Directory) remove(actor identity.Session, id string) error {
	if id == actor.UserID {
		return fmt.Errorf("%w: %s", ErrSelfRemoval, id)
	}
	return d.store.DeleteUser(id)
}

func (d *Directory) record(actor identity.Session, target, operation string, err error) {
	event := audit.UserUpdateEvent{
		User:      actor.String(),
		TargetID:  target,
		Operation: operation,
		Success:   err == nil,
	}
	if err != nil {
		event.Error = err.Error()
	}
	d.audit.Log(event)
}
