package rbac

import (
	"context"
	"fmt"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// Evaluator answers permission-matrix questions over a GrantStore
type Evaluator struct {
	grants store.GrantStore
	audit  audit.Recorder
}

// NewEvaluator creates an Evaluator over grants
func NewEvaluator(grants store.GrantStore) *Evaluator {
	return &Evaluator{grants: grants, audit: audit.Default}
}

// WithAudit sets the recorder toggles are reported to.
func (e *Evaluator) WithAudit(r audit.Recorder) *Evaluator {
	e.audit = r
	return e
}

// HasPermission reports whether role holds permission. The owner holds every
// catalog entry regardless of stored state.
func (e *Evaluator) HasPermission(role model.Role, permission model.PermissionID) (bool, error) {
	if err := checkRole(role); err != nil {
		return false, err
	}
	if err := checkPermission(permission); err != nil {
		return false, err
	}
	if role == model.RoleOwner {
		return true, nil
	}
	return e.grants.Granted(role, permission)
}

// Require is HasPermission for callers that only proceed on a grant.
func (e *Evaluator) Require(role model.Role, permission model.PermissionID) error {
	ok, err := e.HasPermission(role, permission)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s lacks %s", ErrPermissionDenied, role, permission)
	}
	return nil
}

// TogglePermission flips membership of permission in role's grant set and
// returns the new state. The owner is refused with ErrUnauthorizedMutation
// and nothing changes.
func (e *Evaluator) TogglePermission(ctx context.Context, role model.Role, permission model.PermissionID) (bool, error) {
	if err := checkRole(role); err != nil {
		return false, err
	}
	if err := checkPermission(permission); err != nil {
		return false, err
	}

	actor, _ := identity.Get(ctx)
	event := audit.PermissionToggleEvent{
		User:       actor.String(),
		Role:       role.String(),
		Permission: permission.String(),
	}

	if role == model.RoleOwner {
		event.Granted = true
		event.Error = ErrUnauthorizedMutation.Error()
		e.audit.Log(event)
		return true, ErrUnauthorizedMutation
	}

	granted, err := e.grants.Toggle(role, permission)
	if err != nil {
		event.Error = err.Error()
		e.audit.Log(event)
		return false, fmt.Errorf("toggling %s for %s: %w", permission, role, err)
	}

	event.Granted = granted
	event.Success = true
	e.audit.Log(event)
	return granted, nil
}

// MatrixRow is one role's line of the permission matrix, keyed by
// permission wire name
type MatrixRow struct {
	Role      model.Role      `json:"role"`
	Immutable bool            `json:"immutable"`
	Grants    map[string]bool `json:"grants"`
}

// Matrix returns the full role by permission matrix in role order
func (e *Evaluator) Matrix() ([]MatrixRow, error) {
	var rows []MatrixRow
	for _, role := range model.RoleValues() {
		row := MatrixRow{
			Role:      role,
			Immutable: role == model.RoleOwner,
			Grants:    make(map[string]bool, len(catalog)),
		}
		for _, p := range catalog {
			ok, err := e.HasPermission(role, p.ID)
			if err != nil {
				return nil, err
			}
			row.Grants[p.ID.String()] = ok
		}
		rows = append(rows, row)
	}
	return rows, nil
}
