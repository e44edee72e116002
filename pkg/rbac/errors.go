package rbac

import (
	"errors"

	"github.com/tripleswitch/complianceos/pkg/model"
)

// ErrUnauthorizedMutation is returned when a toggle targets the owner role.
// The matrix is left unchanged.
var ErrUnauthorizedMutation = errors.New("owner permissions are immutable")

// ErrUnknownEnumValue is returned for a role or permission outside the catalog.
var ErrUnknownEnumValue = model.ErrUnknownEnumValue

// ErrPageDenied is returned by CheckPage when the role may not open the page.
var ErrPageDenied = errors.New("page access denied")

// ErrPermissionDenied is returned by Evaluator.Require when the role lacks
// the permission.
var ErrPermissionDenied = errors.New("permission denied")
