package endpoints

import (
	"net/http"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/rbac"
)

// PermissionChecker is the slice of the evaluator handlers gate on
type PermissionChecker interface {
	Require(role model.Role, permission model.PermissionID) error
}

// requirePage wraps next so it only runs when the session's role may open
// page. Denials are audited.
func requirePage(rec audit.Recorder, page string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r)
		if err := rbac.CheckPage(session.Role, page); err != nil {
			rec.Log(audit.PageAccessEvent{
				User: session.String(),
				Role: session.Role.String(),
				Page: page,
			})
			respondWithDomainError(w, err)
			return
		}
		next(w, r)
	}
}

// requirePermission wraps next so it only runs when the session's role
// holds permission
func requirePermission(checker PermissionChecker, permission model.PermissionID, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := checker.Require(sessionFrom(r).Role, permission); err != nil {
			respondWithDomainError(w, err)
			return
		}
		next(w, r)
	}
}
