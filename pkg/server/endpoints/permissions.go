package endpoints

import (
	"fmt"
	"net/http"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/rbac"
	"github.com/tripleswitch/complianceos/pkg/server"
)

// PermissionsResponse is the settings matrix view
type PermissionsResponse struct {
	Catalog    []rbac.Permission `json:"catalog"`
	Categories []string          `json:"categories"`
	Matrix     []rbac.MatrixRow  `json:"matrix"`
}

// ToggleResponse reports a permission's state after a toggle
type ToggleResponse struct {
	Role       model.Role         `json:"role"`
	Permission model.PermissionID `json:"permission"`
	Granted    bool               `json:"granted"`
}

// RegisterPermissionsEndpoints registers the permission matrix endpoints
func RegisterPermissionsEndpoints(s *server.Server) {
	s.API.HandleFunc("/permissions",
		requirePage(s.Audit, rbac.PageSettings, handleListPermissions(s.Evaluator))).Methods("GET")
	s.API.HandleFunc("/permissions/{role}/{permission}/toggle",
		requirePage(s.Audit, rbac.PageSettings, handleTogglePermission(s.Evaluator))).Methods("POST")
}

func handleListPermissions(ev *rbac.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matrix, err := ev.Matrix()
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, PermissionsResponse{
			Catalog:    rbac.Catalog(),
			Categories: rbac.Categories(),
			Matrix:     matrix,
		})
	}
}

func handleTogglePermission(ev *rbac.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := model.RoleString(pathVar(r, "role"))
		if err != nil {
			respondWithDomainError(w, fmt.Errorf("%w: %w", model.ErrUnknownEnumValue, err))
			return
		}
		permission, err := model.PermissionIDString(pathVar(r, "permission"))
		if err != nil {
			respondWithDomainError(w, fmt.Errorf("%w: %w", model.ErrUnknownEnumValue, err))
			return
		}

		granted, err := ev.TogglePermission(r.Context(), role, permission)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, ToggleResponse{Role: role, Permission: permission, Granted: granted})
	}
}
