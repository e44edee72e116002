package endpoints

import (
	"net/http"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/rbac"
	"github.com/tripleswitch/complianceos/pkg/server"
	"github.com/tripleswitch/complianceos/pkg/team"
)

// RegisterTeamEndpoints registers the settings page: the user directory and
// the security policies
func RegisterTeamEndpoints(s *server.Server) {
	settings := func(h http.HandlerFunc) http.HandlerFunc {
		return requirePage(s.Audit, rbac.PageSettings, h)
	}
	manage := func(h http.HandlerFunc) http.HandlerFunc {
		return settings(requirePermission(s.Evaluator, model.PermissionManageUsers, h))
	}

	s.API.HandleFunc("/users", settings(handleListUsers(s.Users))).Methods("GET")
	s.API.HandleFunc("/users/{id}", manage(handleUpdateUser(s.Users))).Methods("PUT")
	s.API.HandleFunc("/users/{id}", manage(handleRemoveUser(s.Users))).Methods("DELETE")

	s.API.HandleFunc("/policies", settings(handleListPolicies(s.Policies))).Methods("GET")
	s.API.HandleFunc("/policies/{id}/toggle", settings(handleTogglePolicy(s.Policies))).Methods("POST")
}

func handleListUsers(dir *team.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := dir.List(r.URL.Query().Get("search"))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, users)
	}
}

// handleUpdateUser replaces a user; the id comes from the path
func handleUpdateUser(dir *team.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u model.User
		if err := decodeJSON(r, &u); err != nil {
			respondBadRequest(w, err.Error())
			return
		}
		u.ID = pathVar(r, "id")

		updated, err := dir.Update(sessionFrom(r), u)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleRemoveUser(dir *team.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := dir.Remove(sessionFrom(r), pathVar(r, "id")); err != nil {
			respondWithDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleListPolicies(p *team.Policies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, p.List())
	}
}

func handleTogglePolicy(p *team.Policies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		policy, err := p.Toggle(r.Context(), pathVar(r, "id"))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, policy)
	}
}
