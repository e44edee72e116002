package endpoints

import (
	"net/http"
	"strconv"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/dashboard"
	"github.com/tripleswitch/complianceos/pkg/notify"
	"github.com/tripleswitch/complianceos/pkg/rbac"
	"github.com/tripleswitch/complianceos/pkg/server"
)

// defaultAuditLimit caps the audit page when no limit is asked for
const defaultAuditLimit = 100

// RegisterActivityEndpoints registers the dashboard, notifications and
// the audit log
func RegisterActivityEndpoints(s *server.Server) {
	s.API.HandleFunc("/dashboard", handleDashboard(s.Dashboard)).Methods("GET")
	s.API.HandleFunc("/notifications", handleNotifications(s.Notifier)).Methods("GET")
	s.API.HandleFunc("/audit", requirePage(s.Audit, rbac.PageAudit, handleAuditLog(s.AuditLog))).Methods("GET")
}

func handleDashboard(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summary()
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, summary)
	}
}

// handleNotifications returns the session's active notification, or 204
// when there is none
func handleNotifications(n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active, err := n.Active(r.Context(), sessionFrom(r).UserID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		if active == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respondWithJSON(w, http.StatusOK, active)
	}
}

// handleAuditLog serves the newest entries from the installed reader: the
// audit database when one is configured, the in-process ring otherwise
func handleAuditLog(reader audit.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultAuditLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				respondBadRequest(w, "limit must be a positive integer")
				return
			}
			limit = n
		}

		entries, err := reader.Recent(limit)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		if entries == nil {
			entries = []audit.Entry{}
		}
		respondWithJSON(w, http.StatusOK, entries)
	}
}
