package endpoints

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/tripleswitch/complianceos/pkg/rbac"
	"github.com/tripleswitch/complianceos/pkg/server"
)

// StatusResponse is the JSON form of the status page
type StatusResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// PageAccessResponse answers whether the session may open a page
type PageAccessResponse struct {
	Page    string `json:"page"`
	Role    string `json:"role"`
	Allowed bool   `json:"allowed"`
}

// RegisterStatusEndpoints registers the status page, navigation and page
// access checks
func RegisterStatusEndpoints(s *server.Server) {
	// GET / - Status page (no session required)
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")

	s.API.HandleFunc("/navigation", handleNavigation()).Methods("GET")
	s.API.HandleFunc("/pages/{page}/access", handlePageAccess()).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("COMPLY_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(StatusResponse{
				Service: "complianceos",
				Version: version,
				Status:  "ok",
			})
			return
		}

		html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Tripleswitch ComplianceOS</title>
  </head>
  <body>
    <h1>Status</h1>
    <p class="status-text">ComplianceOS is running.</p>
    <dl>
      <dt>Version</dt>
      <dd>` + version + `</dd>
    </dl>
  </body>
</html>
`
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}

func handleNavigation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, rbac.NavigationFor(sessionFrom(r).Role))
	}
}

// handlePageAccess answers for the page named without its leading slash,
// e.g. /pages/settings/access
func handlePageAccess() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r)
		page := "/" + strings.TrimPrefix(pathVar(r, "page"), "/")
		respondWithJSON(w, http.StatusOK, PageAccessResponse{
			Page:    page,
			Role:    session.Role.String(),
			Allowed: rbac.IsPageAllowed(session.Role, page),
		})
	}
}
