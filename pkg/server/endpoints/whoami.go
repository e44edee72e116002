package endpoints

import (
	"net/http"

	"github.com/tripleswitch/complianceos/pkg/server"
	"github.com/tripleswitch/complianceos/pkg/server/middleware"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	RoleLabel string `json:"roleLabel"`
	RequestID string `json:"requestId,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	s.API.HandleFunc("/whoami", handleWhoami()).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r)
		respondWithJSON(w, http.StatusOK, WhoamiResponse{
			UserID:    session.UserID,
			Name:      session.Name,
			Email:     session.Email,
			Role:      session.Role.String(),
			RoleLabel: session.Role.Label(),
			RequestID: middleware.GetRequestID(r.Context()),
		})
	}
}
