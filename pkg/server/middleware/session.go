package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// SessionSource resolves a team member id into the session they act under
type SessionSource interface {
	Session(userID string) (*identity.Session, error)
}

// SessionResolver is middleware that threads the acting session named by
// the X-Tripleswitch-User header into the request context
type SessionResolver struct {
	Users SessionSource
}

// NewSessionResolver creates a new session middleware over users
func NewSessionResolver(users SessionSource) *SessionResolver {
	return &SessionResolver{Users: users}
}

// Middleware returns an HTTP middleware that resolves the session
func (s *SessionResolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(identity.Header)
		if userID == "" {
			unauthorized(w, identity.Header+" missing")
			return
		}

		session, err := s.Users.Session(userID)
		if errors.Is(err, store.ErrNotFound) {
			unauthorized(w, "unknown user "+userID)
			return
		}
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(errorBody("internal", err.Error()))
			return
		}

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), session)))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(errorBody("unauthorized", message))
}

func errorBody(code, message string) map[string]interface{} {
	return map[string]interface{}{
		"error": map[string]string{"code": code, "message": message},
	}
}
