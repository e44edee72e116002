package identity

import (
	"context"
	"fmt"

	"github.com/tripleswitch/complianceos/pkg/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Session.
	Key ContextKey = "session"

	// Header names the team member a request acts as.
	Header = "X-Tripleswitch-User"
)

// Session is the acting user of an operation. It is passed explicitly; there
// is no process-wide current user.
type Session struct {
	UserID string     `json:"userId"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
}

// FromUser creates a Session for a directory user.
func FromUser(u model.User) *Session {
	return &Session{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}

// WithRole returns a copy of the session acting under role.
func (s Session) WithRole(role model.Role) *Session {
	s.Role = role
	return &s
}

// String renders the session for audit messages, e.g. "Dave Grohl (u3)".
func (s *Session) String() string {
	if s == nil {
		return "anonymous"
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.UserID)
}

// Get retrieves Session from context.
func Get(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(Key).(*Session)
	return s, ok && s != nil
}

// Set stores Session in context.
func Set(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, Key, s)
}
