package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

type staticUsers map[string]identity.Session

func (u staticUsers) Session(id string) (*identity.Session, error) {
	if id == "boom" {
		return nil, errors.New("directory unavailable")
	}
	s, ok := u[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &s, nil
}

var users = staticUsers{
	"u3": {UserID: "u3", Name: "Dave Grohl", Role: model.RoleBreweryManager},
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestSessionResolver(t *testing.T) {
	var got *identity.Session
	handler := NewSessionResolver(users).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = identity.Get(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(user string) *httptest.ResponseRecorder {
		got = nil
		req := httptest.NewRequest("GET", "/dashboard", nil)
		if user != "" {
			req.Header.Set(identity.Header, user)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	t.Run("resolves a known user", func(t *testing.T) {
		w := serve("u3")
		assert.Equal(t, http.StatusNoContent, w.Code)
		require.NotNil(t, got)
		assert.Equal(t, model.RoleBreweryManager, got.Role)
	})

	t.Run("missing header", func(t *testing.T) {
		w := serve("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, got)

		var body map[string]map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "unauthorized", body["error"]["code"])
	})

	t.Run("unknown user", func(t *testing.T) {
		w := serve("u99")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "unknown user u99")
	})

	t.Run("directory failure", func(t *testing.T) {
		w := serve("boom")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
