package endpoints

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/team"
)

func userBody(role string) map[string]interface{} {
	return map[string]interface{}{
		"name":       "New Hire",
		"email":      "temp.hire@tripleswitch.com",
		"role":       role,
		"status":     "ACTIVE",
		"lastActive": "Now",
	}
}

func TestListUsers(t *testing.T) {
	env := newTestServer(t)

	t.Run("brewer cannot open settings", func(t *testing.T) {
		w := env.do(t, "GET", "/users", "u4", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("search matches name or email", func(t *testing.T) {
		w := env.do(t, "GET", "/users?search=TRIPLESWITCH.COM", "u3", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody[[]model.User](t, w), 5)

		w = env.do(t, "GET", "/users?search=grohl", "u3", nil)
		require.Equal(t, http.StatusOK, w.Code)
		users := decodeBody[[]model.User](t, w)
		require.Len(t, users, 1)
		assert.Equal(t, "u3", users[0].ID)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("needs manage_users", func(t *testing.T) {
		env := newTestServer(t)

		w := env.do(t, "PUT", "/users/u5", "u3", userBody("BREWER"))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "permission_denied", errorCode(t, w))
	})

	t.Run("owner activates a user", func(t *testing.T) {
		env := newTestServer(t)

		w := env.do(t, "PUT", "/users/u5", "u2", userBody("BREWER"))
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[model.User](t, w)
		assert.Equal(t, "u5", got.ID)
		assert.Equal(t, model.UserStatusActive, got.Status)
		assert.Len(t, env.audit.ofType("user-update"), 1)
	})

	t.Run("own role is fixed", func(t *testing.T) {
		env := newTestServer(t)

		body := userBody("BREWER")
		body["name"] = "Sarah Jenkins"
		body["email"] = "sarah.j@tripleswitch.com"
		w := env.do(t, "PUT", "/users/u2", "u2", body)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "self_role_change", errorCode(t, w))
	})

	t.Run("invalid email", func(t *testing.T) {
		env := newTestServer(t)

		body := userBody("BREWER")
		body["email"] = "not-an-email"
		w := env.do(t, "PUT", "/users/u5", "u2", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "invalid", errorCode(t, w))
	})

	t.Run("unknown role", func(t *testing.T) {
		env := newTestServer(t)

		w := env.do(t, "PUT", "/users/u5", "u2", userBody("INTERN"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		env := newTestServer(t)

		w := env.do(t, "PUT", "/users/u42", "u2", userBody("BREWER"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRemoveUser(t *testing.T) {
	env := newTestServer(t)

	w := env.do(t, "DELETE", "/users/u2", "u2", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "self_removal", errorCode(t, w))

	w = env.do(t, "DELETE", "/users/u5", "u2", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, "GET", "/users?search=hire", "u2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[[]model.User](t, w))
}

func TestRemoveUser_StoreFailure(t *testing.T) {
	users := NewMockUserStore()
	users.On("DeleteUser", "u5").Return(errors.New("deadlock detected"))

	handler := handleRemoveUser(team.NewDirectory(users).WithAudit(&recorder{}))
	req := withMuxVars(requestWithSession("DELETE", "/users/u5", "", sarah), map[string]string{"id": "u5"})
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	users.AssertExpectations(t)
}

func TestPolicies(t *testing.T) {
	env := newTestServer(t)

	w := env.do(t, "GET", "/policies", "u3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	policies := decodeBody[[]team.SecurityPolicy](t, w)
	require.Len(t, policies, 4)

	w = env.do(t, "POST", "/policies/"+policies[0].ID+"/toggle", "u3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, !policies[0].Enabled, decodeBody[team.SecurityPolicy](t, w).Enabled)

	w = env.do(t, "POST", "/policies/p42/toggle", "u3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "policy_not_found", errorCode(t, w))

	w = env.do(t, "POST", "/policies/p1/toggle", "u4", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
