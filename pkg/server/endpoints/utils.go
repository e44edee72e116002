package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/tripleswitch/complianceos/pkg/documents"
	"github.com/tripleswitch/complianceos/pkg/forms"
	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/rbac"
	"github.com/tripleswitch/complianceos/pkg/store"
	"github.com/tripleswitch/complianceos/pkg/team"
	"github.com/tripleswitch/complianceos/pkg/validate"
)

// ErrorBody is the payload under the "error" key of every failed response
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// errorClass pairs a sentinel with the status and code it is served as
type errorClass struct {
	err    error
	status int
	code   string
}

// errorClasses is checked in order; the first match wins, so wrapping
// sentinels precede the ones they wrap
var errorClasses = []errorClass{
	{forms.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{forms.ErrRejectNotConfirmed, http.StatusConflict, "reject_not_confirmed"},
	{rbac.ErrUnauthorizedMutation, http.StatusForbidden, "unauthorized_mutation"},
	{rbac.ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
	{rbac.ErrPageDenied, http.StatusForbidden, "page_denied"},
	{team.ErrSelfRoleChange, http.StatusForbidden, "self_role_change"},
	{team.ErrSelfRemoval, http.StatusForbidden, "self_removal"},
	{model.ErrUnknownEnumValue, http.StatusBadRequest, "unknown_enum_value"},
	{forms.ErrInvalidFile, http.StatusUnprocessableEntity, "invalid_file"},
	{documents.ErrInvalidUpload, http.StatusUnprocessableEntity, "invalid_upload"},
	{validate.ErrInvalid, http.StatusUnprocessableEntity, "invalid"},
	{store.ErrNotFound, http.StatusNotFound, "not_found"},
	{forms.ErrFieldNotFound, http.StatusNotFound, "field_not_found"},
	{documents.ErrVersionNotFound, http.StatusNotFound, "version_not_found"},
	{team.ErrPolicyNotFound, http.StatusNotFound, "policy_not_found"},
	{store.ErrStatusConflict, http.StatusConflict, "status_conflict"},
}

// respondWithDomainError classifies err with errors.Is and writes the
// matching status. Unclassified errors are 500s.
func respondWithDomainError(w http.ResponseWriter, err error) {
	for _, c := range errorClasses {
		if errors.Is(err, c.err) {
			respondWithError(w, c.status, ErrorBody{Code: c.code, Message: err.Error()})
			return
		}
	}
	respondWithError(w, http.StatusInternalServerError, ErrorBody{Code: "internal", Message: err.Error()})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondWithError(w, http.StatusBadRequest, ErrorBody{Code: "bad_request", Message: message})
}

// decodeJSON reads a JSON request body into v, rejecting unknown fields
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("malformed request body: %w", err)
	}
	return nil
}

// sessionFrom returns the session the session middleware resolved. Routes
// are only reachable through that middleware, so a missing session is a
// wiring bug.
func sessionFrom(r *http.Request) identity.Session {
	s, ok := identity.Get(r.Context())
	if !ok {
		panic("endpoints: request reached a handler without a session")
	}
	return *s
}

// pathVar returns the decoded mux variable name; the router keeps paths
// encoded
func pathVar(r *http.Request, name string) string {
	raw := mux.Vars(r)[name]
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
