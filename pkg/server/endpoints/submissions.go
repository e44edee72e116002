package endpoints

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tripleswitch/complianceos/pkg/forms"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/server"
)

// SubmissionsResponse lists submissions with their status counts
type SubmissionsResponse struct {
	Submissions []model.FormSubmission `json:"submissions"`
	Counts      forms.Counts           `json:"counts"`
}

// SubmissionResponse is one submission as shown in the approval view
type SubmissionResponse struct {
	Submission    *model.FormSubmission `json:"submission"`
	Fields        model.FieldList       `json:"fields"`
	RejectPending bool                  `json:"rejectPending"`
}

// DecisionRequest names the status a reviewer decides on
type DecisionRequest struct {
	Status string `json:"status"`
}

// RegisterSubmissionsEndpoints registers the submission list and the
// approval actions
func RegisterSubmissionsEndpoints(s *server.Server) {
	reg := s.Workflows.Registry()
	approve := func(h http.HandlerFunc) http.HandlerFunc {
		return requirePermission(s.Evaluator, model.PermissionApproveForms, h)
	}
	r := s.API.PathPrefix("/forms/submissions").Subrouter()

	r.HandleFunc("", handleListSubmissions(reg)).Methods("GET")
	r.HandleFunc("/{id}", handleGetSubmission(reg)).Methods("GET")
	r.HandleFunc("/{id}/approve", approve(handleSubmissionAction(reg, (*forms.Registry).Approve))).Methods("POST")
	r.HandleFunc("/{id}/reject", approve(handleSubmissionAction(reg, (*forms.Registry).RequestReject))).Methods("POST")
	r.HandleFunc("/{id}/reject/confirm", approve(handleSubmissionAction(reg, (*forms.Registry).ConfirmReject))).Methods("POST")
	r.HandleFunc("/{id}/reject", approve(handleSubmissionAction(reg, (*forms.Registry).CancelReject))).Methods("DELETE")
	r.HandleFunc("/{id}/decision", approve(handleDecide(reg))).Methods("POST")
}

func handleListSubmissions(reg *forms.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := reg.List()
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		counts, err := reg.Counts()
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, SubmissionsResponse{Submissions: subs, Counts: counts})
	}
}

func handleGetSubmission(reg *forms.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithSubmission(w, r, reg, http.StatusOK)
	}
}

// handleSubmissionAction serves approve and the reject confirmation steps
func handleSubmissionAction(reg *forms.Registry, action func(*forms.Registry, context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := action(reg, r.Context(), pathVar(r, "id")); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithSubmission(w, r, reg, http.StatusOK)
	}
}

func handleDecide(reg *forms.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DecisionRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, err.Error())
			return
		}
		status, err := model.FormStatusString(req.Status)
		if err != nil {
			respondWithDomainError(w, fmt.Errorf("%w: %w", model.ErrUnknownEnumValue, err))
			return
		}
		if err := reg.Decide(r.Context(), pathVar(r, "id"), status); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithSubmission(w, r, reg, http.StatusOK)
	}
}

func respondWithSubmission(w http.ResponseWriter, r *http.Request, reg *forms.Registry, code int) {
	sub, err := reg.Get(pathVar(r, "id"))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, code, SubmissionResponse{
		Submission:    sub,
		Fields:        forms.DisplayFields(*sub),
		RejectPending: reg.RejectPending(r.Context(), sub.ID),
	})
}
