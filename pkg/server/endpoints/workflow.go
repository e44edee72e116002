package endpoints

import (
	"net/http"

	"github.com/tripleswitch/complianceos/pkg/forms"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/server"
)

// SelectFileRequest names the file picked for upload
type SelectFileRequest struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// EditFieldRequest carries a reviewer's value for one field
type EditFieldRequest struct {
	Value string `json:"value"`
}

// SubmitResponse is returned by a successful submit
type SubmitResponse struct {
	Submission *model.FormSubmission `json:"submission"`
	Workflow   forms.Snapshot        `json:"workflow"`
}

// RegisterWorkflowEndpoints registers the per-session form workflow
func RegisterWorkflowEndpoints(s *server.Server) {
	m := s.Workflows
	r := s.API.PathPrefix("/forms/workflow").Subrouter()

	r.HandleFunc("", handleWorkflowSnapshot(m)).Methods("GET")
	r.HandleFunc("/upload", handleWorkflowStep(m, (*forms.Workflow).StartUpload)).Methods("POST")
	r.HandleFunc("/file", handleSelectFile(m)).Methods("POST")
	r.HandleFunc("/file", handleWorkflowStep(m, (*forms.Workflow).ClearFile)).Methods("DELETE")
	r.HandleFunc("/analyze", handleAnalyze(m)).Methods("POST")
	r.HandleFunc("/complete", handleWorkflowStep(m, (*forms.Workflow).CompleteAnalysis)).Methods("POST")
	r.HandleFunc("/discard", handleWorkflowStep(m, (*forms.Workflow).Discard)).Methods("POST")
	r.HandleFunc("/draft", handleWorkflowStep(m, (*forms.Workflow).SaveDraft)).Methods("POST")
	r.HandleFunc("/submit", requirePermission(s.Evaluator, model.PermissionSubmitForms, handleSubmit(m))).Methods("POST")
	r.HandleFunc("/cancel", handleWorkflowStep(m, (*forms.Workflow).Cancel)).Methods("POST")
	r.HandleFunc("/back", handleWorkflowStep(m, (*forms.Workflow).Back)).Methods("POST")
	r.HandleFunc("/fields/{field}", handleEditField(m)).Methods("PUT")
	r.HandleFunc("/open/{id}", handleOpen(m)).Methods("POST")
}

func handleWorkflowSnapshot(m *forms.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, m.For(sessionFrom(r)).Snapshot())
	}
}

// handleWorkflowStep serves the transitions that take no input
func handleWorkflowStep(m *forms.Manager, step func(*forms.Workflow) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wf := m.For(sessionFrom(r))
		if err := step(wf); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, wf.Snapshot())
	}
}

func handleSelectFile(m *forms.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectFileRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, err.Error())
			return
		}
		wf := m.For(sessionFrom(r))
		if _, err := wf.SelectFile(req.Name, req.Size); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, wf.Snapshot())
	}
}

func handleAnalyze(m *forms.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wf := m.For(sessionFrom(r))
		if err := wf.Analyze(r.Context()); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusAccepted, wf.Snapshot())
	}
}

func handleEditField(m *forms.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EditFieldRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, err.Error())
			return
		}
		wf := m.For(sessionFrom(r))
		if _, err := wf.EditField(pathVar(r, "field"), req.Value); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, wf.Snapshot())
	}
}

func handleSubmit(m *forms.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wf := m.For(sessionFrom(r))
		sub, err := wf.Submit(r.Context())
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, SubmitResponse{Submission: sub, Workflow: wf.Snapshot()})
	}
}

func handleOpen(m *forms.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wf := m.For(sessionFrom(r))
		if _, err := wf.Open(pathVar(r, "id")); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, wf.Snapshot())
	}
}
