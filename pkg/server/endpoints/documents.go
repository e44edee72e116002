package endpoints

import (
	"fmt"
	"net/http"

	"github.com/tripleswitch/complianceos/pkg/documents"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/server"
)

// VersionNote is a version's change note rendered for display
type VersionNote struct {
	Version string `json:"version"`
	Summary string `json:"summary"`
	HTML    string `json:"html"`
}

// DocumentResponse is a document with its rendered history
type DocumentResponse struct {
	Document *model.DocumentEntity `json:"document"`
	Notes    []VersionNote         `json:"notes"`
}

// TagRequest names a tag to add
type TagRequest struct {
	Tag string `json:"tag"`
}

// RevertRequest names the version to make current
type RevertRequest struct {
	Version string `json:"version"`
}

// RegisterDocumentsEndpoints registers the document repository endpoints
func RegisterDocumentsEndpoints(s *server.Server) {
	repo := s.Documents
	r := s.API.PathPrefix("/documents").Subrouter()

	r.HandleFunc("", handleListDocuments(repo)).Methods("GET")
	r.HandleFunc("", requirePermission(s.Evaluator, model.PermissionUploadDocs, handleUploadDocument(repo))).Methods("POST")
	r.HandleFunc("/tags", handleListTags(repo)).Methods("GET")
	r.HandleFunc("/{id}", handleGetDocument(repo)).Methods("GET")
	r.HandleFunc("/{id}/tags", handleAddTag(repo)).Methods("POST")
	r.HandleFunc("/{id}/tags/{tag}", handleRemoveTag(repo)).Methods("DELETE")
	r.HandleFunc("/{id}/revert", handleRevert(repo)).Methods("POST")
}

// handleListDocuments filters on repeated tag and type query parameters
func handleListDocuments(repo *documents.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := documents.Filter{Tags: query["tag"]}
		for _, name := range query["type"] {
			t, err := model.DocumentTypeString(name)
			if err != nil {
				respondWithDomainError(w, fmt.Errorf("%w: %w", model.ErrUnknownEnumValue, err))
				return
			}
			filter.Types = append(filter.Types, t)
		}

		docs, err := repo.List(filter)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, docs)
	}
}

func handleListTags(repo *documents.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := repo.Tags()
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tags)
	}
}

func handleGetDocument(repo *documents.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := repo.Get(pathVar(r, "id"))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithDocument(w, http.StatusOK, doc)
	}
}

func handleUploadDocument(repo *documents.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req documents.Upload
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, err.Error())
			return
		}
		doc, err := repo.Upload(r.Context(), sessionFrom(r), req)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithDocument(w, http.StatusCreated, doc)
	}
}

func handleAddTag(repo *documents.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TagRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, err.Error())
			return
		}
		doc, err := repo.AddTag(r.Context(), pathVar(r, "id"), req.Tag)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithDocument(w, http.StatusOK, doc)
	}
}

func handleRemoveTag(repo *documents.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := repo.RemoveTag(r.Context(), pathVar(r, "id"), pathVar(r, "tag"))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithDocument(w, http.StatusOK, doc)
	}
}

func handleRevert(repo *documents.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RevertRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, err.Error())
			return
		}
		doc, err := repo.Revert(r.Context(), pathVar(r, "id"), req.Version)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithDocument(w, http.StatusOK, doc)
	}
}

func respondWithDocument(w http.ResponseWriter, code int, doc *model.DocumentEntity) {
	notes := make([]VersionNote, 0, len(doc.Versions))
	for _, v := range doc.Versions {
		html, err := documents.RenderChangeNote(v.ChangeNote)
		if err != nil {
			respondWithDomainError(w, fmt.Errorf("rendering note for %s: %w", v.Version, err))
			return
		}
		notes = append(notes, VersionNote{
			Version: v.Version,
			Summary: documents.ChangeNoteSummary(v.ChangeNote),
			HTML:    html,
		})
	}
	respondWithJSON(w, code, DocumentResponse{Document: doc, Notes: notes})
}
