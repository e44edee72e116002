package documents

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
	"github.com/tripleswitch/complianceos/pkg/validate"
)

const (
	// InitialVersion labels the first version of an uploaded document
	InitialVersion    = "v1.0"
	InitialChangeNote = "Initial upload"
)

// Filter narrows a listing. A document matches when it carries every tag in
// Tags and its type is one of Types. Empty fields match everything.
type Filter struct {
	Tags  []string
	Types []model.DocumentType
}

func (f Filter) matches(d model.DocumentEntity) bool {
	for _, tag := range f.Tags {
		if !d.Tags.Contains(tag) {
			return false
		}
	}
	if len(f.Types) == 0 {
		return true
	}
	for _, t := range f.Types {
		if d.Type == t {
			return true
		}
	}
	return false
}

// Upload describes a new document. Only metadata is accepted.
type Upload struct {
	Name           string               `json:"name" validate:"required,max=255"`
	Size           int64                `json:"size" validate:"gte=0"`
	Classification model.Classification `json:"classification" validate:"omitempty,classification"`
	// Tags is a comma separated list.
	Tags string `json:"tags"`
}

// Repository is the document listing and its mutations
type Repository struct {
	store     store.DocumentStore
	audit     audit.Recorder
	clock     clock.Clock
	validator *validate.Validator
}

// NewRepository creates a Repository over s
func NewRepository(s store.DocumentStore) *Repository {
	return &Repository{
		store:     s,
		audit:     audit.Default,
		clock:     clock.New(),
		validator: validate.New(),
	}
}

// WithAudit sets the recorder changes are reported to.
func (r *Repository) WithAudit(rec audit.Recorder) *Repository {
	r.audit = rec
	return r
}

// WithClock sets the clock upload dates are taken from.
func (r *Repository) WithClock(c clock.Clock) *Repository {
	r.clock = c
	return r
}

// List returns the documents matching filter, newest first
func (r *Repository) List(filter Filter) ([]model.DocumentEntity, error) {
	docs, err := r.store.ListDocuments()
	if err != nil {
		return nil, err
	}
	out := docs[:0]
	for _, d := range docs {
		if filter.matches(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

// Tags returns every distinct tag in the repository, sorted
func (r *Repository) Tags() ([]string, error) {
	docs, err := r.store.ListDocuments()
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var tags []string
	for _, d := range docs {
		for _, t := range d.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// Get returns a document by id
func (r *Repository) Get(id string) (*model.DocumentEntity, error) {
	return r.store.FetchDocument(id)
}

// AddTag adds a trimmed tag to a document. Blank and duplicate tags leave
// the document unchanged.
func (r *Repository) AddTag(ctx context.Context, id, tag string) (*model.DocumentEntity, error) {
	doc, err := r.store.FetchDocument(id)
	if err != nil {
		return nil, err
	}
	tag = strings.TrimSpace(tag)
	if tag == "" || doc.Tags.Contains(tag) {
		return doc, nil
	}

	doc.Tags = append(doc.Tags, tag)
	if err := r.store.UpdateDocument(*doc); err != nil {
		return nil, fmt.Errorf("tagging %s: %w", id, err)
	}
	r.record(ctx, id, "tag-add", tag)
	return doc, nil
}

// RemoveTag removes a tag from a document. A missing tag is not an error.
func (r *Repository) RemoveTag(ctx context.Context, id, tag string) (*model.DocumentEntity, error) {
	doc, err := r.store.FetchDocument(id)
	if err != nil {
		return nil, err
	}
	if !doc.Tags.Contains(tag) {
		return doc, nil
	}

	kept := make(model.StringList, 0, len(doc.Tags)-1)
	for _, t := range doc.Tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	doc.Tags = kept
	if err := r.store.UpdateDocument(*doc); err != nil {
		return nil, fmt.Errorf("untagging %s: %w", id, err)
	}
	r.record(ctx, id, "tag-remove", tag)
	return doc, nil
}

// Revert makes an earlier version current. The document takes that
// version's size, date and uploader; the history is left as it is.
func (r *Repository) Revert(ctx context.Context, id, version string) (*model.DocumentEntity, error) {
	doc, err := r.store.FetchDocument(id)
	if err != nil {
		return nil, err
	}
	v, ok := doc.Version(version)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s", ErrVersionNotFound, id, version)
	}

	doc.CurrentVersion = v.Version
	doc.Size = v.Size
	doc.UploadDate = v.UploadDate
	doc.Author = v.UploadedBy
	if err := r.store.UpdateDocument(*doc); err != nil {
		return nil, fmt.Errorf("reverting %s: %w", id, err)
	}
	r.record(ctx, id, "revert", version)
	return doc, nil
}

// Upload adds a new document at the head of the repository, authored by the
// session's user.
func (r *Repository) Upload(ctx context.Context, session identity.Session, u Upload) (*model.DocumentEntity, error) {
	u.Name = strings.TrimSpace(u.Name)
	if err := r.validator.Struct(u); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUpload, err)
	}
	if u.Classification == 0 {
		u.Classification = model.ClassificationInternal
	}

	today := r.clock.Now().Format("2006-01-02")
	size := SizeLabel(u.Size)
	doc := model.DocumentEntity{
		ID:             NewDocumentID(),
		Name:           u.Name,
		Type:           model.DocumentTypeFor(u.Name),
		Classification: u.Classification,
		Size:           size,
		UploadDate:     today,
		Author:         session.Name,
		Tags:           ParseTags(u.Tags),
		CurrentVersion: InitialVersion,
		Versions: model.VersionList{{
			ID:         "v-" + uuid.NewString()[:8],
			Version:    InitialVersion,
			UploadDate: today,
			UploadedBy: session.Name,
			Size:       size,
			ChangeNote: InitialChangeNote,
		}},
	}
	if err := r.store.CreateDocument(doc); err != nil {
		return nil, fmt.Errorf("storing %s: %w", doc.Name, err)
	}

	ctx = identity.Set(ctx, &session)
	r.record(ctx, doc.ID, "upload", doc.Name)
	return &doc, nil
}

// Count returns the number of documents
func (r *Repository) Count() (int, error) {
	docs, err := r.store.ListDocuments()
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

// Recent returns up to n documents, newest first
func (r *Repository) Recent(n int) ([]model.DocumentEntity, error) {
	docs, err := r.store.ListDocuments()
	if err != nil {
		return nil, err
	}
	if len(docs) > n {
		docs = docs[:n]
	}
	return docs, nil
}

// SizeLabel renders a byte count in megabytes with two decimals
func SizeLabel(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/1024/1024)
}

// ParseTags splits a comma separated list, trimming entries and dropping
// blanks and repeats.
func ParseTags(list string) model.StringList {
	tags := model.StringList{}
	for _, t := range strings.Split(list, ",") {
		t = strings.TrimSpace(t)
		if t != "" && !tags.Contains(t) {
			tags = append(tags, t)
		}
	}
	return tags
}

// NewDocumentID returns a fresh "doc-" id with eight hex digits
func NewDocumentID() string {
	return "doc-" + uuid.NewString()[:8]
}

func (r *Repository) record(ctx context.Context, id, operation, detail string) {
	actor, _ := identity.Get(ctx)
	r.audit.Log(audit.DocumentEvent{
		User:       actor.String(),
		DocumentID: id,
		Operation:  operation,
		Detail:     detail,
	})
}
