package documents

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
	"github.com/tripleswitch/complianceos/pkg/store/memory"
	"github.com/tripleswitch/complianceos/pkg/validate"
)

var dave = identity.Session{UserID: "u3", Name: "Dave Grohl", Role: model.RoleBreweryManager}

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Log(e audit.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func newRepository(t *testing.T) (*Repository, *recorder, *clock.Mock) {
	t.Helper()
	docs := memory.NewDocumentStore()
	require.NoError(t, Seed(docs))

	rec := &recorder{}
	mock := clock.NewMock()
	mock.Add(time.Date(2025, 2, 3, 12, 0, 0, 0, time.UTC).Sub(mock.Now()))
	return NewRepository(docs).WithAudit(rec).WithClock(mock), rec, mock
}

func ids(docs []model.DocumentEntity) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}

func TestSeed(t *testing.T) {
	r, _, _ := newRepository(t)
	docs, err := r.List(Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-001", "doc-002", "doc-003", "doc-004", "doc-005"}, ids(docs))

	for _, d := range docs {
		matches := 0
		for _, v := range d.Versions {
			if v.Version == d.CurrentVersion {
				matches++
			}
		}
		assert.Equal(t, 1, matches, d.ID)
	}
}

func TestList_Filters(t *testing.T) {
	r, _, _ := newRepository(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{"doc-001", "doc-002", "doc-003", "doc-004", "doc-005"}},
		{"one tag", Filter{Tags: []string{"Production"}}, []string{"doc-003", "doc-005"}},
		{"all tags required", Filter{Tags: []string{"Production", "Safety"}}, []string{"doc-003"}},
		{"unknown tag", Filter{Tags: []string{"Nope"}}, []string{}},
		{"any type", Filter{Types: []model.DocumentType{model.DocumentTypeDOCX, model.DocumentTypeXLSX}}, []string{"doc-003", "doc-005"}},
		{"tag and type", Filter{Tags: []string{"Production"}, Types: []model.DocumentType{model.DocumentTypeXLSX}}, []string{"doc-005"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := r.List(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(docs))
		})
	}
}

func TestTags(t *testing.T) {
	r, _, _ := newRepository(t)
	tags, err := r.Tags()
	require.NoError(t, err)
	assert.Len(t, tags, 14)
	assert.Contains(t, tags, "Hops")
	assert.True(t, tags[0] <= tags[1])
}

func TestAddTag(t *testing.T) {
	r, rec, _ := newRepository(t)
	ctx := identity.Set(context.Background(), &dave)

	doc, err := r.AddTag(ctx, "doc-002", "  Audit  ")
	require.NoError(t, err)
	assert.Equal(t, model.StringList{"Supply Chain", "Contracts", "Hops", "Audit"}, doc.Tags)

	doc, err = r.AddTag(ctx, "doc-002", "Audit")
	require.NoError(t, err)
	assert.Len(t, doc.Tags, 4)

	doc, err = r.AddTag(ctx, "doc-002", "   ")
	require.NoError(t, err)
	assert.Len(t, doc.Tags, 4)

	require.Len(t, rec.events, 1)
	event := rec.events[0].(audit.DocumentEvent)
	assert.Equal(t, "tag-add", event.Operation)
	assert.Equal(t, "Audit", event.Detail)
	assert.Equal(t, "document-tag", event.MessageID())

	_, err = r.AddTag(ctx, "doc-404", "x")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRemoveTag(t *testing.T) {
	r, rec, _ := newRepository(t)
	ctx := context.Background()

	doc, err := r.RemoveTag(ctx, "doc-001", "Q4")
	require.NoError(t, err)
	assert.Equal(t, model.StringList{"Finance", "2024"}, doc.Tags)

	got, err := r.Get("doc-001")
	require.NoError(t, err)
	assert.Equal(t, doc.Tags, got.Tags)

	_, err = r.RemoveTag(ctx, "doc-001", "Q4")
	require.NoError(t, err)
	assert.Len(t, rec.events, 1)
}

func TestRevert(t *testing.T) {
	r, rec, _ := newRepository(t)
	ctx := identity.Set(context.Background(), &dave)

	before, err := r.Get("doc-003")
	require.NoError(t, err)

	doc, err := r.Revert(ctx, "doc-003", "v1.0")
	require.NoError(t, err)
	assert.Equal(t, "v1.0", doc.CurrentVersion)
	assert.Equal(t, "400 KB", doc.Size)
	assert.Equal(t, "2024-06-20", doc.UploadDate)
	assert.Equal(t, "Mike Ross", doc.Author)
	assert.Equal(t, before.Versions, doc.Versions)

	event := rec.events[0].(audit.DocumentEvent)
	assert.Equal(t, "document-revert", event.MessageID())
	assert.Equal(t, "Dave Grohl (u3)", event.User)

	_, err = r.Revert(ctx, "doc-003", "v9.9")
	assert.ErrorIs(t, err, ErrVersionNotFound)
	got, err := r.Get("doc-003")
	require.NoError(t, err)
	assert.Equal(t, "v1.0", got.CurrentVersion)
}

func TestUpload(t *testing.T) {
	r, rec, _ := newRepository(t)

	doc, err := r.Upload(context.Background(), dave, Upload{
		Name: "plan.xlsx",
		Size: 1572864,
		Tags: " Production, ,Plan,Production ",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^doc-[0-9a-f]{8}$`, doc.ID)
	assert.Equal(t, model.DocumentTypeXLSX, doc.Type)
	assert.Equal(t, model.ClassificationInternal, doc.Classification)
	assert.Equal(t, "1.50 MB", doc.Size)
	assert.Equal(t, "2025-02-03", doc.UploadDate)
	assert.Equal(t, "Dave Grohl", doc.Author)
	assert.Equal(t, model.StringList{"Production", "Plan"}, doc.Tags)
	assert.Equal(t, InitialVersion, doc.CurrentVersion)
	require.Len(t, doc.Versions, 1)
	assert.Equal(t, InitialChangeNote, doc.Versions[0].ChangeNote)

	docs, err := r.List(Filter{})
	require.NoError(t, err)
	assert.Equal(t, doc.ID, docs[0].ID)

	event := rec.events[0].(audit.DocumentEvent)
	assert.Equal(t, "document-upload", event.MessageID())
	assert.Equal(t, "Dave Grohl (u3)", event.User)
}

func TestUpload_TypeAndClassification(t *testing.T) {
	r, _, _ := newRepository(t)

	doc, err := r.Upload(context.Background(), dave, Upload{
		Name:           "scan.tiff",
		Classification: model.ClassificationRestricted,
	})
	require.NoError(t, err)
	assert.Equal(t, model.DocumentTypePDF, doc.Type)
	assert.Equal(t, model.ClassificationRestricted, doc.Classification)
	assert.Equal(t, "0.00 MB", doc.Size)
	assert.Empty(t, doc.Tags)
}

func TestUpload_Invalid(t *testing.T) {
	r, _, _ := newRepository(t)

	_, err := r.Upload(context.Background(), dave, Upload{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidUpload)
	assert.ErrorIs(t, err, validate.ErrInvalid)

	_, err = r.Upload(context.Background(), dave, Upload{Name: "a.pdf", Classification: 99})
	assert.ErrorIs(t, err, ErrInvalidUpload)

	n, err := r.Count()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestRecent(t *testing.T) {
	r, _, _ := newRepository(t)
	docs, err := r.Recent(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-001", "doc-002", "doc-003"}, ids(docs))

	docs, err = r.Recent(50)
	require.NoError(t, err)
	assert.Len(t, docs, 5)
}

func TestRenderChangeNote(t *testing.T) {
	html, err := RenderChangeNote("Updated **caustic** cycle times\n\n- step one\n- step two")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>caustic</strong>")
	assert.Contains(t, html, "<li>step one</li>")

	html, err = RenderChangeNote("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestChangeNoteSummary(t *testing.T) {
	assert.Equal(t, "Final audited figures", ChangeNoteSummary("Final audited figures"))
	assert.Equal(t, "Added safety appendix", ChangeNoteSummary("## Added *safety* appendix\n\nDetails follow."))
	assert.Equal(t, "Bumped tank timer", ChangeNoteSummary("Bumped `tank` timer"))
	assert.Equal(t, "", ChangeNoteSummary(""))
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, model.StringList{}, ParseTags(""))
	assert.Equal(t, model.StringList{"a", "b"}, ParseTags("a, b ,,a"))
}
