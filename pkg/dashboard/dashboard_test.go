package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/documents"
	"github.com/tripleswitch/complianceos/pkg/forms"
	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/store/memory"
)

func TestSummary(t *testing.T) {
	discard := audit.RecorderFunc(func(audit.Event) {})

	docStore := memory.NewDocumentStore()
	require.NoError(t, documents.Seed(docStore))
	docs := documents.NewRepository(docStore).WithAudit(discard)

	subStore := memory.NewSubmissionStore()
	require.NoError(t, forms.Seed(subStore))
	registry := forms.NewRegistry(subStore).WithAudit(discard)

	svc := NewService(docs, registry)

	s, err := svc.Summary()
	require.NoError(t, err)
	require.Len(t, s.Metrics, 4)
	assert.Equal(t, "98%", s.Metrics[0].Value)
	assert.Equal(t, "1", s.Metrics[1].Value)
	assert.Equal(t, "5", s.Metrics[2].Value)
	assert.Equal(t, "1254", s.Metrics[3].Value)
	assert.Len(t, s.RecentDocuments, 5)
	assert.Equal(t, 1, s.Submissions.Approved)

	_, err = docs.Upload(context.Background(), identity.Session{UserID: "u1", Name: "Alex Miller"}, documents.Upload{Name: "new.pdf"})
	require.NoError(t, err)
	require.NoError(t, registry.Approve(context.Background(), "sub-101"))

	s, err = svc.Summary()
	require.NoError(t, err)
	assert.Equal(t, "0", s.Metrics[1].Value)
	assert.Equal(t, "6", s.Metrics[2].Value)
	assert.Equal(t, "new.pdf", s.RecentDocuments[0].Name)
	assert.Len(t, s.RecentDocuments, RecentCount)
	assert.Equal(t, 2, s.Submissions.Approved)
}
