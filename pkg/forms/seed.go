package forms

import (
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// SeedSubmissions returns the initial submission list, newest first
func SeedSubmissions() []model.FormSubmission {
	return []model.FormSubmission{
		{
			ID:             "sub-101",
			Name:           "Jan 2025 TTB Report",
			TemplateName:   "TTB F 5130.9",
			Status:         model.FormStatusPendingApproval,
			SubmittedBy:    "Dave Grohl",
			SubmittedAt:    "2025-02-01",
			Classification: model.ClassificationRestricted,
			RiskLevel:      model.RiskHigh,
		},
		{
			ID:             "sub-102",
			Name:           "Batch #452 Quality Log",
			TemplateName:   "Quality Control Sheet",
			Status:         model.FormStatusApproved,
			SubmittedBy:    "Mike Ross",
			SubmittedAt:    "2025-01-28",
			Classification: model.ClassificationInternal,
			RiskLevel:      model.RiskLow,
		},
	}
}

// Seed loads SeedSubmissions into an empty store. Submissions are inserted
// oldest first so the store's head insertion keeps the listed order.
func Seed(s store.SubmissionStore) error {
	subs := SeedSubmissions()
	for i := len(subs) - 1; i >= 0; i-- {
		if err := s.CreateSubmission(subs[i]); err != nil {
			return err
		}
	}
	return nil
}
