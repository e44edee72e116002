package smartfill

import "github.com/tripleswitch/complianceos/pkg/model"

// Confidence bands shown next to each field
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// ConfidenceBand classifies a confidence score
func ConfidenceBand(confidence float64) Band {
	switch {
	case confidence >= 0.9:
		return BandHigh
	case confidence >= 0.7:
		return BandMedium
	default:
		return BandLow
	}
}

// NeedsAttention reports whether a reviewer should look at the field: low
// confidence and not yet corrected by hand.
func NeedsAttention(f model.FormField) bool {
	return !f.IsEdited && ConfidenceBand(f.Confidence) == BandLow
}

// HasMismatch reports whether the extracted value differs from the reference
// value found in the knowledge base.
func HasMismatch(f model.FormField) bool {
	return f.OriginalValue != "" && f.OriginalValue != f.Value
}

// SeedFields returns a fresh copy of the extracted field set. f4 is a low
// confidence value that disagrees with its reference.
func SeedFields() model.FieldList {
	return model.FieldList{
		{ID: "f1", Label: "Business Name", Value: "Tripleswitch Brewing Company, LLC", Confidence: 0.99, Required: true},
		{ID: "f2", Label: "Registry Number", Value: "BW-CA-59512", Confidence: 0.98, Required: true},
		{ID: "f3", Label: "Period", Value: "January 2025", Confidence: 0.85, Required: true},
		{ID: "f4", Label: "Total Production (Bbls)", Value: "450.5", OriginalValue: "450", Confidence: 0.65, Required: true},
		{ID: "f5", Label: "Tax Due ($)", Value: "1,245.00", Confidence: 0.95, Required: true},
		{ID: "f6", Label: "Authorized Signature", Value: "[PENDING_SIGNATURE]", Confidence: 1.0, Required: true},
	}
}
