package model

//go:generate go run github.com/dmarkham/enumer -type Classification -trimprefix Classification -transform snake-upper -json -yaml -sql -output classification.gen.go

// Classification is the sensitivity label carried by documents and submissions.
// It is descriptive only; nothing gates reads on it.
type Classification int

const (
	ClassificationPublic Classification = iota + 1
	ClassificationInternal
	ClassificationConfidential
	ClassificationRestricted
)

// Description returns the text shown next to the level in the upload dialog.
func (c Classification) Description() string {
	switch c {
	case ClassificationPublic:
		return "No restrictions. Available for external distribution."
	case ClassificationInternal:
		return "Standard business data. Company personnel only."
	case ClassificationConfidential:
		return "Sensitive business data. Specific team access only."
	case ClassificationRestricted:
		return "Critical sensitive data. Strict access control & audit logs."
	}
	return ""
}
