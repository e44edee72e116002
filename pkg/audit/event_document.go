package audit

import "fmt"

// DocumentEvent records a change to a repository document. Operation is one
// of upload, revert, tag-add or tag-remove; Detail carries the version label,
// tag or file name.
type DocumentEvent struct {
	User       string
	DocumentID string
	Operation  string
	Detail     string
}

func (e DocumentEvent) MessageID() string {
	switch e.Operation {
	case "revert":
		return "document-revert"
	case "upload":
		return "document-upload"
	default:
		return "document-tag"
	}
}

func (e DocumentEvent) Message() string {
	switch e.Operation {
	case "revert":
		return fmt.Sprintf("%s reverted %s to %s", e.User, e.DocumentID, e.Detail)
	case "upload":
		return fmt.Sprintf("%s uploaded %s as %s", e.User, e.Detail, e.DocumentID)
	case "tag-remove":
		return fmt.Sprintf("%s removed tag %q from %s", e.User, e.Detail, e.DocumentID)
	default:
		return fmt.Sprintf("%s tagged %s with %q", e.User, e.DocumentID, e.Detail)
	}
}

func (e DocumentEvent) Severity() Severity {
	if e.Operation == "revert" {
		return SeverityNotice
	}
	return SeverityInfo
}

func (e DocumentEvent) Facility() int {
	return FacilityLocal0
}

func (e DocumentEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
		},
		SDIDSubject: {
			"document": e.DocumentID,
			"detail":   e.Detail,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    "success",
		},
	}
}
