package audit

import "fmt"

// FormSubmitEvent records a reviewed form entering the approval queue
type FormSubmitEvent struct {
	User         string
	SubmissionID string
	Template     string
}

func (e FormSubmitEvent) MessageID() string {
	return "form-submit"
}

func (e FormSubmitEvent) Message() string {
	return fmt.Sprintf("%s submitted %s (%s)", e.User, e.SubmissionID, e.Template)
}

func (e FormSubmitEvent) Severity() Severity {
	return SeverityInfo
}

func (e FormSubmitEvent) Facility() int {
	return FacilityLocal0
}

func (e FormSubmitEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
		},
		SDIDForm: {
			"submission": e.SubmissionID,
			"template":   e.Template,
		},
		SDIDAction: {
			"operation": "submit",
			"result":    "success",
		},
	}
}

// FormDecisionEvent records a step of the approval flow. Operation is one of
// approve, request-reject, confirm-reject or cancel-reject.
type FormDecisionEvent struct {
	User         string
	SubmissionID string
	Operation    string
	Success      bool
	Error        string
}

func (e FormDecisionEvent) MessageID() string {
	return "form-decision"
}

func (e FormDecisionEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s performed %s on %s", e.User, e.Operation, e.SubmissionID)
	}
	msg := fmt.Sprintf("%s failed to %s %s", e.User, e.Operation, e.SubmissionID)
	if e.Error != "" {
		msg += ": " + e.Error
	}
	return msg
}

func (e FormDecisionEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e FormDecisionEvent) Facility() int {
	return FacilityLocal0
}

func (e FormDecisionEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
		},
		SDIDForm: {
			"submission": e.SubmissionID,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result(e.Success),
		},
	}
}
