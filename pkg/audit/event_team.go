package audit

import "fmt"

// UserUpdateEvent records an edit to the team directory. Operation is update
// or remove.
type UserUpdateEvent struct {
	User      string
	TargetID  string
	Operation string
	Success   bool
	Error     string
}

func (e UserUpdateEvent) MessageID() string {
	return "user-update"
}

func (e UserUpdateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s performed %s on user %s", e.User, e.Operation, e.TargetID)
	}
	msg := fmt.Sprintf("%s failed to %s user %s", e.User, e.Operation, e.TargetID)
	if e.Error != "" {
		msg += ": " + e.Error
	}
	return msg
}

func (e UserUpdateEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e UserUpdateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e UserUpdateEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
		},
		SDIDSubject: {
			"target": e.TargetID,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result(e.Success),
		},
	}
}

// PolicyToggleEvent records a security policy being switched
type PolicyToggleEvent struct {
	User     string
	PolicyID string
	Enabled  bool
}

func (e PolicyToggleEvent) MessageID() string {
	return "policy-toggle"
}

func (e PolicyToggleEvent) Message() string {
	state := "disabled"
	if e.Enabled {
		state = "enabled"
	}
	return fmt.Sprintf("%s %s security policy %s", e.User, state, e.PolicyID)
}

func (e PolicyToggleEvent) Severity() Severity {
	return SeverityNotice
}

func (e PolicyToggleEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PolicyToggleEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
		},
		SDIDSubject: {
			"policy": e.PolicyID,
		},
		SDIDAction: {
			"operation": "toggle",
			"result":    "success",
		},
	}
}
