package audit

import "fmt"

// PageAccessEvent records a page access decision
type PageAccessEvent struct {
	User    string
	Role    string
	Page    string
	Allowed bool
}

func (e PageAccessEvent) MessageID() string {
	return "page-access"
}

func (e PageAccessEvent) Message() string {
	if e.Allowed {
		return fmt.Sprintf("%s opened %s", e.User, e.Page)
	}
	return fmt.Sprintf("%s was denied %s as %s", e.User, e.Page, e.Role)
}

func (e PageAccessEvent) Severity() Severity {
	if e.Allowed {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e PageAccessEvent) Facility() int {
	return FacilityAuth
}

func (e PageAccessEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
			"role": e.Role,
		},
		SDIDSubject: {
			"page": e.Page,
		},
		SDIDAction: {
			"operation": "open",
			"result":    result(e.Allowed),
		},
	}
}

// PermissionToggleEvent records a change to the permission matrix
type PermissionToggleEvent struct {
	User       string
	Role       string
	Permission string
	Granted    bool
	Success    bool
	Error      string
}

func (e PermissionToggleEvent) MessageID() string {
	return "permission-toggle"
}

func (e PermissionToggleEvent) Message() string {
	if !e.Success {
		msg := fmt.Sprintf("%s tried to toggle %s for %s", e.User, e.Permission, e.Role)
		if e.Error != "" {
			msg += ": " + e.Error
		}
		return msg
	}
	if e.Granted {
		return fmt.Sprintf("%s granted %s to %s", e.User, e.Permission, e.Role)
	}
	return fmt.Sprintf("%s revoked %s from %s", e.User, e.Permission, e.Role)
}

func (e PermissionToggleEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e PermissionToggleEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PermissionToggleEvent) StructuredData() map[string]map[string]string {
	operation := "revoke"
	if e.Granted {
		operation = "grant"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
		},
		SDIDSubject: {
			"role":       e.Role,
			"permission": e.Permission,
		},
		SDIDAction: {
			"operation": operation,
			"result":    result(e.Success),
		},
	}
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
