package rbac

import (
	"fmt"
	"path"

	"github.com/tripleswitch/complianceos/pkg/model"
)

// Page paths known to the platform
const (
	PageDashboard = "/"
	PageDocuments = "/documents"
	PageForms     = "/forms"
	PageKB        = "/kb"
	PageReports   = "/reports"
	PageSettings  = "/settings"
	PageAudit     = "/audit"
)

// IsPageAllowed reports whether role may open page. Pages without an
// allow-list are open to every role.
func IsPageAllowed(role model.Role, page string) bool {
	switch normalizePage(page) {
	case PageSettings:
		return canViewSettings(role)
	case PageAudit:
		return canViewAudit(role)
	default:
		return true
	}
}

// CheckPage is IsPageAllowed for callers that want an error: an unknown role
// yields ErrUnknownEnumValue, a denial ErrPageDenied.
func CheckPage(role model.Role, page string) error {
	if err := checkRole(role); err != nil {
		return err
	}
	if !IsPageAllowed(role, page) {
		return fmt.Errorf("%w: %s may not open %s", ErrPageDenied, role, normalizePage(page))
	}
	return nil
}

func canViewSettings(role model.Role) bool {
	switch role {
	case model.RoleOwner, model.RoleComplianceOfficer, model.RoleBreweryManager:
		return true
	case model.RoleBrewer:
		return false
	}
	return false
}

func canViewAudit(role model.Role) bool {
	switch role {
	case model.RoleOwner, model.RoleComplianceOfficer:
		return true
	case model.RoleBreweryManager, model.RoleBrewer:
		return false
	}
	return false
}

func normalizePage(page string) string {
	if page == "" {
		return PageDashboard
	}
	return path.Clean("/" + page)
}

// NavItem is a sidebar entry
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavSection groups sidebar entries under a heading
type NavSection struct {
	Title string    `json:"title"`
	Items []NavItem `json:"items"`
}

// NavigationFor returns the sidebar visible to role. The System section is
// present only when the role can open at least one of its pages.
func NavigationFor(role model.Role) []NavSection {
	nav := []NavSection{{
		Title: "Operations",
		Items: []NavItem{
			{Label: "Dashboard", Path: PageDashboard},
			{Label: "Documents", Path: PageDocuments},
			{Label: "Forms Engine", Path: PageForms},
			{Label: "Knowledge Base", Path: PageKB},
			{Label: "Reports", Path: PageReports},
		},
	}}

	var system []NavItem
	if IsPageAllowed(role, PageSettings) {
		system = append(system, NavItem{Label: "Settings", Path: PageSettings})
	}
	if IsPageAllowed(role, PageAudit) {
		system = append(system, NavItem{Label: "Audit Logs", Path: PageAudit})
	}
	if len(system) > 0 {
		nav = append(nav, NavSection{Title: "System", Items: system})
	}
	return nav
}
