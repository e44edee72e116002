package rbac

import (
	"fmt"

	"github.com/tripleswitch/complianceos/pkg/model"
)

// Permission is an entry of the fixed permission catalog
type Permission struct {
	ID       model.PermissionID `json:"id" yaml:"id"`
	Label    string             `json:"label" yaml:"label"`
	Category string             `json:"category" yaml:"category"`
}

const (
	CategoryDocumentAccess     = "Document Access"
	CategoryDocumentOperations = "Document Operations"
	CategoryFormOperations     = "Form Operations"
	CategorySystemAdmin        = "System Administration"
)

var catalog = []Permission{
	{ID: model.PermissionViewPublic, Label: "View Public Docs", Category: CategoryDocumentAccess},
	{ID: model.PermissionViewInternal, Label: "View Internal Docs", Category: CategoryDocumentAccess},
	{ID: model.PermissionViewConfidential, Label: "View Confidential Docs", Category: CategoryDocumentAccess},
	{ID: model.PermissionViewRestricted, Label: "View Restricted Docs", Category: CategoryDocumentAccess},
	{ID: model.PermissionUploadDocs, Label: "Upload New Documents", Category: CategoryDocumentOperations},
	{ID: model.PermissionDeleteDocs, Label: "Delete Documents", Category: CategoryDocumentOperations},
	{ID: model.PermissionSubmitForms, Label: "Submit Forms", Category: CategoryFormOperations},
	{ID: model.PermissionApproveForms, Label: "Approve Forms", Category: CategoryFormOperations},
	{ID: model.PermissionManageUsers, Label: "Manage Users", Category: CategorySystemAdmin},
	{ID: model.PermissionViewAudit, Label: "View Audit Logs", Category: CategorySystemAdmin},
}

// Catalog returns a copy of the permission catalog in display order
func Catalog() []Permission {
	return append([]Permission(nil), catalog...)
}

// Categories returns category names in first-appearance order
func Categories() []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range catalog {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Lookup returns the catalog entry for id
func Lookup(id model.PermissionID) (Permission, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return Permission{}, fmt.Errorf("%w: permission %s", ErrUnknownEnumValue, id)
}

func checkRole(role model.Role) error {
	if !role.IsARole() {
		return fmt.Errorf("%w: role %s", ErrUnknownEnumValue, role)
	}
	return nil
}

func checkPermission(id model.PermissionID) error {
	if !id.IsAPermissionID() {
		return fmt.Errorf("%w: permission %s", ErrUnknownEnumValue, id)
	}
	return nil
}
