package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRoleString(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
		wantErr  bool
	}{
		{input: "OWNER", expected: RoleOwner},
		{input: "COMPLIANCE_OFFICER", expected: RoleComplianceOfficer},
		{input: "brewery_manager", expected: RoleBreweryManager},
		{input: "BREWER", expected: RoleBrewer},
		{input: "JANITOR", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := RoleString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
		})
	}
}

func TestZeroValuesAreInvalid(t *testing.T) {
	assert.False(t, Role(0).IsARole())
	assert.False(t, PermissionID(0).IsAPermissionID())
	assert.False(t, Classification(0).IsAClassification())
	assert.False(t, FormStatus(0).IsAFormStatus())
	assert.False(t, RiskLevel(0).IsARiskLevel())
	assert.False(t, DocumentType(0).IsADocumentType())
	assert.False(t, UserStatus(0).IsAUserStatus())
}

func TestPermissionIDWireForm(t *testing.T) {
	assert.Equal(t, "view_restricted", PermissionViewRestricted.String())
	assert.Equal(t, "approve_forms", PermissionApproveForms.String())

	id, err := PermissionIDString("manage_users")
	require.NoError(t, err)
	assert.Equal(t, PermissionManageUsers, id)
	assert.Len(t, PermissionIDValues(), 10)
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "COMPLIANCE OFFICER", RoleComplianceOfficer.Label())
	assert.Equal(t, "OWNER", RoleOwner.Label())
}

func TestFormStatusIsTerminal(t *testing.T) {
	assert.False(t, FormStatusDraft.IsTerminal())
	assert.False(t, FormStatusPendingApproval.IsTerminal())
	assert.True(t, FormStatusApproved.IsTerminal())
	assert.True(t, FormStatusRejected.IsTerminal())
}

func TestClassificationDescription(t *testing.T) {
	for _, c := range ClassificationValues() {
		assert.NotEmpty(t, c.Description(), c.String())
	}
	assert.Equal(t, "Critical sensitive data. Strict access control & audit logs.", ClassificationRestricted.Description())
}

func TestDocumentTypeFor(t *testing.T) {
	tests := map[string]DocumentType{
		"report.pdf":     DocumentTypePDF,
		"SOP.DOCX":       DocumentTypeDOCX,
		"plan.xlsx":      DocumentTypeXLSX,
		"scan.img":       DocumentTypeIMG,
		"SCAN.Img":       DocumentTypeIMG,
		"photo.jpg":      DocumentTypePDF,
		"photo.png":      DocumentTypePDF,
		"memo.doc":       DocumentTypePDF,
		"old.xls":        DocumentTypePDF,
		"scan.tiff":      DocumentTypePDF,
		"no-extension":   DocumentTypePDF,
		"archive.tar.gz": DocumentTypePDF,
	}
	for name, expected := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, expected, DocumentTypeFor(name))
		})
	}
}

func TestSubmissionJSON(t *testing.T) {
	sub := FormSubmission{
		ID:             "sub-101",
		Status:         FormStatusPendingApproval,
		Classification: ClassificationRestricted,
		RiskLevel:      RiskHigh,
		Fields:         FieldList{{ID: "f1", Confidence: 0.99, Required: true}},
	}

	data, err := json.Marshal(sub)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"PENDING_APPROVAL"`)
	assert.Contains(t, string(data), `"classification":"RESTRICTED"`)
	assert.Contains(t, string(data), `"riskLevel":"HIGH"`)
	assert.NotContains(t, string(data), "position")

	var bad FormSubmission
	err = json.Unmarshal([]byte(`{"status":"ARCHIVED"}`), &bad)
	assert.Error(t, err)
}

func TestEnumYAML(t *testing.T) {
	var doc struct {
		Roles []Role `yaml:"roles"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("roles: [BREWER, COMPLIANCE_OFFICER]"), &doc))
	assert.Equal(t, []Role{RoleBrewer, RoleComplianceOfficer}, doc.Roles)

	err := yaml.Unmarshal([]byte("roles: [INTERN]"), &doc)
	assert.Error(t, err)
}

func TestStringListColumn(t *testing.T) {
	v, err := StringList{"Finance", "Q4"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Finance","Q4"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var l StringList
	require.NoError(t, l.Scan([]byte(`["SOP","Safety"]`)))
	assert.Equal(t, StringList{"SOP", "Safety"}, l)
	assert.True(t, l.Contains("SOP"))
	assert.False(t, l.Contains("sop"))

	assert.Error(t, l.Scan(42))
}

func TestDocumentClone(t *testing.T) {
	doc := DocumentEntity{
		ID:       "doc-1",
		Tags:     StringList{"a"},
		Versions: VersionList{{ID: "v1", Version: "v1.0"}},
	}
	cp := doc.Clone()
	cp.Tags[0] = "b"
	cp.Versions[0].Version = "v9"

	assert.Equal(t, "a", doc.Tags[0])
	assert.Equal(t, "v1.0", doc.Versions[0].Version)

	v, ok := doc.Version("v1.0")
	assert.True(t, ok)
	assert.Equal(t, "v1", v.ID)
	_, ok = doc.Version("v2.0")
	assert.False(t, ok)
}
