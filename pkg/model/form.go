package model

// FormField is a candidate field value produced by smart-fill and reviewed by
// a person before submission.
type FormField struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	Value         string  `json:"value"`
	OriginalValue string  `json:"originalValue,omitempty"`
	Confidence    float64 `json:"confidence"`
	IsEdited      bool    `json:"isEdited"`
	Required      bool    `json:"required"`
}

// FormSubmission is a submitted form. Only the approval step changes Status.
type FormSubmission struct {
	ID             string         `gorm:"column:id;primaryKey" json:"id"`
	Name           string         `gorm:"column:name" json:"name"`
	TemplateName   string         `gorm:"column:template_name" json:"templateName"`
	Status         FormStatus     `gorm:"column:status" json:"status"`
	SubmittedBy    string         `gorm:"column:submitted_by" json:"submittedBy"`
	SubmittedAt    string         `gorm:"column:submitted_at" json:"submittedAt"`
	Classification Classification `gorm:"column:classification" json:"classification"`
	Fields         FieldList      `gorm:"column:fields;type:jsonb" json:"fields"`
	RiskLevel      RiskLevel      `gorm:"column:risk_level" json:"riskLevel"`
	Position       int64          `gorm:"column:position" json:"-"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}

// Clone returns a deep copy of the submission.
func (s FormSubmission) Clone() FormSubmission {
	s.Fields = append(FieldList(nil), s.Fields...)
	return s
}

// RoleGrant is one granted cell of the permission matrix.
type RoleGrant struct {
	Role       Role         `gorm:"column:role;primaryKey" json:"role"`
	Permission PermissionID `gorm:"column:permission;primaryKey" json:"permission"`
}

func (RoleGrant) TableName() string {
	return "role_permissions"
}
