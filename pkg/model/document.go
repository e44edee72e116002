package model

// DocumentVersion is an immutable snapshot in a document's history.
type DocumentVersion struct {
	ID         string `json:"id"`
	Version    string `json:"version"`
	UploadDate string `json:"uploadDate"`
	UploadedBy string `json:"uploadedBy"`
	Size       string `json:"size"`
	ChangeNote string `json:"changeNote"`
}

// DocumentEntity is a repository document. Size, UploadDate and Author mirror
// the version named by CurrentVersion.
type DocumentEntity struct {
	ID             string         `gorm:"column:id;primaryKey" json:"id"`
	Name           string         `gorm:"column:name" json:"name"`
	Type           DocumentType   `gorm:"column:type" json:"type"`
	Classification Classification `gorm:"column:classification" json:"classification"`
	Size           string         `gorm:"column:size" json:"size"`
	UploadDate     string         `gorm:"column:upload_date" json:"uploadDate"`
	Author         string         `gorm:"column:author" json:"author"`
	Tags           StringList     `gorm:"column:tags;type:jsonb" json:"tags"`
	CurrentVersion string         `gorm:"column:current_version" json:"currentVersion"`
	Versions       VersionList    `gorm:"column:versions;type:jsonb" json:"versions"`
	// Position orders the repository listing, newest first.
	Position int64 `gorm:"column:position" json:"-"`
}

func (DocumentEntity) TableName() string {
	return "documents"
}

// Version returns the history entry with the given label.
func (d *DocumentEntity) Version(label string) (DocumentVersion, bool) {
	for _, v := range d.Versions {
		if v.Version == label {
			return v, true
		}
	}
	return DocumentVersion{}, false
}

// Clone returns a deep copy so callers cannot alias store-owned slices.
func (d DocumentEntity) Clone() DocumentEntity {
	d.Tags = append(StringList(nil), d.Tags...)
	d.Versions = append(VersionList(nil), d.Versions...)
	return d
}
