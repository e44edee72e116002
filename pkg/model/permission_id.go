package model

//go:generate go run github.com/dmarkham/enumer -type PermissionID -trimprefix Permission -transform snake -json -yaml -sql -output permission_id.gen.go

// PermissionID identifies an entry of the permission catalog.
type PermissionID int

const (
	PermissionViewPublic PermissionID = iota + 1
	PermissionViewInternal
	PermissionViewConfidential
	PermissionViewRestricted
	PermissionUploadDocs
	PermissionDeleteDocs
	PermissionSubmitForms
	PermissionApproveForms
	PermissionManageUsers
	PermissionViewAudit
)
