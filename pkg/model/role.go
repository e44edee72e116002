package model

import "strings"

//go:generate go run github.com/dmarkham/enumer -type Role -trimprefix Role -transform snake-upper -json -yaml -sql -output role.gen.go

// Role is a platform role. Page access and the permission matrix are keyed on it.
type Role int

const (
	RoleOwner Role = iota + 1
	RoleComplianceOfficer
	RoleBreweryManager
	RoleBrewer
)

// Label returns the role name as shown in the team table.
func (r Role) Label() string {
	return strings.ReplaceAll(r.String(), "_", " ")
}
