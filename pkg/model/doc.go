// Package model defines the closed enumerations and entities shared by the
// compliance core.
//
// Every enumeration is an integer type whose zero value is invalid, so a
// forgotten field never decodes as a real role or status. String forms,
// parsers and the JSON, YAML and SQL codecs are generated by enumer:
//
//	role, err := model.RoleString("BREWER")
//	if err != nil {
//	    // not a member of the catalog
//	}
//
// # Entities
//
//   - User: a team member and the role they act under
//   - DocumentEntity: a repository document with its tag set and version history
//   - DocumentVersion: an immutable version snapshot
//   - FormField: a smart-fill field with its confidence score
//   - FormSubmission: a submitted form awaiting or past its decision
//
// Entities carry gorm tags so the Postgres store can persist them; list
// valued columns are stored as JSON.
package model
