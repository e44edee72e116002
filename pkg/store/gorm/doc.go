// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// List valued columns (tags, versions, fields) are stored as JSON. The schema
// is owned by the SQL migrations in db/migrations; nothing here auto-migrates.
package gorm
