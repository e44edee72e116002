package store

import (
	"errors"

	"github.com/tripleswitch/complianceos/pkg/model"
)

// ErrNotFound is returned when the requested record doesn't exist
var ErrNotFound = errors.New("record not found")

// ErrStatusConflict is returned when a conditional status update finds the
// record in a different status than expected
var ErrStatusConflict = errors.New("status changed concurrently")

// GrantStore abstracts the role to permission matrix. The owner role is never
// stored; its grants are implicit.
type GrantStore interface {
	// Granted reports whether the role currently holds the permission.
	Granted(role model.Role, permission model.PermissionID) (bool, error)

	// Grants returns the permissions held by a role.
	Grants(role model.Role) ([]model.PermissionID, error)

	// Toggle flips membership and returns the new state.
	Toggle(role model.Role, permission model.PermissionID) (bool, error)

	// Replace overwrites the grant set of a role.
	Replace(role model.Role, permissions []model.PermissionID) error
}

// SubmissionStore abstracts form submission storage
type SubmissionStore interface {
	// ListSubmissions returns all submissions, newest first.
	ListSubmissions() ([]model.FormSubmission, error)

	// FetchSubmission retrieves a submission by ID.
	// Returns ErrNotFound if it doesn't exist.
	FetchSubmission(id string) (*model.FormSubmission, error)

	// CreateSubmission stores a submission at the head of the list.
	CreateSubmission(sub model.FormSubmission) error

	// UpdateSubmissionStatus moves a submission from one status to another.
	// Returns ErrStatusConflict if the stored status is not from.
	UpdateSubmissionStatus(id string, from, to model.FormStatus) error
}

// DocumentStore abstracts repository document storage
type DocumentStore interface {
	// ListDocuments returns all documents, newest first.
	ListDocuments() ([]model.DocumentEntity, error)

	// FetchDocument retrieves a document by ID.
	// Returns ErrNotFound if it doesn't exist.
	FetchDocument(id string) (*model.DocumentEntity, error)

	// CreateDocument stores a document at the head of the list.
	CreateDocument(doc model.DocumentEntity) error

	// UpdateDocument overwrites the mutable fields of a stored document.
	UpdateDocument(doc model.DocumentEntity) error
}

// UserStore abstracts the team directory
type UserStore interface {
	// ListUsers returns users in directory order.
	ListUsers() ([]model.User, error)

	// FetchUser retrieves a user by ID.
	// Returns ErrNotFound if it doesn't exist.
	FetchUser(id string) (*model.User, error)

	// CreateUser appends a user to the directory.
	CreateUser(user model.User) error

	// UpdateUser overwrites a stored user.
	UpdateUser(user model.User) error

	// DeleteUser removes a user.
	DeleteUser(id string) error
}
