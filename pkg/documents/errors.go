package documents

import "errors"

var (
	// ErrVersionNotFound is returned when reverting to a label that is not in
	// the document's history.
	ErrVersionNotFound = errors.New("version not found")

	// ErrInvalidUpload is returned for upload metadata that fails validation
	ErrInvalidUpload = errors.New("invalid upload")
)
