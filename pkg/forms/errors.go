package forms

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is not valid in the
	// current stage or for the submission's status.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrFieldNotFound is returned when editing a field that isn't in the
	// reviewed set.
	ErrFieldNotFound = errors.New("field not found")

	// ErrRejectNotConfirmed is returned when a rejection is applied without
	// a prior request.
	ErrRejectNotConfirmed = errors.New("rejection not confirmed")

	// ErrInvalidFile is returned for file metadata without a name
	ErrInvalidFile = errors.New("invalid file")
)
