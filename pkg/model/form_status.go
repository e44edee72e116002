package model

//go:generate go run github.com/dmarkham/enumer -type FormStatus -trimprefix FormStatus -transform snake-upper -json -yaml -sql -output form_status.gen.go

type FormStatus int

const (
	FormStatusDraft FormStatus = iota + 1
	FormStatusPendingApproval
	FormStatusApproved
	FormStatusRejected
)

// IsTerminal reports whether no further decision can be taken on the status.
func (s FormStatus) IsTerminal() bool {
	return s == FormStatusApproved || s == FormStatusRejected
}
