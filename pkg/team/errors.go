package team

import "errors"

var (
	// ErrSelfRoleChange is returned when a user edits their own role
	ErrSelfRoleChange = errors.New("cannot change own role")

	// ErrSelfRemoval is returned when a user removes themselves
	ErrSelfRemoval = errors.New("cannot remove self")

	// ErrPolicyNotFound is returned for an unknown security policy id
	ErrPolicyNotFound = errors.New("policy not found")
)
