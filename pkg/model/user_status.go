package model

//go:generate go run github.com/dmarkham/enumer -type UserStatus -trimprefix UserStatus -transform snake-upper -json -yaml -sql -output user_status.gen.go

type UserStatus int

const (
	UserStatusActive UserStatus = iota + 1
	UserStatusInactive
	UserStatusInvited
)
