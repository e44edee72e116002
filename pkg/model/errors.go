package model

import "errors"

// ErrUnknownEnumValue is returned for a value outside a closed enumeration.
var ErrUnknownEnumValue = errors.New("unknown enum value")
