package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return marshalColumn(l, l == nil)
}

func (l *StringList) Scan(value interface{}) error {
	return scanColumn(value, l)
}

// Contains reports whether s is in the list.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// VersionList is a document's version history stored as a JSON column.
type VersionList []DocumentVersion

func (l VersionList) Value() (driver.Value, error) {
	return marshalColumn(l, l == nil)
}

func (l *VersionList) Scan(value interface{}) error {
	return scanColumn(value, l)
}

// FieldList is a submission's field set stored as a JSON column.
type FieldList []FormField

func (l FieldList) Value() (driver.Value, error) {
	return marshalColumn(l, l == nil)
}

func (l *FieldList) Scan(value interface{}) error {
	return scanColumn(value, l)
}

func marshalColumn(v interface{}, empty bool) (driver.Value, error) {
	if empty {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanColumn(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column value %T", value)
	}
}
