package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is an ordered list of labels stored as a JSON text column.
type StringList []string

// Value implements driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan StringList: unsupported type")
	}

	if len(bytes) == 0 {
		*l = nil
		return nil
	}

	var items []string
	if err := json.Unmarshal(bytes, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// Contains reports whether the label is present.
func (l StringList) Contains(label string) bool {
	for _, item := range l {
		if item == label {
			return true
		}
	}
	return false
}
