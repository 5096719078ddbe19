package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONBStrings is a custom type for handling string arrays in JSONB columns.
type JSONBStrings []string

// Value implements the driver.Valuer interface
func (a JSONBStrings) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStrings) Scan(value interface{}) error {
	bytes, ok := jsonbBytes(value)
	if !ok {
		*a = JSONBStrings{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

func jsonbBytes(value interface{}) ([]byte, bool) {
	if value == nil {
		return nil, false
	}
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
