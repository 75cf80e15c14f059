package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList represents a list of strings stored as a JSON array in the database.
// It implements the sql.Scanner and driver.Valuer interfaces to handle database serialization.
type StringList []string

// Scan implements the sql.Scanner interface, allowing StringList to be read from the database.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		json.Unmarshal(v, &l)
		return nil
	case string:
		json.Unmarshal([]byte(v), &l)
		return nil
	default:
		return fmt.Errorf("unsupported type %T", v)
	}
}

// Value implements the driver.Valuer interface, allowing StringList to be written to the database.
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}
