package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Genres is an ordered list of genre labels.  The database column is
// plain JSON text, so the type implements sql.Scanner and
// driver.Valuer to convert in both directions.  A nil or empty list
// is stored as SQL NULL.
type Genres []string

// Scan decodes the JSON column value.  NULL scans to a nil slice.
func (g *Genres) Scan(src any) error {
	if src == nil {
		*g = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("genres: unsupported scan type %T", src)
	}
	if len(raw) == 0 {
		*g = nil
		return nil
	}
	return json.Unmarshal(raw, g)
}

// Value encodes the list as JSON text for storage.
func (g Genres) Value() (driver.Value, error) {
	if len(g) == 0 {
		return nil, nil
	}
	return json.Marshal([]string(g))
}
