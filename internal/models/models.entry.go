// FilePath: server/stockkarte/internal/models/models.entry.go
package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// InspectionEntry is a stored inspection: the immutable record plus the
// bookkeeping the store adds when it takes its copy.
type InspectionEntry struct {
	ID          string     `json:"id"`
	HiveID      string     `json:"hive_id"`
	Fingerprint string     `json:"fingerprint"`
	Record      Inspection `json:"record"`
	RecordedAt  time.Time  `json:"recorded_at"`
}

// Value implements the driver.Valuer interface
func (r Inspection) Value() (driver.Value, error) {
	data, err := r.Marshal()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (r *Inspection) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return r.UnmarshalJSON(v)
	case string:
		return r.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into Inspection", value)
	}
}
