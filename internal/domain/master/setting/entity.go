package setting

import (
	"encoding/json"
	"time"
)

// Setting is a free-form organisation setting addressed by a unique key.
type Setting struct {
	Key         string
	Value       json.RawMessage
	Description *string
	UpdatedAt   time.Time
}
