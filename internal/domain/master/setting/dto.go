package setting

import (
	"encoding/json"
	"regexp"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/pkg/validator"
)

var keyRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{1,100}$`)

func IsValidKey(key string) bool {
	return keyRegex.MatchString(key)
}

type UpsertSettingRequest struct {
	Key         string          `json:"-"`
	Value       json.RawMessage `json:"value"`
	Description *string         `json:"description,omitempty"`
}

func (r *UpsertSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidKey(r.Key) {
		errs = append(errs, validator.ValidationError{Field: "key", Message: ErrInvalidKey.Error()})
	}
	if len(r.Value) == 0 || !json.Valid(r.Value) {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "value must be valid JSON"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingResponse struct {
	Key         string          `json:"key"`
	Value       json.RawMessage `json:"value"`
	Description *string         `json:"description,omitempty"`
	UpdatedAt   string          `json:"updated_at"`
}

func NewSettingResponse(s Setting) SettingResponse {
	return SettingResponse{
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}
