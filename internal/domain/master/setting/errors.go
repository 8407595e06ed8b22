package setting

import "errors"

var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrInvalidKey      = errors.New("setting key must be 1-100 characters of letters, digits, '.', '_' or '-'")
)
