package auth

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrAccountInactive       = errors.New("account is inactive")
	ErrPasswordMismatch      = errors.New("current password is incorrect")
	ErrGoogleLoginDisabled   = errors.New("google sign-in is not configured")
	ErrInvalidOAuthState     = errors.New("invalid oauth state")
	ErrGoogleEmailUnverified = errors.New("google account email is not verified")
)
