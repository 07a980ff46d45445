package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrAccountLocked      = errors.New("account locked")
	ErrRateLimitExceeded  = errors.New("rate limit exceeded")

	ErrInvalidResetCodeFormat = errors.New("invalid reset code format")
	ErrInvalidResetCode       = errors.New("invalid or expired reset code")
	ErrTooManyResetAttempts   = errors.New("too many reset attempts")

	ErrWrongPassword = errors.New("current password is wrong")
)
