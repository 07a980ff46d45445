package projects

import "errors"

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrInvalidStatusChange = errors.New("invalid status transition")
)
