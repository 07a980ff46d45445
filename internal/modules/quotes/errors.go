package quotes

import "errors"

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrQuoteNotPending = errors.New("quote is no longer pending")
)
