package pricing

import (
	"errors"
	"fmt"
)

// ErrZeroDivisorConfig marks a cost formula whose configured divisor
// (useful life hours, working hours per year) is zero or negative. The
// calculators fail loudly instead of producing a non-finite cost.
var ErrZeroDivisorConfig = errors.New("zero or negative divisor in cost configuration")

// ValidationError reports bad input data rejected before any arithmetic
// runs: non-positive quantities, negative time or cost fields, dangling
// machine or material references.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
