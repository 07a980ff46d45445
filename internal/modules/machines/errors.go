package machines

import "errors"

var ErrValidation = errors.New("validation error")
