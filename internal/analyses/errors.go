package analyses

import "errors"

var ErrValidation = errors.New("validation failed")
