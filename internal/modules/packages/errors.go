package packages

import "errors"

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("package not found")
	ErrBadReference = errors.New("referenced record does not exist")
)
