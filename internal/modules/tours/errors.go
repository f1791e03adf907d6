package tours

import "errors"

var (
	ErrNotFound     = errors.New("tour not found")
	ErrValidation   = errors.New("validation error")
	ErrBadReference = errors.New("referenced record does not exist")
)
