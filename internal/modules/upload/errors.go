package upload

import "errors"

var (
	ErrNotFound     = errors.New("upload not found")
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
	ErrNotAnImage   = errors.New("only image files are allowed")
	ErrEmptyFile    = errors.New("file is empty")
)
